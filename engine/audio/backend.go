// Package audio defines the audio device contract shared by every platform
// and the bookkeeping all implementations agree on.
package audio

import "fmt"

// SoundID identifies either a source (decoded data) or an instance (one
// playback of a source). The two are numbered independently, so the same
// value can name a source and an instance at once.
type SoundID uint64

func (id SoundID) String() string {
	return fmt.Sprintf("sound#%d", uint64(id))
}

// Backend is implemented by every audio device.
//
// Operations on unknown ids are total: IsStopped reports true, IsPaused
// reports false, Volume reports 0 and the transport calls do nothing.
type Backend interface {
	SetGlobalVolume(volume float32)
	GlobalVolume() float32

	// CreateSource decodes data into a source that can be played many times.
	CreateSource(data []byte) (SoundID, error)
	// PlaySound starts a new instance of source. A repeating instance loops
	// until it is stopped.
	PlaySound(source SoundID, repeat bool) (SoundID, error)

	Pause(sound SoundID)
	Resume(sound SoundID)
	Stop(sound SoundID)
	IsStopped(sound SoundID) bool
	IsPaused(sound SoundID) bool

	SetVolume(sound SoundID, volume float32)
	Volume(sound SoundID) float32

	// Clean drops sources and instances. Unknown ids are ignored.
	Clean(sources, sounds []SoundID)
}
