package null

import (
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
)

// Audio tracks sources and instances without producing any sound. Sources
// and instances are numbered by separate counters starting at 1.
type Audio struct {
	sourceIDs    core.IDAllocator
	soundIDs     core.IDAllocator
	globalVolume float32
	sources      map[audio.SoundID]struct{}
	sounds       map[audio.SoundID]*sound
}

type sound struct {
	source audio.SoundID
	state  audio.InstanceState
	volume float32
}

func NewAudio() *Audio {
	return &Audio{
		globalVolume: 1.0,
		sources:      make(map[audio.SoundID]struct{}),
		sounds:       make(map[audio.SoundID]*sound),
	}
}

// SetGlobalVolume stores volume as given, without clamping.
func (a *Audio) SetGlobalVolume(volume float32) {
	a.globalVolume = volume
}

func (a *Audio) GlobalVolume() float32 {
	return a.globalVolume
}

func (a *Audio) CreateSource(_ []byte) (audio.SoundID, error) {
	id := audio.SoundID(a.sourceIDs.Next())
	a.sources[id] = struct{}{}
	return id, nil
}

// PlaySound never fails, not even for sources it did not create.
func (a *Audio) PlaySound(source audio.SoundID, _ bool) (audio.SoundID, error) {
	id := audio.SoundID(a.soundIDs.Next())
	a.sounds[id] = &sound{source: source, state: audio.InstanceStatePlaying, volume: 1.0}
	return id, nil
}

func (a *Audio) Pause(id audio.SoundID) {
	if s, ok := a.sounds[id]; ok {
		s.state = s.state.Pause()
	}
}

func (a *Audio) Resume(id audio.SoundID) {
	if s, ok := a.sounds[id]; ok {
		s.state = s.state.Resume()
	}
}

func (a *Audio) Stop(id audio.SoundID) {
	if s, ok := a.sounds[id]; ok {
		s.state = s.state.Stop()
	}
}

func (a *Audio) IsStopped(id audio.SoundID) bool {
	s, ok := a.sounds[id]
	return !ok || s.state.IsStopped()
}

func (a *Audio) IsPaused(id audio.SoundID) bool {
	s, ok := a.sounds[id]
	return ok && s.state.IsPaused()
}

func (a *Audio) SetVolume(id audio.SoundID, volume float32) {
	if s, ok := a.sounds[id]; ok {
		s.volume = volume
	}
}

func (a *Audio) Volume(id audio.SoundID) float32 {
	if s, ok := a.sounds[id]; ok {
		return s.volume
	}
	return 0
}

// Clean releases sources and instances. Instances of a released source are
// stopped and released with it.
func (a *Audio) Clean(sources, sounds []audio.SoundID) {
	for _, id := range sounds {
		delete(a.sounds, id)
	}
	for _, src := range sources {
		delete(a.sources, src)
		for id, s := range a.sounds {
			if s.source == src {
				s.state = s.state.Stop()
				delete(a.sounds, id)
			}
		}
	}
}
