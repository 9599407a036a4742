package audio

import "sync"

// Shared is the single audio device of an application. Every holder of the
// pointer reaches the same backend, one caller at a time.
type Shared struct {
	mutex   sync.Mutex
	backend Backend
}

func NewShared(backend Backend) *Shared {
	return &Shared{backend: backend}
}

// Do runs fn with exclusive access to the backend.
func (s *Shared) Do(fn func(b Backend)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	fn(s.backend)
}

// PlaySound is a convenience wrapper for the most common call.
func (s *Shared) PlaySound(source SoundID, repeat bool) (id SoundID, err error) {
	s.Do(func(b Backend) {
		id, err = b.PlaySound(source, repeat)
	})
	return id, err
}

func (s *Shared) CreateSource(data []byte) (id SoundID, err error) {
	s.Do(func(b Backend) {
		id, err = b.CreateSource(data)
	})
	return id, err
}
