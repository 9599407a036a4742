package audio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceStateTransitions(t *testing.T) {
	s := InstanceStatePlaying
	assert.Equal(t, InstanceStatePlaying, s.Resume())

	s = s.Pause()
	assert.True(t, s.IsPaused())
	assert.Equal(t, InstanceStatePaused, s.Pause())

	s = s.Resume()
	assert.Equal(t, InstanceStatePlaying, s)

	s = s.Stop()
	assert.True(t, s.IsStopped())
	assert.Equal(t, InstanceStateStopped, s.Pause())
	assert.Equal(t, InstanceStateStopped, s.Resume())
	assert.Equal(t, "stopped", s.String())
}

type countingBackend struct {
	Backend
	sources int
}

func (c *countingBackend) CreateSource([]byte) (SoundID, error) {
	c.sources++
	return SoundID(c.sources), nil
}

func TestSharedSerializesAccess(t *testing.T) {
	backend := &countingBackend{}
	shared := NewShared(backend)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = shared.CreateSource(nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, backend.sources)
	shared.Do(func(b Backend) {
		assert.Same(t, backend, b)
	})
}
