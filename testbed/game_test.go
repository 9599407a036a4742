package testbed

import (
	"testing"

	"github.com/spaghettifunk/anima-backends/engine"
	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/platform/null"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
	"github.com/spaghettifunk/anima-backends/engine/renderer/software"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type softwareSystem struct {
	*null.Backend
	device *software.Device
}

func (s *softwareSystem) GraphicsBackend() renderer.DeviceBackend {
	s.device = software.New()
	return s.device
}

func TestTestbedRendersWithoutErrors(t *testing.T) {
	settings := config.Default()
	settings.Backend = config.BackendNull
	settings.Window.Width, settings.Window.Height = 40, 20

	tg, err := NewTestGame(settings, []byte("not audio"))
	require.NoError(t, err)

	sys := &softwareSystem{Backend: null.New()}
	e, err := engine.New(sys, tg.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())

	stats := sys.device.Stats()
	assert.Zero(t, stats.Errors)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 5, sys.device.Live())

	require.NoError(t, e.Shutdown())
	assert.Zero(t, sys.device.Live())
}

func TestBytesHelpers(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, float32Bytes(1))
	assert.Equal(t, []byte{2, 0, 0, 0, 1, 1, 0, 0}, uint32Bytes(2, 257))
}
