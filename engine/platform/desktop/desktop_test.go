//go:build !js

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/gpucontext"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/stretchr/testify/assert"
)

var _ platform.System = (*Backend)(nil)
var _ platform.LoopDriver = (*Backend)(nil)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KEY_A, translateKey(glfw.KeyA))
	assert.Equal(t, core.KEY_Z, translateKey(glfw.KeyZ))
	assert.Equal(t, core.KEY_F12, translateKey(glfw.KeyF12))
	assert.Equal(t, core.KEY_NUMPAD7, translateKey(glfw.KeyKP7))
	assert.Equal(t, core.KEY_ESCAPE, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KEY_UNKNOWN, translateKey(glfw.KeyWorld1))
}

func TestStandardCursor(t *testing.T) {
	assert.Equal(t, glfw.ArrowCursor, standardCursor(platform.CursorDefault))
	assert.Equal(t, glfw.IBeamCursor, standardCursor(platform.CursorText))
	assert.Equal(t, glfw.HandCursor, standardCursor(platform.CursorGrabbing))
	assert.Equal(t, glfw.HResizeCursor, standardCursor(platform.CursorColResize))
	assert.Equal(t, glfw.VResizeCursor, standardCursor(platform.CursorNsResize))
	assert.Equal(t, glfw.ArrowCursor, standardCursor(platform.CursorZoomIn))
}

func TestWindowStoresSettingsBeforeAttach(t *testing.T) {
	w := newWindow()
	w.SetSize(640, 480)
	w.SetFullscreen(true)
	w.SetLazyLoop(true)
	w.SetCursor(platform.CursorHelp)
	w.RequestFrame()

	width, height := w.Size()
	assert.Equal(t, int32(640), width)
	assert.Equal(t, int32(480), height)
	assert.True(t, w.IsFullscreen())
	assert.True(t, w.LazyLoop())
	assert.Equal(t, platform.CursorHelp, w.Cursor())
	assert.Equal(t, 1.0, w.DPI())
}

func TestEventQueueDropsWhenFull(t *testing.T) {
	q := newEventQueue()
	for i := 0; i < eventQueueSize+10; i++ {
		q.scrollCallback(nil, 0, 1)
	}
	events := q.drain()
	assert.Len(t, events, eventQueueSize)
	assert.Equal(t, core.EVENT_CODE_MOUSE_WHEEL, events[0].Code)
	assert.Empty(t, q.drain())

	q.keyCallback(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	q.closeCallback(nil)
	events = q.drain()
	assert.Equal(t, core.Event{Code: core.EVENT_CODE_KEY_RELEASED, Key: core.KEY_ESCAPE}, events[0])
	assert.Equal(t, core.EVENT_CODE_APPLICATION_QUIT, events[1].Code)
}

func TestDeviceFollowsBackendAfterInitialize(t *testing.T) {
	b := New(AudioOptions{})
	b.window.SetSize(32, 16)
	d := b.GraphicsBackend()
	assert.Empty(t, d.APIName())
	assert.Equal(t, 32, b.device.Framebuffer().Bounds().Dx())

	// what Initialize does once the window and context exist
	b.tier = gpucontext.TierOpenGL33
	b.window.SetSize(80, 40)
	b.syncDevice()

	assert.Equal(t, gpucontext.TierOpenGL33, d.APIName())
	assert.Equal(t, 80, b.device.Framebuffer().Bounds().Dx())
	assert.Equal(t, 40, b.device.Framebuffer().Bounds().Dy())
}
