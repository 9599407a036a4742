// Package null is a platform that performs no I/O. It is used to run the
// engine headless and as the reference behavior for the other platforms.
package null

import (
	"sync/atomic"

	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
)

type Backend struct {
	window *Window
	exited atomic.Bool
}

func New() *Backend {
	return &Backend{
		window: NewWindow(),
	}
}

func (b *Backend) Window() platform.WindowBackend {
	return b.window
}

func (b *Backend) Events() []core.Event {
	return nil
}

// Exit may be called from any goroutine.
func (b *Backend) Exit() {
	b.exited.Store(true)
}

// Exited reports whether Exit was called.
func (b *Backend) Exited() bool {
	return b.exited.Load()
}

func (b *Backend) SystemTimestamp() uint64 {
	return 0
}

func (b *Backend) OpenLink(url string, newTab bool) {
	core.LogDebug("open link %s (new tab: %t)", url, newTab)
}

// Initialize applies cfg to the window. The returned run procedure calls
// the frame callback a single time and returns, so it only suits
// non-interactive use.
func (b *Backend) Initialize(cfg platform.WindowConfig) (platform.RunFn, error) {
	b.window.SetSize(cfg.Width, cfg.Height)
	b.window.SetFullscreen(cfg.Fullscreen)
	b.window.SetLazyLoop(cfg.LazyLoop)
	return runOnce, nil
}

func runOnce(app *platform.App, state any, frame platform.FrameFn) error {
	if _, err := frame(app, state); err != nil {
		core.LogError("frame failed: %s", err)
	}
	return nil
}

func (b *Backend) GraphicsBackend() renderer.DeviceBackend {
	return NewDevice()
}

func (b *Backend) AudioBackend() *audio.Shared {
	return audio.NewShared(NewAudio())
}
