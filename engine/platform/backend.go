package platform

import (
	"sync/atomic"

	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
)

// Backend is the part of a platform the application talks to every frame.
type Backend interface {
	Window() WindowBackend
	// Events drains the events received since the last call.
	Events() []core.Event
	// Exit asks the platform to close its window.
	Exit()
	// SystemTimestamp returns milliseconds since the backend started.
	SystemTimestamp() uint64
	OpenLink(url string, newTab bool)
}

// System bundles the backends of one platform.
type System interface {
	Backend

	// Initialize applies cfg and returns the procedure that drives the
	// main loop. It is called once per application.
	Initialize(cfg WindowConfig) (RunFn, error)
	// GraphicsBackend returns a new device for the platform's window.
	GraphicsBackend() renderer.DeviceBackend
	// AudioBackend returns a new audio device behind a shared cell.
	AudioBackend() *audio.Shared
}

type FrameState uint8

const (
	// The frame was produced and should be presented.
	FrameStateRunning FrameState = iota
	// Nothing was drawn, presentation can be skipped.
	FrameStateSkip
)

// FrameFn is called by the run procedure once per frame.
type FrameFn func(app *App, state any) (FrameState, error)

// RunFn drives frames until the application exits. Errors returned by the
// frame callback are logged, not propagated.
type RunFn func(app *App, state any, frame FrameFn) error

// App is the handle the frame callback receives.
type App struct {
	backend Backend
	closed  atomic.Bool
	metrics *core.Metrics
}

func NewApp(backend Backend) *App {
	return &App{
		backend: backend,
		metrics: core.NewMetrics(),
	}
}

func (a *App) Backend() Backend {
	return a.backend
}

func (a *App) Window() WindowBackend {
	return a.backend.Window()
}

// Exit closes the application after the current frame.
func (a *App) Exit() {
	if a.closed.Swap(true) {
		return
	}
	a.backend.Exit()
}

func (a *App) Closed() bool {
	return a.closed.Load()
}

// FPS returns the frames per second measured by the run procedure.
func (a *App) FPS() float64 {
	return a.metrics.FPS()
}

func (a *App) Metrics() *core.Metrics {
	return a.metrics
}

// Run initializes sys with cfg and drives frame with a typed state until
// the run procedure returns.
func Run[S any](sys System, cfg WindowConfig, state S, frame func(app *App, state S) (FrameState, error)) error {
	run, err := sys.Initialize(cfg)
	if err != nil {
		return err
	}
	app := NewApp(sys)
	return run(app, state, func(app *App, s any) (FrameState, error) {
		typed, _ := s.(S)
		return frame(app, typed)
	})
}
