package engine

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	system       platform.System
	renderer     *renderer.Renderer
	audio        *audio.Shared
	events       *core.EventBus
	watcher      *config.Watcher
	isSuspended  bool
	quit         bool
	width        int32
	height       int32
	clock        *core.Clock
	lastTime     float64
}

func New(system platform.System, g *Game) (*Engine, error) {
	if system == nil {
		return nil, errors.New("engine needs a platform")
	}
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("engine needs a game with an application config")
	}

	window := g.ApplicationConfig.WindowConfig()
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		system:       system,
		renderer:     renderer.New(system.GraphicsBackend()),
		audio:        system.AudioBackend(),
		events:       core.NewEventBus(),
		width:        window.Width,
		height:       window.Height,
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Renderer() *renderer.Renderer {
	return e.renderer
}

func (e *Engine) Audio() *audio.Shared {
	return e.audio
}

// Events is the bus platform events are dispatched on. Games may register
// their own listeners.
func (e *Engine) Events() *core.EventBus {
	return e.events
}

// WatchConfig applies configuration reloads published by w between frames.
func (e *Engine) WatchConfig(w *config.Watcher) {
	e.watcher = w
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine cannot be initialized twice")
	}
	e.currentStage = EngineStageInitializing

	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_KEY_RELEASED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)
	e.events.Register(core.EVENT_CODE_SCALE_FACTOR, e, e.onScaleFactor)

	settings := e.gameInstance.ApplicationConfig.Settings
	e.audio.Do(func(b audio.Backend) {
		b.SetGlobalVolume(settings.Audio.Volume)
	})
	e.renderer.OnResize(e.width, e.height)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.renderer, e.audio); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run hands control to the platform. It returns when the platform's run
// procedure returns, which for interactive platforms is when the window
// closes.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	return platform.Run(e.system, e.gameInstance.ApplicationConfig.WindowConfig(), e, frame)
}

func frame(app *platform.App, e *Engine) (platform.FrameState, error) {
	e.applyConfigChanges(app)

	for _, event := range app.Backend().Events() {
		e.events.Fire(event, app)
	}
	if e.quit {
		app.Exit()
		return platform.FrameStateSkip, nil
	}
	if e.isSuspended {
		return platform.FrameStateSkip, nil
	}

	// Update clock and get delta time.
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime
	e.lastTime = currentTime

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(delta); err != nil {
			return platform.FrameStateSkip, fmt.Errorf("game update failed: %w", err)
		}
	}
	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(e.renderer, delta); err != nil {
			return platform.FrameStateSkip, fmt.Errorf("game render failed: %w", err)
		}
	}

	e.renderer.Flush()
	return platform.FrameStateRunning, nil
}

func (e *Engine) applyConfigChanges(app *platform.App) {
	if e.watcher == nil {
		return
	}
	select {
	case cfg := <-e.watcher.Changes():
		if err := core.SetLogLevel(cfg.Log.Level); err != nil {
			core.LogWarn("invalid log level %q: %s", cfg.Log.Level, err)
		}
		e.audio.Do(func(b audio.Backend) {
			b.SetGlobalVolume(cfg.Audio.Volume)
		})
		app.Window().SetLazyLoop(cfg.Window.LazyLoop)
		e.gameInstance.ApplicationConfig.Settings = cfg
	default:
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown

	var err error
	if e.gameInstance.FnShutdown != nil {
		err = e.gameInstance.FnShutdown()
	}
	e.renderer.Flush()
	e.events.Shutdown()
	if e.watcher != nil {
		if cerr := e.watcher.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer.
func (e *Engine) GetFramebufferSize() (int32, int32) {
	return e.width, e.height
}

func (e *Engine) onEvent(event core.Event, sender, listener interface{}) bool {
	switch event.Code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.quit = true
		return true
	}
	return false
}

func (e *Engine) onKey(event core.Event, sender, listener interface{}) bool {
	if event.Code == core.EVENT_CODE_KEY_PRESSED {
		if event.Key == core.KEY_ESCAPE {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			e.events.Fire(core.Event{Code: core.EVENT_CODE_APPLICATION_QUIT}, sender)
			// Block anything else from processing this.
			return true
		}
		core.LogDebug("key %d pressed in window.", event.Key)
	} else if event.Code == core.EVENT_CODE_KEY_RELEASED {
		core.LogDebug("key %d released in window.", event.Key)
	}
	return false
}

func (e *Engine) onResized(event core.Event, sender, listener interface{}) bool {
	width, height := event.Width, event.Height
	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	e.renderer.OnResize(width, height)
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("resize handler failed: %s", err)
		}
	}
	return false
}

func (e *Engine) onScaleFactor(event core.Event, sender, listener interface{}) bool {
	e.renderer.OnScaleFactor(event.ScaleFactor)
	return false
}
