package platform

import "github.com/spaghettifunk/anima-backends/engine/core"

// LoopDriver is the platform specific half of RunLoop.
type LoopDriver interface {
	// PollEvents processes pending events and returns immediately.
	PollEvents()
	// WaitEvents blocks until at least one event arrives.
	WaitEvents()
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// Present shows the frame that was just produced.
	Present() error
}

// RunLoop drives frame until app is closed. Frame errors are logged and the
// loop continues with the next frame.
func RunLoop(app *App, state any, frame FrameFn, driver LoopDriver) error {
	clock := core.NewClock()
	clock.Start()
	lastTime := clock.Elapsed()

	for !app.Closed() {
		if app.Window().LazyLoop() {
			driver.WaitEvents()
		} else {
			driver.PollEvents()
		}
		if driver.ShouldClose() {
			app.Exit()
			break
		}

		clock.Update()
		currentTime := clock.Elapsed()

		fs, err := frame(app, state)
		if err != nil {
			core.LogError("frame failed: %s", err)
		} else if fs == FrameStateRunning {
			if err := driver.Present(); err != nil {
				core.LogError("failed to present frame: %s", err)
			}
		}

		app.metrics.Update(currentTime - lastTime)
		lastTime = currentTime
	}

	clock.Stop()
	fps, ms := app.metrics.Frame()
	core.LogInfo("main loop finished (%.0f fps, %.3f ms/frame)", fps, ms)
	return nil
}
