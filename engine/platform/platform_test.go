package platform_test

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/platform/null"
	"github.com/stretchr/testify/assert"
)

type fakeDriver struct {
	polls, waits, presents int
	closeAfter             int
}

func (d *fakeDriver) PollEvents() { d.polls++ }
func (d *fakeDriver) WaitEvents() { d.waits++ }
func (d *fakeDriver) ShouldClose() bool {
	return d.closeAfter > 0 && d.polls+d.waits > d.closeAfter
}
func (d *fakeDriver) Present() error {
	d.presents++
	return nil
}

func TestRunLoopRunsUntilExit(t *testing.T) {
	app := platform.NewApp(null.New())
	driver := &fakeDriver{}

	frames := 0
	err := platform.RunLoop(app, nil, func(app *platform.App, _ any) (platform.FrameState, error) {
		frames++
		switch {
		case frames == 2:
			return platform.FrameStateRunning, errors.New("frame error")
		case frames == 3:
			return platform.FrameStateSkip, nil
		case frames == 5:
			app.Exit()
		}
		return platform.FrameStateRunning, nil
	}, driver)

	assert.NoError(t, err)
	assert.Equal(t, 5, frames)
	assert.Equal(t, 5, driver.polls)
	assert.Equal(t, 3, driver.presents)
	assert.True(t, app.Closed())
}

func TestRunLoopWaitsWhenLazy(t *testing.T) {
	backend := null.New()
	backend.Window().SetLazyLoop(true)
	app := platform.NewApp(backend)
	driver := &fakeDriver{closeAfter: 3}

	frames := 0
	err := platform.RunLoop(app, nil, func(*platform.App, any) (platform.FrameState, error) {
		frames++
		return platform.FrameStateRunning, nil
	}, driver)

	assert.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 4, driver.waits)
	assert.Zero(t, driver.polls)
	assert.True(t, backend.Exited())
}

func TestCursorIconNames(t *testing.T) {
	assert.Equal(t, "default", platform.CursorDefault.String())
	assert.Equal(t, "zoom-out", platform.CursorZoomOut.String())
	assert.Equal(t, "CursorIcon(200)", platform.CursorIcon(200).String())
	assert.Equal(t, platform.CursorDefault, platform.CursorIcon(0))
}
