package null

import "github.com/spaghettifunk/anima-backends/engine/platform"

// Window stores every setting it receives and reports it back.
type Window struct {
	width      int32
	height     int32
	fullscreen bool
	lazy       bool
	cursor     platform.CursorIcon
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) SetSize(width, height int32) {
	w.width = width
	w.height = height
}

func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

func (w *Window) SetFullscreen(enabled bool) {
	w.fullscreen = enabled
}

func (w *Window) IsFullscreen() bool {
	return w.fullscreen
}

func (w *Window) DPI() float64 {
	return 1.0
}

func (w *Window) SetLazyLoop(enabled bool) {
	w.lazy = enabled
}

func (w *Window) LazyLoop() bool {
	return w.lazy
}

func (w *Window) RequestFrame() {}

func (w *Window) SetCursor(cursor platform.CursorIcon) {
	w.cursor = cursor
}

func (w *Window) Cursor() platform.CursorIcon {
	return w.cursor
}
