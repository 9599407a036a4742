//go:build !js

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-backends/engine/platform"
)

// Window is the glfw implementation of platform.WindowBackend. Before the
// native window exists every setting is only stored and applied on attach.
type Window struct {
	win *glfw.Window

	width      int32
	height     int32
	fullscreen bool
	lazy       bool
	cursor     platform.CursorIcon
	cursors    map[glfw.StandardCursor]*glfw.Cursor

	// windowed geometry to restore when leaving fullscreen
	restoreX, restoreY, restoreW, restoreH int
}

func newWindow() *Window {
	return &Window{
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
	}
}

func (w *Window) attach(win *glfw.Window) {
	w.win = win
	if w.width > 0 && w.height > 0 {
		win.SetSize(int(w.width), int(w.height))
	}
	w.SetFullscreen(w.fullscreen)
	w.SetCursor(w.cursor)
}

func (w *Window) detach() {
	for shape, c := range w.cursors {
		c.Destroy()
		delete(w.cursors, shape)
	}
	w.win = nil
}

func (w *Window) SetSize(width, height int32) {
	w.width, w.height = width, height
	if w.win == nil || width <= 0 || height <= 0 {
		return
	}
	w.win.SetSize(int(width), int(height))
}

func (w *Window) Size() (int32, int32) {
	if w.win == nil {
		return w.width, w.height
	}
	width, height := w.win.GetSize()
	return int32(width), int32(height)
}

func (w *Window) SetFullscreen(enabled bool) {
	w.fullscreen = enabled
	if w.win == nil || enabled == w.IsFullscreen() {
		return
	}
	if enabled {
		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			return
		}
		w.restoreX, w.restoreY = w.win.GetPos()
		w.restoreW, w.restoreH = w.win.GetSize()
		mode := monitor.GetVideoMode()
		w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}
	w.win.SetMonitor(nil, w.restoreX, w.restoreY, w.restoreW, w.restoreH, 0)
}

func (w *Window) IsFullscreen() bool {
	if w.win == nil {
		return w.fullscreen
	}
	return w.win.GetMonitor() != nil
}

func (w *Window) DPI() float64 {
	if w.win == nil {
		return 1.0
	}
	x, _ := w.win.GetContentScale()
	if x <= 0 {
		return 1.0
	}
	return float64(x)
}

func (w *Window) SetLazyLoop(enabled bool) {
	w.lazy = enabled
}

func (w *Window) LazyLoop() bool {
	return w.lazy
}

func (w *Window) RequestFrame() {
	if w.win != nil {
		glfw.PostEmptyEvent()
	}
}

func (w *Window) SetCursor(cursor platform.CursorIcon) {
	w.cursor = cursor
	if w.win == nil {
		return
	}
	if cursor == platform.CursorNone {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	shape := standardCursor(cursor)
	c, ok := w.cursors[shape]
	if !ok {
		c = glfw.CreateStandardCursor(shape)
		w.cursors[shape] = c
	}
	w.win.SetCursor(c)
}

func (w *Window) Cursor() platform.CursorIcon {
	return w.cursor
}

// standardCursor maps an icon to the closest of the six shapes glfw offers.
func standardCursor(cursor platform.CursorIcon) glfw.StandardCursor {
	switch cursor {
	case platform.CursorText, platform.CursorVerticalText:
		return glfw.IBeamCursor
	case platform.CursorCrosshair, platform.CursorCell:
		return glfw.CrosshairCursor
	case platform.CursorPointingHand, platform.CursorGrab, platform.CursorGrabbing, platform.CursorMove, platform.CursorAllScroll:
		return glfw.HandCursor
	case platform.CursorEResize, platform.CursorWResize, platform.CursorEwResize, platform.CursorColResize:
		return glfw.HResizeCursor
	case platform.CursorNResize, platform.CursorSResize, platform.CursorNsResize, platform.CursorRowResize:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}
