//go:build !js

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-backends/engine/containers"
	"github.com/spaghettifunk/anima-backends/engine/core"
)

const eventQueueSize = 512

type eventQueue struct {
	queue *containers.RingQueue[core.Event]
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		queue: containers.NewRingQueue[core.Event](eventQueueSize),
	}
}

func (q *eventQueue) push(e core.Event) {
	if err := q.queue.Enqueue(e); err != nil {
		core.LogWarn("dropping event %d: %s", e.Code, err)
	}
}

func (q *eventQueue) drain() []core.Event {
	return q.queue.Drain()
}

func (q *eventQueue) install(win *glfw.Window) {
	win.SetKeyCallback(q.keyCallback)
	win.SetMouseButtonCallback(q.mouseButtonCallback)
	win.SetCursorPosCallback(q.cursorPosCallback)
	win.SetScrollCallback(q.scrollCallback)
	win.SetSizeCallback(q.sizeCallback)
	win.SetContentScaleCallback(q.contentScaleCallback)
	win.SetCloseCallback(q.closeCallback)
}

func (q *eventQueue) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code := core.EVENT_CODE_KEY_PRESSED
	if action == glfw.Release {
		code = core.EVENT_CODE_KEY_RELEASED
	}
	q.push(core.Event{Code: code, Key: translateKey(key)})
}

func (q *eventQueue) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	code := core.EVENT_CODE_BUTTON_PRESSED
	if action == glfw.Release {
		code = core.EVENT_CODE_BUTTON_RELEASED
	}
	q.push(core.Event{Code: code, Button: b})
}

func (q *eventQueue) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	q.push(core.Event{Code: core.EVENT_CODE_MOUSE_MOVED, X: int32(xpos), Y: int32(ypos)})
}

func (q *eventQueue) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	q.push(core.Event{Code: core.EVENT_CODE_MOUSE_WHEEL, Delta: float32(yoff)})
}

func (q *eventQueue) sizeCallback(w *glfw.Window, width, height int) {
	q.push(core.Event{Code: core.EVENT_CODE_RESIZED, Width: int32(width), Height: int32(height)})
}

func (q *eventQueue) contentScaleCallback(w *glfw.Window, x, y float32) {
	q.push(core.Event{Code: core.EVENT_CODE_SCALE_FACTOR, ScaleFactor: float64(x)})
}

func (q *eventQueue) closeCallback(w *glfw.Window) {
	q.push(core.Event{Code: core.EVENT_CODE_APPLICATION_QUIT})
}

var keymap = map[glfw.Key]core.KeyCode{
	glfw.KeyBackspace:    core.KEY_BACKSPACE,
	glfw.KeyEnter:        core.KEY_ENTER,
	glfw.KeyTab:          core.KEY_TAB,
	glfw.KeyPause:        core.KEY_PAUSE,
	glfw.KeyCapsLock:     core.KEY_CAPITAL,
	glfw.KeyEscape:       core.KEY_ESCAPE,
	glfw.KeySpace:        core.KEY_SPACE,
	glfw.KeyPageUp:       core.KEY_PRIOR,
	glfw.KeyPageDown:     core.KEY_NEXT,
	glfw.KeyEnd:          core.KEY_END,
	glfw.KeyHome:         core.KEY_HOME,
	glfw.KeyLeft:         core.KEY_LEFT,
	glfw.KeyUp:           core.KEY_UP,
	glfw.KeyRight:        core.KEY_RIGHT,
	glfw.KeyDown:         core.KEY_DOWN,
	glfw.KeyPrintScreen:  core.KEY_SNAPSHOT,
	glfw.KeyInsert:       core.KEY_INSERT,
	glfw.KeyDelete:       core.KEY_DELETE,
	glfw.KeyLeftSuper:    core.KEY_LWIN,
	glfw.KeyRightSuper:   core.KEY_RWIN,
	glfw.KeyMenu:         core.KEY_APPS,
	glfw.KeyKPMultiply:   core.KEY_MULTIPLY,
	glfw.KeyKPAdd:        core.KEY_ADD,
	glfw.KeyKPSubtract:   core.KEY_SUBTRACT,
	glfw.KeyKPDecimal:    core.KEY_DECIMAL,
	glfw.KeyKPDivide:     core.KEY_DIVIDE,
	glfw.KeyKPEqual:      core.KEY_NUMPAD_EQUAL,
	glfw.KeyNumLock:      core.KEY_NUMLOCK,
	glfw.KeyScrollLock:   core.KEY_SCROLL,
	glfw.KeyLeftShift:    core.KEY_LSHIFT,
	glfw.KeyRightShift:   core.KEY_RSHIFT,
	glfw.KeyLeftControl:  core.KEY_LCONTROL,
	glfw.KeyRightControl: core.KEY_RCONTROL,
	glfw.KeyLeftAlt:      core.KEY_LMENU,
	glfw.KeyRightAlt:     core.KEY_RMENU,
	glfw.KeySemicolon:    core.KEY_SEMICOLON,
	glfw.KeyEqual:        core.KEY_PLUS,
	glfw.KeyComma:        core.KEY_COMMA,
	glfw.KeyMinus:        core.KEY_MINUS,
	glfw.KeyPeriod:       core.KEY_PERIOD,
	glfw.KeySlash:        core.KEY_SLASH,
	glfw.KeyGraveAccent:  core.KEY_GRAVE,
}

func translateKey(key glfw.Key) core.KeyCode {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return core.KEY_A + core.KeyCode(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF24:
		return core.KEY_F1 + core.KeyCode(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return core.KEY_NUMPAD0 + core.KeyCode(key-glfw.KeyKP0)
	}
	if k, ok := keymap[key]; ok {
		return k
	}
	return core.KEY_UNKNOWN
}
