package platform

import "fmt"

// WindowBackend controls the host window. Every operation is total: values
// a platform cannot honor are stored or ignored, never rejected.
type WindowBackend interface {
	SetSize(width, height int32)
	Size() (int32, int32)

	SetFullscreen(enabled bool)
	IsFullscreen() bool

	// DPI returns the scale factor between logical and physical pixels.
	DPI() float64

	// SetLazyLoop makes the main loop wait for events instead of spinning.
	SetLazyLoop(enabled bool)
	LazyLoop() bool
	// RequestFrame wakes a lazy loop for one more frame.
	RequestFrame()

	SetCursor(cursor CursorIcon)
	Cursor() CursorIcon
}

type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorContextMenu
	CursorHelp
	CursorPointingHand
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
)

var cursorNames = [...]string{
	CursorDefault:      "default",
	CursorNone:         "none",
	CursorContextMenu:  "context-menu",
	CursorHelp:         "help",
	CursorPointingHand: "pointer",
	CursorProgress:     "progress",
	CursorWait:         "wait",
	CursorCell:         "cell",
	CursorCrosshair:    "crosshair",
	CursorText:         "text",
	CursorVerticalText: "vertical-text",
	CursorAlias:        "alias",
	CursorCopy:         "copy",
	CursorMove:         "move",
	CursorNoDrop:       "no-drop",
	CursorNotAllowed:   "not-allowed",
	CursorGrab:         "grab",
	CursorGrabbing:     "grabbing",
	CursorEResize:      "e-resize",
	CursorNResize:      "n-resize",
	CursorNeResize:     "ne-resize",
	CursorNwResize:     "nw-resize",
	CursorSResize:      "s-resize",
	CursorSeResize:     "se-resize",
	CursorSwResize:     "sw-resize",
	CursorWResize:      "w-resize",
	CursorEwResize:     "ew-resize",
	CursorNsResize:     "ns-resize",
	CursorNeswResize:   "nesw-resize",
	CursorNwseResize:   "nwse-resize",
	CursorColResize:    "col-resize",
	CursorRowResize:    "row-resize",
	CursorAllScroll:    "all-scroll",
	CursorZoomIn:       "zoom-in",
	CursorZoomOut:      "zoom-out",
}

// String returns the CSS name of the cursor.
func (c CursorIcon) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("CursorIcon(%d)", uint8(c))
}
