package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// Keyboard key pressed. Uses Event.Key.
	EVENT_CODE_KEY_PRESSED SystemEventCode = 0x02

	// Keyboard key released. Uses Event.Key.
	EVENT_CODE_KEY_RELEASED SystemEventCode = 0x03

	// Mouse button pressed. Uses Event.Button.
	EVENT_CODE_BUTTON_PRESSED SystemEventCode = 0x04

	// Mouse button released. Uses Event.Button.
	EVENT_CODE_BUTTON_RELEASED SystemEventCode = 0x05

	// Mouse moved. Uses Event.X and Event.Y.
	EVENT_CODE_MOUSE_MOVED SystemEventCode = 0x06

	// Mouse wheel. Uses Event.Delta.
	EVENT_CODE_MOUSE_WHEEL SystemEventCode = 0x07

	// Resized/resolution changed from the OS. Uses Event.Width and Event.Height.
	EVENT_CODE_RESIZED SystemEventCode = 0x08

	// Device pixel ratio changed. Uses Event.ScaleFactor.
	EVENT_CODE_SCALE_FACTOR SystemEventCode = 0x09

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

// Event is a platform or application event. Only the fields documented on
// the event code carry data.
type Event struct {
	Code   SystemEventCode
	Key    KeyCode
	Button Button
	X, Y   int32
	Delta  float32

	Width, Height int32
	ScaleFactor   float64
}

// Should return true if handled.
type FnOnEvent func(event Event, sender interface{}, listener interface{}) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventBus dispatches events to the listeners registered for their code.
type EventBus struct {
	mutex      sync.RWMutex
	registered map[SystemEventCode][]*registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[SystemEventCode][]*registeredEvent),
	}
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listeners will not be registered again and will cause this to return false.
 * @param code The event code to listen for.
 * @param listener A listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func (b *EventBus) Register(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if code < 0 || code >= MAX_MESSAGE_CODES || onEvent == nil {
		return false
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	// If at this point, no duplicate was found. Proceed with registration.
	b.registered[code] = append(b.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 */
func (b *EventBus) Unregister(code SystemEventCode, listener interface{}) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	// Not found.
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func (b *EventBus) Fire(event Event, sender interface{}) bool {
	b.mutex.RLock()
	events := append([]*registeredEvent(nil), b.registered[event.Code]...)
	b.mutex.RUnlock()

	for _, e := range events {
		if e.callback(event, sender, e.listener) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// Shutdown drops every registration.
func (b *EventBus) Shutdown() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.registered = make(map[SystemEventCode][]*registeredEvent)
}
