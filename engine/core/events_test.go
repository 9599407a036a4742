package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusFireStopsWhenHandled(t *testing.T) {
	bus := NewEventBus()
	var calls []string

	first, second := "first", "second"
	assert.True(t, bus.Register(EVENT_CODE_KEY_PRESSED, first, func(e Event, _ interface{}, l interface{}) bool {
		calls = append(calls, l.(string))
		return e.Key == KEY_ESCAPE
	}))
	assert.True(t, bus.Register(EVENT_CODE_KEY_PRESSED, second, func(_ Event, _ interface{}, l interface{}) bool {
		calls = append(calls, l.(string))
		return false
	}))

	assert.False(t, bus.Fire(Event{Code: EVENT_CODE_KEY_PRESSED, Key: KEY_A}, nil))
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	assert.True(t, bus.Fire(Event{Code: EVENT_CODE_KEY_PRESSED, Key: KEY_ESCAPE}, nil))
	assert.Equal(t, []string{"first"}, calls)
}

func TestEventBusRejectsDuplicateListener(t *testing.T) {
	bus := NewEventBus()
	noop := func(Event, interface{}, interface{}) bool { return false }
	assert.True(t, bus.Register(EVENT_CODE_RESIZED, "l", noop))
	assert.False(t, bus.Register(EVENT_CODE_RESIZED, "l", noop))
	assert.False(t, bus.Register(EVENT_CODE_RESIZED, "x", nil))
}

func TestEventBusUnregister(t *testing.T) {
	bus := NewEventBus()
	hits := 0
	count := func(Event, interface{}, interface{}) bool { hits++; return false }
	bus.Register(EVENT_CODE_APPLICATION_QUIT, "a", count)
	bus.Register(EVENT_CODE_APPLICATION_QUIT, "b", count)

	assert.True(t, bus.Unregister(EVENT_CODE_APPLICATION_QUIT, "a"))
	assert.False(t, bus.Unregister(EVENT_CODE_APPLICATION_QUIT, "a"))

	bus.Fire(Event{Code: EVENT_CODE_APPLICATION_QUIT}, nil)
	assert.Equal(t, 1, hits)

	bus.Shutdown()
	bus.Fire(Event{Code: EVENT_CODE_APPLICATION_QUIT}, nil)
	assert.Equal(t, 1, hits)
}
