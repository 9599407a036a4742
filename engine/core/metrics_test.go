package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAverageAndFPS(t *testing.T) {
	m := NewMetrics()
	// 60 frames of 20ms each: 1.2 seconds worth.
	for i := 0; i < 60; i++ {
		m.Update(0.020)
	}
	fps, avg := m.Frame()
	assert.InDelta(t, 20.0, avg, 0.0001)
	assert.Equal(t, float64(51), fps)
	assert.Equal(t, avg, m.FrameTime())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3.5), 0, 1))
	assert.Equal(t, float32(0), Clamp(float32(-2), 0, 1))
	assert.Equal(t, 5, Clamp(5, 0, 10))
}
