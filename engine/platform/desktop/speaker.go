//go:build !js

package desktop

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// speakerOutput plays the mixer through the system audio device.
type speakerOutput struct {
	buffer time.Duration
}

func (o speakerOutput) Init(sampleRate beep.SampleRate) error {
	return speaker.Init(sampleRate, sampleRate.N(o.buffer))
}

func (o speakerOutput) Play(stream beep.Streamer) {
	speaker.Play(stream)
}
