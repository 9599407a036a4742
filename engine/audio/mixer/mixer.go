// Package mixer is an audio.Backend that decodes sources into memory and
// mixes every playing instance into a single beep stream.
package mixer

import (
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
)

const DefaultSampleRate beep.SampleRate = 44100

// Output receives the mixed stream, usually the system speaker.
type Output interface {
	Init(sampleRate beep.SampleRate) error
	Play(stream beep.Streamer)
}

type instance struct {
	source audio.SoundID
	state  audio.InstanceState
	volume float32
	ctrl   *beep.Ctrl
	gain   *effects.Gain
}

// Mixer is safe for use by the main loop while an output goroutine pulls
// samples through Stream.
type Mixer struct {
	mutex  sync.Mutex
	format beep.Format
	mixer  beep.Mixer

	sourceIDs core.IDAllocator
	soundIDs  core.IDAllocator
	sources   map[audio.SoundID]*beep.Buffer
	instances map[audio.SoundID]*instance

	globalVolume float32
}

func New(sampleRate beep.SampleRate) *Mixer {
	return &Mixer{
		format:       beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		sources:      make(map[audio.SoundID]*beep.Buffer),
		instances:    make(map[audio.SoundID]*instance),
		globalVolume: 1.0,
	}
}

func (m *Mixer) SampleRate() beep.SampleRate {
	return m.format.SampleRate
}

// Attach initializes out at the mixer's sample rate and starts streaming
// into it.
func (m *Mixer) Attach(out Output) error {
	if err := out.Init(m.format.SampleRate); err != nil {
		return err
	}
	out.Play(m)
	return nil
}

// Stream implements beep.Streamer. It never drains.
func (m *Mixer) Stream(samples [][2]float64) (n int, ok bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.mixer.Stream(samples)
}

func (m *Mixer) Err() error {
	return nil
}

func (m *Mixer) SetGlobalVolume(volume float32) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.globalVolume = core.Clamp(volume, 0, 1)
	for _, inst := range m.instances {
		m.applyGain(inst)
	}
}

func (m *Mixer) GlobalVolume() float32 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.globalVolume
}

func (m *Mixer) CreateSource(data []byte) (audio.SoundID, error) {
	buffer, err := decode(data, m.format)
	if err != nil {
		return 0, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	id := audio.SoundID(m.sourceIDs.Next())
	m.sources[id] = buffer
	core.LogDebug("audio source %d decoded (%d samples)", id, buffer.Len())
	return id, nil
}

func (m *Mixer) PlaySound(source audio.SoundID, repeat bool) (audio.SoundID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	buffer, ok := m.sources[source]
	if !ok {
		return 0, errInvalidSource(source)
	}

	var stream beep.Streamer = buffer.Streamer(0, buffer.Len())
	if repeat {
		stream = beep.Loop(-1, buffer.Streamer(0, buffer.Len()))
	}

	inst := &instance{
		source: source,
		state:  audio.InstanceStatePlaying,
		volume: 1.0,
	}
	inst.gain = &effects.Gain{Streamer: stream}
	inst.ctrl = &beep.Ctrl{Streamer: inst.gain}
	m.applyGain(inst)

	id := audio.SoundID(m.soundIDs.Next())
	m.instances[id] = inst
	// The callback runs inside Stream, which already holds the mutex.
	m.mixer.Add(beep.Seq(inst.ctrl, beep.Callback(func() {
		inst.state = inst.state.Stop()
	})))
	return id, nil
}

func (m *Mixer) Pause(sound audio.SoundID) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if inst, ok := m.instances[sound]; ok {
		inst.state = inst.state.Pause()
		inst.ctrl.Paused = inst.state.IsPaused()
	}
}

func (m *Mixer) Resume(sound audio.SoundID) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if inst, ok := m.instances[sound]; ok {
		inst.state = inst.state.Resume()
		inst.ctrl.Paused = inst.state.IsPaused()
	}
}

func (m *Mixer) Stop(sound audio.SoundID) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if inst, ok := m.instances[sound]; ok {
		stop(inst)
	}
}

func (m *Mixer) IsStopped(sound audio.SoundID) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	inst, ok := m.instances[sound]
	return !ok || inst.state.IsStopped()
}

func (m *Mixer) IsPaused(sound audio.SoundID) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	inst, ok := m.instances[sound]
	return ok && inst.state.IsPaused()
}

func (m *Mixer) SetVolume(sound audio.SoundID, volume float32) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if inst, ok := m.instances[sound]; ok {
		inst.volume = core.Clamp(volume, 0, 1)
		m.applyGain(inst)
	}
}

func (m *Mixer) Volume(sound audio.SoundID) float32 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if inst, ok := m.instances[sound]; ok {
		return inst.volume
	}
	return 0
}

func (m *Mixer) Clean(sources, sounds []audio.SoundID) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, id := range sounds {
		if inst, ok := m.instances[id]; ok {
			stop(inst)
			delete(m.instances, id)
		}
	}
	for _, src := range sources {
		if _, ok := m.sources[src]; !ok {
			continue
		}
		delete(m.sources, src)
		for id, inst := range m.instances {
			if inst.source == src {
				stop(inst)
				delete(m.instances, id)
			}
		}
	}
}

// Playing returns how many streams are still queued in the mixer.
func (m *Mixer) Playing() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.mixer.Len()
}

// applyGain must be called with the mutex held. effects.Gain scales by
// 1+Gain, so unity volume is a gain of 0.
func (m *Mixer) applyGain(inst *instance) {
	inst.gain.Gain = float64(inst.volume*m.globalVolume) - 1
}

func stop(inst *instance) {
	inst.state = inst.state.Stop()
	inst.ctrl.Paused = false
	inst.ctrl.Streamer = nil
}
