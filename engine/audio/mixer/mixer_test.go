package mixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate beep.SampleRate = 8000

// tone encodes n stereo samples of a constant level as a 16 bit WAV file.
func tone(t *testing.T, n int, level float64) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{level, level}
		}
		return len(samples), true
	})
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(n, constant), format))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func pull(m *Mixer, n int) [][2]float64 {
	samples := make([][2]float64, n)
	m.Stream(samples)
	return samples
}

func TestCreateSourceRejectsUnknownData(t *testing.T) {
	m := New(testRate)

	_, err := m.CreateSource([]byte("definitely not audio"))
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	truncated := []byte("RIFF\x00\x00\x00\x00WAVE")
	_, err = m.CreateSource(truncated)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	_, err = m.PlaySound(1, false)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
}

func TestPlaySoundMixesWithVolume(t *testing.T) {
	m := New(testRate)
	src, err := m.CreateSource(tone(t, 100, 0.5))
	require.NoError(t, err)
	assert.Equal(t, audio.SoundID(1), src)

	snd, err := m.PlaySound(src, false)
	require.NoError(t, err)
	assert.Equal(t, audio.SoundID(1), snd)
	assert.False(t, m.IsStopped(snd))

	unity := pull(m, 10)[9][0]
	require.Greater(t, unity, 0.1)

	m.SetVolume(snd, 0.5)
	assert.InDelta(t, unity*0.5, pull(m, 10)[0][0], 0.001)

	m.SetGlobalVolume(0.5)
	assert.InDelta(t, unity*0.25, pull(m, 10)[0][1], 0.001)

	m.SetVolume(snd, 7)
	assert.Equal(t, float32(1), m.Volume(snd))
}

func TestPauseResumeAndCompletion(t *testing.T) {
	m := New(testRate)
	src, err := m.CreateSource(tone(t, 100, 0.5))
	require.NoError(t, err)
	snd, err := m.PlaySound(src, false)
	require.NoError(t, err)

	m.Pause(snd)
	assert.True(t, m.IsPaused(snd))
	assert.Equal(t, [2]float64{}, pull(m, 50)[49])

	m.Resume(snd)
	assert.False(t, m.IsPaused(snd))

	pull(m, 150)
	assert.True(t, m.IsStopped(snd))

	// the mixer drops a finished stream on the next pull
	assert.Equal(t, 1, m.Playing())
	pull(m, 1)
	assert.Equal(t, 0, m.Playing())

	m.Resume(snd)
	assert.True(t, m.IsStopped(snd))
}

func TestRepeatingSoundNeverStopsByItself(t *testing.T) {
	m := New(testRate)
	src, err := m.CreateSource(tone(t, 20, 0.5))
	require.NoError(t, err)
	snd, err := m.PlaySound(src, true)
	require.NoError(t, err)

	samples := pull(m, 300)
	assert.False(t, m.IsStopped(snd))
	require.Greater(t, samples[0][0], 0.1)
	assert.InDelta(t, samples[0][0], samples[299][0], 0.001)

	m.Stop(snd)
	assert.True(t, m.IsStopped(snd))
	pull(m, 1)
	assert.Equal(t, 0, m.Playing())
}

func TestCleanSourceStopsInstances(t *testing.T) {
	m := New(testRate)
	src, err := m.CreateSource(tone(t, 100, 0.5))
	require.NoError(t, err)
	a, err := m.PlaySound(src, true)
	require.NoError(t, err)
	b, err := m.PlaySound(src, false)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	m.Clean([]audio.SoundID{src}, nil)
	assert.True(t, m.IsStopped(a))
	assert.True(t, m.IsStopped(b))
	assert.Equal(t, float32(0), m.Volume(a))

	_, err = m.PlaySound(src, false)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	assert.NotPanics(t, func() { m.Clean([]audio.SoundID{src}, []audio.SoundID{a, 99}) })
}

type fakeOutput struct {
	rate    beep.SampleRate
	streams []beep.Streamer
}

func (f *fakeOutput) Init(rate beep.SampleRate) error {
	f.rate = rate
	return nil
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.streams = append(f.streams, s)
}

func TestAttachStreamsIntoOutput(t *testing.T) {
	m := New(testRate)
	out := &fakeOutput{}
	require.NoError(t, m.Attach(out))
	assert.Equal(t, testRate, out.rate)
	require.Len(t, out.streams, 1)

	n, ok := out.streams[0].Stream(make([][2]float64, 16))
	assert.Equal(t, 16, n)
	assert.True(t, ok)
	assert.NoError(t, m.Err())
}
