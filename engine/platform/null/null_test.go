package null

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ platform.System        = (*Backend)(nil)
	_ platform.WindowBackend = (*Window)(nil)
	_ renderer.DeviceBackend = (*Device)(nil)
	_ audio.Backend          = (*Audio)(nil)
)

func TestDeviceIDsStartAtOne(t *testing.T) {
	d := NewDevice()
	assert.Equal(t, "", d.APIName())

	vb, err := d.CreateVertexBuffer(nil, metadata.VertexStepModeVertex)
	require.NoError(t, err)
	ib, err := d.CreateIndexBuffer()
	require.NoError(t, err)
	tex, err := d.CreateTexture(&metadata.TextureInfo{})
	require.NoError(t, err)

	assert.Equal(t, metadata.ResourceID(1), vb)
	assert.Equal(t, metadata.ResourceID(2), ib)
	assert.Equal(t, metadata.ResourceID(3), tex)
}

func TestDeviceIDsAreStrictlyIncreasing(t *testing.T) {
	d := NewDevice()
	last := metadata.InvalidID
	for i := 0; i < 100; i++ {
		var id metadata.ResourceID
		var err error
		switch i % 4 {
		case 0:
			id, err = d.CreatePipeline(nil, nil, nil, metadata.DefaultPipelineOptions())
		case 1:
			id, err = d.CreateUniformBuffer(0, "")
		case 2:
			id, err = d.CreateRenderTexture(last, nil)
		default:
			id, err = d.CreateTexture(nil)
		}
		require.NoError(t, err)
		assert.Greater(t, uint64(id), uint64(last))
		last = id
	}
}

func TestDeviceNeverFails(t *testing.T) {
	var logs bytes.Buffer
	core.SetLogOutput(&logs)

	d := NewDevice()
	id, _ := d.CreateIndexBuffer()
	d.SetBufferData(99, []byte{1, 2, 3})
	assert.NoError(t, d.UpdateTexture(99, nil))
	assert.NoError(t, d.ReadPixels(99, nil, nil))

	batch := []metadata.Resource{{Kind: metadata.ResourceKindBuffer, ID: id}}
	assert.NotPanics(t, func() {
		d.Clean(batch)
		d.Clean(batch)
	})
	d.Render([]metadata.Command{metadata.Begin{}, metadata.End{}}, metadata.DefaultFramebuffer)

	assert.Contains(t, logs.String(), "Buffer(1)")
	assert.Contains(t, logs.String(), "metadata.Begin")
}

func TestWindowReadYourWrites(t *testing.T) {
	w := NewWindow()
	assert.False(t, w.LazyLoop())
	assert.Equal(t, platform.CursorDefault, w.Cursor())
	assert.Equal(t, 1.0, w.DPI())

	w.SetLazyLoop(true)
	assert.True(t, w.LazyLoop())
	w.SetFullscreen(true)
	assert.True(t, w.IsFullscreen())
	w.SetSize(-5, 1<<30)
	width, height := w.Size()
	assert.Equal(t, int32(-5), width)
	assert.Equal(t, int32(1<<30), height)
	w.SetCursor(platform.CursorZoomOut)
	assert.Equal(t, platform.CursorZoomOut, w.Cursor())
	assert.NotPanics(t, w.RequestFrame)
}

func TestAudioUnknownIDs(t *testing.T) {
	a := NewAudio()
	assert.True(t, a.IsStopped(42))
	assert.False(t, a.IsPaused(42))
	assert.Equal(t, float32(0), a.Volume(42))
	assert.NotPanics(t, func() {
		a.Pause(42)
		a.Resume(42)
		a.Stop(42)
		a.SetVolume(42, 0.3)
	})
}

func TestAudioSeparateCounters(t *testing.T) {
	a := NewAudio()
	src, err := a.CreateSource(nil)
	require.NoError(t, err)
	snd, err := a.PlaySound(src, true)
	require.NoError(t, err)
	other, err := a.PlaySound(777, false)
	require.NoError(t, err)

	assert.Equal(t, audio.SoundID(1), src)
	assert.Equal(t, audio.SoundID(1), snd)
	assert.Equal(t, audio.SoundID(2), other)
}

func TestAudioInstanceLifecycle(t *testing.T) {
	a := NewAudio()
	a.SetGlobalVolume(3.5)
	assert.Equal(t, float32(3.5), a.GlobalVolume())

	snd, _ := a.PlaySound(1, false)
	assert.False(t, a.IsStopped(snd))
	assert.Equal(t, float32(1), a.Volume(snd))

	a.Pause(snd)
	assert.True(t, a.IsPaused(snd))
	a.Resume(snd)
	assert.False(t, a.IsPaused(snd))
	a.Stop(snd)
	assert.True(t, a.IsStopped(snd))
	a.Resume(snd)
	assert.True(t, a.IsStopped(snd))

	a.Clean([]audio.SoundID{1}, []audio.SoundID{snd})
	assert.NotPanics(t, func() { a.Clean([]audio.SoundID{1}, []audio.SoundID{snd, 5}) })
	assert.True(t, a.IsStopped(snd))
}

func TestAudioCleanSourceStopsItsInstances(t *testing.T) {
	a := NewAudio()
	src, _ := a.CreateSource(nil)
	other, _ := a.CreateSource(nil)
	looping, _ := a.PlaySound(src, true)
	once, _ := a.PlaySound(src, false)
	kept, _ := a.PlaySound(other, false)

	a.Clean([]audio.SoundID{src}, nil)
	assert.True(t, a.IsStopped(looping))
	assert.True(t, a.IsStopped(once))
	assert.Equal(t, float32(0), a.Volume(looping))
	assert.False(t, a.IsStopped(kept))
}

func TestExitFromAnotherGoroutine(t *testing.T) {
	b := New()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Exit()
		}()
	}
	_ = b.Exited()
	wg.Wait()
	assert.True(t, b.Exited())
}

func TestInitializeAppliesConfig(t *testing.T) {
	b := New()
	cfg := platform.DefaultWindowConfig()
	cfg.Width, cfg.Height = 320, 200
	cfg.Fullscreen = true
	cfg.LazyLoop = true

	run, err := b.Initialize(cfg)
	require.NoError(t, err)
	require.NotNil(t, run)

	w, h := b.Window().Size()
	assert.Equal(t, int32(320), w)
	assert.Equal(t, int32(200), h)
	assert.True(t, b.Window().IsFullscreen())
	assert.True(t, b.Window().LazyLoop())
}

func TestRunCallsFrameOnceAndSwallowsErrors(t *testing.T) {
	calls := 0
	err := platform.Run(New(), platform.DefaultWindowConfig(), "state", func(app *platform.App, state string) (platform.FrameState, error) {
		calls++
		assert.Equal(t, "state", state)
		return platform.FrameStateRunning, errors.New("boom")
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFactoriesReturnFreshInstances(t *testing.T) {
	b := New()
	d1, d2 := b.GraphicsBackend(), b.GraphicsBackend()
	id1, _ := d1.CreateIndexBuffer()
	id2, _ := d2.CreateIndexBuffer()
	assert.Equal(t, id1, id2)

	a1, a2 := b.AudioBackend(), b.AudioBackend()
	assert.NotSame(t, a1, a2)

	app := platform.NewApp(b)
	app.Exit()
	assert.True(t, app.Closed())
	assert.True(t, b.Exited())
	assert.Nil(t, b.Events())
	assert.Equal(t, uint64(0), b.SystemTimestamp())
}
