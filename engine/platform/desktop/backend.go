//go:build !js

// Package desktop is the glfw platform. Frames are rasterized by the
// software device and presented through the best OpenGL tier the driver
// offers.
package desktop

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/faiface/beep"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/audio/mixer"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/gpucontext"
	"github.com/spaghettifunk/anima-backends/engine/platform"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
	"github.com/spaghettifunk/anima-backends/engine/renderer/software"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// AudioOptions configures the output device used by AudioBackend.
type AudioOptions struct {
	SampleRate int
	Volume     float32
	Buffer     time.Duration
}

type Backend struct {
	window    *Window
	events    *eventQueue
	context   glContext
	tier      string
	device    *software.Device
	audioOpts AudioOptions
	startTime float64
}

func New(audioOpts AudioOptions) *Backend {
	return &Backend{
		window:    newWindow(),
		events:    newEventQueue(),
		audioOpts: audioOpts,
	}
}

// windowRequest is the surface the context tiers are negotiated for.
type windowRequest struct {
	cfg platform.WindowConfig
}

func (r windowRequest) create(attrs gpucontext.Attributes) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(r.cfg.Resizable))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(attrs.Alpha))
	glfw.WindowHint(glfw.StencilBits, 8)
	if attrs.Antialias {
		glfw.WindowHint(glfw.Samples, 4)
	}

	win, err := glfw.CreateWindow(int(r.cfg.Width), int(r.cfg.Height), r.cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	return win, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (b *Backend) Initialize(cfg platform.WindowConfig) (platform.RunFn, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	ctx, tier, err := gpucontext.Negotiate(windowRequest{cfg: cfg}, cfg.Antialias, cfg.Transparent, contextTiers()...)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	b.context = ctx
	b.tier = tier

	win := ctx.window
	win.SetSizeLimits(sizeLimit(cfg.MinWidth), sizeLimit(cfg.MinHeight), sizeLimit(cfg.MaxWidth), sizeLimit(cfg.MaxHeight))
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	b.events.install(win)

	b.window.width, b.window.height = cfg.Width, cfg.Height
	b.window.fullscreen = cfg.Fullscreen
	b.window.SetLazyLoop(cfg.LazyLoop)
	b.window.attach(win)
	win.Show()

	b.startTime = glfw.GetTime()
	b.syncDevice()
	core.LogInfo("window %q created with %s", cfg.Title, tier)

	return b.run, nil
}

func sizeLimit(v int32) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return int(v)
}

func (b *Backend) run(app *platform.App, state any, frame platform.FrameFn) error {
	defer b.shutdown()
	return platform.RunLoop(app, state, frame, b)
}

func (b *Backend) shutdown() {
	if b.context.presenter != nil {
		b.context.presenter.destroy()
	}
	b.window.detach()
	if b.context.window != nil {
		b.context.window.Destroy()
	}
	glfw.Terminate()
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) WaitEvents() {
	glfw.WaitEvents()
}

func (b *Backend) ShouldClose() bool {
	return b.context.window.ShouldClose()
}

func (b *Backend) Present() error {
	if b.device == nil {
		return nil
	}
	width, height := b.context.window.GetFramebufferSize()
	if err := b.context.presenter.present(b.device.Framebuffer(), width, height); err != nil {
		return err
	}
	b.context.window.SwapBuffers()
	return nil
}

func (b *Backend) Window() platform.WindowBackend {
	return b.window
}

func (b *Backend) Events() []core.Event {
	return b.events.drain()
}

// Exit may be called from any goroutine. The empty event wakes a lazy loop
// blocked in WaitEvents.
func (b *Backend) Exit() {
	if b.context.window != nil {
		b.context.window.SetShouldClose(true)
		glfw.PostEmptyEvent()
	}
}

func (b *Backend) SystemTimestamp() uint64 {
	if b.context.window == nil {
		return 0
	}
	return uint64((glfw.GetTime() - b.startTime) * 1000)
}

func (b *Backend) OpenLink(url string, newTab bool) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		core.LogError("failed to open %s: %s", url, err)
	}
}

// GraphicsBackend returns a software device sized to the window. The most
// recently returned device is the one presented every frame.
func (b *Backend) GraphicsBackend() renderer.DeviceBackend {
	b.device = software.New()
	b.syncDevice()
	return &device{Device: b.device, backend: b}
}

// syncDevice applies the window's size and content scale to the presented
// device. Devices handed out before Initialize only see the configured size.
func (b *Backend) syncDevice() {
	if b.device == nil {
		return
	}
	b.device.SetDPI(b.window.DPI())
	b.device.SetSize(b.window.Size())
}

// AudioBackend returns a mixer playing through the speaker. Without an
// audio device the mixer still works, it is just never heard.
func (b *Backend) AudioBackend() *audio.Shared {
	rate := beep.SampleRate(b.audioOpts.SampleRate)
	if rate <= 0 {
		rate = mixer.DefaultSampleRate
	}
	buffer := b.audioOpts.Buffer
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	m := mixer.New(rate)
	m.SetGlobalVolume(b.audioOpts.Volume)
	if err := m.Attach(speakerOutput{buffer: buffer}); err != nil {
		core.LogWarn("audio output unavailable: %s", err)
	}
	return audio.NewShared(m)
}

// device reports the negotiated GL tier as its API name. The tier is only
// known once Initialize ran, so it is read from the backend on every call.
type device struct {
	*software.Device
	backend *Backend
}

func (d *device) APIName() string {
	return d.backend.tier
}
