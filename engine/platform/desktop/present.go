//go:build !js

package desktop

import (
	"fmt"
	"image"

	gl21 "github.com/go-gl/gl/v2.1/gl"
	gl33 "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/gpucontext"
)

// presenter copies the CPU framebuffer onto the window's default
// framebuffer using whatever the negotiated GL tier offers.
type presenter interface {
	present(fb *image.RGBA, width, height int) error
	destroy()
}

type glContext struct {
	window    *glfw.Window
	presenter presenter
}

func contextTiers() []gpucontext.Tier[windowRequest, glContext] {
	return []gpucontext.Tier[windowRequest, glContext]{
		{Name: gpucontext.TierOpenGL33, Acquire: acquireGL33},
		{Name: gpucontext.TierOpenGL21, Acquire: acquireGL21},
	}
}

func acquireGL33(req windowRequest, attrs gpucontext.Attributes) (glContext, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := req.create(attrs)
	if err != nil {
		return glContext{}, err
	}
	if err := gl33.Init(); err != nil {
		win.Destroy()
		return glContext{}, err
	}
	logDriverInfo(gl33.GoStr(gl33.GetString(gl33.VERSION)), gl33.GoStr(gl33.GetString(gl33.RENDERER)))
	return glContext{window: win, presenter: newBlitPresenter()}, nil
}

func acquireGL21(req windowRequest, attrs gpucontext.Attributes) (glContext, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := req.create(attrs)
	if err != nil {
		return glContext{}, err
	}
	if err := gl21.Init(); err != nil {
		win.Destroy()
		return glContext{}, err
	}
	logDriverInfo(gl21.GoStr(gl21.GetString(gl21.VERSION)), gl21.GoStr(gl21.GetString(gl21.RENDERER)))
	return glContext{window: win, presenter: &drawPixelsPresenter{}}, nil
}

func logDriverInfo(version, renderer string) {
	core.LogInfo("OpenGL version: %s", version)
	core.LogInfo("OpenGL renderer: %s", renderer)
}

// blitPresenter uploads the frame into a texture attached to a read
// framebuffer and blits it flipped onto the window.
type blitPresenter struct {
	tex    uint32
	fbo    uint32
	width  int
	height int
}

func newBlitPresenter() *blitPresenter {
	p := &blitPresenter{}
	gl33.GenTextures(1, &p.tex)
	gl33.BindTexture(gl33.TEXTURE_2D, p.tex)
	gl33.TexParameteri(gl33.TEXTURE_2D, gl33.TEXTURE_MIN_FILTER, gl33.NEAREST)
	gl33.TexParameteri(gl33.TEXTURE_2D, gl33.TEXTURE_MAG_FILTER, gl33.NEAREST)
	gl33.BindTexture(gl33.TEXTURE_2D, 0)
	gl33.GenFramebuffers(1, &p.fbo)
	return p
}

func (p *blitPresenter) present(fb *image.RGBA, width, height int) error {
	w, h := fb.Bounds().Dx(), fb.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil
	}

	gl33.BindTexture(gl33.TEXTURE_2D, p.tex)
	gl33.PixelStorei(gl33.UNPACK_ROW_LENGTH, int32(fb.Stride/4))
	if w != p.width || h != p.height {
		gl33.TexImage2D(gl33.TEXTURE_2D, 0, gl33.RGBA8, int32(w), int32(h), 0, gl33.RGBA, gl33.UNSIGNED_BYTE, gl33.Ptr(fb.Pix))
		p.width, p.height = w, h

		gl33.BindFramebuffer(gl33.READ_FRAMEBUFFER, p.fbo)
		gl33.FramebufferTexture2D(gl33.READ_FRAMEBUFFER, gl33.COLOR_ATTACHMENT0, gl33.TEXTURE_2D, p.tex, 0)
		if status := gl33.CheckFramebufferStatus(gl33.READ_FRAMEBUFFER); status != gl33.FRAMEBUFFER_COMPLETE {
			return fmt.Errorf("framebuffer incomplete: 0x%X", status)
		}
	} else {
		gl33.TexSubImage2D(gl33.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl33.RGBA, gl33.UNSIGNED_BYTE, gl33.Ptr(fb.Pix))
		gl33.BindFramebuffer(gl33.READ_FRAMEBUFFER, p.fbo)
	}
	gl33.PixelStorei(gl33.UNPACK_ROW_LENGTH, 0)
	gl33.BindTexture(gl33.TEXTURE_2D, 0)

	gl33.BindFramebuffer(gl33.DRAW_FRAMEBUFFER, 0)
	gl33.BlitFramebuffer(0, 0, int32(w), int32(h), 0, int32(height), int32(width), 0, gl33.COLOR_BUFFER_BIT, gl33.NEAREST)
	gl33.BindFramebuffer(gl33.READ_FRAMEBUFFER, 0)

	if e := gl33.GetError(); e != gl33.NO_ERROR {
		return fmt.Errorf("GL error: 0x%X", e)
	}
	return nil
}

func (p *blitPresenter) destroy() {
	gl33.DeleteFramebuffers(1, &p.fbo)
	gl33.DeleteTextures(1, &p.tex)
}

// drawPixelsPresenter writes the frame straight into the back buffer.
type drawPixelsPresenter struct{}

func (p *drawPixelsPresenter) present(fb *image.RGBA, width, height int) error {
	w, h := fb.Bounds().Dx(), fb.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil
	}
	gl21.Viewport(0, 0, int32(width), int32(height))
	gl21.Clear(gl21.COLOR_BUFFER_BIT)
	gl21.PixelStorei(gl21.UNPACK_ROW_LENGTH, int32(fb.Stride/4))
	gl21.WindowPos2i(0, int32(height))
	gl21.PixelZoom(float32(width)/float32(w), -float32(height)/float32(h))
	gl21.DrawPixels(int32(w), int32(h), gl21.RGBA, gl21.UNSIGNED_BYTE, gl21.Ptr(fb.Pix))
	gl21.PixelStorei(gl21.UNPACK_ROW_LENGTH, 0)

	if e := gl21.GetError(); e != gl21.NO_ERROR {
		return fmt.Errorf("GL error: 0x%X", e)
	}
	return nil
}

func (p *drawPixelsPresenter) destroy() {}
