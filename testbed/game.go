package testbed

import (
	"encoding/binary"
	"math"

	"github.com/spaghettifunk/anima-backends/engine"
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
)

const vertexShader = `#version 330 core
layout(location = 0) in vec2 a_pos;
layout(location = 1) in vec2 a_uv;
out vec2 v_uv;
void main() {
    v_uv = a_uv;
    gl_Position = vec4(a_pos, 0.0, 1.0);
}`

const fragmentShader = `#version 330 core
in vec2 v_uv;
uniform sampler2D u_texture;
out vec4 color;
void main() {
    color = texture(u_texture, v_uv);
}`

var quadAttrs = []metadata.VertexAttr{
	{Location: 0, Format: metadata.VertexFormatFloat32x2},
	{Location: 1, Format: metadata.VertexFormatFloat32x2},
}

type TestGame struct {
	*engine.Game
}

type gameState struct {
	renderer *renderer.Renderer
	audio    *audio.Shared

	pipeline metadata.ResourceID
	vertices metadata.ResourceID
	indices  metadata.ResourceID
	uniforms metadata.ResourceID
	texture  metadata.ResourceID

	soundData []byte
	source    audio.SoundID
	sound     audio.SoundID

	clearColor metadata.Color
	elapsed    float64
	frames     uint64

	width  int32
	height int32
}

// NewTestGame builds the demo game. soundData, when present, is looped for
// as long as the game runs.
func NewTestGame(settings config.AppConfig, soundData []byte) (*TestGame, error) {
	c := settings.Graphics.ClearColor
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:     "Anima Backends Testbed",
				Settings: settings,
			},
			State: &gameState{
				soundData:  soundData,
				clearColor: metadata.Color{R: c[0], G: c[1], B: c[2], A: c[3]},
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize(r *renderer.Renderer, a *audio.Shared) error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.state()
	state.renderer = r
	state.audio = a

	var err error
	if state.pipeline, err = r.CreatePipeline([]byte(vertexShader), []byte(fragmentShader), quadAttrs, metadata.PipelineOptions{
		ColorBlend: &metadata.BlendModeNormal,
	}); err != nil {
		return err
	}
	if state.vertices, err = r.CreateVertexBuffer(quadAttrs, metadata.VertexStepModeVertex); err != nil {
		return err
	}
	r.SetBufferData(state.vertices, float32Bytes(
		-0.5, -0.5, 0, 1,
		0.5, -0.5, 1, 1,
		0.5, 0.5, 1, 0,
		-0.5, 0.5, 0, 0,
	))
	if state.indices, err = r.CreateIndexBuffer(); err != nil {
		return err
	}
	r.SetBufferData(state.indices, uint32Bytes(0, 1, 2, 0, 2, 3))
	if state.uniforms, err = r.CreateUniformBuffer(0, "Locals"); err != nil {
		return err
	}
	if state.texture, err = r.CreateTexture(&metadata.TextureInfo{
		Width:     2,
		Height:    2,
		Format:    metadata.TextureFormatRGBA32,
		MinFilter: metadata.TextureFilterNearest,
		MagFilter: metadata.TextureFilterNearest,
		Bytes: []byte{
			255, 255, 255, 255, 0, 0, 0, 255,
			0, 0, 0, 255, 255, 255, 255, 255,
		},
	}); err != nil {
		return err
	}

	if len(state.soundData) > 0 {
		if state.source, err = a.CreateSource(state.soundData); err != nil {
			core.LogWarn("sound disabled: %s", err)
			return nil
		}
		if state.sound, err = a.PlaySound(state.source, true); err != nil {
			core.LogWarn("sound disabled: %s", err)
		}
	}
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.state()
	state.elapsed += deltaTime
	state.frames++

	pulse := float32(0.5 + 0.5*math.Sin(state.elapsed))
	state.clearColor.G = pulse * 0.3
	return nil
}

func (g *TestGame) Render(r *renderer.Renderer, deltaTime float64) error {
	state := g.state()
	color := state.clearColor
	r.Render([]metadata.Command{
		metadata.Begin{Clear: metadata.ClearOptions{Color: &color}},
		metadata.Viewport{Width: float32(state.width), Height: float32(state.height)},
		metadata.Pipeline{ID: state.pipeline, Options: metadata.DefaultPipelineOptions()},
		metadata.BindBuffer{ID: state.vertices},
		metadata.BindBuffer{ID: state.indices},
		metadata.BindBuffer{ID: state.uniforms},
		metadata.BindTexture{ID: state.texture, Slot: 0, Location: 0},
		metadata.Draw{Primitive: metadata.DrawPrimitiveTriangles, Count: 6},
		metadata.End{},
	}, metadata.DefaultFramebuffer)
	return nil
}

func (g *TestGame) OnResize(width int32, height int32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.state()
	if state.renderer != nil {
		state.renderer.Release(
			metadata.Resource{Kind: metadata.ResourceKindPipeline, ID: state.pipeline},
			metadata.Resource{Kind: metadata.ResourceKindBuffer, ID: state.vertices},
			metadata.Resource{Kind: metadata.ResourceKindBuffer, ID: state.indices},
			metadata.Resource{Kind: metadata.ResourceKindBuffer, ID: state.uniforms},
			metadata.Resource{Kind: metadata.ResourceKindTexture, ID: state.texture},
		)
	}
	if state.audio != nil && state.source != 0 {
		state.audio.Do(func(b audio.Backend) {
			b.Clean([]audio.SoundID{state.source}, []audio.SoundID{state.sound})
		})
	}
	core.LogInfo("testbed ran %d frames", state.frames)
	return nil
}

func float32Bytes(values ...float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

func uint32Bytes(values ...uint32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	return out
}
