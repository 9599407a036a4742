package renderer

import (
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
)

// Renderer is the front-end the application core talks to. It forwards to a
// DeviceBackend and batches resource releases so the backend sees a single
// Clean call per frame.
type Renderer struct {
	backend DeviceBackend
	pending []metadata.Resource
}

func New(backend DeviceBackend) *Renderer {
	return &Renderer{
		backend: backend,
	}
}

// Backend returns the device this renderer drives.
func (r *Renderer) Backend() DeviceBackend {
	return r.backend
}

func (r *Renderer) APIName() string {
	return r.backend.APIName()
}

func (r *Renderer) CreatePipeline(vertexSource, fragmentSource []byte, attrs []metadata.VertexAttr, options metadata.PipelineOptions) (metadata.ResourceID, error) {
	id, err := r.backend.CreatePipeline(vertexSource, fragmentSource, attrs, options)
	if err != nil {
		core.LogError("failed to create pipeline: %s", err)
		return metadata.InvalidID, err
	}
	return id, nil
}

func (r *Renderer) CreateVertexBuffer(attrs []metadata.VertexAttr, stepMode metadata.VertexStepMode) (metadata.ResourceID, error) {
	return r.backend.CreateVertexBuffer(attrs, stepMode)
}

func (r *Renderer) CreateIndexBuffer() (metadata.ResourceID, error) {
	return r.backend.CreateIndexBuffer()
}

func (r *Renderer) CreateUniformBuffer(slot uint32, name string) (metadata.ResourceID, error) {
	return r.backend.CreateUniformBuffer(slot, name)
}

func (r *Renderer) CreateTexture(info *metadata.TextureInfo) (metadata.ResourceID, error) {
	id, err := r.backend.CreateTexture(info)
	if err != nil {
		core.LogError("failed to create texture: %s", err)
		return metadata.InvalidID, err
	}
	return id, nil
}

func (r *Renderer) CreateRenderTexture(texture metadata.ResourceID, info *metadata.TextureInfo) (metadata.ResourceID, error) {
	return r.backend.CreateRenderTexture(texture, info)
}

func (r *Renderer) SetBufferData(id metadata.ResourceID, data []byte) {
	r.backend.SetBufferData(id, data)
}

func (r *Renderer) UpdateTexture(id metadata.ResourceID, opts *metadata.TextureUpdate) error {
	return r.backend.UpdateTexture(id, opts)
}

func (r *Renderer) ReadPixels(id metadata.ResourceID, out []byte, opts *metadata.TextureRead) error {
	return r.backend.ReadPixels(id, out, opts)
}

func (r *Renderer) Render(commands []metadata.Command, target metadata.ResourceID) {
	r.backend.Render(commands, target)
}

func (r *Renderer) OnResize(width, height int32) {
	r.backend.SetSize(width, height)
}

func (r *Renderer) OnScaleFactor(scaleFactor float64) {
	r.backend.SetDPI(scaleFactor)
}

// Release queues a resource for cleanup on the next Flush.
func (r *Renderer) Release(resources ...metadata.Resource) {
	r.pending = append(r.pending, resources...)
}

// Pending returns how many releases are waiting for the next Flush.
func (r *Renderer) Pending() int {
	return len(r.pending)
}

// Flush hands every queued release to the backend in one batch.
func (r *Renderer) Flush() {
	if len(r.pending) == 0 {
		return
	}
	batch := r.pending
	r.pending = nil
	r.backend.Clean(batch)
}
