package renderer

import "github.com/spaghettifunk/anima-backends/engine/renderer/metadata"

// DeviceBackend is implemented by every graphics device of a platform. A
// backend owns its resources; callers only ever hold the ResourceIDs it
// returns, and those ids stay valid until they are passed to Clean.
type DeviceBackend interface {
	// APIName identifies the active GPU API. Empty for the null backend.
	APIName() string

	CreatePipeline(vertexSource, fragmentSource []byte, attrs []metadata.VertexAttr, options metadata.PipelineOptions) (metadata.ResourceID, error)
	CreateVertexBuffer(attrs []metadata.VertexAttr, stepMode metadata.VertexStepMode) (metadata.ResourceID, error)
	CreateIndexBuffer() (metadata.ResourceID, error)
	CreateUniformBuffer(slot uint32, name string) (metadata.ResourceID, error)
	CreateTexture(info *metadata.TextureInfo) (metadata.ResourceID, error)
	CreateRenderTexture(texture metadata.ResourceID, info *metadata.TextureInfo) (metadata.ResourceID, error)

	// SetBufferData uploads data into a buffer. Invalid ids are reported
	// through the backend's own channel (logs), not returned.
	SetBufferData(id metadata.ResourceID, data []byte)
	UpdateTexture(id metadata.ResourceID, opts *metadata.TextureUpdate) error
	// ReadPixels copies a region of a texture or render texture into out.
	// It may stall the GPU pipeline.
	ReadPixels(id metadata.ResourceID, out []byte, opts *metadata.TextureRead) error

	// Render executes commands in order against target, which is either
	// metadata.DefaultFramebuffer or a render texture id.
	Render(commands []metadata.Command, target metadata.ResourceID)
	// Clean releases resources. Unknown or already released ids are ignored.
	Clean(resources []metadata.Resource)

	SetSize(width, height int32)
	SetDPI(scaleFactor float64)
}
