package null

import (
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
)

// Device accepts every call, hands out increasing ids and logs what it was
// asked to render or release. It never fails.
type Device struct {
	ids core.IDAllocator
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) APIName() string {
	return ""
}

func (d *Device) next() metadata.ResourceID {
	return metadata.ResourceID(d.ids.Next())
}

func (d *Device) CreatePipeline(_, _ []byte, _ []metadata.VertexAttr, _ metadata.PipelineOptions) (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) CreateVertexBuffer(_ []metadata.VertexAttr, _ metadata.VertexStepMode) (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) CreateIndexBuffer() (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) CreateUniformBuffer(_ uint32, _ string) (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) CreateTexture(_ *metadata.TextureInfo) (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) CreateRenderTexture(_ metadata.ResourceID, _ *metadata.TextureInfo) (metadata.ResourceID, error) {
	return d.next(), nil
}

func (d *Device) SetBufferData(_ metadata.ResourceID, _ []byte) {}

func (d *Device) UpdateTexture(_ metadata.ResourceID, _ *metadata.TextureUpdate) error {
	return nil
}

func (d *Device) ReadPixels(_ metadata.ResourceID, _ []byte, _ *metadata.TextureRead) error {
	return nil
}

func (d *Device) Render(commands []metadata.Command, target metadata.ResourceID) {
	for _, cmd := range commands {
		core.LogInfo("render target %d: %T %+v", target, cmd, cmd)
	}
}

func (d *Device) Clean(resources []metadata.Resource) {
	core.LogInfo("clean %v", resources)
}

func (d *Device) SetSize(_, _ int32) {}

func (d *Device) SetDPI(_ float64) {}
