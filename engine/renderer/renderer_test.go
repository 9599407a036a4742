package renderer

import (
	"testing"

	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-backends/engine/renderer/software"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cleanRecorder struct {
	*software.Device
	batches [][]metadata.Resource
}

func (c *cleanRecorder) Clean(resources []metadata.Resource) {
	c.batches = append(c.batches, resources)
	c.Device.Clean(resources)
}

func TestRendererFlushBatchesReleases(t *testing.T) {
	backend := &cleanRecorder{Device: software.New()}
	r := New(backend)

	a, err := r.CreateIndexBuffer()
	require.NoError(t, err)
	b, err := r.CreateTexture(&metadata.TextureInfo{Width: 1, Height: 1, Format: metadata.TextureFormatR8})
	require.NoError(t, err)

	r.Flush()
	assert.Empty(t, backend.batches)

	r.Release(metadata.Resource{Kind: metadata.ResourceKindBuffer, ID: a})
	r.Release(metadata.Resource{Kind: metadata.ResourceKindTexture, ID: b})
	assert.Equal(t, 2, r.Pending())

	r.Flush()
	require.Len(t, backend.batches, 1)
	assert.Len(t, backend.batches[0], 2)
	assert.Equal(t, 0, r.Pending())
	assert.Equal(t, 0, backend.Live())
}

func TestRendererForwardsSurfaceChanges(t *testing.T) {
	dev := software.New()
	r := New(dev)
	assert.Same(t, dev, r.Backend())

	r.OnResize(10, 5)
	r.OnScaleFactor(1.5)
	assert.Equal(t, 15, dev.Framebuffer().Bounds().Dx())
	assert.Equal(t, 8, dev.Framebuffer().Bounds().Dy())
}

func TestRendererReturnsCreationErrors(t *testing.T) {
	r := New(software.New())
	id, err := r.CreateTexture(&metadata.TextureInfo{Format: metadata.TextureFormatRGBA32})
	assert.Error(t, err)
	assert.Equal(t, metadata.InvalidID, id)
}
