// Package software implements a renderer.DeviceBackend that keeps every
// resource in memory. It performs the validation a GPU backend must do and
// reports the full error taxonomy, which makes it the fixture for negative
// tests and the device used by hosts that present a CPU framebuffer.
package software

import (
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
	"golang.org/x/image/draw"
)

const APIName = "software"

// MaxFramebufferSize is the largest side of the default framebuffer, the
// usual GL texture size limit.
const MaxFramebufferSize = 16384

type bufferKind uint8

const (
	bufferKindVertex bufferKind = iota
	bufferKindIndex
	bufferKindUniform
)

type buffer struct {
	kind     bufferKind
	attrs    []metadata.VertexAttr
	stepMode metadata.VertexStepMode
	slot     uint32
	name     string
	data     []byte
}

type pipeline struct {
	attrs   []metadata.VertexAttr
	stride  int
	options metadata.PipelineOptions
}

type renderTexture struct {
	texture metadata.ResourceID
	label   string
}

// Stats counts what the device did since it was created.
type Stats struct {
	Commands int
	Draws    int
	Errors   int
}

// Device is the in-memory device backend.
type Device struct {
	ids core.IDAllocator

	buffers        map[metadata.ResourceID]*buffer
	pipelines      map[metadata.ResourceID]*pipeline
	textures       map[metadata.ResourceID]*texture
	renderTextures map[metadata.ResourceID]*renderTexture

	width       int32
	height      int32
	dpi         float64
	framebuffer *image.RGBA

	stats Stats
}

func New() *Device {
	return &Device{
		buffers:        make(map[metadata.ResourceID]*buffer),
		pipelines:      make(map[metadata.ResourceID]*pipeline),
		textures:       make(map[metadata.ResourceID]*texture),
		renderTextures: make(map[metadata.ResourceID]*renderTexture),
		dpi:            1.0,
		framebuffer:    image.NewRGBA(image.Rectangle{}),
	}
}

func (d *Device) APIName() string {
	return APIName
}

// Framebuffer returns the default framebuffer. The image is replaced when
// the surface size or scale factor changes.
func (d *Device) Framebuffer() *image.RGBA {
	return d.framebuffer
}

func (d *Device) Stats() Stats {
	return d.stats
}

// Live returns the number of resources that have not been cleaned yet.
func (d *Device) Live() int {
	return len(d.buffers) + len(d.pipelines) + len(d.textures) + len(d.renderTextures)
}

func (d *Device) next() metadata.ResourceID {
	return metadata.ResourceID(d.ids.Next())
}

func (d *Device) CreatePipeline(vertexSource, fragmentSource []byte, attrs []metadata.VertexAttr, options metadata.PipelineOptions) (metadata.ResourceID, error) {
	if len(vertexSource) == 0 {
		return metadata.InvalidID, fmt.Errorf("%w: empty vertex shader source", core.ErrCreationFailure)
	}
	if len(fragmentSource) == 0 {
		return metadata.InvalidID, fmt.Errorf("%w: empty fragment shader source", core.ErrCreationFailure)
	}
	if err := validateAttrs(attrs); err != nil {
		return metadata.InvalidID, err
	}

	id := d.next()
	d.pipelines[id] = &pipeline{
		attrs:   append([]metadata.VertexAttr(nil), attrs...),
		stride:  metadata.Stride(attrs),
		options: options,
	}
	core.LogDebug("pipeline %d created (stride %d)", id, d.pipelines[id].stride)
	return id, nil
}

func (d *Device) CreateVertexBuffer(attrs []metadata.VertexAttr, stepMode metadata.VertexStepMode) (metadata.ResourceID, error) {
	if err := validateAttrs(attrs); err != nil {
		return metadata.InvalidID, err
	}
	id := d.next()
	d.buffers[id] = &buffer{
		kind:     bufferKindVertex,
		attrs:    append([]metadata.VertexAttr(nil), attrs...),
		stepMode: stepMode,
	}
	return id, nil
}

func (d *Device) CreateIndexBuffer() (metadata.ResourceID, error) {
	id := d.next()
	d.buffers[id] = &buffer{kind: bufferKindIndex}
	return id, nil
}

func (d *Device) CreateUniformBuffer(slot uint32, name string) (metadata.ResourceID, error) {
	if name == "" {
		return metadata.InvalidID, fmt.Errorf("%w: uniform buffer at slot %d has no name", core.ErrCreationFailure, slot)
	}
	id := d.next()
	d.buffers[id] = &buffer{kind: bufferKindUniform, slot: slot, name: name}
	return id, nil
}

func (d *Device) CreateTexture(info *metadata.TextureInfo) (metadata.ResourceID, error) {
	t, err := newTexture(info)
	if err != nil {
		return metadata.InvalidID, err
	}
	id := d.next()
	d.textures[id] = t
	return id, nil
}

func (d *Device) CreateRenderTexture(textureID metadata.ResourceID, info *metadata.TextureInfo) (metadata.ResourceID, error) {
	t, ok := d.textures[textureID]
	if !ok {
		return metadata.InvalidID, fmt.Errorf("%w: texture %d", core.ErrInvalidHandle, textureID)
	}
	if info != nil && (info.Width != t.width || info.Height != t.height) {
		return metadata.InvalidID, fmt.Errorf("%w: render texture %dx%d does not match texture %d (%dx%d)",
			core.ErrCreationFailure, info.Width, info.Height, textureID, t.width, t.height)
	}
	id := d.next()
	rt := &renderTexture{
		texture: textureID,
		label:   uuid.New().String(),
	}
	d.renderTextures[id] = rt
	core.LogDebug("render texture %d (%s) attached to texture %d", id, rt.label, textureID)
	return id, nil
}

func (d *Device) SetBufferData(id metadata.ResourceID, data []byte) {
	b, ok := d.buffers[id]
	if !ok {
		d.stats.Errors++
		core.LogError("set buffer data: %s", fmt.Errorf("%w: buffer %d", core.ErrInvalidHandle, id))
		return
	}
	b.data = append(b.data[:0], data...)
}

func (d *Device) UpdateTexture(id metadata.ResourceID, opts *metadata.TextureUpdate) error {
	t, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("%w: texture %d", core.ErrInvalidHandle, id)
	}
	if opts == nil {
		return fmt.Errorf("%w: no update region", core.ErrBufferSizeMismatch)
	}
	return t.write(opts)
}

func (d *Device) ReadPixels(id metadata.ResourceID, out []byte, opts *metadata.TextureRead) error {
	t, err := d.lookupTexture(id)
	if err != nil {
		return err
	}
	if opts == nil {
		return fmt.Errorf("%w: no read region", core.ErrBufferSizeMismatch)
	}
	return t.read(out, opts)
}

// lookupTexture resolves a texture or render texture id to its pixels.
func (d *Device) lookupTexture(id metadata.ResourceID) (*texture, error) {
	if t, ok := d.textures[id]; ok {
		return t, nil
	}
	if rt, ok := d.renderTextures[id]; ok {
		if t, ok := d.textures[rt.texture]; ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: texture %d", core.ErrInvalidHandle, id)
}

func (d *Device) Clean(resources []metadata.Resource) {
	core.LogInfo("clean %v", resources)
	for _, res := range resources {
		if !d.release(res) {
			core.LogDebug("ignoring release of unknown %s", res)
		}
	}
}

func (d *Device) release(res metadata.Resource) bool {
	switch res.Kind {
	case metadata.ResourceKindBuffer:
		if _, ok := d.buffers[res.ID]; ok {
			delete(d.buffers, res.ID)
			return true
		}
	case metadata.ResourceKindPipeline:
		if _, ok := d.pipelines[res.ID]; ok {
			delete(d.pipelines, res.ID)
			return true
		}
	case metadata.ResourceKindTexture:
		if _, ok := d.textures[res.ID]; ok {
			delete(d.textures, res.ID)
			for rid, rt := range d.renderTextures {
				if rt.texture == res.ID {
					delete(d.renderTextures, rid)
				}
			}
			return true
		}
	case metadata.ResourceKindRenderTexture:
		if _, ok := d.renderTextures[res.ID]; ok {
			delete(d.renderTextures, res.ID)
			return true
		}
	}
	return false
}

func (d *Device) SetSize(width, height int32) {
	if err := d.resize(width, height, d.dpi); err != nil {
		d.fail(err)
	}
}

func (d *Device) SetDPI(scaleFactor float64) {
	if scaleFactor <= 0 || math.IsNaN(scaleFactor) || math.IsInf(scaleFactor, 0) {
		core.LogWarn("ignoring invalid scale factor %f", scaleFactor)
		return
	}
	if err := d.resize(d.width, d.height, scaleFactor); err != nil {
		d.fail(err)
	}
}

// resize replaces the default framebuffer with one of (width*dpi, height*dpi)
// pixels, keeping the overlapping content. Sizes beyond MaxFramebufferSize
// leave the device unchanged.
func (d *Device) resize(width, height int32, dpi float64) error {
	fw := math.Round(float64(max(width, 0)) * dpi)
	fh := math.Round(float64(max(height, 0)) * dpi)
	if fw > MaxFramebufferSize || fh > MaxFramebufferSize {
		return fmt.Errorf("%w: framebuffer %.0fx%.0f exceeds %d pixels per side",
			core.ErrCreationFailure, fw, fh, MaxFramebufferSize)
	}
	d.width, d.height, d.dpi = width, height, dpi

	w, h := int(fw), int(fh)
	old := d.framebuffer
	if old.Bounds().Dx() == w && old.Bounds().Dy() == h {
		return nil
	}
	fb := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Copy(fb, image.Point{}, old, old.Bounds(), draw.Src, nil)
	d.framebuffer = fb
	return nil
}

func validateAttrs(attrs []metadata.VertexAttr) error {
	locations := make(map[uint32]struct{}, len(attrs))
	for _, a := range attrs {
		if a.Format.Size() == 0 {
			return fmt.Errorf("%w: unsupported vertex format %d at location %d", core.ErrCreationFailure, a.Format, a.Location)
		}
		if _, dup := locations[a.Location]; dup {
			return fmt.Errorf("%w: vertex location %d used twice", core.ErrCreationFailure, a.Location)
		}
		locations[a.Location] = struct{}{}
	}
	return nil
}
