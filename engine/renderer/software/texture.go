package software

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
	"golang.org/x/image/draw"
)

type texture struct {
	width  int32
	height int32
	format metadata.TextureFormat
	depth  bool
	pix    []byte
}

func newTexture(info *metadata.TextureInfo) (*texture, error) {
	if info == nil {
		return nil, fmt.Errorf("%w: missing texture info", core.ErrCreationFailure)
	}
	if info.Format.BytesPerPixel() == 0 {
		return nil, fmt.Errorf("%w: %w: %s", core.ErrCreationFailure, core.ErrUnsupportedFormat, info.Format)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid texture size %dx%d", core.ErrCreationFailure, info.Width, info.Height)
	}
	size := info.Format.RegionSize(info.Width, info.Height)
	if info.Bytes != nil && len(info.Bytes) != size {
		return nil, fmt.Errorf("%w: %w: texture %dx%d %s needs %d bytes, got %d",
			core.ErrCreationFailure, core.ErrBufferSizeMismatch, info.Width, info.Height, info.Format, size, len(info.Bytes))
	}
	t := &texture{
		width:  info.Width,
		height: info.Height,
		format: info.Format,
		depth:  info.Depth || info.Format == metadata.TextureFormatDepth16,
		pix:    make([]byte, size),
	}
	copy(t.pix, info.Bytes)
	return t, nil
}

func (t *texture) stride() int {
	return int(t.width) * t.format.BytesPerPixel()
}

func (t *texture) checkRegion(x, y, w, h int32, format metadata.TextureFormat) error {
	if format != t.format {
		return fmt.Errorf("%w: region format %s does not match texture format %s", core.ErrBufferSizeMismatch, format, t.format)
	}
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > t.width || y+h > t.height {
		return fmt.Errorf("%w: region (%d,%d %dx%d) outside texture %dx%d", core.ErrBufferSizeMismatch, x, y, w, h, t.width, t.height)
	}
	return nil
}

func (t *texture) write(opts *metadata.TextureUpdate) error {
	if err := t.checkRegion(opts.X, opts.Y, opts.Width, opts.Height, opts.Format); err != nil {
		return err
	}
	if want := t.format.RegionSize(opts.Width, opts.Height); len(opts.Bytes) != want {
		return fmt.Errorf("%w: region needs %d bytes, got %d", core.ErrBufferSizeMismatch, want, len(opts.Bytes))
	}
	bpp := t.format.BytesPerPixel()
	rowLen := int(opts.Width) * bpp
	for row := 0; row < int(opts.Height); row++ {
		dst := (int(opts.Y)+row)*t.stride() + int(opts.X)*bpp
		copy(t.pix[dst:dst+rowLen], opts.Bytes[row*rowLen:(row+1)*rowLen])
	}
	return nil
}

func (t *texture) read(out []byte, opts *metadata.TextureRead) error {
	if err := t.checkRegion(opts.X, opts.Y, opts.Width, opts.Height, opts.Format); err != nil {
		return err
	}
	if want := t.format.RegionSize(opts.Width, opts.Height); len(out) < want {
		return fmt.Errorf("%w: output holds %d bytes, region needs %d", core.ErrBufferSizeMismatch, len(out), want)
	}
	bpp := t.format.BytesPerPixel()
	rowLen := int(opts.Width) * bpp
	for row := 0; row < int(opts.Height); row++ {
		src := (int(opts.Y)+row)*t.stride() + int(opts.X)*bpp
		copy(out[row*rowLen:(row+1)*rowLen], t.pix[src:src+rowLen])
	}
	return nil
}

// clear applies the color and depth parts of a pass clear. Color clears
// skip depth textures and depth clears only touch them.
func (t *texture) clear(opts metadata.ClearOptions) {
	if t.depth {
		if opts.Depth != nil {
			v := uint16(core.Clamp(*opts.Depth, 0, 1) * math.MaxUint16)
			for i := 0; i+1 < len(t.pix); i += 2 {
				binary.LittleEndian.PutUint16(t.pix[i:], v)
			}
		}
		return
	}
	if opts.Color == nil {
		return
	}
	c := *opts.Color
	switch t.format {
	case metadata.TextureFormatRGBA32:
		img := &image.RGBA{Pix: t.pix, Stride: t.stride(), Rect: image.Rect(0, 0, int(t.width), int(t.height))}
		fillRGBA(img, c)
	case metadata.TextureFormatR8:
		v := to8(c.R)
		for i := range t.pix {
			t.pix[i] = v
		}
	case metadata.TextureFormatRGBA32Float:
		for i := 0; i+15 < len(t.pix); i += 16 {
			binary.LittleEndian.PutUint32(t.pix[i:], math.Float32bits(c.R))
			binary.LittleEndian.PutUint32(t.pix[i+4:], math.Float32bits(c.G))
			binary.LittleEndian.PutUint32(t.pix[i+8:], math.Float32bits(c.B))
			binary.LittleEndian.PutUint32(t.pix[i+12:], math.Float32bits(c.A))
		}
	}
}

func fillRGBA(img *image.RGBA, c metadata.Color) {
	fill := color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(core.Clamp(v, 0, 1)) * 255))
}
