package metadata

import "fmt"

/**
 * @brief Pixel formats a texture can be created with.
 */
type TextureFormat uint8

const (
	/** @brief 8 bits per channel RGBA. */
	TextureFormatRGBA32 TextureFormat = iota
	/** @brief Single 8 bit red channel. */
	TextureFormatR8
	/** @brief 16 bit depth. */
	TextureFormatDepth16
	/** @brief 32 bit float per channel RGBA. */
	TextureFormatRGBA32Float
)

// BytesPerPixel returns the size of one texel, or 0 for unknown formats.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case TextureFormatRGBA32:
		return 4
	case TextureFormatR8:
		return 1
	case TextureFormatDepth16:
		return 2
	case TextureFormatRGBA32Float:
		return 16
	default:
		return 0
	}
}

// RegionSize returns the number of bytes a width x height region of this
// format occupies.
func (f TextureFormat) RegionSize(width, height int32) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(width) * int(height) * f.BytesPerPixel()
}

func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA32:
		return "RGBA32"
	case TextureFormatR8:
		return "R8"
	case TextureFormatDepth16:
		return "Depth16"
	case TextureFormatRGBA32Float:
		return "RGBA32Float"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint8(f))
	}
}

type TextureFilter uint8

const (
	TextureFilterLinear TextureFilter = iota
	TextureFilterNearest
)

type TextureWrap uint8

const (
	TextureWrapClamp TextureWrap = iota
	TextureWrapRepeat
	TextureWrapMirrorRepeat
)

// TextureInfo describes a texture to create. Bytes is optional initial data
// and, when present, must cover the whole texture.
type TextureInfo struct {
	Width         int32
	Height        int32
	Format        TextureFormat
	MinFilter     TextureFilter
	MagFilter     TextureFilter
	WrapX         TextureWrap
	WrapY         TextureWrap
	Premultiplied bool
	Depth         bool
	Bytes         []byte
}

// TextureUpdate re-uploads a region of a texture.
type TextureUpdate struct {
	X, Y          int32
	Width, Height int32
	Format        TextureFormat
	Bytes         []byte
}

// TextureRead describes a region to read back from a texture.
type TextureRead struct {
	X, Y          int32
	Width, Height int32
	Format        TextureFormat
}
