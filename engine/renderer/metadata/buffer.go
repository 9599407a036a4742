package metadata

// VertexFormat describes the type of a single vertex attribute.
type VertexFormat uint8

const (
	VertexFormatUInt8 VertexFormat = iota
	VertexFormatUInt8x2
	VertexFormatUInt8x3
	VertexFormatUInt8x4
	VertexFormatInt8
	VertexFormatInt8x2
	VertexFormatInt8x3
	VertexFormatInt8x4
	VertexFormatUInt16
	VertexFormatUInt16x2
	VertexFormatInt16
	VertexFormatInt16x2
	VertexFormatUInt32
	VertexFormatInt32
	VertexFormatFloat32
	VertexFormatFloat32x2
	VertexFormatFloat32x3
	VertexFormatFloat32x4
)

// Size returns the size in bytes of one attribute of this format.
func (f VertexFormat) Size() int {
	switch f {
	case VertexFormatUInt8, VertexFormatInt8:
		return 1
	case VertexFormatUInt8x2, VertexFormatInt8x2, VertexFormatUInt16, VertexFormatInt16:
		return 2
	case VertexFormatUInt8x3, VertexFormatInt8x3:
		return 3
	case VertexFormatUInt8x4, VertexFormatInt8x4, VertexFormatUInt16x2, VertexFormatInt16x2,
		VertexFormatUInt32, VertexFormatInt32, VertexFormatFloat32:
		return 4
	case VertexFormatFloat32x2:
		return 8
	case VertexFormatFloat32x3:
		return 12
	case VertexFormatFloat32x4:
		return 16
	default:
		return 0
	}
}

// VertexAttr binds a vertex format to a shader location.
type VertexAttr struct {
	Location uint32
	Format   VertexFormat
}

// Stride returns the byte size of one vertex laid out with attrs.
func Stride(attrs []VertexAttr) int {
	stride := 0
	for _, a := range attrs {
		stride += a.Format.Size()
	}
	return stride
}

type VertexStepMode uint8

const (
	VertexStepModeVertex VertexStepMode = iota
	VertexStepModeInstance
)

type DrawPrimitive uint8

const (
	DrawPrimitiveTriangles DrawPrimitive = iota
	DrawPrimitiveTriangleStrip
	DrawPrimitiveLines
	DrawPrimitiveLineStrip
)
