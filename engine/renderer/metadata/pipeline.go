package metadata

type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSourceAlpha
	BlendFactorSourceColor
	BlendFactorInverseSourceAlpha
	BlendFactorInverseSourceColor
	BlendFactorDestinationAlpha
	BlendFactorDestinationColor
	BlendFactorInverseDestinationAlpha
	BlendFactorInverseDestinationColor
)

type BlendOperation uint8

const (
	BlendOperationAdd BlendOperation = iota
	BlendOperationSubtract
	BlendOperationReverseSubtract
	BlendOperationMax
	BlendOperationMin
)

type BlendMode struct {
	Src BlendFactor
	Dst BlendFactor
	Op  BlendOperation
}

var (
	BlendModeNormal = BlendMode{Src: BlendFactorSourceAlpha, Dst: BlendFactorInverseSourceAlpha, Op: BlendOperationAdd}
	BlendModeAdd    = BlendMode{Src: BlendFactorOne, Dst: BlendFactorOne, Op: BlendOperationAdd}
	BlendModeOver   = BlendMode{Src: BlendFactorOne, Dst: BlendFactorInverseSourceAlpha, Op: BlendOperationAdd}
)

type CullMode uint8

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

type CompareMode uint8

const (
	CompareModeNone CompareMode = iota
	CompareModeLess
	CompareModeEqual
	CompareModeLEqual
	CompareModeGreater
	CompareModeNotEqual
	CompareModeGEqual
	CompareModeAlways
)

type DepthStencil struct {
	Write   bool
	Compare CompareMode
}

type ColorMask struct {
	R, G, B, A bool
}

type StencilAction uint8

const (
	StencilActionKeep StencilAction = iota
	StencilActionZero
	StencilActionReplace
	StencilActionIncrement
	StencilActionIncrementWrap
	StencilActionDecrement
	StencilActionDecrementWrap
	StencilActionInvert
)

type StencilOptions struct {
	StencilFail StencilAction
	DepthFail   StencilAction
	Pass        StencilAction
	Compare     CompareMode
	ReadMask    uint32
	WriteMask   uint32
	Reference   uint8
}

// PipelineOptions configures the fixed function state of a pipeline. Nil
// blend modes and stencil options mean disabled.
type PipelineOptions struct {
	ColorBlend   *BlendMode
	AlphaBlend   *BlendMode
	CullMode     CullMode
	DepthStencil DepthStencil
	ColorMask    ColorMask
	Stencil      *StencilOptions
}

func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		ColorMask: ColorMask{R: true, G: true, B: true, A: true},
	}
}
