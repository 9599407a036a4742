// Package gpucontext negotiates a GPU context by trying API tiers from the
// most capable to the least capable one.
package gpucontext

const (
	TierWebGL2   = "webgl2"
	TierWebGL    = "webgl"
	TierOpenGL33 = "opengl3.3"
	TierOpenGL21 = "opengl2.1"
)

// Attributes are the context creation options. Only antialiasing and
// transparency are chosen by the caller.
type Attributes struct {
	Alpha              bool
	Antialias          bool
	Stencil            bool
	PremultipliedAlpha bool
}

func NewAttributes(antialias, transparent bool) Attributes {
	return Attributes{
		Alpha:              transparent,
		Antialias:          antialias,
		Stencil:            true,
		PremultipliedAlpha: false,
	}
}
