package metadata

import "fmt"

// ResourceID is an opaque handle to a GPU resource. It is only meaningful to
// the device backend instance that issued it.
type ResourceID uint64

// InvalidID is never issued by a device backend.
const InvalidID ResourceID = 0

// DefaultFramebuffer is the render target that selects the backend's default
// framebuffer instead of a render texture.
const DefaultFramebuffer = InvalidID

type ResourceKind uint8

/** @brief Kinds of resources a device backend can release. */
const (
	/** @brief Vertex, index or uniform buffer. */
	ResourceKindBuffer ResourceKind = iota
	/** @brief Sampled texture. */
	ResourceKindTexture
	/** @brief Render pipeline. */
	ResourceKindPipeline
	/** @brief Texture used as a draw target. */
	ResourceKindRenderTexture
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceKindBuffer:
		return "Buffer"
	case ResourceKindTexture:
		return "Texture"
	case ResourceKindPipeline:
		return "Pipeline"
	case ResourceKindRenderTexture:
		return "RenderTexture"
	default:
		return fmt.Sprintf("ResourceKind(%d)", uint8(k))
	}
}

// Resource names a resource to release in a clean batch.
type Resource struct {
	Kind ResourceKind
	ID   ResourceID
}

func (r Resource) String() string {
	return fmt.Sprintf("%s(%d)", r.Kind, r.ID)
}
