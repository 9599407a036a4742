package metadata

// Color is a linear RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ClearOptions selects which attachments are cleared when a pass begins.
// Nil fields are left untouched.
type ClearOptions struct {
	Color   *Color
	Depth   *float32
	Stencil *int32
}

// Command is a directive for a device backend. Backends execute a batch of
// commands strictly in the given order.
type Command interface {
	isCommand()
}

type Begin struct {
	Clear ClearOptions
}

type End struct{}

type Pipeline struct {
	ID      ResourceID
	Options PipelineOptions
}

type BindBuffer struct {
	ID ResourceID
}

type BindTexture struct {
	ID       ResourceID
	Slot     uint32
	Location uint32
}

type Size struct {
	Width, Height int32
}

type Viewport struct {
	X, Y, Width, Height float32
}

type Scissors struct {
	X, Y, Width, Height float32
}

type Draw struct {
	Primitive DrawPrimitive
	Offset    int32
	Count     int32
}

type DrawInstanced struct {
	Primitive DrawPrimitive
	Offset    int32
	Count     int32
	Length    int32
}

func (Begin) isCommand()         {}
func (End) isCommand()           {}
func (Pipeline) isCommand()      {}
func (BindBuffer) isCommand()    {}
func (BindTexture) isCommand()   {}
func (Size) isCommand()          {}
func (Viewport) isCommand()      {}
func (Scissors) isCommand()      {}
func (Draw) isCommand()          {}
func (DrawInstanced) isCommand() {}
