package renderer

import (
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// DrawCall records a primitive drawn by a MatrixStack.
type DrawCall struct {
	Primitive *scene.Primitive
	Material  *scene.Material
	Texture   *BoundTexture

	// The world transformation at the time of the call.
	World types.Mat4
}

// MatrixStack is an Adapter that composes world matrices in memory and
// records draw calls instead of issuing them to a graphics API.
type MatrixStack struct {
	stack []types.Mat4
	calls []DrawCall
	err   error
}

// Create a new matrix stack initialized with the identity matrix.
func NewMatrixStack() *MatrixStack {
	ms := &MatrixStack{}
	ms.Reset()
	return ms
}

// Clear recorded calls and errors and reset the stack to the identity.
func (ms *MatrixStack) Reset() {
	ms.stack = append(ms.stack[:0], types.Ident4())
	ms.calls = ms.calls[:0]
	ms.err = nil
}

func (ms *MatrixStack) PushMatrix() {
	ms.stack = append(ms.stack, ms.Top())
}

func (ms *MatrixStack) PopMatrix() {
	if len(ms.stack) == 1 {
		if ms.err == nil {
			ms.err = ErrStackUnderflow
		}
		return
	}
	ms.stack = ms.stack[:len(ms.stack)-1]
}

func (ms *MatrixStack) MultMatrix(m types.Mat4) {
	top := len(ms.stack) - 1
	ms.stack[top] = ms.stack[top].Mul4(m)
}

func (ms *MatrixStack) Translate(v types.Vec3) {
	ms.MultMatrix(types.Translate4(v))
}

func (ms *MatrixStack) Rotate(rad float32, axis types.Vec3) {
	ms.MultMatrix(types.RotateAxis4(rad, axis))
}

func (ms *MatrixStack) Scale(v types.Vec3) {
	ms.MultMatrix(types.Scale4(v))
}

func (ms *MatrixStack) Draw(prim *scene.Primitive, mat *scene.Material, tex *BoundTexture) {
	ms.calls = append(ms.calls, DrawCall{
		Primitive: prim,
		Material:  mat,
		Texture:   tex,
		World:     ms.Top(),
	})
}

// Get the current transformation matrix.
func (ms *MatrixStack) Top() types.Mat4 {
	return ms.stack[len(ms.stack)-1]
}

// Get the current stack depth; a balanced traversal leaves it at 0.
func (ms *MatrixStack) Depth() int {
	return len(ms.stack) - 1
}

// Get the recorded draw calls.
func (ms *MatrixStack) Calls() []DrawCall {
	return ms.calls
}

// Get the first error recorded since the last Reset or ErrUnbalancedStack if
// the stack has not been fully popped.
func (ms *MatrixStack) Err() error {
	if ms.err != nil {
		return ms.err
	}
	if len(ms.stack) != 1 {
		return ErrUnbalancedStack
	}
	return nil
}
