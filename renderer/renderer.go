package renderer

import (
	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
)

// Adapter is implemented by rendering backends that consume a scene graph
// traversal. Transformations post-multiply the current matrix.
type Adapter interface {
	// Save and restore the current transformation matrix.
	PushMatrix()
	PopMatrix()

	MultMatrix(m types.Mat4)
	Translate(v types.Vec3)
	Rotate(rad float32, axis types.Vec3)
	Scale(v types.Vec3)

	// Draw a primitive using the current transformation. The texture is nil
	// if no texture should be bound.
	Draw(prim *scene.Primitive, mat *scene.Material, tex *BoundTexture)
}

// BoundTexture is a texture resolved for a draw call together with its
// tiling lengths.
type BoundTexture struct {
	Texture *scene.Texture
	LengthS float32
	LengthT float32
}

// Scene is implemented by anything that can be advanced in time and
// displayed through an Adapter.
type Scene interface {
	Update(dt float64)
	Display(adapter Adapter)
}

type Renderer interface {
	// Advance the scene by dt seconds and render a frame.
	Render(dt float64) error

	// Get statistics for the last rendered frame.
	Stats() FrameStats
}
