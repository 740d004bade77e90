package renderer

import "time"

type FrameStats struct {
	// The frame number, starting from 1.
	Frame int

	// Scene time when the frame was rendered.
	Elapsed float64

	// Number of primitives drawn.
	DrawCalls int

	// Number of push calls and the deepest nesting level reached.
	Pushes   int
	MaxDepth int

	// Time spent updating and displaying the scene.
	RenderTime time.Duration
}
