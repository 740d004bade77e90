package renderer

import "math"

type Options struct {
	// Frames per second.
	FPS int

	// Total animation time in seconds.
	Duration float64

	// Time to skip before rendering the first frame.
	Start float64
}

// Get the time step between two frames.
func (opts Options) FrameDelta() float64 {
	if opts.FPS <= 0 {
		return 0
	}
	return 1.0 / float64(opts.FPS)
}

// Get the number of frames needed to cover the requested duration.
func (opts Options) NumFrames() int {
	if opts.FPS <= 0 || opts.Duration <= 0 {
		return 0
	}
	return int(math.Ceil(opts.Duration * float64(opts.FPS)))
}
