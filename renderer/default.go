package renderer

import (
	"time"

	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/log"
)

// A renderer that steps a scene and forwards its traversal to an adapter.
type defaultRenderer struct {
	logger log.Logger

	scene   Scene
	adapter Adapter
	opts    Options

	elapsed float64
	stats   FrameStats
}

// Create a renderer that displays sc through adapter. If opts.Start is
// positive, the scene is advanced by that amount before the first frame.
func NewDefault(sc Scene, adapter Adapter, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if adapter == nil {
		return nil, ErrAdapterNotDefined
	}
	if opts.FPS <= 0 {
		return nil, ErrInvalidFrameRate
	}

	r := &defaultRenderer{
		logger:  log.New("renderer"),
		scene:   sc,
		adapter: adapter,
		opts:    opts,
	}

	if opts.Start > 0 {
		r.logger.Infof("skipping first %g seconds", opts.Start)
		sc.Update(opts.Start)
		r.elapsed = opts.Start
	}

	return r, nil
}

func (r *defaultRenderer) Render(dt float64) error {
	start := time.Now()

	if dt > 0 {
		r.elapsed += dt
	}
	r.scene.Update(dt)

	counter := &countingAdapter{Adapter: r.adapter}
	r.scene.Display(counter)

	r.stats = FrameStats{
		Frame:      r.stats.Frame + 1,
		Elapsed:    r.elapsed,
		DrawCalls:  counter.draws,
		Pushes:     counter.pushes,
		MaxDepth:   counter.maxDepth,
		RenderTime: time.Since(start),
	}
	r.logger.Debugf("frame %d at %.3fs: %d draw calls", r.stats.Frame, r.elapsed, counter.draws)

	if counter.depth != 0 {
		return ErrUnbalancedStack
	}
	return nil
}

func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// An adapter wrapper that tracks draw calls and the matrix stack depth.
type countingAdapter struct {
	Adapter

	draws    int
	pushes   int
	depth    int
	maxDepth int
}

func (c *countingAdapter) PushMatrix() {
	c.pushes++
	c.depth++
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
	c.Adapter.PushMatrix()
}

func (c *countingAdapter) PopMatrix() {
	c.depth--
	c.Adapter.PopMatrix()
}

func (c *countingAdapter) Draw(prim *scene.Primitive, mat *scene.Material, tex *BoundTexture) {
	c.draws++
	c.Adapter.Draw(prim, mat, tex)
}
