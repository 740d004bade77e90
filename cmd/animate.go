package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/lxs/asset/scene/reader"
	"github.com/achilleasa/lxs/graph"
	"github.com/achilleasa/lxs/renderer"
	"github.com/achilleasa/lxs/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Step the animations of a scene and display the resulting poses and
// primitive positions.
func AnimateScene(ctx *cli.Context) error {
	cfg, err := setupLogging(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	opts := cfg.RendererOptions()
	if ctx.IsSet("fps") {
		opts.FPS = ctx.Int("fps")
	}
	if ctx.IsSet("duration") {
		opts.Duration = ctx.Float64("duration")
	}
	if ctx.IsSet("start") {
		opts.Start = ctx.Float64("start")
	}

	model, _, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	g, err := graph.Link(model)
	if err != nil {
		return err
	}

	var nodes []*graph.Node
	if compID := ctx.String("component"); compID != "" {
		n, exists := g.Node(compID)
		if !exists {
			return fmt.Errorf("undefined component %q", compID)
		}
		nodes = append(nodes, n)
	} else {
		nodes = g.Nodes()
	}

	stack := renderer.NewMatrixStack()
	r, err := renderer.NewDefault(g, stack, opts)
	if err != nil {
		return err
	}

	logger.Noticef("animating %d frames at %d fps", opts.NumFrames(), opts.FPS)
	for frame := 0; frame < opts.NumFrames(); frame++ {
		stack.Reset()
		if err = r.Render(opts.FrameDelta()); err != nil {
			return err
		}
		if err = stack.Err(); err != nil {
			return err
		}
	}

	displayPoses(nodes)
	displayDrawCalls(stack.Calls())
	displayFrameStats(r.Stats())
	return nil
}

func displayPoses(nodes []*graph.Node) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Component", "Animation", "State", "Elapsed", "Translate", "Rotate", "Scale"})

	animated := 0
	for _, n := range nodes {
		inst := n.Animation()
		if inst == nil {
			continue
		}
		animated++

		pose := inst.Pose()
		table.Append([]string{
			n.ID(),
			inst.ID(),
			inst.State().String(),
			fmt.Sprintf("%.3fs", inst.Elapsed()),
			pose.Translate.String(),
			pose.Rotate.String(),
			pose.Scale.String(),
		})
	}

	if animated == 0 {
		logger.Notice("no animated components")
		return
	}

	table.Render()
	logger.Noticef("animation poses\n%s", buf.String())
}

func displayDrawCalls(calls []renderer.DrawCall) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitive", "Type", "Material", "Texture", "World position"})
	for _, call := range calls {
		texture := "-"
		if call.Texture != nil {
			texture = call.Texture.Texture.ID
		}
		table.Append([]string{
			call.Primitive.ID,
			call.Primitive.Geometry.Kind().String(),
			call.Material.ID,
			texture,
			call.World.TransformPoint(types.XYZ(0, 0, 0)).String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", len(calls))})

	table.Render()
	logger.Noticef("draw calls for last frame\n%s", buf.String())
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Scene time", "Draw calls", "Max depth", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frame),
		fmt.Sprintf("%.3fs", stats.Elapsed),
		fmt.Sprintf("%d", stats.DrawCalls),
		fmt.Sprintf("%d", stats.MaxDepth),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
