package cmd

import (
	"errors"

	"github.com/achilleasa/lxs/asset/scene/reader"
	"github.com/achilleasa/lxs/graph"
	"github.com/urfave/cli"
)

// Compile and link one or more scene documents and display scene info.
func CompileScene(ctx *cli.Context) error {
	if _, err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)

		logger.Noticef("parsing and compiling scene: %s", sceneFile)
		model, warnings, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		if _, err = graph.Link(model); err != nil {
			return err
		}

		// Display compiled scene info
		logger.Noticef("scene information (%d warnings):\n%s", len(warnings), model.Stats())
	}

	return nil
}
