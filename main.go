package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/lxs/animation"
	"github.com/achilleasa/lxs/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lxs"
	app.Usage = "compile and animate lxs scene documents"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a TOML file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "validate scene documents and display scene information",
			Description: `
Parse one or more XML scene documents, compile them into a cross-referenced
scene model and link the component hierarchy into a scene graph.

Schema warnings are logged; the first fatal error aborts the command.`,
			ArgsUsage: "scene_file1.xml scene_file2.xml ...",
			Action:    cmd.CompileScene,
		},
		{
			Name:  "animate",
			Usage: "step scene animations and display poses",
			Description: fmt.Sprintf(`
Compile and link a scene document, advance its animations at a fixed frame
rate and display the final pose of each animated component together with the
world position of every primitive drawn in the last frame.

Supported easing functions: %v`, animation.EasingNames()),
			ArgsUsage: "scene_file.xml",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "fps",
					Value: 30,
					Usage: "frames per second",
				},
				cli.Float64Flag{
					Name:  "duration, d",
					Value: 3,
					Usage: "animation time in seconds",
				},
				cli.Float64Flag{
					Name:  "start",
					Usage: "time to skip before the first frame",
				},
				cli.StringFlag{
					Name:  "component",
					Usage: "only display the pose of this component",
				},
			},
			Action: cmd.AnimateScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
