package cmd

import (
	"github.com/achilleasa/lxs/log"
	"github.com/urfave/cli"
)

var logger = log.New("lxs")

// Load the config file and apply its log level; the verbosity flags
// override it.
func setupLogging(ctx *cli.Context) (Config, error) {
	cfg, err := LoadConfig(ctx.GlobalString("config"))
	if err != nil {
		return cfg, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, err
	}

	if ctx.GlobalBool("v") {
		level = log.Info
	}

	if ctx.GlobalBool("vv") {
		level = log.Debug
	}

	log.SetLevel(level)
	return cfg, nil
}
