package cmd

import (
	"fmt"
	"os"

	"github.com/achilleasa/lxs/log"
	"github.com/achilleasa/lxs/renderer"
	"github.com/pelletier/go-toml/v2"
)

// Config holds settings loaded from an optional TOML file. Command-line
// flags take precedence over file values.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Animate AnimateConfig `toml:"animate"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AnimateConfig struct {
	FPS      int     `toml:"fps"`
	Duration float64 `toml:"duration"`
	Start    float64 `toml:"start"`
}

// Get the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: log.Notice.String()},
		Animate: AnimateConfig{
			FPS:      30,
			Duration: 3,
		},
	}
}

// Load config from a TOML file on top of the built-in defaults. An empty
// path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	decoder := toml.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %v", path, err)
	}

	if _, err = log.ParseLevel(cfg.Log.Level); err != nil {
		return cfg, fmt.Errorf("config: %s: %v", path, err)
	}
	if cfg.Animate.FPS <= 0 {
		return cfg, fmt.Errorf("config: %s: animate.fps must be positive; got %d", path, cfg.Animate.FPS)
	}
	if cfg.Animate.Duration < 0 || cfg.Animate.Start < 0 {
		return cfg, fmt.Errorf("config: %s: animate.duration and animate.start must not be negative", path)
	}

	return cfg, nil
}

// Get the renderer options for the animate command.
func (cfg Config) RendererOptions() renderer.Options {
	return renderer.Options{
		FPS:      cfg.Animate.FPS,
		Duration: cfg.Animate.Duration,
		Start:    cfg.Animate.Start,
	}
}
