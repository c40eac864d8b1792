package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds simulate command configuration. Environment variables set the
// defaults and flags override them.
type Config struct {
	Level  string `env:"ROLLRUNNER_LEVEL"  envDefault:"level1.json"`
	Script string `env:"ROLLRUNNER_SCRIPT"`
	Ticks  int    `env:"ROLLRUNNER_TICKS"`
	Sounds bool   `env:"ROLLRUNNER_SOUNDS"`
}

// ParseConfig parses the environment and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Level, "level", cfg.Level, "level name in levels/")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "input script YAML file (default: built-in script)")
	fs.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "ticks to run (default: script length)")
	fs.BoolVar(&cfg.Sounds, "sounds", cfg.Sounds, "print sound cues")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
