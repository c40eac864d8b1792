// Command simulate runs the player controller headless against a level with a
// scripted input track and prints every locomotion transition.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"github.com/milk9111/rollrunner/input"
	"github.com/milk9111/rollrunner/levels"
	"github.com/milk9111/rollrunner/scene"
)

//go:embed default.yaml
var defaultScript string

// cueLog prints sound cues instead of playing them.
type cueLog struct {
	out  io.Writer
	tick func() uint64
}

func (c cueLog) PlaySound(name string) {
	fmt.Fprintf(c.out, "tick %d: sound %s\n", c.tick(), name)
}

func (c cueLog) PlayLoopedSound(name string) {
	fmt.Fprintf(c.out, "tick %d: loop %s\n", c.tick(), name)
}

func (c cueLog) StopLoopedSound() {
	fmt.Fprintf(c.out, "tick %d: stop loop\n", c.tick())
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, cfg Config) error {
	src := io.Reader(strings.NewReader(defaultScript))
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	script, err := input.ParseScript(src)
	if err != nil {
		return err
	}
	ticks := cfg.Ticks
	if ticks <= 0 {
		ticks = script.Len()
	}

	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return err
	}

	var s *scene.Scene
	opts := scene.Options{
		Input: script,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(out, format+"\n", args...)
		},
	}
	if cfg.Sounds {
		opts.Sounds = cueLog{out: out, tick: func() uint64 { return s.Ticks() }}
	}
	s, err = scene.New(lvl, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	for i := 0; i < ticks; i++ {
		s.Update()
	}

	transform, _ := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	grounded := false
	if sensor, ok := ecs.Get(s.World, s.Player, component.GroundSensorComponent.Kind()); ok {
		grounded = sensor.Grounded
	}
	fmt.Fprintf(out, "final after %d ticks: state=%s grounded=%v pos=(%.3f, %.3f)\n",
		s.Ticks(), s.PlayerState(), grounded, transform.X, transform.Y)
	return nil
}
