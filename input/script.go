package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/rollrunner/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrBadScript = errors.New("input: bad script")

// Step holds a set of levels for a number of ticks.
type Step struct {
	Ticks  int
	Levels Levels
}

// Script replays held levels tick by tick. Once the steps run out it reports
// nothing held.
type Script struct {
	steps []Step
	step  int
	tick  int
	edges EdgeTracker
}

func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// scriptStep is one YAML list item of a script file.
type scriptStep struct {
	Ticks int      `yaml:"ticks"`
	Hold  []string `yaml:"hold"`
}

// ParseScript reads a YAML list of steps. Each step holds the listed controls
// (left, right, jump, crouch) for a number of ticks, e.g.
// {ticks: 20, hold: [right, jump]}. A step without hold stands still.
func ParseScript(r io.Reader) (*Script, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewScript(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	if len(doc.Content) == 0 {
		return NewScript(), nil
	}
	list := doc.Content[0]
	if list.Kind == yaml.ScalarNode && list.Tag == "!!null" {
		return NewScript(), nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a list of steps", ErrBadScript, list.Line)
	}

	steps := make([]Step, 0, len(list.Content))
	for _, item := range list.Content {
		step, err := decodeStep(item)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScript, item.Line, err)
		}
		steps = append(steps, step)
	}
	return NewScript(steps...), nil
}

func decodeStep(node *yaml.Node) (Step, error) {
	var raw scriptStep
	if err := node.Decode(&raw); err != nil {
		return Step{}, err
	}
	if raw.Ticks <= 0 {
		return Step{}, fmt.Errorf("tick count %d", raw.Ticks)
	}
	step := Step{Ticks: raw.Ticks}
	for _, control := range raw.Hold {
		switch strings.ToLower(control) {
		case "left":
			step.Levels.MoveX -= 1
		case "right":
			step.Levels.MoveX += 1
		case "jump":
			step.Levels.Jump = true
		case "crouch":
			step.Levels.Crouch = true
		default:
			return Step{}, fmt.Errorf("unknown control %q", control)
		}
	}
	return step, nil
}

// Sample returns the next tick of input.
func (s *Script) Sample() component.Input {
	var levels Levels
	for s.step < len(s.steps) {
		st := s.steps[s.step]
		if s.tick < st.Ticks {
			levels = st.Levels
			s.tick++
			break
		}
		s.step++
		s.tick = 0
	}
	return s.edges.Next(levels)
}

// Done reports whether every scripted tick has been sampled.
func (s *Script) Done() bool {
	for i := s.step; i < len(s.steps); i++ {
		remaining := s.steps[i].Ticks
		if i == s.step {
			remaining -= s.tick
		}
		if remaining > 0 {
			return false
		}
	}
	return true
}

// Len is the total number of scripted ticks.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}

// Rewind restarts the script from its first tick.
func (s *Script) Rewind() {
	s.step = 0
	s.tick = 0
	s.edges.Reset()
}
