package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/rollrunner/session"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Kind   string  `yaml:"kind"`
}

// SessionSpec is the sound registry and starting track of a game session.
type SessionSpec struct {
	Music  string      `yaml:"music"`
	Sounds []AudioSpec `yaml:"sounds"`
}

func LoadSessionSpec() (SessionSpec, error) {
	return LoadSpec[SessionSpec]("session.yaml")
}

// SoundDefs converts the registry for session.New.
func (s SessionSpec) SoundDefs() ([]session.SoundDef, error) {
	defs := make([]session.SoundDef, 0, len(s.Sounds))
	var errs []error
	for i, a := range s.Sounds {
		kind, err := session.ParseSoundKind(a.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("sounds[%d] %q: %w", i, a.Name, err))
			continue
		}
		volume := a.Volume
		if volume == 0 {
			volume = 1
		}
		defs = append(defs, session.SoundDef{Name: a.Name, Clip: a.File, Kind: kind, Volume: volume})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("prefabs: session sounds: %w", err)
	}
	return defs, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
