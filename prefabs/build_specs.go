package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveForce       float64  `yaml:"move_force"`
	JumpForce       float64  `yaml:"jump_force"`
	IdleDrift       float64  `yaml:"idle_drift"`
	JumpLockSeconds float64  `yaml:"jump_lock_seconds"`
	GroundProbe     BoxSpec  `yaml:"ground_probe"`
	GroundLayers    []string `yaml:"ground_layers"`
}

// BoxSpec is an axis-aligned box relative to an entity's origin.
type BoxSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderComponentSpec struct {
	Standing BoxSpec `yaml:"standing"`
	Rolling  BoxSpec `yaml:"rolling"`
}

type PhysicsBodyComponentSpec struct {
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

type CollisionLayerComponentSpec struct {
	Category []string `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type AnimationComponentSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AppearanceComponentSpec struct {
	Color *YAMLColor `yaml:"color"`
}
