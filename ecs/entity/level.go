package entity

import (
	"fmt"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"github.com/milk9111/rollrunner/levels"
	"github.com/milk9111/rollrunner/prefabs"
	"gopkg.in/yaml.v3"
)

const groundFriction = 0.9

// LoadLevelToWorld creates one static box per merged run of solid tiles and
// returns the spawned player.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: nil world or level")
	}

	for layerIdx := range lvl.Layers {
		var meta levels.LayerMeta
		if layerIdx < len(lvl.LayerMeta) {
			meta = lvl.LayerMeta[layerIdx]
		}
		var look component.Appearance
		if meta.Color != "" {
			var c prefabs.YAMLColor
			if err := c.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Value: meta.Color}); err != nil {
				return 0, fmt.Errorf("load level: layer %d: %w", layerIdx, err)
			}
			look.Color = c.Color
		}

		for _, r := range lvl.SolidRuns(layerIdx) {
			if err := addTileRun(w, r, meta.Physics, look); err != nil {
				return 0, fmt.Errorf("load level: layer %d: %w", layerIdx, err)
			}
		}
	}

	x, y, ok := lvl.Spawn()
	if !ok {
		return 0, fmt.Errorf("load level: no %s", levels.EntityPlayerSpawn)
	}
	player, err := NewPlayerAt(w, x, y)
	if err != nil {
		return 0, fmt.Errorf("load level: %w", err)
	}
	return player, nil
}

func addTileRun(w *ecs.World, r levels.Rect, physics bool, look component.Appearance) error {
	e := ecs.CreateEntity(w)
	steps := []error{
		ecs.Add(w, e, component.LevelTagComponent.Kind(), &component.LevelTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}),
		ecs.Add(w, e, component.StaticBoxComponent.Kind(), &component.StaticBox{Width: r.Width, Height: r.Height}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), &look),
	}
	if physics {
		steps = append(steps,
			ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Static: true, Friction: groundFriction}),
			ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerGround}),
		)
	}
	for _, err := range steps {
		if err != nil {
			ecs.DestroyEntity(w, e)
			return err
		}
	}
	return nil
}
