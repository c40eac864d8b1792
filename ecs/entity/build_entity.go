package entity

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"github.com/milk9111/rollrunner/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"player":               addPlayer,
	"input":                addInput,
	"player_state_machine": addPlayerStateMachine,
	"transform":            addTransform,
	"collider":             addCollider,
	"physics_body":         addPhysicsBody,
	"collision_layer":      addCollisionLayer,
	"animation":            addAnimation,
	"appearance":           addAppearance,
}

var componentBuildOrder = []string{
	"player_tag",
	"player",
	"input",
	"player_state_machine",
	"transform",
	"collider",
	"physics_body",
	"collision_layer",
	"animation",
	"appearance",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntitySpec(w, prefabPath, spec)
}

// BuildEntitySpec builds an entity from an already decoded prefab. On any
// error the half-built entity is destroyed.
func BuildEntitySpec(w *ecs.World, prefabName string, spec entityPrefabSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabName)
	}

	var unknown []string
	for k := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabName, unknown)
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabName, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	layers := spec.GroundLayers
	if len(layers) == 0 {
		layers = []string{"ground"}
	}
	mask, err := component.LayerMask(layers...)
	if err != nil {
		return fmt.Errorf("player ground layers: %w", err)
	}

	player := component.Player{
		MoveForce:     spec.MoveForce,
		JumpForce:     spec.JumpForce,
		IdleDrift:     spec.IdleDrift,
		JumpLockDelay: time.Duration(spec.JumpLockSeconds * float64(time.Second)),
		Probe: component.GroundProbe{
			OffsetX: spec.GroundProbe.OffsetX,
			OffsetY: spec.GroundProbe.OffsetY,
			Width:   spec.GroundProbe.Width,
			Height:  spec.GroundProbe.Height,
		},
		GroundMask: mask,
	}
	if err := player.Validate(); err != nil {
		return fmt.Errorf("invalid player config: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &player)
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerStateMachine(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	standing := capsuleFromSpec(spec.Standing)
	rolling := capsuleFromSpec(spec.Rolling)
	var errs []error
	for name, c := range map[string]component.Capsule{"standing": standing, "rolling": rolling} {
		if c.Width <= 0 || c.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s capsule %vx%v must be positive", name, c.Width, c.Height))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Standing: standing,
		Rolling:  rolling,
		Active:   component.ColliderStanding,
	})
}

func capsuleFromSpec(s prefabs.BoxSpec) component.Capsule {
	return component.Capsule{OffsetX: s.OffsetX, OffsetY: s.OffsetY, Width: s.Width, Height: s.Height}
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}
	if spec.Mass < 0 || spec.Friction < 0 {
		return fmt.Errorf("mass %v and friction %v must not be negative", spec.Mass, spec.Friction)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Mass:     spec.Mass,
		Friction: spec.Friction,
		Static:   spec.Static,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat, err := component.LayerMask(spec.Category...)
	if err != nil {
		return err
	}
	mask, err := component.LayerMask(spec.Mask...)
	if err != nil {
		return err
	}
	if cat == 0 {
		cat = 1
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: spec.Current,
	})
}

type appearanceSpec = prefabs.AppearanceComponentSpec

func addAppearance(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[appearanceSpec](raw)
	if err != nil {
		return fmt.Errorf("decode appearance spec: %w", err)
	}
	var look component.Appearance
	if spec.Color != nil {
		look.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &look)
}
