package entity

import (
	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

// NewCameraAt creates a camera following the player, starting at (x, y).
func NewCameraAt(w *ecs.World, x, y, zoom float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: "player",
		Zoom:       zoom,
		Smoothness: 6,
		LookAhead:  0.25,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
