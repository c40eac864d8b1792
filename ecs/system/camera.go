package system

import (
	"math"
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

type CameraSystem struct {
	step time.Duration
}

func NewCameraSystem(step time.Duration) *CameraSystem {
	return &CameraSystem{step: step}
}

// Update eases the camera transform toward its target.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	target, ok := findEntityByNameOrTag(w, cam.TargetName)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	goalX := targetTransform.X
	goalY := targetTransform.Y
	if bodyComp, ok := ecs.Get(w, target, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
		goalX += bodyComp.Body.Velocity().X * cam.LookAhead
	}

	alpha := 1.0
	if cam.Smoothness > 0 {
		alpha = 1 - math.Exp(-cam.Smoothness*cs.step.Seconds())
	}
	camTransform.X += (goalX - camTransform.X) * alpha
	camTransform.Y += (goalY - camTransform.Y) * alpha
}

func findEntityByNameOrTag(w *ecs.World, name string) (ecs.Entity, bool) {
	if name == "" || name == "player" {
		return ecs.First(w, component.PlayerTagComponent.Kind())
	}
	return 0, false
}
