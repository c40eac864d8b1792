package system

import (
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

const (
	AnimIdle = "idle"
	AnimRun  = "run"
	AnimRoll = "roll"
	AnimJump = "jump"
)

// AnimationSystem is the consumer of the controller's animation flags: it picks
// a clip from the flags and advances its frames.
type AnimationSystem struct {
	step time.Duration
}

func NewAnimationSystem(step time.Duration) *AnimationSystem {
	return &AnimationSystem{step: step}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationFlagsComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, flags *component.AnimationFlags, anim *component.Animation) {
		clip := ClipFor(*flags)
		if anim.Current != clip {
			anim.Current = clip
			anim.Frame = 0
			anim.FrameTimer = 0
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 1 || def.FPS <= 0 {
			return
		}
		anim.FrameTimer += a.step.Seconds()
		frameTime := 1 / def.FPS
		for anim.FrameTimer >= frameTime {
			anim.FrameTimer -= frameTime
			if anim.Frame+1 < def.FrameCount {
				anim.Frame++
			} else if def.Loop {
				anim.Frame = 0
			}
		}
	})
}

// ClipFor maps the flags to a clip name; roll wins over jump, jump over run.
func ClipFor(flags component.AnimationFlags) string {
	switch {
	case flags.IsRolling:
		return AnimRoll
	case flags.IsJumping:
		return AnimJump
	case flags.IsMoving:
		return AnimRun
	default:
		return AnimIdle
	}
}
