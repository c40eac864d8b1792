package input

import "github.com/milk9111/rollrunner/ecs/component"

// Levels is the held state of the controls on one tick.
type Levels struct {
	MoveX  float64
	Jump   bool
	Crouch bool
}

// EdgeTracker turns held levels into a per-tick sample with press and release
// edges. Each edge is reported on exactly one tick.
type EdgeTracker struct {
	jump   bool
	crouch bool
}

func (t *EdgeTracker) Next(l Levels) component.Input {
	in := component.Input{
		MoveX:          clampAxis(l.MoveX),
		Jump:           l.Jump,
		JumpPressed:    l.Jump && !t.jump,
		Crouch:         l.Crouch,
		CrouchPressed:  l.Crouch && !t.crouch,
		CrouchReleased: !l.Crouch && t.crouch,
	}
	t.jump = l.Jump
	t.crouch = l.Crouch
	return in
}

// Reset forgets held keys, so a key still down after a restart fires a new
// press edge.
func (t *EdgeTracker) Reset() {
	t.jump = false
	t.crouch = false
}

func clampAxis(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
