package component

import (
	"errors"
	"fmt"
	"time"
)

// DefaultJumpLockDelay is how long grounded detection stays off after a jump.
const DefaultJumpLockDelay = 500 * time.Millisecond

// GroundProbe is the box used for the grounded overlap query, anchored at a
// body-local offset.
type GroundProbe struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Player holds the controller tuning. It is fixed at construction.
type Player struct {
	MoveForce     float64
	JumpForce     float64
	IdleDrift     float64
	JumpLockDelay time.Duration
	Probe         GroundProbe
	GroundMask    uint
}

var PlayerComponent = NewComponent[Player]()

// Validate reports every invalid field at once.
func (p Player) Validate() error {
	var errs []error
	if p.MoveForce < 0 {
		errs = append(errs, fmt.Errorf("move force %v is negative", p.MoveForce))
	}
	if p.JumpForce < 0 {
		errs = append(errs, fmt.Errorf("jump force %v is negative", p.JumpForce))
	}
	if p.IdleDrift < 0 {
		errs = append(errs, fmt.Errorf("idle drift %v is negative", p.IdleDrift))
	}
	if p.JumpLockDelay <= 0 {
		errs = append(errs, fmt.Errorf("jump lock delay %v must be positive", p.JumpLockDelay))
	}
	if p.Probe.Width <= 0 || p.Probe.Height <= 0 {
		errs = append(errs, fmt.Errorf("ground probe size %vx%v must be positive", p.Probe.Width, p.Probe.Height))
	}
	if p.GroundMask == 0 {
		errs = append(errs, errors.New("ground mask is empty"))
	}
	return errors.Join(errs...)
}
