package system

import "github.com/milk9111/rollrunner/ecs/component"

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdling  component.PlayerState = &playerIdlingState{}
	playerStateRunning component.PlayerState = &playerRunningState{}
	playerStateRolling component.PlayerState = &playerRollingState{}
	playerStateJumping component.PlayerState = &playerJumpingState{}
)

const (
	StateIdling  = "idling"
	StateRunning = "running"
	StateRolling = "rolling"
	StateJumping = "jumping"
)

type playerIdlingState struct{}

type playerRunningState struct{}

type playerRollingState struct{}

type playerJumpingState struct{}

func (playerIdlingState) Name() string { return StateIdling }

// Idling drifts left at a constant speed regardless of input.
func (playerIdlingState) Update(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(-ctx.Player.IdleDrift, y)

	if !ctx.IsGrounded() {
		return
	}
	if ctx.Input.MoveX != 0 {
		ctx.SetAnimation(component.AnimIsMoving, true)
		ctx.ChangeState(playerStateRunning)
		return
	}
	if ctx.Input.CrouchPressed {
		startRoll(ctx)
		return
	}
	if ctx.Input.JumpPressed {
		startJump(ctx)
	}
}

func (playerRunningState) Name() string { return StateRunning }
func (playerRunningState) Update(ctx *component.PlayerStateContext) {
	moveCharacter(ctx)

	if !ctx.IsGrounded() {
		return
	}
	if ctx.Input.MoveX == 0 {
		ctx.SetAnimation(component.AnimIsMoving, false)
		ctx.ChangeState(playerStateIdling)
		return
	}
	if ctx.Input.CrouchPressed {
		startRoll(ctx)
		return
	}
	if ctx.Input.JumpPressed {
		startJump(ctx)
	}
}

func (playerRollingState) Name() string { return StateRolling }

// Rolling ends only on the crouch release edge, grounded or not.
func (playerRollingState) Update(ctx *component.PlayerStateContext) {
	moveCharacter(ctx)

	if ctx.Input.CrouchReleased {
		ctx.SetCollider(component.ColliderStanding)
		ctx.StopLoopedSound()
		ctx.SetAnimation(component.AnimIsRolling, false)
		ctx.ChangeState(playerStateIdling)
	}
}

func (playerJumpingState) Name() string { return StateJumping }

// Jumping lands the first tick the probe reports ground. The jump lock keeps
// that from happening until the lock timer has fired.
func (playerJumpingState) Update(ctx *component.PlayerStateContext) {
	moveCharacter(ctx)

	if ctx.IsGrounded() {
		ctx.SetAnimation(component.AnimIsJumping, false)
		ctx.ChangeState(playerStateIdling)
	}
}

func moveCharacter(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(ctx.Input.MoveX*ctx.Player.MoveForce*ctx.Step, y)
}

func startRoll(ctx *component.PlayerStateContext) {
	ctx.SetCollider(component.ColliderRolling)
	ctx.PlayLoopedSound(SoundRoll)
	ctx.SetAnimation(component.AnimIsRolling, true)
	ctx.ChangeState(playerStateRolling)
}

// startJump sets (not adds) the vertical speed and leaves x alone.
func startJump(ctx *component.PlayerStateContext) {
	x, _ := ctx.GetVelocity()
	ctx.SetVelocity(x, ctx.Player.JumpForce*ctx.Step)
	ctx.PlaySound(SoundJump)
	ctx.StartJump()
}
