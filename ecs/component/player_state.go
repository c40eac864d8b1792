package component

// PlayerState is one locomotion state. The four implementations live in the
// system package as singletons; the active one is the only control-flow state
// a player has.
type PlayerState interface {
	Name() string
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext provides controlled access to input, physics and side
// effects for a state handler. It uses callbacks to avoid coupling states to
// the ECS package.
type PlayerStateContext struct {
	Input      *Input
	Player     *Player
	Step       float64
	IsGrounded func() bool

	GetVelocity func() (x, y float64)
	SetVelocity func(x, y float64)

	SetCollider  func(profile ColliderProfile)
	SetAnimation func(flag AnimationFlag, value bool)

	PlaySound       func(name string)
	PlayLoopedSound func(name string)
	StopLoopedSound func()

	StartJump   func()
	ChangeState func(state PlayerState)
}

// PlayerStateMachine stores the active locomotion state. A nil State means the
// player has not been spawned by the controller yet.
type PlayerStateMachine struct {
	State PlayerState
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()
