package component

// AnimationFlag names one boolean animation parameter.
type AnimationFlag int

const (
	AnimIsMoving AnimationFlag = iota
	AnimIsRolling
	AnimIsJumping
)

func (f AnimationFlag) String() string {
	switch f {
	case AnimIsMoving:
		return "isMoving"
	case AnimIsRolling:
		return "isRolling"
	case AnimIsJumping:
		return "isJumping"
	default:
		return "unknown"
	}
}

// AnimationFlags mirrors the controller's boolean animation parameters.
type AnimationFlags struct {
	IsMoving  bool
	IsRolling bool
	IsJumping bool
}

// Set writes one flag.
func (a *AnimationFlags) Set(flag AnimationFlag, value bool) {
	switch flag {
	case AnimIsMoving:
		a.IsMoving = value
	case AnimIsRolling:
		a.IsRolling = value
	case AnimIsJumping:
		a.IsJumping = value
	}
}

var AnimationFlagsComponent = NewComponent[AnimationFlags]()

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation is the playback state driven from AnimationFlags.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
}

var AnimationComponent = NewComponent[Animation]()
