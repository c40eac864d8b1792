package component

// ColliderProfile selects one of the two capsule configurations.
type ColliderProfile int

const (
	ColliderStanding ColliderProfile = iota
	ColliderRolling
)

func (p ColliderProfile) String() string {
	switch p {
	case ColliderStanding:
		return "standing"
	case ColliderRolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// Capsule is a vertical capsule with a body-local center offset.
type Capsule struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Collider stores both capsule configurations and which one is live.
type Collider struct {
	Standing Capsule
	Rolling  Capsule
	Active   ColliderProfile
}

// Current returns the capsule for the active profile.
func (c Collider) Current() Capsule {
	if c.Active == ColliderRolling {
		return c.Rolling
	}
	return c.Standing
}

var ColliderComponent = NewComponent[Collider]()
