package component

// Camera follows a target. Its Transform is the world point shown at the
// center of the screen.
type Camera struct {
	TargetName string
	// Zoom is screen pixels per world unit.
	Zoom       float64
	Smoothness float64
	// LookAhead shifts the view along the target's horizontal velocity.
	LookAhead float64
}

var CameraComponent = NewComponent[Camera]()
