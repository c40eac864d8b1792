package component

// Input stores one tick of sampled input for an entity.
//
// The pressed/released fields are edges: they are true only on the tick the
// physical press or release happened, never for the whole time a key is held.
type Input struct {
	MoveX          float64
	Jump           bool
	JumpPressed    bool
	Crouch         bool
	CrouchPressed  bool
	CrouchReleased bool
}

var InputComponent = NewComponent[Input]()
