package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// PhysicsBody stores Chipmunk2D runtime data and body configuration. Body and
// Shape are filled in by the physics system.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// CollisionLayer assigns category bits used by query filters.
type CollisionLayer struct {
	Category uint
	Mask     uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

// StaticBox is an axis-aligned solid, centered on the entity transform.
type StaticBox struct {
	Width  float64
	Height float64
}

var StaticBoxComponent = NewComponent[StaticBox]()

// Collision category bits.
const (
	LayerGround uint = 1 << iota
	LayerPlayer
)

var layerNames = map[string]uint{
	"ground": LayerGround,
	"player": LayerPlayer,
}

// LayerMask ORs the named collision layers together.
func LayerMask(names ...string) (uint, error) {
	var mask uint
	for _, name := range names {
		bit, ok := layerNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown collision layer %q", name)
		}
		mask |= bit
	}
	return mask, nil
}
