package component

// Transform is the world-space position of an entity. World space is Y-up.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
