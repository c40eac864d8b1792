package component

import "image/color"

// Appearance is the flat color an entity is drawn with.
type Appearance struct {
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
