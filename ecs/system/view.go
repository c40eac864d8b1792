package system

import (
	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

const DefaultZoom = 16.0

// View projects Y-up world units onto a Y-down screen of Width x Height
// pixels, centered on (CamX, CamY).
type View struct {
	CamX, CamY    float64
	Zoom          float64
	Width, Height int
}

// ViewFor reads the first camera entity. Without one the view is centered on
// the origin at DefaultZoom.
func ViewFor(w *ecs.World, width, height int) View {
	v := View{Zoom: DefaultZoom, Width: width, Height: height}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX, v.CamY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.Zoom = cam.Zoom
	}
	return v
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.CamX)*v.Zoom + float64(v.Width)/2, float64(v.Height)/2 - (y-v.CamY)*v.Zoom
}

// RectToScreen converts a world box given by center and size into the screen
// rectangle's top-left corner and size.
func (v View) RectToScreen(cx, cy, width, height float64) (x, y, w, h float64) {
	x, y = v.ToScreen(cx-width/2, cy+height/2)
	return x, y, width * v.Zoom, height * v.Zoom
}
