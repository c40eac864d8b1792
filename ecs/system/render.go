package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	defaultTileColor   color.Color = colornames.Slategray
	defaultPlayerColor color.Color = colornames.Orange
	rollingTint                    = color.NRGBA{R: 255, G: 255, B: 255, A: 70}
)

// RenderSystem draws level boxes and player capsules as flat shapes.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	view := ViewFor(w, b.Dx(), b.Dy())

	ecs.ForEach2(w, component.StaticBoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.StaticBox, t *component.Transform) {
		x, y, bw, bh := view.RectToScreen(t.X, t.Y, box.Width, box.Height)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(bw), float32(bh), colorOf(w, e, defaultTileColor), false)
	})

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, collider *component.Collider, t *component.Transform) {
		clr := colorOf(w, e, defaultPlayerColor)
		drawCapsule(screen, view, t.X, t.Y, collider.Current(), clr)
		if collider.Active == component.ColliderRolling {
			drawCapsule(screen, view, t.X, t.Y, collider.Current(), rollingTint)
		}
		r.drawFrameMarker(screen, view, w, e, t, collider.Current())
	})
}

// drawFrameMarker ticks a dot around the capsule top so the animation clip
// and frame are visible without sprites.
func (r *RenderSystem) drawFrameMarker(screen *ebiten.Image, view View, w *ecs.World, e ecs.Entity, t *component.Transform, c component.Capsule) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	def, ok := anim.Defs[anim.Current]
	if !ok || def.FrameCount <= 0 {
		return
	}
	frac := (float64(anim.Frame) + 0.5) / float64(def.FrameCount)
	x, y := view.ToScreen(t.X+c.OffsetX-c.Width/2+frac*c.Width, t.Y+c.OffsetY+c.Height/2-c.Width/4)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(view.Zoom*c.Width/10), colornames.Black, true)
}

func drawCapsule(screen *ebiten.Image, view View, x, y float64, c component.Capsule, clr color.Color) {
	r := c.Width / 2
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	half := c.Height/2 - r
	if half > 0 {
		rx, ry, rw, rh := view.RectToScreen(cx, cy, c.Width, 2*half)
		vector.DrawFilledRect(screen, float32(rx), float32(ry), float32(rw), float32(rh), clr, true)
	} else {
		half = 0
	}
	for _, oy := range []float64{-half, half} {
		sx, sy := view.ToScreen(cx, cy+oy)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*view.Zoom), clr, true)
	}
}

func colorOf(w *ecs.World, e ecs.Entity, fallback color.Color) color.Color {
	if look, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok && look.Color != nil {
		return look.Color
	}
	return fallback
}
