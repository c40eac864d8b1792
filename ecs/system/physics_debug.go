package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	probeColorGrounded = color.NRGBA{R: 80, G: 220, B: 80, A: 220}
	probeColorAirborne = color.NRGBA{R: 220, G: 80, B: 80, A: 220}
)

// DrawPhysicsDebug outlines every shape in the space and each player's ground
// probe box.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	view := ViewFor(w, b.Dx(), b.Dy())
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, view: view})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, player *component.Player, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		clr := probeColorAirborne
		if sensor, ok := ecs.Get(w, e, component.GroundSensorComponent.Kind()); ok && sensor.Grounded {
			clr = probeColorGrounded
		}
		x, y, pw, ph := view.RectToScreen(pos.X+player.Probe.OffsetX, pos.Y+player.Probe.OffsetY, player.Probe.Width, player.Probe.Height)
		vector.StrokeRect(screen, float32(x), float32(y), float32(pw), float32(ph), 1, clr, false)
	})
}

// DrawPlayerStateDebug prints the controller state of the first player.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	stateName := State(w, player)
	if stateName == "" {
		stateName = "none"
	}
	grounded := false
	if sensor, ok := ecs.Get(w, player, component.GroundSensorComponent.Kind()); ok {
		grounded = sensor.Grounded
	}
	locked := false
	if lock, ok := ecs.Get(w, player, component.JumpLockComponent.Kind()); ok {
		locked = lock.Held
	}
	profile := component.ColliderStanding
	if collider, ok := ecs.Get(w, player, component.ColliderComponent.Kind()); ok {
		profile = collider.Active
	}
	var flags component.AnimationFlags
	if f, ok := ecs.Get(w, player, component.AnimationFlagsComponent.Kind()); ok {
		flags = *f
	}
	vx, vy := 0.0, 0.0
	if bodyComp, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
		v := bodyComp.Body.Velocity()
		vx, vy = v.X, v.Y
	}
	text := fmt.Sprintf("State: %s\nGrounded: %v\nJump lock: %v\nCollider: %s\nisMoving=%v isRolling=%v isJumping=%v\nVelocity: %.2f, %.2f",
		stateName, grounded, locked, profile, flags.IsMoving, flags.IsRolling, flags.IsJumping, vx, vy)
	ebitenutil.DebugPrintAt(screen, text, 10, 30)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		d.drawLine(a, b, outline)
		return
	}
	// Two tangent lines plus the end caps.
	n := b.Sub(a).Perp().Normalize().Mult(radius)
	d.drawLine(a.Add(n), b.Add(n), outline)
	d.drawLine(a.Sub(n), b.Sub(n), outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.view.ToScreen(pos.X, pos.Y)
	vector.DrawFilledCircle(d.screen, float32(x), float32(y), float32(size/2), toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.view.ToScreen(a.X, a.Y)
	x2, y2 := d.view.ToScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(color), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, color cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, color)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
