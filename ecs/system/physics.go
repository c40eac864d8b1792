package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

// DefaultGravity is the downward acceleration in world units per second squared.
const DefaultGravity = 30.0

// PhysicsSystem owns the Chipmunk space. It creates bodies for new
// PhysicsBody components, steps the space by the fixed step, and copies body
// positions back into transforms.
type PhysicsSystem struct {
	space *cp.Space
	step  time.Duration

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(step time.Duration, gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	// World space is Y-up.
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:    space,
		step:     step,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)
	ps.space.Step(ps.step.Seconds())
	ps.syncTransforms(w)
}

// Sync registers new physics entities and drops the ones that died, without
// stepping the space.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	entities := ecs.Query(w, component.PhysicsBodyComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.createBodyInfo(w, e, transform, bodyComp)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	filter := cp.SHAPE_FILTER_ALL
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		mask := layer.Mask
		if mask == 0 {
			mask = cp.ALL_CATEGORIES
		}
		filter = cp.NewShapeFilter(cp.NO_GROUP, layer.Category, mask)
	}

	if bodyComp.Static {
		box, ok := ecs.Get(w, e, component.StaticBoxComponent.Kind())
		if !ok || box.Width <= 0 || box.Height <= 0 {
			return nil
		}
		bb := cp.NewBBForExtents(cp.Vector{X: transform.X, Y: transform.Y}, box.Width/2, box.Height/2)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return nil
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// infinite moment: the character never tips over
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	ps.space.AddBody(body)

	shape := capsuleShape(body, collider.Current())
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(filter)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

// capsuleShape builds a vertical capsule as a rounded segment, or a circle when
// the capsule is no taller than it is wide.
func capsuleShape(body *cp.Body, c component.Capsule) *cp.Shape {
	r := c.Width / 2
	half := c.Height/2 - r
	center := cp.Vector{X: c.OffsetX, Y: c.OffsetY}
	if half <= 0 {
		return cp.NewCircle(body, r, center)
	}
	a := cp.Vector{X: center.X, Y: center.Y - half}
	b := cp.Vector{X: center.X, Y: center.Y + half}
	return cp.NewSegment(body, a, b, r)
}

// ApplyCollider swaps e's shape for one built from the active collider
// profile. The swap happens immediately, so the next query or step already
// sees the new geometry.
func (ps *PhysicsSystem) ApplyCollider(w *ecs.World, e ecs.Entity) {
	if ps == nil || w == nil {
		return
	}
	info, ok := ps.entities[e]
	if !ok || info.static {
		return
	}
	collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	old := info.shape
	shape := capsuleShape(info.body, collider.Current())
	if old != nil {
		shape.SetFriction(old.Friction())
		shape.SetFilter(old.Filter)
		shape.SetCollisionType(collisionTypePlayer)
		ps.space.RemoveShape(old)
	}
	ps.space.AddShape(shape)
	info.shape = shape

	if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		bodyComp.Shape = shape
	}
}

// OverlapBox reports whether any shape whose category is in mask overlaps the
// axis-aligned box centered on (cx, cy).
func (ps *PhysicsSystem) OverlapBox(cx, cy, width, height float64, mask uint) bool {
	if ps == nil || ps.space == nil || width <= 0 || height <= 0 || mask == 0 {
		return false
	}
	bb := cp.NewBBForExtents(cp.Vector{X: cx, Y: cy}, width/2, height/2)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	hit := false
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		if !shape.Sensor() {
			hit = true
		}
	}, nil)
	return hit
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
