package system

import (
	"log"
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"github.com/milk9111/rollrunner/simtime"
)

const (
	SoundJump = "Jump"
	SoundRoll = "Roll"
)

// SoundCues is the part of the game session the controller talks to. Calls are
// fire-and-forget.
type SoundCues interface {
	PlaySound(name string)
	PlayLoopedSound(name string)
	StopLoopedSound()
}

// GroundQuery answers the grounded overlap test: does an axis-aligned box of
// size w x h centered at (cx, cy) touch any shape in mask?
type GroundQuery interface {
	OverlapBox(cx, cy, w, h float64, mask uint) bool
}

// ColliderShaper rebuilds an entity's physics shape from its Collider component.
type ColliderShaper interface {
	ApplyCollider(w *ecs.World, e ecs.Entity)
}

// PlayerControllerSystem runs the locomotion state machine once per fixed step
// for every player entity.
type PlayerControllerSystem struct {
	step   time.Duration
	timers *simtime.Timers
	ground GroundQuery
	shaper ColliderShaper
	sounds SoundCues

	tick      uint64
	cueFailed map[string]bool
}

func NewPlayerControllerSystem(step time.Duration, timers *simtime.Timers, ground GroundQuery, shaper ColliderShaper, sounds SoundCues) *PlayerControllerSystem {
	if timers == nil {
		timers = simtime.NewTimers()
	}
	return &PlayerControllerSystem{
		step:      step,
		timers:    timers,
		ground:    ground,
		shaper:    shaper,
		sounds:    sounds,
		cueFailed: make(map[string]bool),
	}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	p.tick++

	entities := ecs.Query(w,
		component.PlayerTagComponent.Kind().ID(),
		component.PlayerComponent.Kind().ID(),
		component.PlayerStateMachineComponent.Kind().ID(),
		component.InputComponent.Kind().ID(),
		component.PhysicsBodyComponent.Kind().ID(),
	)
	for _, e := range entities {
		p.updatePlayer(w, e)
	}
}

func (p *PlayerControllerSystem) updatePlayer(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	sm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		// physics has not created the body yet
		return
	}
	lock := ensure(w, e, component.JumpLockComponent.Kind())
	sensor := ensure(w, e, component.GroundSensorComponent.Kind())
	flags := ensure(w, e, component.AnimationFlagsComponent.Kind())

	ctx := p.context(w, e, player, sm, input, bodyComp, lock, sensor, flags)

	if sm.State == nil {
		// Spawn airborne so the first landing goes through the jump path.
		sensor.Grounded = false
		ctx.StartJump()
	}

	if !lock.Held {
		sensor.Grounded = p.probeGround(player, bodyComp)
		flags.IsJumping = !sensor.Grounded
	}

	sm.State.Update(ctx)
}

func (p *PlayerControllerSystem) context(
	w *ecs.World,
	e ecs.Entity,
	player *component.Player,
	sm *component.PlayerStateMachine,
	input *component.Input,
	bodyComp *component.PhysicsBody,
	lock *component.JumpLock,
	sensor *component.GroundSensor,
	flags *component.AnimationFlags,
) *component.PlayerStateContext {
	body := bodyComp.Body
	return &component.PlayerStateContext{
		Input:      input,
		Player:     player,
		Step:       p.step.Seconds(),
		IsGrounded: func() bool { return sensor.Grounded },
		GetVelocity: func() (float64, float64) {
			v := body.Velocity()
			return v.X, v.Y
		},
		SetVelocity: func(x, y float64) {
			body.SetVelocity(x, y)
		},
		SetCollider: func(profile component.ColliderProfile) {
			collider, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
			if !ok {
				return
			}
			collider.Active = profile
			if p.shaper != nil {
				p.shaper.ApplyCollider(w, e)
			}
		},
		SetAnimation: flags.Set,
		PlaySound: func(name string) {
			p.cue(name, func(s SoundCues) { s.PlaySound(name) })
		},
		PlayLoopedSound: func(name string) {
			p.cue(name, func(s SoundCues) { s.PlayLoopedSound(name) })
		},
		StopLoopedSound: func() {
			p.cue("stop loop", func(s SoundCues) { s.StopLoopedSound() })
		},
		StartJump: func() {
			p.engageJumpLock(w, e, player, lock)
			sensor.Grounded = false
			flags.IsJumping = true
			p.changeState(w, e, sm, playerStateJumping)
		},
		ChangeState: func(state component.PlayerState) {
			p.changeState(w, e, sm, state)
		},
	}
}

func (p *PlayerControllerSystem) engageJumpLock(w *ecs.World, e ecs.Entity, player *component.Player, lock *component.JumpLock) {
	if lock.Timer != nil {
		lock.Timer.Stop()
	}
	delay := player.JumpLockDelay
	if delay <= 0 {
		delay = component.DefaultJumpLockDelay
	}
	lock.Held = true
	lock.Timer = p.timers.AfterFunc(delay, func() {
		// Get fails for a destroyed entity, so a late fire writes nothing.
		l, ok := ecs.Get(w, e, component.JumpLockComponent.Kind())
		if !ok {
			return
		}
		l.Held = false
		l.Timer = nil
	})
}

func (p *PlayerControllerSystem) changeState(w *ecs.World, e ecs.Entity, sm *component.PlayerStateMachine, next component.PlayerState) {
	if next == nil || sm.State == next {
		return
	}
	from := ""
	if sm.State != nil {
		from = sm.State.Name()
	}
	sm.State = next
	w.Events().Push(ecs.Event{
		Type: ecs.EventLocomotionChanged,
		Data: ecs.LocomotionChanged{Entity: e, From: from, To: next.Name(), Tick: p.tick},
	})
}

func (p *PlayerControllerSystem) probeGround(player *component.Player, bodyComp *component.PhysicsBody) bool {
	if p.ground == nil || bodyComp.Body == nil {
		return false
	}
	pos := bodyComp.Body.Position()
	return p.ground.OverlapBox(
		pos.X+player.Probe.OffsetX,
		pos.Y+player.Probe.OffsetY,
		player.Probe.Width,
		player.Probe.Height,
		player.GroundMask,
	)
}

// cue calls into the sound facade without letting a missing or failing
// facade break the tick. Each failing cue is logged once.
func (p *PlayerControllerSystem) cue(name string, call func(SoundCues)) {
	if p.sounds == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if !p.cueFailed[name] {
				p.cueFailed[name] = true
				log.Printf("player controller: sound cue %q failed: %v", name, r)
			}
		}
	}()
	call(p.sounds)
}

// DestroyPlayer cancels the pending jump-lock timer, stops a running roll
// loop, and destroys the entity.
func (p *PlayerControllerSystem) DestroyPlayer(w *ecs.World, e ecs.Entity) bool {
	if p == nil || !ecs.IsAlive(w, e) {
		return false
	}
	if lock, ok := ecs.Get(w, e, component.JumpLockComponent.Kind()); ok && lock.Timer != nil {
		lock.Timer.Stop()
		lock.Timer = nil
	}
	if sm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind()); ok && sm.State == playerStateRolling {
		p.cue("stop loop", func(s SoundCues) { s.StopLoopedSound() })
	}
	return ecs.DestroyEntity(w, e)
}

// State returns the name of a player's active locomotion state.
func State(w *ecs.World, e ecs.Entity) string {
	sm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
	if !ok || sm.State == nil {
		return ""
	}
	return sm.State.Name()
}

func ensure[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	if v, ok := ecs.Get(w, e, kind); ok {
		return v
	}
	v := new(T)
	if err := ecs.Add(w, e, kind, v); err != nil {
		panic("player controller: add component: " + err.Error())
	}
	return v
}
