// Package scene wires one level into a world and the fixed-step system order.
// The Ebiten game and the headless simulator both run a Scene.
package scene

import (
	"fmt"
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/entity"
	"github.com/milk9111/rollrunner/ecs/system"
	"github.com/milk9111/rollrunner/levels"
	"github.com/milk9111/rollrunner/simtime"
)

// Step is the fixed simulation step.
const Step = time.Second / 60

type Options struct {
	Input  system.InputSource
	Sounds system.SoundCues

	// Gravity defaults to system.DefaultGravity when zero.
	Gravity float64

	// Logf receives locomotion transitions. Nil disables the state log.
	Logf func(format string, args ...any)

	// Camera adds a following camera. Headless runs leave it off.
	Camera bool
}

type Scene struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Physics   *system.PhysicsSystem
	Timers    *simtime.Timers
	Player    ecs.Entity

	controller *system.PlayerControllerSystem
	ticks      uint64
}

// New loads lvl into a fresh world. Systems run in this order every tick:
// input, timers, player controller, physics, camera, animation, state log.
func New(lvl *levels.Level, opts Options) (*Scene, error) {
	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, lvl)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	gravity := opts.Gravity
	if gravity == 0 {
		gravity = system.DefaultGravity
	}
	timers := simtime.NewTimers()
	physics := system.NewPhysicsSystem(Step, gravity)
	controller := system.NewPlayerControllerSystem(Step, timers, physics, physics, opts.Sounds)

	sched := ecs.NewScheduler(
		system.NewInputSystem(opts.Input),
		system.NewTimerSystem(timers, Step),
		controller,
		physics,
	)
	if opts.Camera {
		if x, y, ok := lvl.Spawn(); ok {
			if _, err := entity.NewCameraAt(w, x, y, system.DefaultZoom); err != nil {
				return nil, fmt.Errorf("scene: camera: %w", err)
			}
		}
		sched.Add(system.NewCameraSystem(Step))
	}
	sched.Add(system.NewAnimationSystem(Step))
	if opts.Logf != nil {
		sched.Add(system.NewStateLogSystem(opts.Logf))
	}

	// Create bodies now so the controller sees the player on the first tick.
	physics.Sync(w)

	return &Scene{
		World:     w,
		Scheduler: sched,
		Physics:   physics,
		Timers:    timers,
		Player:    player,

		controller: controller,
	}, nil
}

// Update advances the scene by one fixed step.
func (s *Scene) Update() {
	if s == nil {
		return
	}
	s.ticks++
	s.Scheduler.Update(s.World)
}

func (s *Scene) Ticks() uint64 {
	if s == nil {
		return 0
	}
	return s.ticks
}

// PlayerState is the player's current locomotion state name.
func (s *Scene) PlayerState() string {
	if s == nil {
		return ""
	}
	return system.State(s.World, s.Player)
}

// Close destroys the player so any pending jump lock and roll loop are released.
func (s *Scene) Close() {
	if s == nil || s.World == nil {
		return
	}
	s.controller.DestroyPlayer(s.World, s.Player)
	s.Physics.Sync(s.World)
}
