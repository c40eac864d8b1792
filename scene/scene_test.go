package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
	"github.com/milk9111/rollrunner/input"
	"github.com/milk9111/rollrunner/levels"
)

type recordedSounds struct {
	calls []string
}

func (r *recordedSounds) PlaySound(name string)       { r.calls = append(r.calls, "play:"+name) }
func (r *recordedSounds) PlayLoopedSound(name string) { r.calls = append(r.calls, "loop:"+name) }
func (r *recordedSounds) StopLoopedSound()            { r.calls = append(r.calls, "stop") }

func loadLevel(t *testing.T) *levels.Level {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS("level1.json")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	return lvl
}

func runUntil(t *testing.T, s *Scene, limit int, state string) {
	t.Helper()
	for i := 0; i < limit; i++ {
		s.Update()
		if s.PlayerState() == state {
			return
		}
	}
	t.Fatalf("player never reached %s within %d ticks, still %q", state, limit, s.PlayerState())
}

func TestSceneLandsAndMoves(t *testing.T) {
	script := input.NewScript(
		input.Step{Ticks: 180},
		input.Step{Ticks: 30, Levels: input.Levels{MoveX: 1}},
		input.Step{Ticks: 1, Levels: input.Levels{MoveX: 1, Jump: true}},
	)
	sounds := &recordedSounds{}
	var lines []string
	s, err := New(loadLevel(t), Options{
		Input:  script,
		Sounds: sounds,
		Logf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}

	s.Update()
	if got := s.PlayerState(); got != "jumping" {
		t.Fatalf("expected airborne spawn, got %q", got)
	}
	runUntil(t, s, 179, "idling")
	for s.Ticks() < 180 {
		s.Update()
	}

	transform, _ := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	startX := transform.X
	runUntil(t, s, 30, "running")
	for s.Ticks() < 210 {
		s.Update()
	}
	if transform.X <= startX {
		t.Fatalf("expected player to move right from %.3f, at %.3f", startX, transform.X)
	}

	s.Update()
	if got := s.PlayerState(); got != "jumping" {
		t.Fatalf("expected jump, got %q", got)
	}
	if len(sounds.calls) != 1 || sounds.calls[0] != "play:Jump" {
		t.Fatalf("expected one jump cue, got %v", sounds.calls)
	}
	if len(lines) < 4 {
		t.Fatalf("expected spawn, landing, run and jump logged, got %v", lines)
	}
}

func TestSceneJumpOnReleaseStops(t *testing.T) {
	// Releasing the direction and pressing jump on the same tick: the
	// moveX == 0 rule comes first, so the jump press is dropped.
	script := input.NewScript(
		input.Step{Ticks: 180},
		input.Step{Ticks: 30, Levels: input.Levels{MoveX: 1}},
		input.Step{Ticks: 1, Levels: input.Levels{Jump: true}},
		input.Step{Ticks: 5},
	)
	sounds := &recordedSounds{}
	s, err := New(loadLevel(t), Options{Input: script, Sounds: sounds})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	for s.Ticks() < 210 {
		s.Update()
	}
	if got := s.PlayerState(); got != "running" {
		t.Fatalf("expected running before release, got %q", got)
	}

	s.Update()
	if got := s.PlayerState(); got != "idling" {
		t.Fatalf("expected idling after release with jump, got %q", got)
	}
	for s.Ticks() < 216 {
		s.Update()
		if got := s.PlayerState(); got != "idling" {
			t.Fatalf("tick %d: expected idling, got %q", s.Ticks(), got)
		}
	}
	if len(sounds.calls) != 0 {
		t.Fatalf("expected no cues, got %v", sounds.calls)
	}
}

func TestSceneIdleDriftOnGround(t *testing.T) {
	s, err := New(loadLevel(t), Options{Input: input.NewScript()})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	runUntil(t, s, 180, "idling")

	player, _ := ecs.Get(s.World, s.Player, component.PlayerComponent.Kind())
	transform, _ := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	startX := transform.X

	const n = 60
	for i := 0; i < n; i++ {
		s.Update()
		if got := s.PlayerState(); got != "idling" {
			t.Fatalf("tick %d: expected idling, got %q", s.Ticks(), got)
		}
	}
	want := startX + n*(-player.IdleDrift)*Step.Seconds()
	if math.Abs(transform.X-want) > 1e-9 {
		t.Fatalf("expected x %.12f after %d ticks, got %.12f", want, n, transform.X)
	}
}

func TestSceneCloseReleasesTimers(t *testing.T) {
	s, err := New(loadLevel(t), Options{})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	s.Update()
	if s.Timers.Pending() != 1 {
		t.Fatalf("expected jump lock pending after spawn, got %d", s.Timers.Pending())
	}
	s.Close()
	if s.Timers.Pending() != 0 {
		t.Fatalf("expected no pending timers after close, got %d", s.Timers.Pending())
	}
	if ecs.IsAlive(s.World, s.Player) {
		t.Fatalf("expected player destroyed")
	}
}

func TestSceneCamera(t *testing.T) {
	s, err := New(loadLevel(t), Options{Camera: true})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	if _, ok := ecs.First(s.World, component.CameraComponent.Kind()); !ok {
		t.Fatalf("expected camera entity")
	}
	s.Update()
}

func TestSceneRejectsLevelWithoutSpawn(t *testing.T) {
	lvl := loadLevel(t)
	lvl.Entities = nil
	if _, err := New(lvl, Options{}); err == nil {
		t.Fatalf("expected error for level without spawn")
	}
}
