package system

import (
	"fmt"
	"testing"

	"github.com/milk9111/rollrunner/ecs"
)

func TestStateLogSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)

	var lines []string
	sys := NewStateLogSystem(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})

	w.Events().Push(ecs.Event{Type: ecs.EventLocomotionChanged, Data: ecs.LocomotionChanged{Entity: e, To: StateJumping, Tick: 1}})
	w.Events().Push(ecs.Event{Type: "other"})
	w.Events().Push(ecs.Event{Type: ecs.EventLocomotionChanged, Data: ecs.LocomotionChanged{Entity: e, From: StateJumping, To: StateIdling, Tick: 32}})
	sys.Update(w)

	want := []string{
		fmt.Sprintf("tick 1: player %s spawn -> jumping", e),
		fmt.Sprintf("tick 32: player %s jumping -> idling", e),
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("expected queue drained, got %+v", evts)
	}
}
