package system

import (
	"log"

	"github.com/milk9111/rollrunner/ecs"
)

// StateLogSystem drains the event queue and logs locomotion transitions. It is
// only scheduled in debug mode.
type StateLogSystem struct {
	logf func(format string, args ...any)
}

func NewStateLogSystem(logf func(format string, args ...any)) *StateLogSystem {
	if logf == nil {
		logf = log.Printf
	}
	return &StateLogSystem{logf: logf}
}

func (s *StateLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventLocomotionChanged {
			continue
		}
		change, ok := evt.Data.(ecs.LocomotionChanged)
		if !ok {
			continue
		}
		from := change.From
		if from == "" {
			from = "spawn"
		}
		s.logf("tick %d: player %s %s -> %s", change.Tick, change.Entity, from, change.To)
	}
}
