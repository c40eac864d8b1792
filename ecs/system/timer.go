package system

import (
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/simtime"
)

// TimerSystem advances simulation timers by one fixed step. It runs at the
// head of the tick so callbacks land before the controller reads their state.
type TimerSystem struct {
	timers *simtime.Timers
	step   time.Duration
}

func NewTimerSystem(timers *simtime.Timers, step time.Duration) *TimerSystem {
	return &TimerSystem{timers: timers, step: step}
}

func (t *TimerSystem) Update(w *ecs.World) {
	if t == nil {
		return
	}
	t.timers.Advance(t.step)
}
