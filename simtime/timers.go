// Package simtime schedules one-shot callbacks against simulation time.
//
// Time only moves when Advance is called by the game loop, so timers are
// deterministic and never run on another goroutine.
package simtime

import (
	"sort"
	"time"
)

// Timers is a set of pending one-shot timers sharing one simulation clock.
type Timers struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
	firing  bool
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	owner *Timers
	seq   uint64
	due   time.Duration
	fn    func()
	done  bool
}

func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the current simulation time.
func (t *Timers) Now() time.Duration {
	if t == nil {
		return 0
	}
	return t.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (t *Timers) Pending() int {
	if t == nil {
		return 0
	}
	return len(t.pending)
}

// AfterFunc schedules fn to run once, on the first Advance that reaches
// Now()+delay. A non-positive delay fires on the next Advance.
func (t *Timers) AfterFunc(delay time.Duration, fn func()) *Timer {
	if t == nil || fn == nil {
		return nil
	}
	if delay < 0 {
		delay = 0
	}
	t.seq++
	timer := &Timer{owner: t, seq: t.seq, due: t.now + delay, fn: fn}
	t.pending = append(t.pending, timer)
	return timer
}

// Advance moves the clock forward by dt and fires every timer that is due,
// earliest first; ties fire in scheduling order.
func (t *Timers) Advance(dt time.Duration) {
	if t == nil {
		return
	}
	if dt > 0 {
		t.now += dt
	}
	if t.firing {
		return
	}

	var due []*Timer
	keep := t.pending[:0]
	for _, timer := range t.pending {
		if timer.due <= t.now {
			due = append(due, timer)
		} else {
			keep = append(keep, timer)
		}
	}
	for i := len(keep); i < len(t.pending); i++ {
		t.pending[i] = nil
	}
	t.pending = keep
	if len(due) == 0 {
		return
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	t.firing = true
	defer func() { t.firing = false }()
	for _, timer := range due {
		if timer.done {
			continue
		}
		timer.done = true
		timer.fn()
	}
}

// Stop cancels the timer. It reports false if the timer already fired or was
// already stopped.
func (tm *Timer) Stop() bool {
	if tm == nil || tm.done {
		return false
	}
	tm.done = true
	if tm.owner == nil {
		return true
	}
	pending := tm.owner.pending
	for i, other := range pending {
		if other == tm {
			copy(pending[i:], pending[i+1:])
			pending[len(pending)-1] = nil
			tm.owner.pending = pending[:len(pending)-1]
			break
		}
	}
	return true
}

// Active reports whether the timer is still waiting to fire.
func (tm *Timer) Active() bool {
	return tm != nil && !tm.done
}

// Due returns the simulation time at which the timer fires.
func (tm *Timer) Due() time.Duration {
	if tm == nil {
		return 0
	}
	return tm.due
}
