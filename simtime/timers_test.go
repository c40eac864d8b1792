package simtime

import (
	"testing"
	"time"
)

const step = time.Second / 60

func TestTimersFireOnce(t *testing.T) {
	timers := NewTimers()
	timers.Advance(3 * step)
	fired := 0
	timer := timers.AfterFunc(500*time.Millisecond, func() { fired++ })
	if want := 3*step + 500*time.Millisecond; timer.Due() != want {
		t.Fatalf("expected due at %v, got %v", want, timer.Due())
	}

	ticks := 0
	for fired == 0 && ticks < 100 {
		timers.Advance(step)
		ticks++
	}
	if fired != 1 {
		t.Fatalf("expected timer to fire once, fired %d", fired)
	}
	if timers.Now() < timer.Due() {
		t.Fatalf("timer fired early at %v, due %v", timers.Now(), timer.Due())
	}
	if timers.Now()-step >= timer.Due() {
		t.Fatalf("timer fired late at %v, due %v", timers.Now(), timer.Due())
	}

	for i := 0; i < 60; i++ {
		timers.Advance(step)
	}
	if fired != 1 {
		t.Fatalf("expected timer to stay fired once, fired %d", fired)
	}
	if timers.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", timers.Pending())
	}
}

func TestTimersStop(t *testing.T) {
	cases := []struct {
		name     string
		stopAt   int
		wantStop bool
		wantFire int
	}{
		{"stop_before_due", 5, true, 0},
		{"stop_after_fire", 40, false, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			timers := NewTimers()
			fired := 0
			timer := timers.AfterFunc(500*time.Millisecond, func() { fired++ })
			var stopped bool
			for i := 1; i <= 60; i++ {
				timers.Advance(step)
				if i == c.stopAt {
					stopped = timer.Stop()
				}
			}
			if stopped != c.wantStop {
				t.Fatalf("Stop() = %v, want %v", stopped, c.wantStop)
			}
			if fired != c.wantFire {
				t.Fatalf("fired %d times, want %d", fired, c.wantFire)
			}
			if timer.Active() {
				t.Fatalf("timer should not be active")
			}
		})
	}
}

func TestTimersOrder(t *testing.T) {
	timers := NewTimers()
	var order []string
	timers.AfterFunc(30*time.Millisecond, func() { order = append(order, "late") })
	timers.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })
	timers.AfterFunc(10*time.Millisecond, func() { order = append(order, "early2") })

	timers.Advance(50 * time.Millisecond)

	want := []string{"early", "early2", "late"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestTimerStoppedByEarlierCallback(t *testing.T) {
	timers := NewTimers()
	fired := false
	var second *Timer
	timers.AfterFunc(10*time.Millisecond, func() { second.Stop() })
	second = timers.AfterFunc(10*time.Millisecond, func() { fired = true })

	timers.Advance(20 * time.Millisecond)

	if fired {
		t.Fatalf("stopped timer should not fire")
	}
}

func TestNilTimers(t *testing.T) {
	var timers *Timers
	if timers.AfterFunc(time.Second, func() {}) != nil {
		t.Fatalf("expected nil timer from nil Timers")
	}
	timers.Advance(step)
	var timer *Timer
	if timer.Stop() {
		t.Fatalf("nil timer Stop should report false")
	}
}
