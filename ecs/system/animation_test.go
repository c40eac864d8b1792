package system

import (
	"testing"
	"time"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

func TestClipFor(t *testing.T) {
	cases := []struct {
		name  string
		flags component.AnimationFlags
		want  string
	}{
		{"none", component.AnimationFlags{}, AnimIdle},
		{"moving", component.AnimationFlags{IsMoving: true}, AnimRun},
		{"jumping_while_moving", component.AnimationFlags{IsMoving: true, IsJumping: true}, AnimJump},
		{"rolling_beats_all", component.AnimationFlags{IsMoving: true, IsJumping: true, IsRolling: true}, AnimRoll},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClipFor(c.flags); got != c.want {
				t.Fatalf("ClipFor(%+v) = %q, want %q", c.flags, got, c.want)
			}
		})
	}
}

func TestAnimationSystemAdvancesFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	flags := &component.AnimationFlags{IsMoving: true}
	anim := &component.Animation{Defs: map[string]component.AnimationDef{
		AnimRun:  {Name: AnimRun, FrameCount: 4, FPS: 10, Loop: true},
		AnimRoll: {Name: AnimRoll, FrameCount: 3, FPS: 10},
	}}
	if err := ecs.Add(w, e, component.AnimationFlagsComponent.Kind(), flags); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		t.Fatal(err)
	}

	sys := NewAnimationSystem(100 * time.Millisecond)
	sys.Update(w)
	if anim.Current != AnimRun || anim.Frame != 1 {
		t.Fatalf("expected run frame 1, got %q frame %d", anim.Current, anim.Frame)
	}
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if anim.Frame != 0 {
		t.Fatalf("expected looping run to wrap to 0, got %d", anim.Frame)
	}

	flags.IsRolling = true
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	if anim.Current != AnimRoll || anim.Frame != 2 {
		t.Fatalf("expected roll clip held on its last frame, got %q frame %d", anim.Current, anim.Frame)
	}

	flags.IsRolling = false
	flags.IsMoving = false
	sys.Update(w)
	if anim.Current != AnimIdle || anim.Frame != 0 {
		t.Fatalf("expected idle reset to frame 0, got %q frame %d", anim.Current, anim.Frame)
	}
}
