package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/rollrunner/ecs/component"
)

func TestEdgeTracker(t *testing.T) {
	var tr EdgeTracker
	seq := []struct {
		name   string
		levels Levels
		want   component.Input
	}{
		{"idle", Levels{}, component.Input{}},
		{"press_crouch", Levels{Crouch: true}, component.Input{Crouch: true, CrouchPressed: true}},
		{"hold_crouch", Levels{Crouch: true}, component.Input{Crouch: true}},
		{"release_crouch", Levels{}, component.Input{CrouchReleased: true}},
		{"press_jump", Levels{Jump: true, MoveX: 1}, component.Input{MoveX: 1, Jump: true, JumpPressed: true}},
		{"hold_jump", Levels{Jump: true, MoveX: 3}, component.Input{MoveX: 1, Jump: true}},
		{"release_jump", Levels{MoveX: -2}, component.Input{MoveX: -1}},
	}
	for _, s := range seq {
		if got := tr.Next(s.levels); got != s.want {
			t.Fatalf("%s: got %+v, want %+v", s.name, got, s.want)
		}
	}

	tr.Next(Levels{Crouch: true})
	tr.Reset()
	if got := tr.Next(Levels{Crouch: true}); !got.CrouchPressed {
		t.Fatalf("expected a fresh press edge after reset, got %+v", got)
	}
}

func TestParseScript(t *testing.T) {
	src := `
# warm up
- ticks: 2
- ticks: 1
  hold: [right, jump]   # hop
- ticks: 2
  hold: [crouch]
`
	s, err := ParseScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 ticks, got %d", s.Len())
	}

	want := []component.Input{
		{},
		{},
		{MoveX: 1, Jump: true, JumpPressed: true},
		{Crouch: true, CrouchPressed: true},
		{Crouch: true},
		{CrouchReleased: true},
		{},
	}
	for i, w := range want {
		if i == 5 && !s.Done() {
			t.Fatalf("expected script done after %d ticks", s.Len())
		}
		if got := s.Sample(); got != w {
			t.Fatalf("tick %d: got %+v, want %+v", i, got, w)
		}
	}

	s.Rewind()
	if s.Done() {
		t.Fatalf("rewound script should not be done")
	}
	s.Sample()
	s.Sample()
	if got := s.Sample(); !got.JumpPressed {
		t.Fatalf("expected jump edge after rewind, got %+v", got)
	}
}

func TestParseEmptyScript(t *testing.T) {
	for _, src := range []string{"", "# nothing yet\n"} {
		s, err := ParseScript(strings.NewReader(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if s.Len() != 0 || !s.Done() {
			t.Fatalf("expected empty script for %q, got %d ticks", src, s.Len())
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"bad_count", "- ticks: x\n  hold: [right]"},
		{"zero_count", "- ticks: 0\n  hold: [right]"},
		{"missing_count", "- hold: [right]"},
		{"unknown_control", "- ticks: 3\n  hold: [dash]"},
		{"not_a_list", "ticks: 3"},
		{"bad_yaml", "- ticks: [3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseScript(strings.NewReader(c.src)); !errors.Is(err, ErrBadScript) {
				t.Fatalf("expected ErrBadScript, got %v", err)
			}
		})
	}
}
