package assets

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/rollrunner/prefabs"
)

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"jump.wav", "jump.wav"},
		{"assets/jump.wav", "jump.wav"},
		{"/home/me/game/assets/music/i_ran.wav", "music/i_ran.wav"},
		{"/tmp/roll.wav", "roll.wav"},
	}
	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSessionClipsDecode(t *testing.T) {
	spec, err := prefabs.LoadSessionSpec()
	if err != nil {
		t.Fatalf("load session spec: %v", err)
	}
	for _, s := range spec.Sounds {
		t.Run(s.Name, func(t *testing.T) {
			b, err := LoadFile(s.File)
			if err != nil {
				t.Fatalf("load %s: %v", s.File, err)
			}
			stream, err := wav.DecodeWithoutResampling(bytes.NewReader(b))
			if err != nil {
				t.Fatalf("decode %s: %v", s.File, err)
			}
			if stream.Length() <= 0 {
				t.Fatalf("%s is empty", s.File)
			}
		})
	}
}
