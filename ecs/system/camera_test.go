package system

import (
	"math"
	"testing"

	"github.com/milk9111/rollrunner/ecs"
	"github.com/milk9111/rollrunner/ecs/component"
)

func TestViewToScreen(t *testing.T) {
	v := View{CamX: 10, CamY: 5, Zoom: 20, Width: 640, Height: 360}
	cases := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"center", 10, 5, 320, 180},
		{"right", 11, 5, 340, 180},
		{"up_is_screen_up", 10, 6, 320, 160},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := v.ToScreen(c.x, c.y)
			if sx != c.sx || sy != c.sy {
				t.Fatalf("ToScreen(%v,%v) = (%v,%v), want (%v,%v)", c.x, c.y, sx, sy, c.sx, c.sy)
			}
		})
	}

	x, y, w, h := v.RectToScreen(10, 5, 2, 1)
	if x != 300 || y != 170 || w != 40 || h != 20 {
		t.Fatalf("unexpected rect (%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestViewForDefaults(t *testing.T) {
	v := ViewFor(ecs.NewWorld(), 100, 50)
	if v.Zoom != DefaultZoom || v.CamX != 0 || v.CamY != 0 {
		t.Fatalf("expected default view, got %+v", v)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	cases := []struct {
		name       string
		smoothness float64
		snap       bool
	}{
		{"snap", 0, true},
		{"eased", 5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := ecs.CreateEntity(w)
			if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 10, Y: 4}); err != nil {
				t.Fatal(err)
			}
			cam := ecs.CreateEntity(w)
			if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{TargetName: "player", Zoom: 16, Smoothness: c.smoothness}); err != nil {
				t.Fatal(err)
			}
			camT := &component.Transform{}
			if err := ecs.Add(w, cam, component.TransformComponent.Kind(), camT); err != nil {
				t.Fatal(err)
			}

			sys := NewCameraSystem(testStep)
			sys.Update(w)
			if c.snap {
				if camT.X != 10 || camT.Y != 4 {
					t.Fatalf("expected camera on target, got (%v,%v)", camT.X, camT.Y)
				}
				return
			}
			if camT.X <= 0 || camT.X >= 10 {
				t.Fatalf("expected camera partway to target, got %v", camT.X)
			}
			for i := 0; i < 600; i++ {
				sys.Update(w)
			}
			if math.Abs(camT.X-10) > 1e-3 || math.Abs(camT.Y-4) > 1e-3 {
				t.Fatalf("expected camera to converge, got (%v,%v)", camT.X, camT.Y)
			}

			v := ViewFor(w, 320, 240)
			if v.Zoom != 16 {
				t.Fatalf("expected camera zoom in view, got %v", v.Zoom)
			}
		})
	}
}
