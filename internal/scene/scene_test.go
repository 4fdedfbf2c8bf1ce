package scene

import (
	"strings"
	"testing"
)

func validScene() *Scene {
	return &Scene{
		Camera: Camera{
			Position: Vec3{X: 0, Y: 0, Z: 0},
			Target:   Vec3{X: 0, Y: 0, Z: -1},
			Up:       Vec3{X: 0, Y: 1, Z: 0},
			FOV:      90,
		},
		Spheres: []Sphere{
			{Center: Vec3{X: 0, Y: 0, Z: -1}, Radius: 0.5},
		},
		Settings: RenderSettings{Width: 2, Height: 2, SamplesPerPx: 1},
	}
}

func TestValidateAcceptsGoodScene(t *testing.T) {
	if err := validScene().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateAcceptsDegenerateCases(t *testing.T) {
	sc := validScene()
	sc.Spheres = nil
	if err := sc.Validate(); err != nil {
		t.Errorf("empty world must be valid: %v", err)
	}

	sc = validScene()
	sc.Spheres[0].Radius = 0
	if err := sc.Validate(); err != nil {
		t.Errorf("zero radius must be valid: %v", err)
	}

	// An omitted settings block defers to the mode defaults.
	sc = validScene()
	sc.Settings = RenderSettings{}
	if err := sc.Validate(); err != nil {
		t.Errorf("omitted settings must be valid: %v", err)
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scene)
		wantSub string
	}{
		{"negative radius", func(sc *Scene) { sc.Spheres[0].Radius = -0.5 }, "negative radius"},
		{"negative width", func(sc *Scene) { sc.Settings.Width = -1 }, "dimensions"},
		{"zero width", func(sc *Scene) { sc.Settings.Width = 0 }, "dimensions"},
		{"zero height", func(sc *Scene) { sc.Settings.Height = 0 }, "dimensions"},
		{"zero samples", func(sc *Scene) { sc.Settings.SamplesPerPx = 0 }, "samples"},
		{"negative samples", func(sc *Scene) { sc.Settings.SamplesPerPx = -4 }, "samples"},
		{"zero fov", func(sc *Scene) { sc.Camera.FOV = 0 }, "fov"},
		{"fov too wide", func(sc *Scene) { sc.Camera.FOV = 180 }, "fov"},
		{"camera on target", func(sc *Scene) { sc.Camera.Target = sc.Camera.Position }, "target"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := validScene()
			tc.mutate(sc)
			err := sc.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	sc := Default()
	if err := sc.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
	if len(sc.Spheres) != 5 {
		t.Errorf("expected 5 spheres, got %d", len(sc.Spheres))
	}
	// The ground sphere is the large one.
	if sc.Spheres[0].Radius != 500 {
		t.Errorf("ground radius: got %v", sc.Spheres[0].Radius)
	}
}
