package engine

import (
	"testing"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

func testCamera() camera {
	return newCamera(scene.Camera{
		Position: scene.Vec3{X: 0, Y: 0, Z: 0},
		Target:   scene.Vec3{X: 0, Y: 0, Z: -1},
		Up:       scene.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      90,
	}, RenderConfig{Width: 100, Height: 100})
}

func TestCameraViewportBasis(t *testing.T) {
	cam := testCamera()

	// fov 90 at aspect 1 gives a 2x2 viewport at unit distance.
	if !vecNear(cam.lowerLeftCorner, v(-1, -1, -1), eps) {
		t.Errorf("lower left corner: got %v", cam.lowerLeftCorner)
	}
	if !vecNear(cam.horizontal, v(2, 0, 0), eps) {
		t.Errorf("horizontal: got %v", cam.horizontal)
	}
	if !vecNear(cam.vertical, v(0, 2, 0), eps) {
		t.Errorf("vertical: got %v", cam.vertical)
	}
}

func TestCameraGetRayCenter(t *testing.T) {
	cam := testCamera()

	r := cam.getRay(0.5, 0.5)
	if !vecNear(r.orig, v(0, 0, 0), eps) {
		t.Errorf("origin: got %v", r.orig)
	}
	if !vecNear(r.dir, v(0, 0, -1), eps) {
		t.Errorf("center ray direction: got %v", r.dir)
	}
}

func TestCameraGetRayCorners(t *testing.T) {
	cam := testCamera()

	if r := cam.getRay(0, 0); !vecNear(r.dir, v(-1, -1, -1), eps) {
		t.Errorf("lower-left ray: got %v", r.dir)
	}
	if r := cam.getRay(1, 1); !vecNear(r.dir, v(1, 1, -1), eps) {
		t.Errorf("upper-right ray: got %v", r.dir)
	}
}

func TestCameraGetRayExtrapolates(t *testing.T) {
	// No clamping: out-of-range coordinates walk past the viewport.
	cam := testCamera()

	if r := cam.getRay(2, 0.5); !vecNear(r.dir, v(3, 0, -1), eps) {
		t.Errorf("extrapolated ray: got %v", r.dir)
	}
	if r := cam.getRay(-0.5, 0.5); !vecNear(r.dir, v(-2, 0, -1), eps) {
		t.Errorf("extrapolated ray: got %v", r.dir)
	}
}

func TestCameraAspectFromConfig(t *testing.T) {
	cam := newCamera(scene.Camera{
		Position: scene.Vec3{X: 0, Y: 0, Z: 0},
		Target:   scene.Vec3{X: 0, Y: 0, Z: -1},
		Up:       scene.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      90,
	}, RenderConfig{Width: 200, Height: 100})

	if !vecNear(cam.horizontal, v(4, 0, 0), eps) {
		t.Errorf("horizontal at 2:1 aspect: got %v", cam.horizontal)
	}
	if !vecNear(cam.vertical, v(0, 2, 0), eps) {
		t.Errorf("vertical at 2:1 aspect: got %v", cam.vertical)
	}
}

func TestCameraExplicitAspectOverride(t *testing.T) {
	cam := newCamera(scene.Camera{
		Position:    scene.Vec3{X: 0, Y: 0, Z: 0},
		Target:      scene.Vec3{X: 0, Y: 0, Z: -1},
		Up:          scene.Vec3{X: 0, Y: 1, Z: 0},
		FOV:         90,
		AspectRatio: 1,
	}, RenderConfig{Width: 200, Height: 100})

	if !vecNear(cam.horizontal, v(2, 0, 0), eps) {
		t.Errorf("horizontal with aspect override: got %v", cam.horizontal)
	}
}
