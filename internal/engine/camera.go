package engine

import (
	"math"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

// camera holds the precomputed viewport basis. The viewport sits at unit
// distance along the view direction; getRay needs no per-ray trig.
type camera struct {
	origin          vec3
	lowerLeftCorner vec3
	horizontal      vec3
	vertical        vec3
	u, v, w         vec3
}

func newCamera(scCam scene.Camera, cfg RenderConfig) camera {
	aspect := float64(cfg.Width) / float64(cfg.Height)
	if scCam.AspectRatio != 0 {
		aspect = scCam.AspectRatio
	}

	theta := scCam.FOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspect * viewportHeight

	origin := v(scCam.Position.X, scCam.Position.Y, scCam.Position.Z)
	target := v(scCam.Target.X, scCam.Target.Y, scCam.Target.Z)
	up := v(scCam.Up.X, scCam.Up.Y, scCam.Up.Z)

	w := origin.sub(target).unit()
	u := up.cross(w).unit()
	vVec := w.cross(u)

	horizontal := u.mul(viewportWidth)
	vertical := vVec.mul(viewportHeight)
	lowerLeftCorner := origin.sub(horizontal.div(2)).sub(vertical.div(2)).sub(w)

	return camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               vVec,
		w:               w,
	}
}

// getRay maps viewport coordinates in [0,1]x[0,1] to a world-space ray.
// Values outside [0,1] extrapolate past the viewport rectangle; no clamping.
// The returned direction is not normalized.
func (c camera) getRay(s, t float64) ray {
	return ray{
		orig: c.origin,
		dir:  c.lowerLeftCorner.add(c.horizontal.mul(s)).add(c.vertical.mul(t)).sub(c.origin),
	}
}
