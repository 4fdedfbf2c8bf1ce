package engine

import (
	"math"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

// coordToColor maps a pixel coordinate to normalized device coordinates
// in [-1, 1]. Pixel 0 maps to -1; the far edge approaches +1.
func coordToColor(c int, extent int) float64 {
	return float64(c)/float64(extent)*2 - 1
}

// background resolves a color (0..255 per channel) for a ray that hit
// nothing, from the NDC coordinates of the sample.
type background func(u, v float64) vec3

var white = v(255, 255, 255)

// defaultBackground is the position-derived gradient: the NDC coordinates
// feed the red/green channels and the result is pulled 10% toward white.
// Negative channels saturate to black on conversion.
func defaultBackground(u, vv float64) vec3 {
	start := v(u*255, vv*255, 25)
	return lerp(start, white, 0.1)
}

// backgroundForScene picks the sky model. A scene without a Sky block gets
// the default gradient; "solid" is a flat color and "gradient" interpolates
// horizon to zenith over the vertical coordinate.
func backgroundForScene(sc *scene.Scene) background {
	if sc.Sky == nil {
		return defaultBackground
	}
	switch sc.Sky.Type {
	case scene.SkySolid:
		c := v(sc.Sky.Color.R, sc.Sky.Color.G, sc.Sky.Color.B).mul(255)
		return func(u, vv float64) vec3 { return c }
	case scene.SkyGradient:
		horizon := v(sc.Sky.Horizon.R, sc.Sky.Horizon.G, sc.Sky.Horizon.B).mul(255)
		zenith := v(sc.Sky.Zenith.R, sc.Sky.Zenith.G, sc.Sky.Zenith.B).mul(255)
		return func(u, vv float64) vec3 {
			t := (vv + 1) * 0.5
			t = math.Max(0, math.Min(1, t))
			return lerp(horizon, zenith, t)
		}
	default:
		return defaultBackground
	}
}

// normalColor maps a unit surface normal to an RGB color, each component
// from [-1, 1] to [0, 255].
func normalColor(n vec3) vec3 {
	return v((n.x+1)*0.5*255, (n.y+1)*0.5*255, (n.z+1)*0.5*255)
}

// perPixel resolves the color of one pixel. Each sample builds a camera ray,
// finds the nearest hit across the world over (0, +inf) and shades it from
// the surface normal, or falls back to the background gradient. Samples are
// averaged; an empty world is always black.
//
// With a single sample the ray goes through the exact pixel coordinate.
// With more, each sample jitters inside the pixel footprint using rng, which
// is seeded per pixel so the result does not depend on render scheduling.
func perPixel(x, y int, cfg RenderConfig, cam camera, world []sphere, bg background, rng *randSource) vec3 {
	if len(world) == 0 {
		return vec3{}
	}

	u := coordToColor(x, cfg.Width)
	vv := coordToColor(y, cfg.Height)

	// NDC footprint of one pixel on each axis.
	du := 2.0 / float64(cfg.Width)
	dv := 2.0 / float64(cfg.Height)

	samples := cfg.SamplesPerPx
	if samples < 1 {
		samples = 1
	}

	var acc vec3
	for s := 0; s < samples; s++ {
		su, sv := u, vv
		if samples > 1 {
			su += (rng.Float64() - 0.5) * du
			sv += (rng.Float64() - 0.5) * dv
		}

		r := cam.getRay((su+1)/2, (sv+1)/2)

		if rec, ok := nearestHit(r, world, 0, math.MaxFloat64); ok {
			acc = acc.add(normalColor(rec.normal.unit()))
		} else {
			acc = acc.add(bg(su, sv))
		}
	}
	return acc.div(float64(samples))
}

// toRGB8 converts one accumulated channel to a byte, saturating at both ends.
func toRGB8(c float64) uint8 {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}
