package engine

import (
	"math"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

// noHit is the sentinel returned by traceRay when a ray does not intersect
// the sphere inside (tMin, tMax). It is the sole failure signal of the
// intersection math; a genuine hit at t == -1 cannot be told apart from it,
// so callers treat any negative t as a miss.
const noHit = -1.0

// Sphere primitive, the only geometry this renderer supports.
type sphere struct {
	center vec3
	radius float64
}

type hitRecord struct {
	t      float64
	p      vec3
	normal vec3 // p - center, unnormalized until shading
}

// traceRay solves |O + tD - C|^2 = r^2 and returns the nearest root inside
// the open interval (tMin, tMax), or noHit. A non-positive discriminant
// counts as a miss, so a ray exactly tangent to the sphere misses.
func traceRay(r ray, s sphere, tMin, tMax float64) float64 {
	oc := r.orig.sub(s.center)

	a := r.dir.dot(r.dir)
	halfB := oc.dot(r.dir)
	c := oc.dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return noHit
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root > tMin && root < tMax {
		return root
	}
	root = (-halfB + sqrtD) / a
	if root > tMin && root < tMax {
		return root
	}
	return noHit
}

// rayHit evaluates the hit point and outward normal for parameter t.
// The record is filled even for a sentinel t; callers must check t >= 0
// before trusting the normal.
func rayHit(r ray, s sphere, t float64) hitRecord {
	p := r.at(t)
	return hitRecord{
		t:      t,
		p:      p,
		normal: p.sub(s.center),
	}
}

// nearestHit returns the closest valid intersection across the whole world,
// shrinking the search interval as hits are found.
func nearestHit(r ray, world []sphere, tMin, tMax float64) (hitRecord, bool) {
	var rec hitRecord
	hitAnything := false
	closest := tMax

	for i := range world {
		if t := traceRay(r, world[i], tMin, closest); t >= 0 {
			rec = rayHit(r, world[i], t)
			closest = t
			hitAnything = true
		}
	}
	return rec, hitAnything
}

// sceneToWorld builds the sphere list from the scene description.
func sceneToWorld(sc *scene.Scene) []sphere {
	world := make([]sphere, 0, len(sc.Spheres))
	for _, s := range sc.Spheres {
		world = append(world, sphere{
			center: v(s.Center.X, s.Center.Y, s.Center.Z),
			radius: s.Radius,
		})
	}
	return world
}
