package engine

import "math/rand"

// randSource is a lightweight wrapper around math/rand.Rand with an explicit
// seed, so sampling stays reproducible. It is not safe for concurrent use;
// the renderer creates one per pixel.
type randSource struct {
	r *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (rs *randSource) Float64() float64 {
	return rs.r.Float64()
}

// pixelSeed derives a per-pixel seed from the render seed so every pixel
// samples the same jitter sequence no matter which worker draws it.
var pixelSeedMix uint64 = 0x9e3779b97f4a7c15

func pixelSeed(seed int64, x, y int) int64 {
	h := seed ^ int64(pixelSeedMix)
	h ^= int64(x)*0x85ebca6b ^ int64(y)*0xc2b2ae35
	h ^= h >> 33
	return h
}
