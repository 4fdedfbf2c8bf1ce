package scene

import "fmt"

// Vec3 represents a simple 3D vector or point.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Color is an RGB color in linear space, channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Camera describes the viewpoint for the renderer.
type Camera struct {
	Position Vec3    `json:"position"`
	Target   Vec3    `json:"target"`
	Up       Vec3    `json:"up"`
	FOV      float64 `json:"fov"`

	AspectRatio float64 `json:"aspect_ratio"`
}

// Sphere is the only geometric primitive the renderer supports.
// Radius 0 degenerates to a point and is accepted.
type Sphere struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
}

// SkyType enumerates supported sky models.
type SkyType string

const (
	SkySolid    SkyType = "solid"
	SkyGradient SkyType = "gradient"
)

// Sky describes the background used where rays hit nothing. When absent the
// renderer falls back to its built-in coordinate gradient.
type Sky struct {
	Type    SkyType `json:"type"`
	Color   Color   `json:"color"`   // for solid type
	Horizon Color   `json:"horizon"` // for gradient type
	Zenith  Color   `json:"zenith"`  // for gradient type
}

// RenderSettings defines quality/performance parameters.
type RenderSettings struct {
	Width        int   `json:"width"`
	Height       int   `json:"height"`
	SamplesPerPx int   `json:"samples_per_px"`
	Seed         int64 `json:"seed"`
}

// Scene holds everything needed to render an image.
type Scene struct {
	Name     string         `json:"name"`
	Camera   Camera         `json:"camera"`
	Spheres  []Sphere       `json:"spheres"`
	Settings RenderSettings `json:"settings"`
	Sky      *Sky           `json:"sky,omitempty"`
}

// Validate reports malformed scene input up front instead of letting the
// render loop produce NaN pixels. An empty sphere list is valid (it renders
// black), and radius 0 is valid. A fully omitted settings block means "use
// the mode defaults" and is valid; once any field is set, dimensions and
// sample count must be positive.
func (sc *Scene) Validate() error {
	for i, s := range sc.Spheres {
		if s.Radius < 0 {
			return fmt.Errorf("sphere %d: negative radius %v", i, s.Radius)
		}
	}
	if sc.Settings != (RenderSettings{}) {
		if sc.Settings.Width <= 0 || sc.Settings.Height <= 0 {
			return fmt.Errorf("image dimensions %dx%d must be positive", sc.Settings.Width, sc.Settings.Height)
		}
		if sc.Settings.SamplesPerPx <= 0 {
			return fmt.Errorf("samples per pixel %d must be positive", sc.Settings.SamplesPerPx)
		}
	}
	if sc.Camera.FOV <= 0 || sc.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v out of range (0, 180)", sc.Camera.FOV)
	}
	if sc.Camera.Position == sc.Camera.Target {
		return fmt.Errorf("camera position equals target")
	}
	return nil
}

// Default returns the built-in five-sphere scene: a large ground sphere and
// four spheres around the origin.
func Default() *Scene {
	return &Scene{
		Name: "default",
		Camera: Camera{
			Position: Vec3{X: 0, Y: 2, Z: 10},
			Target:   Vec3{X: 0, Y: 1, Z: 0},
			Up:       Vec3{X: 0, Y: 1, Z: 0},
			FOV:      60,
		},
		Spheres: []Sphere{
			{Center: Vec3{X: 0, Y: -500, Z: -1}, Radius: 500},
			{Center: Vec3{X: 0, Y: 1, Z: 0}, Radius: 1},
			{Center: Vec3{X: -5, Y: 1, Z: 0}, Radius: 1},
			{Center: Vec3{X: 5, Y: 0.8, Z: 1.5}, Radius: 0.8},
			{Center: Vec3{X: 5, Y: 1.2, Z: -1.5}, Radius: 1.2},
		},
		Settings: RenderSettings{
			Width:        400,
			Height:       400,
			SamplesPerPx: 4,
		},
	}
}
