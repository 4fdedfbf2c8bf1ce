package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

// RenderScene renders the given scene using the provided settings.
func RenderScene(sc *scene.Scene, settings scene.RenderSettings) (image.Image, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validate scene: %w", err)
	}
	cfg := RenderConfig{
		Width:        settings.Width,
		Height:       settings.Height,
		SamplesPerPx: settings.SamplesPerPx,
		Seed:         settings.Seed,
	}
	return Render(sc, cfg), nil
}

// SettingsForMode returns reasonable defaults for preview/final modes.
func SettingsForMode(mode string) scene.RenderSettings {
	switch mode {
	case "final":
		return scene.RenderSettings{
			Width:        1600,
			Height:       1600,
			SamplesPerPx: 64,
		}
	default:
		return scene.RenderSettings{
			Width:        400,
			Height:       400,
			SamplesPerPx: 4,
		}
	}
}

// SaveImage writes an image to a file, choosing the encoder from the
// extension: .png, .bmp, .tiff or .tif.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tiff", ".tif":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("save image: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}
