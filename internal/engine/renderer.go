package engine

import (
	"image"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
)

// RenderConfig defines internal render parameters.
type RenderConfig struct {
	Width        int
	Height       int
	SamplesPerPx int
	Seed         int64
}

// Render renders the scene into a new image.
func Render(sc *scene.Scene, cfg RenderConfig) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	RenderInto(sc, cfg, img, nil)
	return img
}

// RenderInto fills the provided image pixel by pixel. If progress is not
// nil it is called periodically while rendering so a preview can refresh.
// The image bounds must match the config; otherwise nothing is drawn.
func RenderInto(sc *scene.Scene, cfg RenderConfig, img *image.RGBA, progress func()) {
	b := img.Bounds()
	if b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		return
	}

	world := sceneToWorld(sc)
	cam := newCamera(sc.Camera, cfg)
	bg := backgroundForScene(sc)

	if GetBackend() == BackendSerial {
		renderSerial(cfg, cam, world, bg, img, progress)
	} else {
		renderTiled(cfg, cam, world, bg, img, progress)
	}

	if progress != nil {
		progress()
	}
}

// fillPixel resolves one pixel and writes it at its buffer offset.
func fillPixel(x, y int, cfg RenderConfig, cam camera, world []sphere, bg background, pix []uint8, stride int) {
	var rng *randSource
	if cfg.SamplesPerPx > 1 {
		rng = newRandSource(pixelSeed(cfg.Seed, x, y))
	}

	col := perPixel(x, y, cfg, cam, world, bg, rng)

	idx := y*stride + x*4
	pix[idx] = toRGB8(col.x)
	pix[idx+1] = toRGB8(col.y)
	pix[idx+2] = toRGB8(col.z)
	pix[idx+3] = 255
}

func renderSerial(cfg RenderConfig, cam camera, world []sphere, bg background, img *image.RGBA, progress func()) {
	pix := img.Pix
	stride := img.Stride

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			fillPixel(x, y, cfg, cam, world, bg, pix, stride)
		}
		if progress != nil && y%32 == 31 {
			progress()
		}
	}
}

// renderTiled splits the image into 32px tiles consumed by a worker pool.
// Worker count defaults to NumCPU and can be overridden with the
// RAYTRACER_WORKERS environment variable.
func renderTiled(cfg RenderConfig, cam camera, world []sphere, bg background, img *image.RGBA, progress func()) {
	pix := img.Pix
	stride := img.Stride

	workerCount := runtime.NumCPU()
	if workerCount < 1 {
		workerCount = 1
	}
	if envWorkers := os.Getenv("RAYTRACER_WORKERS"); envWorkers != "" {
		if n, err := strconv.Atoi(envWorkers); err == nil && n > 0 && n <= 128 {
			workerCount = n
		}
	}

	const tileSize = 32
	type tile struct {
		x0, y0, x1, y1 int
	}
	numTilesX := (cfg.Width + tileSize - 1) / tileSize
	numTilesY := (cfg.Height + tileSize - 1) / tileSize
	tiles := make(chan tile, numTilesX*numTilesY)

	for ty := 0; ty < cfg.Height; ty += tileSize {
		for tx := 0; tx < cfg.Width; tx += tileSize {
			tiles <- tile{
				x0: tx,
				y0: ty,
				x1: min(tx+tileSize, cfg.Width),
				y1: min(ty+tileSize, cfg.Height),
			}
		}
	}
	close(tiles)

	totalTiles := numTilesX * numTilesY
	var processedTiles int
	var progressMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tiles {
				for y := t.y0; y < t.y1; y++ {
					for x := t.x0; x < t.x1; x++ {
						fillPixel(x, y, cfg, cam, world, bg, pix, stride)
					}
				}

				if progress != nil {
					progressMu.Lock()
					processedTiles++
					threshold := max(1, totalTiles/20)
					shouldUpdate := processedTiles%threshold == 0 || processedTiles == totalTiles
					progressMu.Unlock()
					if shouldUpdate {
						progress()
					}
				}
			}
		}()
	}
	wg.Wait()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
