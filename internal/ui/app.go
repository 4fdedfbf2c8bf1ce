// Package ui is the interactive fyne viewer: a render canvas plus a
// controller panel for the scene's first sphere and the camera.
package ui

import (
	"fmt"
	"image"
	"log"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/linuxing3/weekend-raytracer-wgpu/internal/engine"
	"github.com/linuxing3/weekend-raytracer-wgpu/internal/scene"
	"github.com/linuxing3/weekend-raytracer-wgpu/internal/watcher"
)

const (
	maxDisplayW = float32(1024)
	maxDisplayH = float32(768)

	previewDebounce = 200 * time.Millisecond
)

// Run opens the viewer for the given scene. scenePath may be empty (built-in
// scene, no hot reload); when set, the file is watched and edits re-render.
func Run(sc *scene.Scene, scenePath, mode string) error {
	a := app.New()
	w := a.NewWindow("Weekend Raytracer")

	baseSettings := engine.SettingsForMode(mode)
	if sc.Settings.Width > 0 && sc.Settings.Height > 0 {
		baseSettings.Width = sc.Settings.Width
		baseSettings.Height = sc.Settings.Height
		if sc.Settings.SamplesPerPx > 0 {
			baseSettings.SamplesPerPx = sc.Settings.SamplesPerPx
		}
	}

	previewSettings := baseSettings
	finalSettings := baseSettings
	finalSettings.SamplesPerPx *= 4

	img := newFrame(previewSettings.Width, previewSettings.Height)

	imgCanvas := canvas.NewImageFromImage(img)
	imgCanvas.FillMode = canvas.ImageFillContain
	setCanvasSize := func() {
		aspect := float32(previewSettings.Width) / float32(previewSettings.Height)
		displayW := maxDisplayW
		displayH := displayW / aspect
		if displayH > maxDisplayH {
			displayH = maxDisplayH
			displayW = displayH * aspect
		}
		imgCanvas.SetMinSize(fyne.NewSize(displayW, displayH))
	}
	setCanvasSize()

	status := widget.NewLabel("Idle")
	timing := widget.NewLabel("")

	var mu sync.Mutex
	var stopCh chan struct{}
	var renderTimer *time.Timer

	liveUpdate := widget.NewCheck("Live update while rendering", func(bool) {})
	liveUpdate.SetChecked(true)

	doRender := func(final bool) {
		go func() {
			status.SetText("Rendering...")
			startTime := time.Now()

			settings := previewSettings
			if final {
				settings = finalSettings
			}
			cfg := engine.RenderConfig{
				Width:        settings.Width,
				Height:       settings.Height,
				SamplesPerPx: settings.SamplesPerPx,
				Seed:         settings.Seed,
			}

			// Each render draws into its own buffer: a superseded render
			// keeps writing into a frame that is no longer on screen
			// instead of mixing pixels into the replacement.
			target := newFrame(cfg.Width, cfg.Height)

			mu.Lock()
			img = target
			imgCanvas.Image = target
			done := stopCh
			mu.Unlock()

			var progress func()
			if liveUpdate.Checked {
				progress = func() {
					select {
					case <-done:
						return
					default:
					}
					imgCanvas.Refresh()
				}
			}

			engine.RenderInto(sc, cfg, target, progress)

			select {
			case <-done:
				return
			default:
			}

			imgCanvas.Refresh()
			timing.SetText(fmt.Sprintf("%.2fs", time.Since(startTime).Seconds()))
			status.SetText("Done")
		}()
	}

	// startRender cancels any in-flight render; preview renders are
	// debounced so slider drags do not launch one per tick.
	startRender := func(final bool) {
		mu.Lock()
		if renderTimer != nil {
			renderTimer.Stop()
			renderTimer = nil
		}
		if stopCh != nil {
			close(stopCh)
		}
		stopCh = make(chan struct{})
		mu.Unlock()

		if !final {
			mu.Lock()
			renderTimer = time.AfterFunc(previewDebounce, func() {
				mu.Lock()
				renderTimer = nil
				mu.Unlock()
				doRender(false)
			})
			mu.Unlock()
			return
		}
		doRender(true)
	}

	// --- Camera controls.
	camPosX := widget.NewEntry()
	camPosY := widget.NewEntry()
	camPosZ := widget.NewEntry()
	camLookX := widget.NewEntry()
	camLookY := widget.NewEntry()
	camLookZ := widget.NewEntry()
	camFOV := widget.NewEntry()
	camPosX.SetText(fmt.Sprintf("%.2f", sc.Camera.Position.X))
	camPosY.SetText(fmt.Sprintf("%.2f", sc.Camera.Position.Y))
	camPosZ.SetText(fmt.Sprintf("%.2f", sc.Camera.Position.Z))
	camLookX.SetText(fmt.Sprintf("%.2f", sc.Camera.Target.X))
	camLookY.SetText(fmt.Sprintf("%.2f", sc.Camera.Target.Y))
	camLookZ.SetText(fmt.Sprintf("%.2f", sc.Camera.Target.Z))
	camFOV.SetText(fmt.Sprintf("%.1f", sc.Camera.FOV))

	applyCamera := widget.NewButton("Apply camera", func() {
		applyCameraForm(&sc.Camera, cameraForm{
			posX: camPosX.Text, posY: camPosY.Text, posZ: camPosZ.Text,
			lookX: camLookX.Text, lookY: camLookY.Text, lookZ: camLookZ.Text,
			fov: camFOV.Text,
		})
		status.SetText("Camera updated")
		startRender(false)
	})

	cameraBox := container.NewVBox(
		widget.NewLabel("Camera"),
		container.NewGridWithColumns(2,
			widget.NewLabel("Pos X"), camPosX,
			widget.NewLabel("Pos Y"), camPosY,
			widget.NewLabel("Pos Z"), camPosZ,
			widget.NewLabel("Look X"), camLookX,
			widget.NewLabel("Look Y"), camLookY,
			widget.NewLabel("Look Z"), camLookZ,
			widget.NewLabel("FOV"), camFOV,
		),
		applyCamera,
	)

	// --- Backend toggle.
	backendCheck := widget.NewCheck("Parallel rendering", func(on bool) {
		if on {
			engine.SetBackend(engine.BackendParallel)
		} else {
			engine.SetBackend(engine.BackendSerial)
		}
		startRender(false)
	})
	backendCheck.SetChecked(engine.GetBackend() == engine.BackendParallel)

	renderBtn := widget.NewButton("Render preview", func() { startRender(false) })
	finalBtn := widget.NewButton("Render final", func() { startRender(true) })
	saveBtn := widget.NewButton("Save PNG", func() {
		mu.Lock()
		snapshot := img
		mu.Unlock()
		if err := engine.SaveImage("output.png", snapshot); err != nil {
			log.Println("save image:", err)
			status.SetText("Save failed")
			return
		}
		status.SetText("Saved output.png")
	})

	controls := container.NewVBox(
		renderBtn,
		finalBtn,
		saveBtn,
		liveUpdate,
		backendCheck,
		cameraBox,
	)
	if len(sc.Spheres) > 0 {
		controls.Add(sphereControlsFor(&sc.Spheres[0], startRender))
	}
	controls.Add(status)
	controls.Add(timing)

	w.SetContent(container.NewBorder(nil, nil, nil, container.NewVScroll(controls), imgCanvas))

	// Hot reload: edits to the scene file swap the scene in and re-render.
	if scenePath != "" {
		fw, err := watcher.New(300 * time.Millisecond)
		if err != nil {
			log.Println("watcher:", err)
		} else {
			defer fw.Close()
			if err := fw.Watch(scenePath, func(path string) {
				reloaded, err := scene.Load(path)
				if err != nil {
					log.Println("reload scene:", err)
					return
				}
				mu.Lock()
				*sc = *reloaded
				mu.Unlock()
				status.SetText("Scene reloaded")
				startRender(false)
			}); err != nil {
				log.Println("watcher:", err)
			} else {
				fw.Start()
			}
		}
	}

	startRender(false)
	w.ShowAndRun()
	return nil
}

// newFrame allocates an opaque black render buffer.
func newFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

// cameraForm holds the text inputs of the camera panel.
type cameraForm struct {
	posX, posY, posZ    string
	lookX, lookY, lookZ string
	fov                 string
}

// applyCameraForm parses the form into the camera. A field that does not
// parse keeps the camera's previous value.
func applyCameraForm(cam *scene.Camera, f cameraForm) {
	parseF := func(text string, def float64) float64 {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return def
		}
		return val
	}
	cam.Position.X = parseF(f.posX, cam.Position.X)
	cam.Position.Y = parseF(f.posY, cam.Position.Y)
	cam.Position.Z = parseF(f.posZ, cam.Position.Z)
	cam.Target.X = parseF(f.lookX, cam.Target.X)
	cam.Target.Y = parseF(f.lookY, cam.Target.Y)
	cam.Target.Z = parseF(f.lookZ, cam.Target.Z)
	cam.FOV = parseF(f.fov, cam.FOV)
}

// sphereControlsFor builds the slider column for one sphere.
func sphereControlsFor(sp *scene.Sphere, startRender func(bool)) fyne.CanvasObject {
	makeSlider := func(name string, min, max float64, get func() float64, set func(float64)) fyne.CanvasObject {
		label := widget.NewLabel(fmt.Sprintf("%s: %.2f", name, get()))
		slider := widget.NewSlider(min, max)
		slider.Step = 0.1
		slider.Value = get()
		slider.OnChanged = func(val float64) {
			set(val)
			label.SetText(fmt.Sprintf("%s: %.2f", name, val))
			startRender(false)
		}
		return container.NewVBox(label, slider)
	}

	return container.NewVBox(
		widget.NewLabel("Sphere"),
		makeSlider("x", -10, 10, func() float64 { return sp.Center.X }, func(val float64) { sp.Center.X = val }),
		makeSlider("y", -10, 10, func() float64 { return sp.Center.Y }, func(val float64) { sp.Center.Y = val }),
		makeSlider("z", -10, 10, func() float64 { return sp.Center.Z }, func(val float64) { sp.Center.Z = val }),
		makeSlider("r", 0, 100, func() float64 { return sp.Radius }, func(val float64) { sp.Radius = val }),
	)
}
