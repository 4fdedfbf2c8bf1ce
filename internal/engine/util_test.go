package engine

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveImageByExtension(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	for _, name := range []string{"out.png", "out.bmp", "out.tiff", "out.tif"} {
		path := filepath.Join(dir, name)
		if err := SaveImage(path, img); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty file", name)
		}
	}
}

func TestSaveImageUnsupportedExtension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := SaveImage(filepath.Join(t.TempDir(), "out.gif"), img); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestSaveImagePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 10, 20, 30, 255
	img.Pix[4], img.Pix[5], img.Pix[6], img.Pix[7] = 40, 50, 60, 255

	if err := SaveImage(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("decoded pixel: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}
