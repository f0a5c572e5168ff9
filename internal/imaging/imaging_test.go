package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

func checkered(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func TestResizeNearestShape(t *testing.T) {
	out := ResizeNearest(checkered(31, 17), 10, 5)
	b := out.Bounds()
	if b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("resized to %dx%d, want 10x5", b.Dx(), b.Dy())
	}
}

func TestResizeNearestKeepsPaletteColors(t *testing.T) {
	// Nearest-neighbor sampling must not invent blended colors.
	out := ResizeNearest(checkered(8, 8), 3, 3)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := out.At(x, y).RGBA()
			red := r>>8 == 255 && g == 0 && bl == 0
			blue := r == 0 && g == 0 && bl>>8 == 255
			if !red && !blue {
				t.Fatalf("pixel (%d,%d) is a blend: %v", x, y, out.At(x, y))
			}
		}
	}
}

func TestUpscaleLongerSide(t *testing.T) {
	wide := Upscale(checkered(20, 10), 1000)
	if b := wide.Bounds(); b.Dx() != 1000 || b.Dy() != 500 {
		t.Errorf("wide upscaled to %dx%d, want 1000x500", b.Dx(), b.Dy())
	}
	tall := Upscale(checkered(10, 20), 1000)
	if b := tall.Bounds(); b.Dx() != 500 || b.Dy() != 1000 {
		t.Errorf("tall upscaled to %dx%d, want 500x1000", b.Dx(), b.Dy())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := SavePNG(checkered(4, 4), path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("loaded %dx%d, want 4x4", b.Dx(), b.Dy())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSavePaletteStrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.png")
	colors := []grid.RGB{{R: 255}, {G: 255}, {B: 255}}
	if err := SavePaletteStrip(colors, 10, path); err != nil {
		t.Fatalf("SavePaletteStrip: %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 10 {
		t.Errorf("strip is %dx%d, want 30x10", b.Dx(), b.Dy())
	}

	if err := SavePaletteStrip(nil, 10, path); err == nil {
		t.Error("expected error for empty palette")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("existing strip should survive the failed call: %v", err)
	}
}
