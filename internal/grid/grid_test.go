package grid

import (
	"image"
	"image/color"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(2, 1, color.RGBA{G: 128, B: 7, A: 255})

	p := FromImage(img)
	if p.W != 3 || p.H != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", p.W, p.H)
	}
	if got := p.At(0, 0); got != (RGB{R: 255}) {
		t.Errorf("At(0,0) = %v", got)
	}
	if got := p.At(2, 1); got != (RGB{G: 128, B: 7}) {
		t.Errorf("At(2,1) = %v", got)
	}

	back := p.ToImage()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := back.At(x, y).RGBA()
			want := p.At(x, y)
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
				t.Errorf("pixel (%d,%d) changed in round trip", x, y)
			}
			if a != 0xffff {
				t.Errorf("pixel (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestFromImageIgnoresBoundsOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 7))
	img.SetRGBA(5, 5, color.RGBA{R: 9, A: 255})
	p := FromImage(img)
	if p.W != 2 || p.H != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", p.W, p.H)
	}
	if p.At(0, 0) != (RGB{R: 9}) {
		t.Errorf("At(0,0) = %v, want {9 0 0}", p.At(0, 0))
	}
}

func TestDistinct(t *testing.T) {
	p := NewPixels(2, 2)
	p.Set(0, 0, RGB{R: 1})
	p.Set(1, 0, RGB{R: 1})
	p.Set(0, 1, RGB{G: 2})
	p.Set(1, 1, RGB{B: 3})
	if got := p.Distinct(); got != 3 {
		t.Errorf("Distinct() = %d, want 3", got)
	}
}

func TestEmpty(t *testing.T) {
	var nilGrid *Pixels
	if !nilGrid.Empty() {
		t.Error("nil grid should be empty")
	}
	if !NewPixels(0, 4).Empty() {
		t.Error("zero-width grid should be empty")
	}
	if NewPixels(1, 1).Empty() {
		t.Error("1x1 grid should not be empty")
	}
}
