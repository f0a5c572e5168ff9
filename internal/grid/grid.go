// Package grid holds the flat raster structures shared by the pipeline:
// row-major pixel grids and the 1-based palette index grid derived from
// them. Both are fixed-shape after construction.
package grid

import (
	"image"
	"image/color"
)

// RGB is one 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Pixels is a W×H grid of RGB triples, row-major, origin top-left.
type Pixels struct {
	W, H int
	Pix  []RGB // len = W*H
}

// Indexes is a W×H grid of 1-based palette references.
type Indexes struct {
	W, H  int
	Cells []int // len = W*H, every value in [1, K]
}

func offset(w, x, y int) int {
	return y*w + x
}

func NewPixels(w, h int) *Pixels {
	return &Pixels{W: w, H: h, Pix: make([]RGB, w*h)}
}

func NewIndexes(w, h int) *Indexes {
	return &Indexes{W: w, H: h, Cells: make([]int, w*h)}
}

func (p *Pixels) At(x, y int) RGB {
	return p.Pix[offset(p.W, x, y)]
}

func (p *Pixels) Set(x, y int, c RGB) {
	p.Pix[offset(p.W, x, y)] = c
}

func (g *Indexes) At(x, y int) int {
	return g.Cells[offset(g.W, x, y)]
}

func (g *Indexes) Set(x, y int, v int) {
	g.Cells[offset(g.W, x, y)] = v
}

// Empty reports whether the grid has no cells.
func (p *Pixels) Empty() bool {
	return p == nil || p.W < 1 || p.H < 1
}

// Distinct counts the distinct RGB values present in the grid.
func (p *Pixels) Distinct() int {
	seen := make(map[RGB]struct{}, len(p.Pix))
	for _, c := range p.Pix {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// FromImage flattens an image into a Pixels grid, dropping alpha.
func FromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	p := NewPixels(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			p.Pix[offset(w, x, y)] = RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
	}
	return p
}

// ToImage expands a Pixels grid into an opaque RGBA image.
func (p *Pixels) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			c := p.Pix[offset(p.W, x, y)]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}
