// Package palette reduces a pixel grid to at most K representative
// colors and assigns every cell a 1-based palette index.
package palette

import (
	"errors"
	"fmt"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

// ErrInvalidInput marks malformed reducer arguments.
var ErrInvalidInput = errors.New("invalid input")

// Result is the output of one reduction.
type Result struct {
	Indexes   *grid.Indexes // 1-based palette references, same shape as input
	Colors    []grid.RGB    // palette, cluster order
	Quantized *grid.Pixels  // input with every pixel replaced by its palette color
}

// Reduce clusters the pixels of p into K = min(distinct colors, maxColors)
// groups. Given identical input the result is bit-identical across runs.
func Reduce(p *grid.Pixels, maxColors int, method Method) (*Result, error) {
	if p.Empty() {
		return nil, fmt.Errorf("%w: empty pixel grid", ErrInvalidInput)
	}
	if maxColors < 1 {
		return nil, fmt.Errorf("%w: max colors %d, need at least 1", ErrInvalidInput, maxColors)
	}

	k := min(p.Distinct(), maxColors)

	var colors []grid.RGB
	switch method {
	case MethodDominant:
		colors = dominantPalette(p, k)
	case MethodMedianCut:
		colors = medianCutPalette(p, k)
	default:
		colors = kmeansPalette(p, k)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%s palette extraction produced no colors", method)
	}

	idx := grid.NewIndexes(p.W, p.H)
	quant := grid.NewPixels(p.W, p.H)
	for i, c := range p.Pix {
		ci := nearestIndex(colors, c)
		idx.Cells[i] = ci + 1
		quant.Pix[i] = colors[ci]
	}

	return &Result{Indexes: idx, Colors: colors, Quantized: quant}, nil
}

// nearestIndex returns the palette index closest to c, first entry on ties.
func nearestIndex(colors []grid.RGB, c grid.RGB) int {
	best := 0
	bestDist := sqDist(colors[0], c)
	for i := 1; i < len(colors); i++ {
		if d := sqDist(colors[i], c); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func sqDist(a, b grid.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
