package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

// Method selects how the representative colors are extracted.
type Method int

const (
	MethodKMeans Method = iota
	MethodDominant
	MethodMedianCut
)

func (m Method) String() string {
	switch m {
	case MethodDominant:
		return "dominant"
	case MethodMedianCut:
		return "mediancut"
	default:
		return "kmeans"
	}
}

func ParseMethod(s string) (Method, error) {
	switch s {
	case "kmeans":
		return MethodKMeans, nil
	case "dominant":
		return MethodDominant, nil
	case "mediancut":
		return MethodMedianCut, nil
	}
	return MethodKMeans, fmt.Errorf("unknown palette method %q", s)
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// dominantPalette extracts candidate tones with dominantcolor and keeps k
// diverse ones.
func dominantPalette(p *grid.Pixels, k int) []grid.RGB {
	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(p.ToImage(), nCandidates)
	if len(candidates) == 0 {
		return nil
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: w})
	}
	return toRGB(selectDiverse(weighted, k))
}

// selectDiverse greedily picks k colors, scoring candidates by Lab-space
// distance to the already selected set scaled by candidate weight. The
// strongest candidate seeds the selection so dominant tones survive.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, 0, len(cands))
	maxW := 0.0
	for _, c := range cands {
		l, a, b := c.col.Lab()
		if c.weight > maxW {
			maxW = c.weight
		}
		items = append(items, item{col: c.col, lab: [3]float64{l, a, b}, w: c.weight})
	}
	if k > len(items) {
		k = len(items)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	selectedIdx := make([]int, 0, k)
	selected := make([]bool, len(items))

	bestSeed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[bestSeed].w {
			bestSeed = i
		}
	}
	selectedIdx = append(selectedIdx, bestSeed)
	selected[bestSeed] = true

	for len(selectedIdx) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if selected[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range selectedIdx {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				d2v := d0*d0 + d1*d1 + d2*d2
				if d2v < minD2 {
					minD2 = d2v
				}
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = true
		selectedIdx = append(selectedIdx, bestIdx)
	}

	out := make([]colorful.Color, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		out = append(out, items[idx].col)
	}
	return out
}

// medianCutPalette quantizes with go-quantize's median cut. It may return
// fewer than k colors on low-variance images.
func medianCutPalette(p *grid.Pixels, k int) []grid.RGB {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, k), p.ToImage())
	colors := make([]grid.RGB, 0, len(pal))
	for _, c := range pal {
		r, g, b, _ := c.RGBA()
		colors = append(colors, grid.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
	}
	return colors
}

func toRGB(cols []colorful.Color) []grid.RGB {
	out := make([]grid.RGB, 0, len(cols))
	for _, c := range cols {
		out = append(out, grid.RGB{
			R: clampChannel(c.R * 255),
			G: clampChannel(c.G * 255),
			B: clampChannel(c.B * 255),
		})
	}
	return out
}
