// Package colorname maps RGB triples to the nearest entry of a small
// fixed table of human-readable color names.
package colorname

import "github.com/sieis/Pixel-Color-By-Number/internal/grid"

type namedColor struct {
	name string
	rgb  grid.RGB
}

// The reference table is iterated in order; on equal distance the earlier
// entry wins, so table order is part of the contract.
var reference = []namedColor{
	{"red", grid.RGB{R: 255, G: 0, B: 0}},
	{"green", grid.RGB{R: 0, G: 255, B: 0}},
	{"blue", grid.RGB{R: 0, G: 0, B: 255}},
	{"yellow", grid.RGB{R: 255, G: 255, B: 0}},
	{"orange", grid.RGB{R: 255, G: 165, B: 0}},
	{"purple", grid.RGB{R: 128, G: 0, B: 128}},
	{"brown", grid.RGB{R: 165, G: 42, B: 42}},
	{"pink", grid.RGB{R: 255, G: 192, B: 203}},
	{"grey", grid.RGB{R: 128, G: 128, B: 128}},
	{"black", grid.RGB{R: 0, G: 0, B: 0}},
	{"white", grid.RGB{R: 255, G: 255, B: 255}},
	{"tan", grid.RGB{R: 210, G: 180, B: 140}},
	{"light blue", grid.RGB{R: 173, G: 216, B: 230}},
	{"dark blue", grid.RGB{R: 0, G: 0, B: 139}},
	{"light green", grid.RGB{R: 144, G: 238, B: 144}},
	{"dark green", grid.RGB{R: 0, G: 100, B: 0}},
	{"light grey", grid.RGB{R: 211, G: 211, B: 211}},
	{"dark grey", grid.RGB{R: 169, G: 169, B: 169}},
	{"navy", grid.RGB{R: 0, G: 0, B: 128}},
	{"maroon", grid.RGB{R: 128, G: 0, B: 0}},
}

func sqDist(a, b grid.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Name returns the reference name nearest to c by squared Euclidean
// distance in RGB space. It never fails.
func Name(c grid.RGB) string {
	best := reference[0].name
	bestDist := sqDist(c, reference[0].rgb)
	for _, ref := range reference[1:] {
		if d := sqDist(c, ref.rgb); d < bestDist {
			bestDist = d
			best = ref.name
		}
	}
	return best
}
