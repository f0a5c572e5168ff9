package template

import (
	"fmt"

	"github.com/sieis/Pixel-Color-By-Number/internal/colorname"
	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

// Page is the drawing surface the engine renders onto. Text is
// left-anchored at its baseline; rectangles are addressed by their
// top-left corner. Coordinates are points, origin top-left.
type Page interface {
	DrawRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c grid.RGB)
	DrawText(x, y, size float64, s string)
}

// Render draws the numbered grid and the color legend for idx onto p.
// The emitted geometry depends only on the grid shape, the palette size
// and the palette colors; very large palettes can push the legend past
// the page bottom, which is left to the caller to avoid (the practical
// limit is maxColors well under rowsPerCol times the rows that fit
// below the grid).
func Render(idx *grid.Indexes, colors []grid.RGB, title string, p Page) {
	l := Compute(idx.H, idx.W, len(colors))

	p.DrawText(titleX, titleY, titleSize, title)

	for i := 0; i < idx.H; i++ {
		for j := 0; j < idx.W; j++ {
			x, y := l.CellRect(i, j)
			p.DrawRect(x, y, l.CellSize, l.CellSize)
			lx, ly := l.LabelPos(i, j)
			p.DrawText(lx, ly, l.LabelSize, fmt.Sprintf("%d", idx.At(j, i)))
		}
	}

	p.DrawText(l.OriginX, l.LegendY, headerSize, "Color Key:")
	for i, c := range colors {
		x, y := l.LegendPos(i)
		p.DrawText(x, y, headerSize, fmt.Sprintf("%d:", i+1))
		p.FillRect(x+swatchIndent, y-swatchSize+2, swatchSize, swatchSize, c)
		p.DrawText(x+nameIndent, y, headerSize, colorname.Name(c))
	}
}
