// Package template turns an index grid and its palette into drawing
// calls for a numbered paint-by-number page with a color legend.
package template

import "math"

// Page geometry in points (1pt = 1/72in) on a portrait US-Letter page,
// origin top-left.
const (
	PageWidth  = 612.0 // 8.5in
	PageHeight = 792.0 // 11in
	inch       = 72.0

	titleX    = inch
	titleY    = 0.5 * inch
	titleSize = 16

	gridWidth = 8 * inch // total grid width, fixed
	gridTop   = inch

	labelSizeCap = 10.0 // cell labels never exceed this font size

	headerSize   = 12
	rowsPerCol   = 6     // legend entries per column
	columnWidth  = 2 * inch
	rowPitch     = 20.0  // vertical distance between legend rows
	swatchSize   = 15.0
	swatchIndent = 30.0  // swatch x offset within a legend column
	nameIndent   = 60.0  // color name x offset within a legend column
)

// Layout holds the derived geometry for one page. All values are a pure
// function of (rows, cols, k).
type Layout struct {
	Rows, Cols int
	K          int

	CellSize  float64 // square cell edge
	OriginX   float64 // grid left edge
	LabelSize float64 // font size for cell numbers

	LegendY       float64 // baseline of the "Color Key:" header
	LegendColumns int
}

// Compute derives the page geometry for a rows×cols grid and a k-entry
// palette. Cells are square: the grid always spans gridWidth, so cell
// size shrinks as cols grows and total grid height is CellSize*rows.
func Compute(rows, cols, k int) Layout {
	cell := gridWidth / float64(cols)
	return Layout{
		Rows:          rows,
		Cols:          cols,
		K:             k,
		CellSize:      cell,
		OriginX:       (PageWidth - float64(cols)*cell) / 2,
		LabelSize:     math.Min(cell*0.7, labelSizeCap),
		LegendY:       gridTop + float64(rows+1)*cell,
		LegendColumns: (k + rowsPerCol - 1) / rowsPerCol,
	}
}

// CellRect returns the top-left corner of the cell at row i, column j.
func (l Layout) CellRect(i, j int) (x, y float64) {
	return l.OriginX + float64(j)*l.CellSize, gridTop + float64(i)*l.CellSize
}

// LabelPos returns the baseline anchor of the number inside cell (i, j),
// near the cell's bottom-left interior.
func (l Layout) LabelPos(i, j int) (x, y float64) {
	cx, cy := l.CellRect(i, j)
	return cx + l.CellSize*0.4, cy + l.CellSize*0.7
}

// LegendCell returns the column/row slot of the 0-based legend entry i.
func (l Layout) LegendCell(i int) (col, row int) {
	return i / rowsPerCol, i % rowsPerCol
}

// LegendPos returns the text baseline anchor of the 0-based legend entry i.
func (l Layout) LegendPos(i int) (x, y float64) {
	col, row := l.LegendCell(i)
	return l.OriginX + float64(col)*columnWidth, l.LegendY + float64(row+1)*rowPitch
}
