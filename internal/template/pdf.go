package template

import (
	"github.com/go-pdf/fpdf"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

// PDFPage renders Page calls onto a single-page Helvetica PDF document.
type PDFPage struct {
	doc *fpdf.Fpdf
}

func NewPDFPage() *PDFPage {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetTextColor(0, 0, 0)
	doc.SetDrawColor(0, 0, 0)
	return &PDFPage{doc: doc}
}

func (p *PDFPage) DrawRect(x, y, w, h float64) {
	p.doc.Rect(x, y, w, h, "D")
}

func (p *PDFPage) FillRect(x, y, w, h float64, c grid.RGB) {
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.doc.Rect(x, y, w, h, "F")
}

func (p *PDFPage) DrawText(x, y, size float64, s string) {
	p.doc.SetFont("Helvetica", "", size)
	p.doc.Text(x, y, s)
}

// Save writes the document to path and finalizes it.
func (p *PDFPage) Save(path string) error {
	return p.doc.OutputFileAndClose(path)
}
