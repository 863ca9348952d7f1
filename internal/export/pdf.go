// Package export writes a board's render list to files the user can keep:
// a vector PDF page or a PNG image. Neither can be loaded back.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LocalDoodle/internal/render"
	"LocalDoodle/internal/state"
)

// PDF renders strokes onto a single PDF page the size of the canvas, one
// point per pixel.
type PDF struct {
	opts        render.Options
	compression bool
	doc         *gofpdf.Fpdf
}

var _ render.Surface = (*PDF)(nil)

// NewPDF returns a PDF surface.
func NewPDF(opts render.Options) *PDF {
	return &PDF{opts: opts, compression: true}
}

// SetCompression toggles stream compression. Uncompressed output is
// easier to inspect.
func (p *PDF) SetCompression(on bool) {
	p.compression = on
}

// Render starts a fresh document and draws items on its only page.
func (p *PDF) Render(items []state.Renderable) error {
	w, h := float64(p.opts.Width), float64(p.opts.Height)
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetCompression(p.compression)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	bg := p.opts.Background
	doc.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	doc.Rect(0, 0, w, h, "F")

	page := state.Rect{Width: w, Height: h}
	for _, it := range items {
		if len(it.Points) == 0 || !it.Bounds().Overlaps(page) {
			continue
		}
		drawStroke(doc, it)
	}
	doc.SetAlpha(1, "Normal")

	if err := doc.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	p.doc = doc
	return nil
}

func drawStroke(doc *gofpdf.Fpdf, it state.Renderable) {
	c := it.Brush.Color
	doc.SetAlpha(it.Brush.Alpha(), "Normal")

	first := it.Points[0]
	if it.IsDot() {
		doc.SetFillColor(int(c.R), int(c.G), int(c.B))
		doc.Circle(first.X, first.Y, it.Brush.Width/2, "F")
		return
	}

	doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	doc.SetLineWidth(it.Brush.Width)
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	doc.MoveTo(first.X, first.Y)
	for _, pt := range it.Points[1:] {
		doc.LineTo(pt.X, pt.Y)
	}
	doc.DrawPath("D")
}

// Output writes the document produced by the last Render.
func (p *PDF) Output(w io.Writer) error {
	if p.doc == nil {
		return fmt.Errorf("pdf: nothing rendered")
	}
	return p.doc.Output(w)
}

// WritePDF renders items and writes the PDF to w.
func WritePDF(w io.Writer, items []state.Renderable, opts render.Options) error {
	p := NewPDF(opts)
	if err := p.Render(items); err != nil {
		return err
	}
	return p.Output(w)
}

// WritePNG renders items with the raster surface and writes a PNG to w.
func WritePNG(w io.Writer, items []state.Renderable, opts render.Options) error {
	r := render.NewRaster(opts)
	defer r.Close()
	if err := r.Render(items); err != nil {
		return err
	}
	return r.EncodePNG(w)
}
