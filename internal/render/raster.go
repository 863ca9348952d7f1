package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"LocalDoodle/internal/state"
)

// Raster renders with gogpu/gg's anti-aliased software rasteriser.
// It is the surface the UI widget shows and PNG export writes.
type Raster struct {
	opts Options
	dc   *gg.Context
}

var _ Surface = (*Raster)(nil)

// NewRaster returns a raster surface of the given size.
func NewRaster(opts Options) *Raster {
	return &Raster{opts: opts, dc: gg.NewContext(opts.Width, opts.Height)}
}

// Resize changes the pixel size. The next Render repaints everything.
func (r *Raster) Resize(width, height int) error {
	if err := r.dc.Resize(width, height); err != nil {
		return err
	}
	r.opts.Width, r.opts.Height = width, height
	return nil
}

// Size returns the pixel size.
func (r *Raster) Size() (int, int) {
	return r.opts.Width, r.opts.Height
}

// Render clears to the background and draws items in order.
func (r *Raster) Render(items []state.Renderable) error {
	r.dc.ClearWithColor(gg.FromColor(r.opts.Background.NRGBA()))
	for _, it := range visible(items, r.opts.view()) {
		if err := r.draw(it); err != nil {
			return fmt.Errorf("render stroke %s: %w", it.ID, err)
		}
	}
	return nil
}

func (r *Raster) draw(it state.Renderable) error {
	c := it.Brush.Color
	r.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, it.Brush.Alpha())

	if it.IsDot() {
		p := it.Points[0]
		r.dc.DrawCircle(p.X, p.Y, it.Brush.Width/2)
		return r.dc.Fill()
	}

	r.dc.SetLineWidth(it.Brush.Width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	r.dc.MoveTo(it.Points[0].X, it.Points[0].Y)
	for _, p := range it.Points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	return r.dc.Stroke()
}

// Image returns the pixels of the last Render.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the pixels of the last Render as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
