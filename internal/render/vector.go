package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"LocalDoodle/internal/state"
)

// circleK places cubic control points for a quarter circle.
const circleK = 0.5522847498307936

// Vector renders with golang.org/x/image/vector. It has no dependencies
// beyond x/image and suits headless hosts that only need an *image.RGBA.
//
// Each stroke is built as one outline (a quad per segment and a disc per
// vertex, all wound the same way) and composited once, so overlapping
// parts of a translucent stroke are not blended twice.
type Vector struct {
	opts Options
	dst  *image.RGBA
	rast *vector.Rasterizer
}

var _ Surface = (*Vector)(nil)

// NewVector returns a vector surface of the given size.
func NewVector(opts Options) *Vector {
	return &Vector{
		opts: opts,
		dst:  image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		rast: vector.NewRasterizer(opts.Width, opts.Height),
	}
}

// Render clears to the background and draws items in order.
func (v *Vector) Render(items []state.Renderable) error {
	bg := image.NewUniform(v.opts.Background.NRGBA())
	draw.Draw(v.dst, v.dst.Bounds(), bg, image.Point{}, draw.Src)

	for _, it := range visible(items, v.opts.view()) {
		v.rast.Reset(v.opts.Width, v.opts.Height)
		v.outline(it.Points, float32(it.Brush.Width/2))
		v.rast.DrawOp = draw.Over
		v.rast.Draw(v.dst, v.dst.Bounds(), image.NewUniform(it.Brush.Paint()), image.Point{})
	}
	return nil
}

func (v *Vector) outline(points []state.Point, hw float32) {
	for i, p := range points {
		x, y := float32(p.X), float32(p.Y)
		v.disc(x, y, hw)
		if i == 0 {
			continue
		}
		v.segment(float32(points[i-1].X), float32(points[i-1].Y), x, y, hw)
	}
}

// segment adds the rectangle of half-width hw around (x0,y0)-(x1,y1).
func (v *Vector) segment(x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	v.rast.MoveTo(x0+nx, y0+ny)
	v.rast.LineTo(x1+nx, y1+ny)
	v.rast.LineTo(x1-nx, y1-ny)
	v.rast.LineTo(x0-nx, y0-ny)
	v.rast.ClosePath()
}

// disc adds a circle wound the same way as segment.
func (v *Vector) disc(x, y, r float32) {
	o := r * circleK
	v.rast.MoveTo(x+r, y)
	v.rast.CubeTo(x+r, y-o, x+o, y-r, x, y-r)
	v.rast.CubeTo(x-o, y-r, x-r, y-o, x-r, y)
	v.rast.CubeTo(x-r, y+o, x-o, y+r, x, y+r)
	v.rast.CubeTo(x+o, y+r, x+r, y+o, x+r, y)
	v.rast.ClosePath()
}

// Image returns the pixels of the last Render.
func (v *Vector) Image() *image.RGBA {
	return v.dst
}
