package state

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether r and o share any area, edges included.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.Width < o.X || o.X+o.Width < r.X ||
		r.Y+r.Height < o.Y || o.Y+o.Height < r.Y)
}

// IsDot reports whether every point coincides. Such a stroke has no
// direction to stroke along and is drawn as a disc of the brush width.
func IsDot(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points[1:] {
		if p != points[0] {
			return false
		}
	}
	return true
}

// IsDot reports whether the entry is drawn as a single disc.
func (r Renderable) IsDot() bool {
	return IsDot(r.Points)
}

// Bounds returns the area touched by the points, padded by half the brush
// width so round caps are included.
func Bounds(points []Point, width float64) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	pad := width / 2
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Bounds returns the padded bounding box of the stroke.
func (s *Stroke) Bounds() Rect {
	return Bounds(s.Points, s.Brush.Width)
}

// Bounds returns the padded bounding box of the render list entry.
func (r Renderable) Bounds() Rect {
	return Bounds(r.Points, r.Brush.Width)
}
