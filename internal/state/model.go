package state

import (
	"image/color"
	"slices"
)

// Point is a single pointer sample in view-local coordinates.
type Point struct{ X, Y float64 }

// Color is a non-premultiplied RGBA colour.
type Color struct{ R, G, B, A uint8 }

var (
	Black = Color{A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Red   = Color{R: 255, A: 255}
	Green = Color{G: 255, A: 255}
	Blue  = Color{B: 255, A: 255}
)

// NRGBA converts c to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Brush is the colour/width/opacity triple applied to new strokes.
// It is a plain value: assigning it takes a snapshot.
type Brush struct {
	Color   Color   `json:"color"`
	Width   float64 `json:"width"`
	Opacity int     `json:"opacity"`
}

// Alpha returns the paint alpha in [0,1]: the colour's own alpha scaled by
// the brush opacity.
func (b Brush) Alpha() float64 {
	return float64(b.Color.A) / 255 * float64(b.Opacity) / 255
}

// Paint returns the colour a surface should use for this brush, with the
// opacity folded into the alpha channel.
func (b Brush) Paint() color.NRGBA {
	n := b.Color.NRGBA()
	n.A = uint8(float64(b.Color.A)*float64(b.Opacity)/255 + 0.5)
	return n
}

// Stroke is one continuous pointer-drag gesture.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Brush  Brush   `json:"brush"`
}

func (s *Stroke) clone() Stroke {
	return Stroke{
		ID:     s.ID,
		Points: slices.Clone(s.Points),
		Brush:  s.Brush,
	}
}

// Renderable is one entry of the render list.
type Renderable struct {
	ID         string
	Points     []Point
	Brush      Brush
	InProgress bool
}

func (s *Stroke) renderable(inProgress bool) Renderable {
	return Renderable{
		ID:         s.ID,
		Points:     slices.Clone(s.Points),
		Brush:      s.Brush,
		InProgress: inProgress,
	}
}

// Snapshot is a read-only copy of the whole board.
type Snapshot struct {
	Committed []Stroke
	Redo      []Stroke
	Current   *Stroke
	State     RecorderState
	Brush     Brush
}
