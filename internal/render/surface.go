// Package render draws a board's render list onto pixels or pages.
//
// Every surface draws the entries in the order given, each with its own
// brush snapshot, and starts each pass from a blank background so that
// rendering the same list twice gives the same result.
package render

import (
	"LocalDoodle/internal/state"
)

// Surface is a drawing target for a render list.
type Surface interface {
	Render(items []state.Renderable) error
}

// Options are shared by the pixel surfaces.
type Options struct {
	Width      int
	Height     int
	Background state.Color
}

// DefaultOptions matches the default canvas size and a white background.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 768, Background: state.White}
}

func (o Options) view() state.Rect {
	return state.Rect{Width: float64(o.Width), Height: float64(o.Height)}
}

// Scale multiplies every point and brush width by f in place, for hosts
// whose pixels are smaller than their layout units.
func Scale(items []state.Renderable, f float64) []state.Renderable {
	if f == 1 {
		return items
	}
	for i := range items {
		for j := range items[i].Points {
			items[i].Points[j].X *= f
			items[i].Points[j].Y *= f
		}
		items[i].Brush.Width *= f
	}
	return items
}

// visible filters out entries without points or entirely outside view.
func visible(items []state.Renderable, view state.Rect) []state.Renderable {
	out := make([]state.Renderable, 0, len(items))
	for _, it := range items {
		if len(it.Points) == 0 || !it.Bounds().Overlaps(view) {
			continue
		}
		out = append(out, it)
	}
	if skipped := len(items) - len(out); skipped > 0 {
		state.Logger().Debug("render skipped strokes", "skipped", skipped)
	}
	return out
}
