package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrush_Validate(t *testing.T) {
	tests := []struct {
		name    string
		brush   Brush
		wantErr bool
	}{
		{name: "default", brush: DefaultBrush},
		{name: "transparent", brush: Brush{Color: Red, Width: 0.5, Opacity: 0}},
		{name: "zero width", brush: Brush{Color: Red, Width: 0, Opacity: 255}, wantErr: true},
		{name: "negative width", brush: Brush{Color: Red, Width: -2, Opacity: 255}, wantErr: true},
		{name: "NaN width", brush: Brush{Color: Red, Width: math.NaN(), Opacity: 255}, wantErr: true},
		{name: "infinite width", brush: Brush{Color: Red, Width: math.Inf(1), Opacity: 255}, wantErr: true},
		{name: "opacity too high", brush: Brush{Color: Red, Width: 1, Opacity: 256}, wantErr: true},
		{name: "negative opacity", brush: Brush{Color: Red, Width: 1, Opacity: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.brush.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBrushParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBrushConfig_SetIsAtomic(t *testing.T) {
	c, err := NewBrushConfig(DefaultBrush)
	require.NoError(t, err)

	require.Error(t, c.Set(Red, 10, 300))
	assert.Equal(t, DefaultBrush, c.Brush(), "no field changes when one is invalid")

	require.NoError(t, c.Set(Red, 10, 128))
	assert.Equal(t, Brush{Color: Red, Width: 10, Opacity: 128}, c.Brush())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#000000", want: Black},
		{in: "#ff0000", want: Red},
		{in: "00ff00", want: Green},
		{in: "#00f", want: Blue},
		{in: " #ffffff ", want: White},
		{in: "#ff000080", want: Color{R: 255, A: 128}},
		{in: "#ff00", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "#ff0000zz", wantErr: true},
		{in: "", wantErr: true},
		{in: "#12345g", wantErr: true},
		{in: "#1 2345", wantErr: true},
		{in: "#ff00 0", wantErr: true},
		{in: "#12345g80", wantErr: true},
		{in: "#0f0f", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBrushParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDot(t *testing.T) {
	assert.False(t, IsDot(nil))
	assert.True(t, IsDot([]Point{{1, 1}}))
	assert.True(t, IsDot([]Point{{1, 1}, {1, 1}, {1, 1}}))
	assert.False(t, IsDot([]Point{{1, 1}, {1, 2}}))
	assert.True(t, Renderable{Points: []Point{{3, 3}, {3, 3}}}.IsDot())
}

func TestBrush_Paint(t *testing.T) {
	b := Brush{Color: Red, Width: 1, Opacity: 128}
	p := b.Paint()
	assert.Equal(t, uint8(255), p.R)
	assert.Equal(t, uint8(128), p.A)
	assert.InDelta(t, 128.0/255, b.Alpha(), 1e-9)

	half := Brush{Color: Color{R: 255, A: 128}, Width: 1, Opacity: 128}
	assert.Equal(t, uint8(64), half.Paint().A)
}

func TestStroke_Bounds(t *testing.T) {
	s := Stroke{Points: []Point{{10, 20}, {30, 5}}, Brush: Brush{Width: 4}}
	assert.Equal(t, Rect{X: 8, Y: 3, Width: 24, Height: 19}, s.Bounds())

	d := Stroke{Points: []Point{{1, 1}}, Brush: Brush{Width: 2}}
	assert.False(t, d.Bounds().Empty(), "a dot still covers its brush disc")

	assert.True(t, Bounds(nil, 3).Empty())
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	c := Rect{X: 20, Y: 20, Width: 1, Height: 1}
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}
