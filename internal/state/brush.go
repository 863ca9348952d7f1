package state

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidBrushParameter is returned when a brush setting is out of range
// or a colour cannot be parsed. The rejected value is never stored.
var ErrInvalidBrushParameter = errors.New("invalid brush parameter")

// MaxOpacity is the fully opaque brush opacity.
const MaxOpacity = 255

// DefaultBrush is the brush a new board starts with.
var DefaultBrush = Brush{Color: Black, Width: 5, Opacity: MaxOpacity}

// Validate checks the brush against the allowed ranges.
func (b Brush) Validate() error {
	if math.IsNaN(b.Width) || math.IsInf(b.Width, 0) || b.Width <= 0 {
		return fmt.Errorf("%w: width %v must be a positive number", ErrInvalidBrushParameter, b.Width)
	}
	if b.Opacity < 0 || b.Opacity > MaxOpacity {
		return fmt.Errorf("%w: opacity %d outside [0,%d]", ErrInvalidBrushParameter, b.Opacity, MaxOpacity)
	}
	return nil
}

// BrushConfig holds the brush applied to strokes that have not started yet.
// The zero value is not usable; create one with NewBrushConfig.
type BrushConfig struct {
	current Brush
}

// NewBrushConfig returns a config holding b, or an error if b is invalid.
func NewBrushConfig(b Brush) (*BrushConfig, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &BrushConfig{current: b}, nil
}

// Brush returns a copy of the current brush.
func (c *BrushConfig) Brush() Brush {
	return c.current
}

// Set replaces colour, width and opacity together. On error the previous
// brush is kept.
func (c *BrushConfig) Set(col Color, width float64, opacity int) error {
	next := Brush{Color: col, Width: width, Opacity: opacity}
	if err := next.Validate(); err != nil {
		Logger().Warn("brush rejected", "err", err)
		return err
	}
	c.current = next
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional. Colours without an alpha component are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful.Hex stops scanning at the first non-hex digit.
	if i := strings.IndexFunc(s[1:], notHex); i >= 0 {
		return Color{}, fmt.Errorf("%w: color %q: %q is not a hex digit", ErrInvalidBrushParameter, s, s[i+1])
	}
	alpha := uint8(255)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q: bad alpha", ErrInvalidBrushParameter, s)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("%w: color %q has wrong length", ErrInvalidBrushParameter, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidBrushParameter, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func notHex(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}
