package config

import (
	"fmt"
	"strings"

	"LocalDoodle/internal/state"
)

// ValidationError describes one bad setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every bad setting found.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the whole config and returns ValidationErrors listing
// every problem, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		add("canvas", "size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := state.ParseColor(c.Canvas.Background); err != nil {
		add("canvas.background", "%v", err)
	}

	if _, err := c.InitialBrush(); err != nil {
		add("brush", "%v", err)
	}

	if c.History.MaxDepth < 0 {
		add("history.max_depth", "must not be negative, got %d", c.History.MaxDepth)
	}

	for i, nc := range c.Palette.Colors {
		if _, err := state.ParseColor(nc.Color); err != nil {
			add(fmt.Sprintf("palette.colors[%d]", i), "%v", err)
		}
	}
	for i, w := range c.Palette.Widths {
		b := state.Brush{Color: state.Black, Width: w, Opacity: state.MaxOpacity}
		if err := b.Validate(); err != nil {
			add(fmt.Sprintf("palette.widths[%d]", i), "%v", err)
		}
	}
	for i, o := range c.Palette.Opacities {
		if o < 0 || o > state.MaxOpacity {
			add(fmt.Sprintf("palette.opacities[%d]", i), "opacity %d outside [0,%d]", o, state.MaxOpacity)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		add("logging.level", "unknown level %q", c.Logging.Level)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
