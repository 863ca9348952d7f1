// Package config loads the doodle board settings from a TOML file.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"LocalDoodle/internal/render"
	"LocalDoodle/internal/state"
)

// Config holds every user-tunable setting.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Brush   BrushConfig   `toml:"brush"`
	History HistoryConfig `toml:"history"`
	Palette PaletteConfig `toml:"palette"`
	Logging LoggingConfig `toml:"logging"`
}

// CanvasConfig sizes the drawing surface.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// BrushConfig is the brush a new board starts with.
type BrushConfig struct {
	Color   string  `toml:"color"`
	Width   float64 `toml:"width"`
	Opacity int     `toml:"opacity"`
}

// HistoryConfig bounds undo. MaxDepth 0 keeps every stroke undoable.
type HistoryConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// NamedColor is a palette entry.
type NamedColor struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// PaletteConfig lists what the toolbar offers.
type PaletteConfig struct {
	Colors    []NamedColor `toml:"colors"`
	Widths    []float64    `toml:"widths"`
	Opacities []int        `toml:"opacities"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 1024, Height: 768, Background: "#ffffff"},
		Brush:  BrushConfig{Color: "#000000", Width: 5, Opacity: 255},
		Palette: PaletteConfig{
			Colors: []NamedColor{
				{Name: "Black", Color: "#000000"},
				{Name: "Red", Color: "#ff0000"},
				{Name: "Blue", Color: "#0000ff"},
			},
			Widths:    []float64{5, 10, 15, 20},
			Opacities: []int{64, 128, 192, 255},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// ConfigDir returns the directory holding config.toml.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "localdoodle")
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// ApplyEnvOverrides applies DOODLE_* environment variables. Malformed
// numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DOODLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, err := strconv.Atoi(os.Getenv("DOODLE_MAX_HISTORY")); err == nil {
		c.History.MaxDepth = v
	}
	if v, err := strconv.Atoi(os.Getenv("DOODLE_CANVAS_WIDTH")); err == nil {
		c.Canvas.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv("DOODLE_CANVAS_HEIGHT")); err == nil {
		c.Canvas.Height = v
	}
}

// InitialBrush converts the brush section. Call Validate first.
func (c *Config) InitialBrush() (state.Brush, error) {
	col, err := state.ParseColor(c.Brush.Color)
	if err != nil {
		return state.Brush{}, err
	}
	b := state.Brush{Color: col, Width: c.Brush.Width, Opacity: c.Brush.Opacity}
	return b, b.Validate()
}

// RenderOptions converts the canvas section.
func (c *Config) RenderOptions() render.Options {
	bg, err := state.ParseColor(c.Canvas.Background)
	if err != nil {
		bg = state.White
	}
	return render.Options{Width: c.Canvas.Width, Height: c.Canvas.Height, Background: bg}
}

// LogLevel converts the logging level, defaulting to Info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
