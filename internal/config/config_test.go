package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalDoodle/internal/state"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	b, err := cfg.InitialBrush()
	require.NoError(t, err)
	assert.Equal(t, state.DefaultBrush, b)

	opts := cfg.RenderOptions()
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, state.White, opts.Background)
	assert.Equal(t, []float64{5, 10, 15, 20}, cfg.Palette.Widths)
	assert.Equal(t, []int{64, 128, 192, 255}, cfg.Palette.Opacities)
	assert.Len(t, cfg.Palette.Colors, 3)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join("localdoodle", "config.toml")), path)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.toml"))
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Same(t, cfg, l.Config())
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[canvas]
width = 640
height = 480
background = "#fafafa"

[brush]
color = "#ff0000"
width = 12.5
opacity = 128

[history]
max_depth = 50

[palette]
widths = [1.0, 2.0]
opacities = [255]

[[palette.colors]]
name = "Green"
color = "#00ff00"

[logging]
level = "debug"
`)
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 50, cfg.History.MaxDepth)
	assert.Equal(t, []float64{1, 2}, cfg.Palette.Widths)
	assert.Equal(t, []NamedColor{{Name: "Green", Color: "#00ff00"}}, cfg.Palette.Colors)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	b, err := cfg.InitialBrush()
	require.NoError(t, err)
	assert.Equal(t, state.Brush{Color: state.Red, Width: 12.5, Opacity: 128}, b)
	assert.Equal(t, state.Color{R: 0xfa, G: 0xfa, B: 0xfa, A: 255}, cfg.RenderOptions().Background)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[history]\nmax_depth = 3\n")
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.History.MaxDepth)
	assert.Equal(t, "#000000", cfg.Brush.Color)
	assert.Equal(t, 768, cfg.Canvas.Height)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad toml", body: "[brush\n", want: "decode TOML"},
		{name: "zero width", body: "[brush]\nwidth = 0\n", want: "brush"},
		{name: "bad color", body: "[brush]\ncolor = \"#12\"\n", want: "brush"},
		{name: "negative depth", body: "[history]\nmax_depth = -1\n", want: "history.max_depth"},
		{name: "bad opacity", body: "[palette]\nopacities = [300]\n", want: "palette.opacities[0]"},
		{name: "bad level", body: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "bad canvas", body: "[canvas]\nwidth = -5\n", want: "canvas"},
		{name: "nan palette width", body: "[palette]\nwidths = [nan, 5.0]\n", want: "palette.widths[0]"},
		{name: "inf palette width", body: "[palette]\nwidths = [5.0, inf]\n", want: "palette.widths[1]"},
		{name: "junk background", body: "[canvas]\nbackground = \"#ffffzz\"\n", want: "canvas.background"},
		{name: "junk palette color", body: "[[palette.colors]]\nname = \"Odd\"\ncolor = \"#12345g\"\n", want: "palette.colors[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := NewLoader(path).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brush.Opacity = 999
	cfg.History.MaxDepth = -2

	err := cfg.Validate()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DOODLE_LOG_LEVEL", "warn")
	t.Setenv("DOODLE_MAX_HISTORY", "7")
	t.Setenv("DOODLE_CANVAS_WIDTH", "not a number")
	t.Setenv("DOODLE_CANVAS_HEIGHT", "300")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	assert.Equal(t, 7, cfg.History.MaxDepth)
	assert.Equal(t, 1024, cfg.Canvas.Width)
	assert.Equal(t, 300, cfg.Canvas.Height)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := DefaultConfig()
	want.History.MaxDepth = 9
	require.NoError(t, Save(path, want))

	got, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoader_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[history]\nmax_depth = 1\n")
	l := NewLoader(path)
	l.debounce = 10 * time.Millisecond
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 16)
	l.OnChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, l.Watch())
	t.Cleanup(func() { _ = l.Close() })

	require.NoError(t, os.WriteFile(path, []byte("[history]\nmax_depth = 4\n"), 0o644))

	// A reload may observe the truncated file first; wait for the final one.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.History.MaxDepth != 4 {
				continue
			}
			assert.Equal(t, 4, l.Config().History.MaxDepth)
			return
		case <-timeout:
			t.Fatal("config change not observed")
		}
	}
}

func TestLoader_WatchReportsBadReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	l := NewLoader(path)
	l.debounce = 10 * time.Millisecond
	require.NoError(t, l.Watch())
	t.Cleanup(func() { _ = l.Close() })

	require.NoError(t, os.WriteFile(path, []byte("[brush]\nwidth = -1\n"), 0o644))

	select {
	case err := <-l.Errors():
		assert.Contains(t, err.Error(), "reload config")
	case <-time.After(5 * time.Second):
		t.Fatal("reload error not reported")
	}
}
