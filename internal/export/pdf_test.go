package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalDoodle/internal/render"
	"LocalDoodle/internal/state"
)

func opts() render.Options {
	return render.Options{Width: 100, Height: 100, Background: state.White}
}

func TestPDF_DrawsStrokes(t *testing.T) {
	items := []state.Renderable{
		{ID: "a", Points: []state.Point{{X: 10, Y: 50}, {X: 90, Y: 50}}, Brush: state.DefaultBrush},
		{ID: "dot", Points: []state.Point{{X: 20, Y: 20}}, Brush: state.DefaultBrush},
	}
	p := NewPDF(opts())
	p.SetCompression(false)
	require.NoError(t, p.Render(items))

	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out, "10.00 50.00 m")
	assert.Contains(t, out, "90.00 50.00 l")
}

func TestPDF_OutputBeforeRender(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewPDF(opts()).Output(&buf))
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, nil, opts()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePNG(t *testing.T) {
	items := []state.Renderable{
		{ID: "a", Points: []state.Point{{X: 10, Y: 10}, {X: 60, Y: 60}}, Brush: state.DefaultBrush},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, items, opts()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	r, _, _, _ := img.At(35, 35).RGBA()
	assert.Less(t, r, uint32(0x4000), "pixel on the black stroke")
}
