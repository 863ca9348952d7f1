package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalDoodle/internal/config"
	"LocalDoodle/internal/export"
	"LocalDoodle/internal/render"
	"LocalDoodle/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the brush and history controls for one board.
type Toolbar struct {
	board  *BoardWidget
	render render.Options
	window fyne.Window

	// lastColor is restored when switching back from the eraser.
	lastColor state.Color

	undoBtn  *widget.Button
	redoBtn  *widget.Button
	clearBtn *widget.Button
	widthSel *widget.Select
	alphaSel *widget.Select
	status   *widget.Label
}

// NewToolbar builds the controls. window may be nil, which disables the
// export dialogs.
func NewToolbar(board *BoardWidget, palette config.PaletteConfig, opts render.Options, window fyne.Window) *Toolbar {
	t := &Toolbar{
		board:     board,
		render:    opts,
		window:    window,
		lastColor: board.Board().Brush().Color,
		status:    widget.NewLabel("Ready"),
	}

	t.undoBtn = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), board.Board().Undo)
	t.redoBtn = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), board.Board().Redo)
	t.clearBtn = widget.NewButtonWithIcon("Clear Sketch", theme.DeleteIcon(), board.Board().Clear)

	t.widthSel = widget.NewSelect(formatWidths(palette.Widths), func(v string) {
		w, err := strconv.ParseFloat(v, 64)
		if err == nil {
			t.apply(board.Board().SetWidth(w))
		}
	})
	t.alphaSel = widget.NewSelect(formatInts(palette.Opacities), func(v string) {
		o, err := strconv.Atoi(v)
		if err == nil {
			t.apply(board.Board().SetOpacity(o))
		}
	})
	cur := board.Board().Brush()
	t.widthSel.SetSelected(strconv.FormatFloat(cur.Width, 'g', -1, 64))
	t.alphaSel.SetSelected(strconv.Itoa(cur.Opacity))

	board.OnChanged = t.refresh
	t.refresh()
	return t
}

func (t *Toolbar) apply(err error) {
	if err != nil {
		log.Printf("[UI] brush change rejected: %v", err)
		t.SetStatus(err.Error())
	}
}

func (t *Toolbar) selectColor(c state.Color) {
	t.lastColor = c
	t.apply(t.board.Board().SetColor(c))
}

// pen restores the last palette colour.
func (t *Toolbar) pen() {
	t.apply(t.board.Board().SetColor(t.lastColor))
}

// eraser paints with the canvas background.
func (t *Toolbar) eraser() {
	t.apply(t.board.Board().SetColor(t.render.Background))
}

// refresh syncs the history buttons with the board.
func (t *Toolbar) refresh() {
	b := t.board.Board()
	setEnabled(t.undoBtn, b.CanUndo())
	setEnabled(t.redoBtn, b.CanRedo())
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

// SetStatus shows text in the status label. Safe from any goroutine.
func (t *Toolbar) SetStatus(text string) {
	fyne.Do(func() {
		t.status.SetText(text)
	})
}

// Status returns the status label for placement in the window.
func (t *Toolbar) Status() *widget.Label {
	return t.status
}

func (t *Toolbar) exportDialog(write func(io.Writer) error, ext string) {
	if t.window == nil {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] export dialog: %v", err)
			return
		}
		if writer == nil {
			return
		}
		t.exportTo(writer, write)
	}, t.window)
	d.SetFileName("doodle" + ext)
	d.Show()
}

func (t *Toolbar) exportTo(writer io.WriteCloser, write func(io.Writer) error) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] closing export: %v", err)
		}
	}()
	if err := write(writer); err != nil {
		log.Printf("[UI] export failed: %v", err)
		t.SetStatus("Export failed")
		return
	}
	t.SetStatus("Exported drawing")
}

func (t *Toolbar) writePNG(w io.Writer) error {
	return export.WritePNG(w, t.board.Board().Renderables(), t.render)
}

func (t *Toolbar) writePDF(w io.Writer) error {
	return export.WritePDF(w, t.board.Board().Renderables(), t.render)
}

// Build lays out the controls.
func (t *Toolbar) Build(palette config.PaletteConfig) fyne.CanvasObject {
	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.pen),
		widget.NewToolbarAction(theme.ContentClearIcon(), t.eraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { t.exportDialog(t.writePNG, ".png") }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { t.exportDialog(t.writePDF, ".pdf") }),
	)

	colorBox := container.NewHBox()
	for _, nc := range palette.Colors {
		c, err := state.ParseColor(nc.Color)
		if err != nil {
			log.Printf("[UI] skipping palette colour %s: %v", nc.Name, err)
			continue
		}
		colorBox.Add(newColorSwatch(c, t.selectColor))
	}

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		t.widthSel,
		widget.NewLabel("Opacity:"),
		t.alphaSel,
		widget.NewSeparator(),
		t.undoBtn,
		t.redoBtn,
		t.clearBtn,
		layout.NewSpacer(),
	)
}

func formatWidths(ws []float64) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, strconv.FormatFloat(w, 'g', -1, 64))
	}
	return out
}

func formatInts(vs []int) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
