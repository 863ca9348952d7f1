package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"LocalDoodle/internal/config"
	"LocalDoodle/internal/state"
)

// NewContent builds the board widget and toolbar laid out for window.
func NewContent(board *state.Board, cfg *config.Config, window fyne.Window) (fyne.CanvasObject, *Toolbar) {
	opts := cfg.RenderOptions()

	// Create the interactive board widget
	bw := NewBoardWidget(board, opts)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(bw, cfg.Palette, opts, window)

	// Set up the main layout
	content := container.NewBorder(toolbar.Build(cfg.Palette), toolbar.Status(), nil, nil, bw)
	return content, toolbar
}

// RunApp opens the main window and blocks until it closes.
func RunApp(board *state.Board, cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Doodle")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	content, _ := NewContent(board, cfg, myWindow)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
