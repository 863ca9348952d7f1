package ui

import (
	"image"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalDoodle/internal/render"
	"LocalDoodle/internal/state"
)

// BoardWidget shows a state.Board and feeds it pointer events.
//
// Primary-button press, drag and release map to pointer down, move and up.
// Escape or losing focus while drawing cancels the stroke.
type BoardWidget struct {
	widget.BaseWidget

	board   *state.Board
	mu      sync.Mutex
	surface *render.Raster

	// OnChanged runs after every redraw request, e.g. to update undo/redo
	// buttons.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget wraps board. The widget takes over board.OnInvalidate.
func NewBoardWidget(board *state.Board, opts render.Options) *BoardWidget {
	b := &BoardWidget{
		board:   board,
		surface: render.NewRaster(opts),
	}
	b.ExtendBaseWidget(b)
	board.OnInvalidate = b.invalidated
	return b
}

// Board returns the wrapped board.
func (b *BoardWidget) Board() *state.Board {
	return b.board
}

func (b *BoardWidget) invalidated() {
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

func pointOf(pos fyne.Position) (float64, float64) {
	return float64(pos.X), float64(pos.Y)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
	b.board.PointerDown(pointOf(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.board.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.board.PointerMove(pointOf(e.Position))
}

// DragEnd commits as well, for drivers that report the release only as the
// end of a drag. A second PointerUp is a no-op.
func (b *BoardWidget) DragEnd() {
	b.board.PointerUp()
}

func (b *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyEscape {
		b.board.PointerCancel()
	}
}

func (b *BoardWidget) FocusLost() {
	b.board.PointerCancel()
}

func (b *BoardWidget) FocusGained()   {}
func (b *BoardWidget) TypedRune(rune) {}

// draw renders the board at the device pixel size w x h. Strokes are
// recorded in canvas units and scaled to match.
func (b *BoardWidget) draw(w, h int) image.Image {
	w, h = max(w, 1), max(h, 1)
	scale := 1.0
	if size := b.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.surface.Resize(w, h); err != nil {
		log.Printf("[UI] resize surface: %v", err)
	}
	items := render.Scale(b.board.Renderables(), scale)
	if err := b.surface.Render(items); err != nil {
		log.Printf("[UI] render board: %v", err)
	}
	return b.surface.Image()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.raster = canvas.NewRaster(b.draw)
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
