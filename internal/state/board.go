// Package state holds the drawing model: the brush, the pointer recorder,
// the undo/redo history and the Board that ties them together.
package state

import (
	"sync"
)

// Board is the drawing surface state a UI shell holds on to.
//
// All operations are serialised behind one mutex, so pointer events from a
// driver goroutine cannot interleave with an undo from the toolbar.
// OnInvalidate is called, without the lock held, whenever the render list
// changed and the host should redraw.
type Board struct {
	mu       sync.Mutex
	brush    *BrushConfig
	history  *History
	recorder *Recorder

	OnInvalidate func()
}

type boardOptions struct {
	brush   Brush
	history []HistoryOption
	newID   func() string
}

// BoardOption configures a Board.
type BoardOption func(*boardOptions)

// WithBrush sets the initial brush. An invalid brush makes NewBoard fail.
func WithBrush(b Brush) BoardOption {
	return func(o *boardOptions) { o.brush = b }
}

// WithHistory passes options through to the board's History.
func WithHistory(opts ...HistoryOption) BoardOption {
	return func(o *boardOptions) { o.history = append(o.history, opts...) }
}

// WithIDGenerator replaces NewStrokeID, mostly for tests.
func WithIDGenerator(f func() string) BoardOption {
	return func(o *boardOptions) { o.newID = f }
}

// NewBoard returns an empty board with the default brush unless overridden.
func NewBoard(opts ...BoardOption) (*Board, error) {
	o := boardOptions{brush: DefaultBrush}
	for _, opt := range opts {
		opt(&o)
	}
	brush, err := NewBrushConfig(o.brush)
	if err != nil {
		return nil, err
	}
	h := NewHistory(o.history...)
	return &Board{
		brush:    brush,
		history:  h,
		recorder: NewRecorder(h, o.newID),
	}, nil
}

func (b *Board) invalidate() {
	if b.OnInvalidate != nil {
		b.OnInvalidate()
	}
}

// do runs f under the lock and signals a redraw if f reports a change.
func (b *Board) do(f func() bool) {
	b.mu.Lock()
	changed := f()
	b.mu.Unlock()
	if changed {
		b.invalidate()
	}
}

// Brush returns the brush new strokes will use.
func (b *Board) Brush() Brush {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.brush.Brush()
}

// SetBrush replaces colour, width and opacity together. Strokes already
// started keep the brush they were started with.
func (b *Board) SetBrush(col Color, width float64, opacity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.brush.Set(col, width, opacity)
}

// SetColor changes only the brush colour.
func (b *Board) SetColor(col Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.brush.Brush()
	return b.brush.Set(col, cur.Width, cur.Opacity)
}

// SetWidth changes only the brush width.
func (b *Board) SetWidth(width float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.brush.Brush()
	return b.brush.Set(cur.Color, width, cur.Opacity)
}

// SetOpacity changes only the brush opacity.
func (b *Board) SetOpacity(opacity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.brush.Brush()
	return b.brush.Set(cur.Color, cur.Width, opacity)
}

// PointerDown starts a new stroke at (x, y) with a snapshot of the current
// brush and drops any pending redo entries.
func (b *Board) PointerDown(x, y float64) {
	b.do(func() bool {
		b.recorder.Down(Point{X: x, Y: y}, b.brush.Brush())
		return true
	})
}

// PointerMove extends the stroke in progress. It does nothing when no
// stroke is in progress.
func (b *Board) PointerMove(x, y float64) {
	b.do(func() bool {
		return b.recorder.Move(Point{X: x, Y: y})
	})
}

// PointerUp commits the stroke in progress.
func (b *Board) PointerUp() {
	b.do(b.recorder.Up)
}

// PointerCancel discards the stroke in progress without committing it.
func (b *Board) PointerCancel() {
	b.do(b.recorder.Cancel)
}

// Undo removes the most recent stroke from the canvas. Safe to call on an
// empty board.
func (b *Board) Undo() {
	b.do(b.history.Undo)
}

// Redo restores the most recently undone stroke. Safe to call when there is
// nothing to redo.
func (b *Board) Redo() {
	b.do(b.history.Redo)
}

// Clear removes every stroke, pending redo entries and the stroke in
// progress.
func (b *Board) Clear() {
	b.do(func() bool {
		cancelled := b.recorder.Cancel()
		cleared := b.history.Clear()
		return cancelled || cleared
	})
}

// CanUndo reports whether Undo would change the canvas.
func (b *Board) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history.CanUndo()
}

// CanRedo reports whether Redo would change the canvas.
func (b *Board) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history.CanRedo()
}

// State returns the recorder state.
func (b *Board) State() RecorderState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recorder.State()
}

// SetMaxDepth changes the undo depth cap; zero means unbounded. Freezing
// strokes signals a redraw since CanUndo may have changed.
func (b *Board) SetMaxDepth(n int) {
	b.do(func() bool {
		return b.history.SetMaxDepth(n)
	})
}

// Renderables returns the render list: committed strokes in commit order,
// then the stroke in progress, if any. The result is a copy.
func (b *Board) Renderables() []Renderable {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Renderable, 0, len(b.history.committed)+1)
	for _, s := range b.history.committed {
		out = append(out, s.renderable(false))
	}
	if cur := b.recorder.Current(); cur != nil {
		out = append(out, cur.renderable(true))
	}
	return out
}

// Snapshot returns a copy of the whole board state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap := Snapshot{
		Committed: b.history.Committed(),
		Redo:      b.history.Redoable(),
		State:     b.recorder.State(),
		Brush:     b.brush.Brush(),
	}
	if cur := b.recorder.Current(); cur != nil {
		c := cur.clone()
		snap.Current = &c
	}
	return snap
}
