package state

// History owns the committed strokes and the redo stack.
//
// The committed list doubles as the undo source: undo takes its last entry,
// so no separate undo stack is kept. Every stroke lives in exactly one of
// the two lists; Undo and Redo move the pointer, they never copy.
//
// History is not safe for concurrent use. Board serialises access to it.
type History struct {
	committed []*Stroke
	redo      []*Stroke

	// maxDepth caps how many of the most recent strokes can be undone.
	// Zero means unbounded.
	maxDepth int
	// floor is the number of leading committed strokes that are frozen
	// by the depth cap.
	floor int
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithMaxDepth limits undo to the n most recent strokes. Older strokes stay
// on the canvas. n <= 0 means unbounded.
func WithMaxDepth(n int) HistoryOption {
	return func(h *History) { h.maxDepth = max(n, 0) }
}

// NewHistory returns an empty history.
func NewHistory(opts ...HistoryOption) *History {
	h := &History{
		committed: make([]*Stroke, 0),
		redo:      make([]*Stroke, 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commit appends s to the committed list and drops any pending redo
// entries. History takes ownership of s.
func (h *History) Commit(s *Stroke) {
	h.DiscardRedo()
	h.committed = append(h.committed, s)
	h.applyDepth()
	Logger().Debug("stroke committed", "id", s.ID, "points", len(s.Points), "committed", len(h.committed))
}

// DiscardRedo empties the redo stack. It reports whether anything was dropped.
func (h *History) DiscardRedo() bool {
	if len(h.redo) == 0 {
		return false
	}
	clear(h.redo)
	h.redo = h.redo[:0]
	return true
}

// Undo moves the most recent committed stroke onto the redo stack. It is a
// no-op, returning false, when nothing can be undone.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	last := len(h.committed) - 1
	s := h.committed[last]
	h.committed[last] = nil
	h.committed = h.committed[:last]
	h.redo = append(h.redo, s)
	Logger().Debug("undo", "id", s.ID, "committed", len(h.committed), "redo", len(h.redo))
	return true
}

// Redo moves the most recently undone stroke back to the end of the
// committed list. It is a no-op, returning false, when the redo stack is
// empty.
//
// Appending restores the original order because the redo stack is emptied
// whenever a new stroke starts.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	last := len(h.redo) - 1
	s := h.redo[last]
	h.redo[last] = nil
	h.redo = h.redo[:last]
	h.committed = append(h.committed, s)
	Logger().Debug("redo", "id", s.ID, "committed", len(h.committed), "redo", len(h.redo))
	return true
}

// Clear empties both lists. It reports whether anything was removed.
func (h *History) Clear() bool {
	changed := len(h.committed) > 0 || len(h.redo) > 0
	clear(h.committed)
	h.committed = h.committed[:0]
	h.DiscardRedo()
	h.floor = 0
	Logger().Debug("history cleared")
	return changed
}

// CanUndo reports whether Undo would change anything.
func (h *History) CanUndo() bool {
	return len(h.committed) > h.floor
}

// CanRedo reports whether Redo would change anything.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of committed strokes.
func (h *History) Len() int {
	return len(h.committed)
}

// MaxDepth returns the undo depth cap, zero when unbounded.
func (h *History) MaxDepth() int {
	return h.maxDepth
}

// SetMaxDepth changes the undo depth cap. Lowering it freezes the oldest
// undoable strokes immediately; raising it never unfreezes strokes. It
// reports whether any stroke was frozen.
func (h *History) SetMaxDepth(n int) bool {
	h.maxDepth = max(n, 0)
	return h.applyDepth()
}

func (h *History) applyDepth() bool {
	if h.maxDepth == 0 {
		return false
	}
	if undoable := len(h.committed) - h.floor; undoable > h.maxDepth {
		h.floor += undoable - h.maxDepth
		return true
	}
	return false
}

// Committed returns copies of the committed strokes in draw order.
func (h *History) Committed() []Stroke {
	return cloneAll(h.committed)
}

// Redoable returns copies of the redo stack, most recent undo last.
func (h *History) Redoable() []Stroke {
	return cloneAll(h.redo)
}

func cloneAll(src []*Stroke) []Stroke {
	out := make([]Stroke, 0, len(src))
	for _, s := range src {
		out = append(out, s.clone())
	}
	return out
}
