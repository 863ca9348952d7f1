package state

// RecorderState is the pointer state of a Recorder.
type RecorderState int

const (
	Idle RecorderState = iota
	Recording
)

func (s RecorderState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	}
	return "unknown"
}

// Recorder turns pointer events into strokes.
//
// At most one stroke is in progress. It exists only between a pointer-down
// and the matching pointer-up or cancel and is never part of the history
// until committed.
type Recorder struct {
	history *History
	newID   func() string
	current *Stroke
}

// NewRecorder returns an idle recorder committing into h. newID may be nil,
// in which case NewStrokeID is used.
func NewRecorder(h *History, newID func() string) *Recorder {
	if newID == nil {
		newID = NewStrokeID
	}
	return &Recorder{history: h, newID: newID}
}

// State returns Recording while a stroke is in progress.
func (r *Recorder) State() RecorderState {
	if r.current != nil {
		return Recording
	}
	return Idle
}

// Current returns the in-progress stroke, or nil when idle. The stroke is
// still owned by the recorder and must not be modified.
func (r *Recorder) Current() *Stroke {
	return r.current
}

// Down starts a stroke at p using brush as its snapshot. Starting a stroke
// invalidates the redo stack. A stroke still in progress is abandoned.
func (r *Recorder) Down(p Point, brush Brush) {
	if r.current != nil {
		Logger().Debug("stroke abandoned by new pointer-down", "id", r.current.ID)
	}
	r.history.DiscardRedo()
	r.current = &Stroke{
		ID:     r.newID(),
		Points: []Point{p},
		Brush:  brush,
	}
}

// Move appends p to the in-progress stroke. Co-incident points are kept.
// It reports false when idle.
func (r *Recorder) Move(p Point) bool {
	if r.current == nil {
		return false
	}
	r.current.Points = append(r.current.Points, p)
	return true
}

// Up commits the in-progress stroke. It reports false when idle.
func (r *Recorder) Up() bool {
	if r.current == nil {
		return false
	}
	s := r.current
	r.current = nil
	r.history.Commit(s)
	return true
}

// Cancel drops the in-progress stroke without committing it. It reports
// false when idle.
func (r *Recorder) Cancel() bool {
	if r.current == nil {
		return false
	}
	Logger().Debug("stroke cancelled", "id", r.current.ID, "points", len(r.current.Points))
	r.current = nil
	return true
}
