package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_StateMachine(t *testing.T) {
	h := NewHistory()
	r := NewRecorder(h, seqIDs())
	assert.Equal(t, Idle, r.State())
	assert.Equal(t, "idle", r.State().String())

	assert.False(t, r.Move(Point{1, 1}))
	assert.False(t, r.Up())
	assert.False(t, r.Cancel())

	r.Down(Point{0, 0}, DefaultBrush)
	assert.Equal(t, Recording, r.State())
	assert.Equal(t, "recording", r.State().String())
	require.True(t, r.Move(Point{1, 1}))
	require.True(t, r.Move(Point{1, 1}))
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {1, 1}}, r.Current().Points)

	require.True(t, r.Up())
	assert.Equal(t, Idle, r.State())
	assert.Nil(t, r.Current())
	assert.Equal(t, 1, h.Len())
}

func TestRecorder_DownWhileRecordingAbandons(t *testing.T) {
	h := NewHistory()
	r := NewRecorder(h, seqIDs())
	r.Down(Point{0, 0}, DefaultBrush)
	r.Move(Point{1, 0})
	r.Down(Point{5, 5}, DefaultBrush)
	r.Up()

	committed := h.Committed()
	require.Len(t, committed, 1)
	assert.Equal(t, "s2", committed[0].ID)
	assert.Equal(t, []Point{{5, 5}}, committed[0].Points)
}

func TestRecorder_DownDiscardsRedo(t *testing.T) {
	h := NewHistory()
	r := NewRecorder(h, seqIDs())
	r.Down(Point{0, 0}, DefaultBrush)
	r.Up()
	h.Undo()
	require.True(t, h.CanRedo())

	r.Down(Point{1, 1}, DefaultBrush)
	r.Cancel()
	assert.False(t, h.CanRedo())
	assert.Zero(t, h.Len())
}

func TestRecorder_DefaultIDs(t *testing.T) {
	h := NewHistory()
	r := NewRecorder(h, nil)
	r.Down(Point{}, DefaultBrush)
	r.Up()
	r.Down(Point{}, DefaultBrush)
	r.Up()

	committed := h.Committed()
	require.Len(t, committed, 2)
	assert.Len(t, committed[0].ID, 36)
	assert.NotEqual(t, committed[0].ID, committed[1].ID)
}
