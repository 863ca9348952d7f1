package state

import (
	"github.com/google/uuid"
)

// NewStrokeID returns a fresh identifier for a stroke.
func NewStrokeID() string {
	return uuid.NewString()
}
