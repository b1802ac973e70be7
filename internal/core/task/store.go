package task

import (
	"context"
	"errors"
)

var (
	// ErrPersistence is returned when the task file cannot be read or written.
	ErrPersistence = errors.New("task persistence failed")
	// ErrPositionOutOfRange is returned when a position does not address a task.
	ErrPositionOutOfRange = errors.New("task position out of range")
)

// Store defines the interface for task persistence. Every call works on the
// whole collection: Load reads it in full and Save replaces it in full.
type Store interface {
	// Load returns the persisted collection. A missing file yields an empty
	// collection.
	Load(ctx context.Context) (Collection, error)

	// Save overwrites the persisted collection with c.
	Save(ctx context.Context, c Collection) error
}
