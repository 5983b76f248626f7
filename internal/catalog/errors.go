package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a video or translation row does not exist
// (or has been soft-deleted).
var ErrNotFound = errors.New("record not found")

// ErrSubmitInProgress is returned when Submit is called on a session whose
// previous submission has not resolved yet. Prevents a double-click on a new
// record from creating two video rows.
var ErrSubmitInProgress = errors.New("a submission is already in progress")

// ErrSessionClosed is returned when a discarded session is submitted. Results
// of in-flight work against a closed session are dropped, never applied.
var ErrSessionClosed = errors.New("edit session has been discarded")

// PersistenceError wraps a failed create/update/upsert against the backing
// store. The draft is left intact so nothing the user typed is lost.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
