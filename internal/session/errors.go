// Package session owns the transient dashboard state and its pure transition operations.
package session

import "fmt"

// ErrUploadInFlight indicates an ingestion is already outstanding; one upload
// is processed at a time and nothing is retried automatically.
type ErrUploadInFlight struct{}

func (e *ErrUploadInFlight) Error() string {
	return "an upload is already being processed"
}

// ErrCandidateNotFound indicates an operation referenced an id that is not in
// the active collection.
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}
