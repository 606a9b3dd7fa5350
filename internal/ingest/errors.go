// Package ingest validates and repairs raw candidate records into canonical candidates.
package ingest

import "fmt"

// ErrBatchParse indicates the uploaded document is not well-formed JSON.
// Nothing is ingested and prior state is left unchanged.
type ErrBatchParse struct {
	Cause error
}

func (e *ErrBatchParse) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid JSON file format: %v", e.Cause)
	}
	return "invalid JSON file format"
}

func (e *ErrBatchParse) Unwrap() error {
	return e.Cause
}

// ErrBatchShape indicates the document parsed but its root is not an array of
// candidate records.
type ErrBatchShape struct {
	Detail string
}

func (e *ErrBatchShape) Error() string {
	if e.Detail != "" {
		return "file must contain an array of candidates: " + e.Detail
	}
	return "file must contain an array of candidates"
}

// ErrNoValidRecords indicates every record in the batch failed validation.
// Treated as a batch-level failure, equivalent to a shape error.
type ErrNoValidRecords struct {
	Total int
}

func (e *ErrNoValidRecords) Error() string {
	return fmt.Sprintf("no valid candidates found: all %d records have missing required fields (name, email, or location)", e.Total)
}
