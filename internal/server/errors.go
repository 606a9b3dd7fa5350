// Package server provides the HTTP REST API for the talent dashboard.
package server

import (
	"net/http"

	"github.com/jonathan/talent-dashboard/internal/ingest"
	"github.com/jonathan/talent-dashboard/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ingest.ErrBatchParse, *ingest.ErrBatchShape, *ingest.ErrNoValidRecords:
		return http.StatusBadRequest
	case *session.ErrUploadInFlight:
		return http.StatusConflict
	case *session.ErrCandidateNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
