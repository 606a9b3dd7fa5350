package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-dashboard/internal/export"
	"github.com/jonathan/talent-dashboard/internal/listing"
	"github.com/jonathan/talent-dashboard/internal/shortlist"
	"github.com/jonathan/talent-dashboard/internal/types"
)

// maxUploadBytes bounds an uploaded candidate document.
const maxUploadBytes = 32 << 20

var validate = validator.New()

// UpdateNotesRequest is the request body for PUT /candidates/{id}/notes.
// Notes may be empty (clearing them is a valid update).
type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=10000"`
}

// ToggleSelectionResponse reports the outcome of a selection toggle. A toggle
// rejected by the shortlist cap is a successful no-op with Changed false.
type ToggleSelectionResponse struct {
	Changed   bool                `json:"changed"`
	Selected  bool                `json:"selected"`
	Selection []types.Candidate   `json:"selection"`
	Stats     shortlist.TeamStats `json:"stats"`
}

// SelectionResponse is the shortlist with its derived team stats.
type SelectionResponse struct {
	Selection []types.Candidate   `json:"selection"`
	Stats     shortlist.TeamStats `json:"stats"`
}

// handleUpload ingests an uploaded candidate document, replacing the whole
// collection on success.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	summary, err := s.ctrl.Ingest(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleListCandidates applies filter, sort and page parameters from the
// query string and returns the derived view.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := types.FilterCriteria{
		Search:         q.Get("search"),
		Location:       q.Get("location"),
		EducationLevel: q.Get("education"),
		Availability:   q.Get("availability"),
		SalaryMin:      parseQueryUint(r, "salary_min", 0),
		SalaryMax:      parseQueryUint(r, "salary_max", s.ctrl.View().Criteria.SalaryMax),
	}
	view := s.ctrl.SetFilters(criteria)

	if q.Has("sort") || q.Has("order") {
		view = s.ctrl.SetSort(listing.SortKey(q.Get("sort")), listing.Direction(q.Get("order")))
	}
	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid page number")
			return
		}
		view = s.ctrl.SetPage(page)
	}

	s.jsonResponse(w, http.StatusOK, view)
}

// handleGetCandidate returns one canonical candidate record.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	candidate, err := s.ctrl.Candidate(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleToggleSelection toggles a candidate in or out of the shortlist.
func (s *Server) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	changed, err := s.ctrl.ToggleSelection(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.selectionResponse(w, id, changed)
}

// handleRemoveSelection drops a candidate from the shortlist.
func (s *Server) handleRemoveSelection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	changed, err := s.ctrl.RemoveSelection(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.selectionResponse(w, id, changed)
}

func (s *Server) selectionResponse(w http.ResponseWriter, id string, changed bool) {
	selection, stats := s.ctrl.Selection()
	selected := false
	for i := range selection {
		if selection[i].ID == id {
			selected = true
			break
		}
	}
	s.jsonResponse(w, http.StatusOK, ToggleSelectionResponse{
		Changed:   changed,
		Selected:  selected,
		Selection: selection,
		Stats:     stats,
	})
}

// handleUpdateNotes updates the free-text notes on a canonical record,
// independent of selection state.
func (s *Server) handleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid notes: "+err.Error())
		return
	}

	if err := s.ctrl.UpdateNotes(id, req.Notes); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidate, err := s.ctrl.Candidate(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleGetSelection returns the shortlist and its team stats.
func (s *Server) handleGetSelection(w http.ResponseWriter, _ *http.Request) {
	selection, stats := s.ctrl.Selection()
	s.jsonResponse(w, http.StatusOK, SelectionResponse{
		Selection: selection,
		Stats:     stats,
	})
}

// handleExportSelection streams the shortlist as an xlsx attachment.
func (s *Server) handleExportSelection(w http.ResponseWriter, _ *http.Request) {
	selection, _ := s.ctrl.Selection()

	buf, err := export.ShortlistXLSX(selection)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to build export: "+err.Error())
		return
	}

	filename := "shortlist-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.WithError(err).Error("failed to stream export")
	}
}

// handleStats returns the dashboard aggregates.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.ctrl.Stats())
}

// parseQueryUint parses an unsigned integer query parameter, falling back to
// def when absent or invalid.
func parseQueryUint(r *http.Request, name string, def uint) uint {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return def
	}
	return uint(v)
}
