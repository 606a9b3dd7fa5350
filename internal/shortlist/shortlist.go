// Package shortlist maintains the bounded user-curated selection and its derived team stats.
package shortlist

import (
	"strings"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// Cap is the maximum number of candidates a shortlist can hold.
const Cap = 5

// Manager holds the ordered set of selected candidate ids. Ids are distinct
// and kept in selection order. It stores ids only; candidate fields are
// always read through the canonical collection so notes never go stale.
type Manager struct {
	ids []string
}

// NewManager returns an empty shortlist.
func NewManager() *Manager {
	return &Manager{ids: make([]string, 0, Cap)}
}

// Toggle flips the selection state of id and reports whether the shortlist
// changed. Toggling an unselected id when the shortlist is full is a silent
// no-op, not an error: the cap is enforced here even when the caller's UI
// already disables the action.
func (m *Manager) Toggle(id string) bool {
	if m.Remove(id) {
		return true
	}
	if len(m.ids) >= Cap {
		return false
	}
	m.ids = append(m.ids, id)
	return true
}

// Remove drops id from the shortlist, reporting whether it was present.
// Removal is always allowed.
func (m *Manager) Remove(id string) bool {
	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is selected.
func (m *Manager) Contains(id string) bool {
	for _, existing := range m.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in selection order as a fresh slice.
func (m *Manager) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// Len returns the number of selected candidates.
func (m *Manager) Len() int {
	return len(m.ids)
}

// Clear empties the shortlist. Called unconditionally whenever a new
// candidate collection replaces the old one, so stale ids are never kept
// even when a new batch reuses an id.
func (m *Manager) Clear() {
	m.ids = m.ids[:0]
}

// TeamStats summarizes the selected team for display next to the shortlist.
type TeamStats struct {
	Count             int `json:"count"`
	AverageScore      int `json:"average_score"`
	DistinctLocations int `json:"distinct_locations"`
	DistinctRoles     int `json:"distinct_roles"`
}

// Stats derives aggregate statistics from the resolved selected candidates.
func Stats(selected []types.Candidate) TeamStats {
	stats := TeamStats{Count: len(selected)}
	if len(selected) == 0 {
		return stats
	}

	sum := 0
	locations := make(map[string]bool)
	roles := make(map[string]bool)
	for i := range selected {
		sum += selected[i].Score
		locations[selected[i].Location] = true
		for _, exp := range selected[i].WorkExperiences {
			roles[strings.ToLower(exp.RoleName)] = true
		}
	}

	stats.AverageScore = (sum + len(selected)/2) / len(selected)
	stats.DistinctLocations = len(locations)
	stats.DistinctRoles = len(roles)
	return stats
}
