package session

import (
	"github.com/jonathan/talent-dashboard/internal/filtering"
)

// highScoreThreshold marks a candidate as a high performer on the dashboard.
const highScoreThreshold = 80

// DashboardStats are the collection-wide aggregates shown above the listing.
type DashboardStats struct {
	TotalCandidates   int    `json:"total_candidates"`
	FilteredCount     int    `json:"filtered_count"`
	SelectedCount     int    `json:"selected_count"`
	DistinctLocations int    `json:"distinct_locations"`
	AverageScore      int    `json:"average_score"`
	HighScoreCount    int    `json:"high_score_count"`
	TopEducationLevel string `json:"top_education_level"`
}

// Stats derives the dashboard aggregates from the canonical collection.
func (c *Controller) Stats() DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := DashboardStats{
		TotalCandidates: len(c.candidates),
		FilteredCount:   len(filtering.Apply(c.candidates, c.criteria)),
		SelectedCount:   c.selection.Len(),
	}
	if len(c.candidates) == 0 {
		return stats
	}

	sum := 0
	locations := make(map[string]bool)
	levels := make(map[string]int)
	for i := range c.candidates {
		sum += c.candidates[i].Score
		locations[c.candidates[i].Location] = true
		if c.candidates[i].Score >= highScoreThreshold {
			stats.HighScoreCount++
		}
		levels[c.candidates[i].Education.HighestLevel]++
	}

	stats.DistinctLocations = len(locations)
	stats.AverageScore = (sum + len(c.candidates)/2) / len(c.candidates)

	top, topCount := "", 0
	for level, count := range levels {
		if count > topCount || (count == topCount && level < top) {
			top, topCount = level, count
		}
	}
	stats.TopEducationLevel = top
	return stats
}
