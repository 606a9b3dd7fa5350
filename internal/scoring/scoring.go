// Package scoring computes the deterministic quality score for canonical candidates.
package scoring

import (
	"strings"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// Points awarded per scoring component.
const (
	rolePoints          = 10 // per distinct role title
	phdPoints           = 25
	mastersPoints       = 20
	bachelorsPoints     = 15
	baseEducationPoints = 10
	topSchoolPoints     = 15
	gpaPoints           = 10
	skillPoints         = 2
	skillPointsCap      = 10
	flexibilityPoints   = 5

	// MaxScore caps the additive total.
	MaxScore = 100
)

// LocationBonus is an optional scoring rule awarding points to candidates in
// an allow-listed set of locations. The origin system applied it on only one
// ingestion route; here it is either on for every route or off entirely.
type LocationBonus struct {
	Enabled   bool     `json:"enabled"`
	Locations []string `json:"locations,omitempty"`
	Points    int      `json:"points,omitempty"`
}

// Scorer holds the configurable parts of the scoring model. The zero value is
// the standard model with no location bonus.
type Scorer struct {
	LocationBonus LocationBonus
}

// Score maps a normalized candidate to an integer in [0, MaxScore]. It is a
// pure function of the candidate's fields: same input, same output. All
// components are non-negative, so only the upper bound needs clamping.
func (s Scorer) Score(c *types.Candidate) int {
	score := experienceDiversity(c)
	score += educationLevel(c)
	score += topSchool(c)
	score += gpaBonus(c)
	score += skillsBonus(c)
	score += flexibility(c)
	score += s.locationBonus(c)

	if score > MaxScore {
		score = MaxScore
	}
	return score
}

// experienceDiversity awards points per distinct role title, case-insensitive.
func experienceDiversity(c *types.Candidate) int {
	roles := make(map[string]bool, len(c.WorkExperiences))
	for _, exp := range c.WorkExperiences {
		roles[strings.ToLower(exp.RoleName)] = true
	}
	return len(roles) * rolePoints
}

// educationLevel scores the highest education level. Matching is contains
// semantics against the canonical labels, as stored by the upstream enricher.
func educationLevel(c *types.Candidate) int {
	level := c.Education.HighestLevel
	switch {
	case strings.Contains(level, "PhD"):
		return phdPoints
	case strings.Contains(level, "Master's"), strings.Contains(level, "Juris Doctor"):
		return mastersPoints
	case strings.Contains(level, "Bachelor's"):
		return bachelorsPoints
	default:
		return baseEducationPoints
	}
}

func topSchool(c *types.Candidate) int {
	for _, d := range c.Education.Degrees {
		if d.IsTop25 || d.IsTop50 {
			return topSchoolPoints
		}
	}
	return 0
}

// gpaBonus matches the GPA label pattern rather than parsing a number: GPA is
// free text upstream, so "3.9"/"4.0" are treated as labels, not thresholds.
func gpaBonus(c *types.Candidate) int {
	for _, d := range c.Education.Degrees {
		if d.GPA == "" {
			continue
		}
		if strings.Contains(d.GPA, "3.9") || strings.Contains(d.GPA, "4.0") {
			return gpaPoints
		}
	}
	return 0
}

func skillsBonus(c *types.Candidate) int {
	points := len(c.Skills) * skillPoints
	if points > skillPointsCap {
		return skillPointsCap
	}
	return points
}

// flexibility rewards offering both full-time and part-time availability.
func flexibility(c *types.Candidate) int {
	if c.HasAvailability(types.AvailabilityFullTime) && c.HasAvailability(types.AvailabilityPartTime) {
		return flexibilityPoints
	}
	return 0
}

func (s Scorer) locationBonus(c *types.Candidate) int {
	if !s.LocationBonus.Enabled || s.LocationBonus.Points <= 0 {
		return 0
	}
	for _, loc := range s.LocationBonus.Locations {
		if loc != "" && strings.Contains(c.Location, loc) {
			return s.LocationBonus.Points
		}
	}
	return 0
}
