// Package filtering applies the conjunctive user-chosen predicates over a candidate collection.
package filtering

import (
	"strings"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// Apply returns the subsequence of candidates matching every active
// predicate, preserving relative order. Wildcard criteria are skipped. The
// input is never mutated and the result is always a fresh non-nil slice, so
// an empty result is distinguishable from "not yet filtered" (nil).
func Apply(candidates []types.Candidate, criteria types.FilterCriteria) []types.Candidate {
	criteria = criteria.Normalized()

	filtered := make([]types.Candidate, 0, len(candidates))
	for i := range candidates {
		if matches(&candidates[i], criteria) {
			filtered = append(filtered, candidates[i])
		}
	}
	return filtered
}

func matches(c *types.Candidate, criteria types.FilterCriteria) bool {
	return matchesSearch(c, criteria.Search) &&
		matchesLocation(c, criteria.Location) &&
		matchesEducation(c, criteria.EducationLevel) &&
		matchesAvailability(c, criteria.Availability) &&
		withinSalary(c, criteria.SalaryMin, criteria.SalaryMax)
}

// matchesSearch checks a case-insensitive substring against name, email,
// location and every work experience's company and role.
func matchesSearch(c *types.Candidate, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Location), needle) {
		return true
	}
	for _, exp := range c.WorkExperiences {
		if strings.Contains(strings.ToLower(exp.Company), needle) ||
			strings.Contains(strings.ToLower(exp.RoleName), needle) {
			return true
		}
	}
	return false
}

func matchesLocation(c *types.Candidate, location string) bool {
	if types.IsWildcard(location) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Location), strings.ToLower(location))
}

func matchesEducation(c *types.Candidate, level string) bool {
	if types.IsWildcard(level) {
		return true
	}
	return strings.Contains(c.Education.HighestLevel, level)
}

// matchesAvailability is an exact membership test, not a substring match:
// "full-time" must not match a hypothetical "full-time-remote" tag.
func matchesAvailability(c *types.Candidate, availability string) bool {
	if types.IsWildcard(availability) {
		return true
	}
	return c.HasAvailability(availability)
}

func withinSalary(c *types.Candidate, min, max uint) bool {
	salary := c.FullTimeSalary()
	return salary >= min && salary <= max
}
