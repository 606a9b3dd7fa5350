// Package types provides type definitions for structured data used throughout the talent dashboard.
package types

// FilterWildcard matches any value for an enum-style criterion.
const FilterWildcard = "all"

// FilterCriteria is the active set of filter predicates chosen by the user.
// Enum-style fields use "" or "all" as a wildcard.
type FilterCriteria struct {
	Search         string `json:"search"`
	Location       string `json:"location"`
	EducationLevel string `json:"education"`
	Availability   string `json:"availability"`
	SalaryMin      uint   `json:"salary_min"`
	SalaryMax      uint   `json:"salary_max"`
}

// IsWildcard reports whether an enum-style criterion value matches everything.
func IsWildcard(v string) bool {
	return v == "" || v == FilterWildcard
}

// Normalized returns the criteria with an inverted salary range repaired by
// swapping the bounds, so a user mistake never silently drops all candidates.
func (f FilterCriteria) Normalized() FilterCriteria {
	if f.SalaryMin > f.SalaryMax {
		f.SalaryMin, f.SalaryMax = f.SalaryMax, f.SalaryMin
	}
	return f
}
