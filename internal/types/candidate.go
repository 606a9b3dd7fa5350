// Package types provides type definitions for structured data used throughout the talent dashboard.
package types

import "strings"

// Work availability tags a candidate can offer.
const (
	AvailabilityFullTime = "full-time"
	AvailabilityPartTime = "part-time"
	AvailabilityContract = "contract"
)

// Placeholder fills required-but-missing string fields after normalization so
// downstream code never sees an empty value.
const Placeholder = "Not Provided"

// EducationNotSpecified is the default highest level when a record carries no
// education block.
const EducationNotSpecified = "Not Specified"

// WorkExperience represents a single resume entry. Order of entries is resume order.
type WorkExperience struct {
	Company  string `json:"company"`
	RoleName string `json:"roleName"`
}

// Degree represents one earned degree within an education history.
type Degree struct {
	Degree         string `json:"degree"`
	Subject        string `json:"subject"`
	School         string `json:"school"`
	GPA            string `json:"gpa"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	OriginalSchool string `json:"originalSchool,omitempty"`
	IsTop50        bool   `json:"isTop50"`
	IsTop25        bool   `json:"isTop25,omitempty"`
}

// Education summarizes a candidate's education history.
type Education struct {
	HighestLevel string   `json:"highest_level"`
	Degrees      []Degree `json:"degrees"`
}

// Candidate is the canonical post-normalization record. Every optional
// collection holds an explicit empty value rather than nil, and Score is
// computed exactly once at ingestion.
type Candidate struct {
	ID                      string            `json:"id"`
	Name                    string            `json:"name"`
	Email                   string            `json:"email"`
	Phone                   string            `json:"phone"`
	Location                string            `json:"location"`
	SubmittedAt             string            `json:"submitted_at,omitempty"`
	WorkAvailability        []string          `json:"work_availability"`
	AnnualSalaryExpectation map[string]string `json:"annual_salary_expectation"`
	WorkExperiences         []WorkExperience  `json:"work_experiences"`
	Education               Education         `json:"education"`
	Skills                  []string          `json:"skills"`
	Languages               []string          `json:"languages"`
	LinkedInURL             string            `json:"linkedinUrl,omitempty"`
	GitHubURL               string            `json:"githubUrl,omitempty"`
	PortfolioURL            string            `json:"portfolioUrl,omitempty"`
	Score                   int               `json:"score"`
	Notes                   string            `json:"notes"`
}

// HasAvailability reports whether the candidate offers the given availability tag.
func (c *Candidate) HasAvailability(tag string) bool {
	for _, a := range c.WorkAvailability {
		if a == tag {
			return true
		}
	}
	return false
}

// FullTimeSalary returns the candidate's full-time salary expectation parsed
// as an unsigned integer. Missing or non-numeric expectations parse to 0.
func (c *Candidate) FullTimeSalary() uint {
	return ParseSalary(c.AnnualSalaryExpectation[AvailabilityFullTime])
}

// ParseSalary parses a currency string like "$120,000" into an unsigned
// integer. Any character other than a digit stops the parse; a string with no
// leading digits yields 0.
func ParseSalary(s string) uint {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	var n uint
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + uint(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
