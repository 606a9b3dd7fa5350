package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-dashboard/internal/scoring"
	"github.com/jonathan/talent-dashboard/internal/types"
)

// maxSummaryDetails caps the per-record rejection reasons surfaced to the
// user; the remainder is summarized by count.
const maxSummaryDetails = 5

// Rejection records why a raw record was dropped. Index is the record's
// position in the uploaded document.
type Rejection struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

// Summary is the user-facing outcome of a batch ingestion.
type Summary struct {
	BatchID  string   `json:"batch_id"`
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Details  []string `json:"details,omitempty"`
}

// Result partitions a batch into accepted canonical candidates and rejected
// records.
type Result struct {
	Accepted []types.Candidate
	Rejected []Rejection
	Summary  Summary
}

// Options control normalization.
type Options struct {
	// UploadedAt feeds fallback candidate ids; zero means time.Now().
	UploadedAt time.Time
	// Scorer computes each accepted candidate's score exactly once.
	Scorer scoring.Scorer
}

// Normalize validates and repairs raw records into canonical candidates.
// Records missing any of name, email or location are dropped with per-record
// reasons; the batch fails only when nothing survives. Accepted records get
// trimmed strings, explicit defaults for every optional collection, derived
// profile links, a guaranteed-unique id and a score.
func Normalize(records []json.RawMessage, opts Options) (*Result, error) {
	uploadedAt := opts.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}

	res := &Result{
		Accepted: make([]types.Candidate, 0, len(records)),
		Rejected: make([]Rejection, 0),
	}
	seenIDs := make(map[string]bool, len(records))

	for i, raw := range records {
		var c types.Candidate
		if err := json.Unmarshal(raw, &c); err != nil {
			res.Rejected = append(res.Rejected, Rejection{Index: i, Reasons: []string{"malformed record"}})
			continue
		}

		if reasons := requiredFieldErrors(&c); len(reasons) > 0 {
			res.Rejected = append(res.Rejected, Rejection{Index: i, Reasons: reasons})
			continue
		}

		normalizeRecord(&c, i, uploadedAt, seenIDs)
		c.Score = opts.Scorer.Score(&c)
		res.Accepted = append(res.Accepted, c)
	}

	if len(res.Accepted) == 0 {
		return nil, &ErrNoValidRecords{Total: len(records)}
	}

	res.Summary = buildSummary(res)
	return res, nil
}

// requiredFieldErrors returns one reason per missing required field.
func requiredFieldErrors(c *types.Candidate) []string {
	var reasons []string
	if strings.TrimSpace(c.Name) == "" {
		reasons = append(reasons, "missing name")
	}
	if strings.TrimSpace(c.Email) == "" {
		reasons = append(reasons, "missing email")
	}
	if strings.TrimSpace(c.Location) == "" {
		reasons = append(reasons, "missing location")
	}
	return reasons
}

// normalizeRecord repairs a valid record in place: trimmed strings, explicit
// defaults for every optional field, derived links and a unique id.
func normalizeRecord(c *types.Candidate, index int, uploadedAt time.Time, seenIDs map[string]bool) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Location = strings.TrimSpace(c.Location)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Phone == "" {
		c.Phone = types.Placeholder
	}

	if c.ID == "" || seenIDs[c.ID] {
		c.ID = fallbackID(uploadedAt, index)
	}
	seenIDs[c.ID] = true

	if len(c.WorkAvailability) == 0 {
		c.WorkAvailability = []string{types.AvailabilityFullTime}
	}
	if c.AnnualSalaryExpectation == nil {
		c.AnnualSalaryExpectation = map[string]string{types.AvailabilityFullTime: "$0"}
	}
	if c.WorkExperiences == nil {
		c.WorkExperiences = []types.WorkExperience{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Languages == nil {
		c.Languages = []string{}
	}
	if c.Education.HighestLevel == "" {
		c.Education.HighestLevel = types.EducationNotSpecified
	}
	if c.Education.Degrees == nil {
		c.Education.Degrees = []types.Degree{}
	}

	if c.LinkedInURL == "" {
		c.LinkedInURL = LinkedInURL(c.Name)
	}
	if c.GitHubURL == "" {
		c.GitHubURL = GitHubURL(c.Name)
	}
	if c.PortfolioURL == "" {
		c.PortfolioURL = PortfolioURL(c.Name)
	}
}

// fallbackID combines the upload timestamp with the record's position, which
// is unique within a batch; duplicate supplied ids also fall through here.
func fallbackID(uploadedAt time.Time, index int) string {
	return fmt.Sprintf("uploaded-%d-%d", uploadedAt.UnixMilli(), index)
}

func buildSummary(res *Result) Summary {
	s := Summary{
		BatchID:  uuid.New().String(),
		Accepted: len(res.Accepted),
		Rejected: len(res.Rejected),
	}
	for i, rej := range res.Rejected {
		if i == maxSummaryDetails {
			s.Details = append(s.Details, fmt.Sprintf("...and %d more", len(res.Rejected)-maxSummaryDetails))
			break
		}
		s.Details = append(s.Details, fmt.Sprintf("record %d: %s", rej.Index+1, strings.Join(rej.Reasons, ", ")))
	}
	return s
}
