// Package listing orders a filtered candidate collection and slices it into fixed-size pages.
package listing

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// SortKey selects the candidate field a listing is ordered by.
type SortKey string

// Supported sort keys.
const (
	SortByScore  SortKey = "score"
	SortByName   SortKey = "name"
	SortByDate   SortKey = "date"
	SortBySalary SortKey = "salary"
)

// Direction selects ascending or descending order.
type Direction string

// Supported sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Defaults for a fresh listing.
const (
	DefaultSortKey   = SortByScore
	DefaultDirection = Descending
)

// nameCollator gives locale-aware name comparison instead of raw byte order.
var nameCollator = collate.New(language.English, collate.Loose)

// ValidSortKey reports whether key is one of the supported sort keys.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortByScore, SortByName, SortByDate, SortBySalary:
		return true
	}
	return false
}

// ValidDirection reports whether dir is a supported direction.
func ValidDirection(dir Direction) bool {
	return dir == Ascending || dir == Descending
}

// Sort returns a freshly ordered copy of candidates. The sort is stable:
// candidates comparing equal keep their original relative order.
func Sort(candidates []types.Candidate, key SortKey, dir Direction) []types.Candidate {
	sorted := make([]types.Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compare(&sorted[i], &sorted[j], key)
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func compare(a, b *types.Candidate, key SortKey) int {
	switch key {
	case SortByName:
		return nameCollator.CompareString(a.Name, b.Name)
	case SortByDate:
		at, bt := submittedTime(a.SubmittedAt), submittedTime(b.SubmittedAt)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	case SortBySalary:
		return compareUint(a.FullTimeSalary(), b.FullTimeSalary())
	default: // SortByScore
		return compareInt(a.Score, b.Score)
	}
}

// submittedTime parses the submission date, accepting RFC3339 or a plain
// date. Unparseable dates sort as the zero time.
func submittedTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareUint(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
