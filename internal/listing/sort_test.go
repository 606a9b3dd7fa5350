package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-dashboard/internal/types"
)

func TestSort_ScoreDescendingDefault(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "low", Score: 30},
		{ID: "high", Score: 90},
		{ID: "mid", Score: 60},
	}

	sorted := Sort(candidates, DefaultSortKey, DefaultDirection)
	require.Len(t, sorted, 3)
	assert.Equal(t, "high", sorted[0].ID)
	assert.Equal(t, "mid", sorted[1].ID)
	assert.Equal(t, "low", sorted[2].ID)

	// Input order is untouched.
	assert.Equal(t, "low", candidates[0].ID)
}

func TestSort_StableOnTies(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "a", Score: 50},
		{ID: "b", Score: 50},
		{ID: "c", Score: 50},
	}

	sorted := Sort(candidates, SortByScore, Descending)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestSort_NameAscending(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "1", Name: "charlie"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "Bob"},
	}

	sorted := Sort(candidates, SortByName, Ascending)
	assert.Equal(t, "Alice", sorted[0].Name)
	assert.Equal(t, "Bob", sorted[1].Name)
	assert.Equal(t, "charlie", sorted[2].Name)
}

func TestSort_DateHandlesBothLayouts(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "newest", SubmittedAt: "2026-03-02T10:00:00Z"},
		{ID: "oldest", SubmittedAt: "2026-01-15"},
		{ID: "unparseable", SubmittedAt: "last week"},
	}

	sorted := Sort(candidates, SortByDate, Ascending)
	assert.Equal(t, "unparseable", sorted[0].ID)
	assert.Equal(t, "oldest", sorted[1].ID)
	assert.Equal(t, "newest", sorted[2].ID)
}

func TestSort_Salary(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "a", AnnualSalaryExpectation: map[string]string{types.AvailabilityFullTime: "$150,000"}},
		{ID: "b", AnnualSalaryExpectation: map[string]string{types.AvailabilityFullTime: "$90,000"}},
		{ID: "c"},
	}

	sorted := Sort(candidates, SortBySalary, Descending)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey(SortByScore))
	assert.True(t, ValidSortKey(SortByName))
	assert.True(t, ValidSortKey(SortByDate))
	assert.True(t, ValidSortKey(SortBySalary))
	assert.False(t, ValidSortKey("age"))
	assert.False(t, ValidSortKey(""))
}

func TestValidDirection(t *testing.T) {
	assert.True(t, ValidDirection(Ascending))
	assert.True(t, ValidDirection(Descending))
	assert.False(t, ValidDirection("sideways"))
}
