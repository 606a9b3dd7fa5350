package session

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-dashboard/internal/ingest"
	"github.com/jonathan/talent-dashboard/internal/listing"
	"github.com/jonathan/talent-dashboard/internal/scoring"
	"github.com/jonathan/talent-dashboard/internal/types"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testController(t *testing.T) *Controller {
	t.Helper()
	criteria := types.FilterCriteria{
		Location:       types.FilterWildcard,
		EducationLevel: types.FilterWildcard,
		Availability:   types.FilterWildcard,
		SalaryMax:      500000,
	}
	return NewController(scoring.Scorer{}, criteria, testLogger())
}

// batchJSON builds an uploadable document of n minimal candidates with
// sequential ids and scores driven by role count.
func batchJSON(t *testing.T, n int) []byte {
	t.Helper()
	records := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		records[i] = map[string]any{
			"id":       fmt.Sprintf("c-%d", i),
			"name":     fmt.Sprintf("Candidate %d", i),
			"email":    fmt.Sprintf("c%d@example.com", i),
			"location": "Austin",
		}
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	return data
}

func TestIngest_ReplacesCollection(t *testing.T) {
	ctrl := testController(t)

	summary, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Accepted)
	assert.True(t, ctrl.Ingested())

	view := ctrl.View()
	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, 3, view.FilteredCount)
	assert.Equal(t, 1, view.Page.Number)
}

func TestIngest_InvalidBatchLeavesStateUnchanged(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 2))
	require.NoError(t, err)

	_, err = ctrl.Ingest([]byte(`{"not": "an array"}`))
	var shapeErr *ingest.ErrBatchShape
	require.ErrorAs(t, err, &shapeErr)

	assert.Equal(t, 2, ctrl.View().TotalCount)
}

func TestIngest_ClearsSelectionEvenWithCoincidingIDs(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	changed, err := ctrl.ToggleSelection("c-1")
	require.NoError(t, err)
	require.True(t, changed)

	// The new batch reuses id c-1; the selection must still be emptied.
	_, err = ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	selection, stats := ctrl.Selection()
	assert.Empty(t, selection)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0, ctrl.View().SelectedCount)
}

func TestIngest_PreservesFilterCriteria(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	criteria := ctrl.View().Criteria
	criteria.Search = "Candidate 1"
	ctrl.SetFilters(criteria)

	_, err = ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)
	assert.Equal(t, "Candidate 1", ctrl.View().Criteria.Search)
}

func TestSetFilters_ChangeResetsPage(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 37))
	require.NoError(t, err)

	view := ctrl.SetPage(3)
	require.Equal(t, 3, view.Page.Number)

	criteria := view.Criteria
	criteria.Search = "Candidate"
	view = ctrl.SetFilters(criteria)
	assert.Equal(t, 1, view.Page.Number)

	// Re-applying identical criteria leaves the page alone.
	view = ctrl.SetPage(2)
	require.Equal(t, 2, view.Page.Number)
	view = ctrl.SetFilters(criteria)
	assert.Equal(t, 2, view.Page.Number)
}

func TestSetSort_FallsBackToDefaults(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	view := ctrl.SetSort("bogus", "sideways")
	assert.Equal(t, listing.DefaultSortKey, view.SortKey)
	assert.Equal(t, listing.DefaultDirection, view.SortDirection)
}

func TestSetSort_ChangeResetsPage(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 37))
	require.NoError(t, err)

	ctrl.SetPage(3)
	view := ctrl.SetSort(listing.SortByName, listing.Ascending)
	assert.Equal(t, 1, view.Page.Number)
}

func TestSetPage_ClampsAgainstFiltered(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 37))
	require.NoError(t, err)

	view := ctrl.SetPage(99)
	assert.Equal(t, 3, view.Page.Number)
	assert.Len(t, view.Page.Items, 7)

	view = ctrl.SetPage(-1)
	assert.Equal(t, 1, view.Page.Number)
}

func TestToggleSelection_UnknownID(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	_, err = ctrl.ToggleSelection("ghost")
	var notFound *ErrCandidateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ID)
}

func TestToggleSelection_CapIsNoOpNotError(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 7))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		changed, err := ctrl.ToggleSelection(fmt.Sprintf("c-%d", i))
		require.NoError(t, err)
		require.True(t, changed)
	}

	changed, err := ctrl.ToggleSelection("c-5")
	require.NoError(t, err)
	assert.False(t, changed)

	selection, stats := ctrl.Selection()
	assert.Len(t, selection, 5)
	assert.Equal(t, 5, stats.Count)
}

func TestUpdateNotes_VisibleThroughSelection(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	_, err = ctrl.ToggleSelection("c-1")
	require.NoError(t, err)

	require.NoError(t, ctrl.UpdateNotes("c-1", "strong systems background"))

	c, err := ctrl.Candidate("c-1")
	require.NoError(t, err)
	assert.Equal(t, "strong systems background", c.Notes)

	selection, _ := ctrl.Selection()
	require.Len(t, selection, 1)
	assert.Equal(t, "strong systems background", selection[0].Notes)
}

func TestUpdateNotes_IndependentOfSelection(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 3))
	require.NoError(t, err)

	require.NoError(t, ctrl.UpdateNotes("c-2", "not shortlisted yet"))

	c, err := ctrl.Candidate("c-2")
	require.NoError(t, err)
	assert.Equal(t, "not shortlisted yet", c.Notes)
}

func TestSelection_PreservesSelectionOrder(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 5))
	require.NoError(t, err)

	for _, id := range []string{"c-3", "c-0", "c-4"} {
		_, err := ctrl.ToggleSelection(id)
		require.NoError(t, err)
	}

	selection, _ := ctrl.Selection()
	require.Len(t, selection, 3)
	assert.Equal(t, "c-3", selection[0].ID)
	assert.Equal(t, "c-0", selection[1].ID)
	assert.Equal(t, "c-4", selection[2].ID)
}

func TestView_PageNumbers(t *testing.T) {
	ctrl := testController(t)
	_, err := ctrl.Ingest(batchJSON(t, 37))
	require.NoError(t, err)

	view := ctrl.View()
	assert.Equal(t, []string{"1", "2", "3"}, view.PageNumbers)
}
