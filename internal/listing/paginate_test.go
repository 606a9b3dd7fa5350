package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-dashboard/internal/types"
)

func makeCandidates(n int) []types.Candidate {
	out := make([]types.Candidate, n)
	for i := range out {
		out[i] = types.Candidate{ID: fmt.Sprintf("c-%d", i)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(15))
	assert.Equal(t, 2, TotalPages(16))
	assert.Equal(t, 3, TotalPages(37))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 37))
	assert.Equal(t, 1, ClampPage(-5, 37))
	assert.Equal(t, 2, ClampPage(2, 37))
	assert.Equal(t, 3, ClampPage(99, 37))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestPaginate_FixedPageSize(t *testing.T) {
	items := makeCandidates(37)

	p1 := Paginate(items, 1)
	require.Len(t, p1.Items, PageSize)
	assert.Equal(t, "c-0", p1.Items[0].ID)
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 37, p1.TotalItems)

	p3 := Paginate(items, 3)
	require.Len(t, p3.Items, 7)
	assert.Equal(t, "c-30", p3.Items[0].ID)
	assert.Equal(t, "c-36", p3.Items[6].ID)
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := makeCandidates(37)

	p := Paginate(items, 99)
	assert.Equal(t, 3, p.Number)
	assert.Len(t, p.Items, 7)

	p = Paginate(items, 0)
	assert.Equal(t, 1, p.Number)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 1)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
}

func TestPageNumbers_ShortRangeFull(t *testing.T) {
	assert.Equal(t, []string{"1"}, PageNumbers(1, 1))
	assert.Equal(t, []string{"1", "2", "3"}, PageNumbers(2, 3))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, PageNumbers(3, 5))
}

func TestPageNumbers_CollapsesTrailingRun(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", Ellipsis, "10"}, PageNumbers(1, 10))
}

func TestPageNumbers_CollapsesBothSides(t *testing.T) {
	assert.Equal(t, []string{"1", Ellipsis, "3", "4", "5", "6", "7", Ellipsis, "10"}, PageNumbers(5, 10))
}

func TestPageNumbers_NearEnd(t *testing.T) {
	assert.Equal(t, []string{"1", Ellipsis, "8", "9", "10"}, PageNumbers(10, 10))
}

func TestPageNumbers_AdjacentToBoundary(t *testing.T) {
	// A window reaching page 2 must not emit an ellipsis for a single page.
	assert.Equal(t, []string{"1", "2", "3", "4", "5", Ellipsis, "10"}, PageNumbers(3, 10))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", Ellipsis, "10"}, PageNumbers(4, 10))
}
