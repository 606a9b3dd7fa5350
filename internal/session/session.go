package session

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/talent-dashboard/internal/filtering"
	"github.com/jonathan/talent-dashboard/internal/ingest"
	"github.com/jonathan/talent-dashboard/internal/listing"
	"github.com/jonathan/talent-dashboard/internal/scoring"
	"github.com/jonathan/talent-dashboard/internal/shortlist"
	"github.com/jonathan/talent-dashboard/internal/types"
)

// Controller is the single owner of the candidate collection, filter
// criteria, sort state, page number and shortlist. Every transition replaces
// whole values and derived views are recomputed from canonical state, so no
// partial state is ever observable.
type Controller struct {
	mu      sync.Mutex
	uploads *semaphore.Weighted

	scorer          scoring.Scorer
	defaultCriteria types.FilterCriteria
	log             *logrus.Logger

	candidates []types.Candidate
	ingested   bool
	criteria   types.FilterCriteria
	sortKey    listing.SortKey
	sortDir    listing.Direction
	page       int
	selection  *shortlist.Manager
}

// View is the derived projection the presentation layer renders: the current
// page of the filtered, sorted collection plus the state it was computed from.
type View struct {
	Page          listing.Page         `json:"page"`
	PageNumbers   []string             `json:"page_numbers"`
	Criteria      types.FilterCriteria `json:"criteria"`
	SortKey       listing.SortKey      `json:"sort"`
	SortDirection listing.Direction    `json:"order"`
	FilteredCount int                  `json:"filtered_count"`
	TotalCount    int                  `json:"total_count"`
	SelectedCount int                  `json:"selected_count"`
}

// NewController builds an empty session. defaultCriteria seeds the filter
// state (and is restored on re-ingestion only for the salary bounds the user
// never touched); scorer is applied to every ingested batch.
func NewController(scorer scoring.Scorer, defaultCriteria types.FilterCriteria, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		uploads:         semaphore.NewWeighted(1),
		scorer:          scorer,
		defaultCriteria: defaultCriteria.Normalized(),
		log:             log,
		candidates:      []types.Candidate{},
		criteria:        defaultCriteria.Normalized(),
		sortKey:         listing.DefaultSortKey,
		sortDir:         listing.DefaultDirection,
		page:            1,
		selection:       shortlist.NewManager(),
	}
}

// Ingest parses, validates and normalizes an uploaded document, then replaces
// the whole candidate collection. The shortlist is cleared unconditionally
// and pagination resets to page 1; filter criteria survive. Only one
// ingestion may be in flight at a time.
func (c *Controller) Ingest(data []byte) (*ingest.Summary, error) {
	if !c.uploads.TryAcquire(1) {
		return nil, &ErrUploadInFlight{}
	}
	defer c.uploads.Release(1)

	records, err := ingest.ParseBatch(data)
	if err != nil {
		c.log.WithError(err).Warn("batch rejected")
		return nil, err
	}

	res, err := ingest.Normalize(records, ingest.Options{
		UploadedAt: time.Now(),
		Scorer:     c.scorer,
	})
	if err != nil {
		c.log.WithError(err).Warn("batch rejected")
		return nil, err
	}

	c.mu.Lock()
	c.candidates = res.Accepted
	c.ingested = true
	c.page = 1
	c.selection.Clear()
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"batch_id": res.Summary.BatchID,
		"accepted": res.Summary.Accepted,
		"rejected": res.Summary.Rejected,
	}).Info("candidate batch ingested")

	return &res.Summary, nil
}

// Ingested reports whether a collection has been loaded this session.
func (c *Controller) Ingested() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ingested
}

// SetFilters replaces the filter criteria. A change resets pagination to
// page 1; setting identical criteria leaves the page alone.
func (c *Controller) SetFilters(criteria types.FilterCriteria) View {
	criteria = criteria.Normalized()

	c.mu.Lock()
	defer c.mu.Unlock()
	if criteria != c.criteria {
		c.criteria = criteria
		c.page = 1
	}
	return c.viewLocked()
}

// SetSort replaces the sort key and direction, falling back to the defaults
// for unknown values. A change resets pagination to page 1.
func (c *Controller) SetSort(key listing.SortKey, dir listing.Direction) View {
	if !listing.ValidSortKey(key) {
		key = listing.DefaultSortKey
	}
	if !listing.ValidDirection(dir) {
		dir = listing.DefaultDirection
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if key != c.sortKey || dir != c.sortDir {
		c.sortKey = key
		c.sortDir = dir
		c.page = 1
	}
	return c.viewLocked()
}

// SetPage moves to the requested page, clamped into the valid range for the
// current filtered collection.
func (c *Controller) SetPage(page int) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := filtering.Apply(c.candidates, c.criteria)
	c.page = listing.ClampPage(page, len(filtered))
	return c.viewLocked()
}

// View recomputes the derived projection from canonical state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	filtered := filtering.Apply(c.candidates, c.criteria)
	sorted := listing.Sort(filtered, c.sortKey, c.sortDir)
	page := listing.Paginate(sorted, c.page)

	return View{
		Page:          page,
		PageNumbers:   listing.PageNumbers(page.Number, page.TotalPages),
		Criteria:      c.criteria,
		SortKey:       c.sortKey,
		SortDirection: c.sortDir,
		FilteredCount: len(filtered),
		TotalCount:    len(c.candidates),
		SelectedCount: c.selection.Len(),
	}
}

// ToggleSelection flips the selection state of a candidate. It reports
// whether the shortlist changed; a toggle rejected by the cap is a no-op,
// not an error. Unknown ids yield *ErrCandidateNotFound.
func (c *Controller) ToggleSelection(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOfLocked(id) < 0 {
		return false, &ErrCandidateNotFound{ID: id}
	}
	return c.selection.Toggle(id), nil
}

// RemoveSelection drops a candidate from the shortlist (equivalent to
// toggling off). Removing an unselected candidate is a no-op.
func (c *Controller) RemoveSelection(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOfLocked(id) < 0 {
		return false, &ErrCandidateNotFound{ID: id}
	}
	return c.selection.Remove(id), nil
}

// UpdateNotes writes free-text notes onto the canonical candidate record,
// independent of selection state. The shortlist reads through the canonical
// collection, so both views converge immediately.
func (c *Controller) UpdateNotes(id, notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOfLocked(id)
	if i < 0 {
		return &ErrCandidateNotFound{ID: id}
	}
	c.candidates[i].Notes = notes
	return nil
}

// Candidate returns a copy of the canonical record for id.
func (c *Controller) Candidate(id string) (types.Candidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOfLocked(id)
	if i < 0 {
		return types.Candidate{}, &ErrCandidateNotFound{ID: id}
	}
	return c.candidates[i], nil
}

// Selection resolves the shortlist ids to canonical candidates, in selection
// order, together with the derived team stats.
func (c *Controller) Selection() ([]types.Candidate, shortlist.TeamStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectionLocked()
}

func (c *Controller) selectionLocked() ([]types.Candidate, shortlist.TeamStats) {
	ids := c.selection.IDs()
	selected := make([]types.Candidate, 0, len(ids))
	for _, id := range ids {
		if i := c.indexOfLocked(id); i >= 0 {
			selected = append(selected, c.candidates[i])
		}
	}
	return selected, shortlist.Stats(selected)
}

func (c *Controller) indexOfLocked(id string) int {
	for i := range c.candidates {
		if c.candidates[i].ID == id {
			return i
		}
	}
	return -1
}
