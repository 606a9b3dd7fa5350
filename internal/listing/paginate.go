package listing

import (
	"strconv"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// PageSize is the fixed number of candidates per page.
const PageSize = 15

// Ellipsis marks a collapsed run in a page-number display range.
const Ellipsis = "..."

// pageWindow is how many pages are shown on each side of the current page.
const pageWindow = 2

// Page is one fixed-size slice of an ordered candidate listing.
type Page struct {
	Items      []types.Candidate `json:"items"`
	Number     int               `json:"number"`
	TotalPages int               `json:"total_pages"`
	TotalItems int               `json:"total_items"`
}

// TotalPages returns the page count for n items, never less than 1.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage clamps a requested page number into the valid range for n items.
func ClampPage(page, n int) int {
	total := TotalPages(n)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate slices an ordered listing into the requested page, clamping the
// page number into range first.
func Paginate(items []types.Candidate, page int) Page {
	total := TotalPages(len(items))
	page = ClampPage(page, len(items))

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: total,
		TotalItems: len(items),
	}
}

// PageNumbers builds the display range for a pager: always the first and last
// page plus a window of up to pageWindow pages on each side of current, with
// long runs collapsed into an Ellipsis marker.
func PageNumbers(current, totalPages int) []string {
	if totalPages < 1 {
		totalPages = 1
	}
	current = ClampPage(current, totalPages*PageSize)

	// Short ranges are shown in full.
	if totalPages <= 2*pageWindow+1 {
		pages := make([]string, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, strconv.Itoa(i))
		}
		return pages
	}

	start := current - pageWindow
	if start < 1 {
		start = 1
	}
	end := current + pageWindow
	if end > totalPages {
		end = totalPages
	}

	pages := make([]string, 0, end-start+5)
	if start > 1 {
		pages = append(pages, strconv.Itoa(1))
		if start > 2 {
			pages = append(pages, Ellipsis)
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if end < totalPages {
		if end < totalPages-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, strconv.Itoa(totalPages))
	}
	return pages
}
