// Package pagination tracks the page a listing is showing and keeps it inside
// the range of pages that exist.
package pagination

import "fmt"

// DefaultPageSizes are the row counts offered by the page size selector.
var DefaultPageSizes = []int{10, 20, 50}

// DefaultPerPage is used when no page size is requested.
const DefaultPerPage = 10

// State is the position of a listing: total items, page size and the
// current 1-based page.
type State struct {
	Items   int
	PerPage int
	Page    int
}

// New returns a state clamped to the pages that exist.
func New(items, perPage, page int) State {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if items < 0 {
		items = 0
	}
	s := State{Items: items, PerPage: perPage, Page: page}
	s.Page = s.clamp(page)
	return s
}

// Pages is ceil(Items/PerPage). An empty listing still has one page.
func (s State) Pages() int {
	if s.PerPage <= 0 {
		return 1
	}
	n := (s.Items + s.PerPage - 1) / s.PerPage
	if n < 1 {
		return 1
	}
	return n
}

func (s State) clamp(page int) int {
	if page < 1 {
		return 1
	}
	if last := s.Pages(); page > last {
		return last
	}
	return page
}

// IsFirst reports whether there is no previous page.
func (s State) IsFirst() bool { return s.Page <= 1 }

// IsLast reports whether there is no next page.
func (s State) IsLast() bool { return s.Page >= s.Pages() }

// First moves to page 1.
func (s State) First() State {
	s.Page = 1
	return s
}

// Prev moves back one page; on the first page it is a no-op.
func (s State) Prev() State {
	if s.IsFirst() {
		return s
	}
	s.Page--
	return s
}

// Next moves forward one page; on the last page it is a no-op.
func (s State) Next() State {
	if s.IsLast() {
		return s
	}
	s.Page++
	return s
}

// Last moves to the final page.
func (s State) Last() State {
	s.Page = s.Pages()
	return s
}

// ChangePerPage sets the page size. The current page is kept while it
// still exists, otherwise it moves to the new last page.
func (s State) ChangePerPage(perPage int) State {
	if perPage <= 0 {
		return s
	}
	s.PerPage = perPage
	s.Page = s.clamp(s.Page)
	return s
}

// Bounds returns the half-open range [start, end) of item indexes on the
// current page.
func (s State) Bounds() (start, end int) {
	start = (s.Page - 1) * s.PerPage
	if start > s.Items {
		start = s.Items
	}
	end = start + s.PerPage
	if end > s.Items {
		end = s.Items
	}
	return start, end
}

// Shown is the number of items on the current page.
func (s State) Shown() int {
	start, end := s.Bounds()
	return end - start
}

// Summary renders the footer of a paginated table.
func (s State) Summary() string {
	return fmt.Sprintf("Showing %d of %d items · Page %d of %d", s.Shown(), s.Items, s.Page, s.Pages())
}

// Allowed reports whether perPage is one of sizes.
func Allowed(perPage int, sizes []int) bool {
	for _, n := range sizes {
		if n == perPage {
			return true
		}
	}
	return false
}
