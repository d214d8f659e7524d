// Package catalog implements the pure filter/sort/paginate pipeline
// that turns a store snapshot into the listing the admin UI displays.
package catalog

import (
	"sort"
	"strings"

	"github.com/velvettable/velvet-admin/models"
)

// DefaultRowsPerPage is the listing default; AllowedRows are the page
// sizes the rows selector offers.
const DefaultRowsPerPage = 6

var allowedRows = map[int]bool{4: true, 6: true, 12: true}

// NormalizeRows maps an arbitrary rows-per-page request onto the
// allowed set, falling back to the default.
func NormalizeRows(rows int) int {
	if allowedRows[rows] {
		return rows
	}
	return DefaultRowsPerPage
}

// Query carries every input of the pipeline. A zero Category behaves
// like the "All" sentinel.
type Query struct {
	Search      string
	Category    models.Category
	SortBy      models.SortMode
	Page        int
	RowsPerPage int
}

// View is one displayable page of the catalog plus the pagination
// facts the UI needs.
type View struct {
	Items     []models.MenuItem `json:"items"`
	Filtered  int               `json:"filtered"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
}

// Filtered applies the category filter, the search filter and the
// sort, in that order, and returns the full (unpaginated) result.
// The sort is stable: equal keys keep their snapshot order.
func Filtered(items []models.MenuItem, q Query) []models.MenuItem {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if q.Category != "" && q.Category != models.CategoryAll && it.Category != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch q.SortBy {
		case models.SortByPriceAsc:
			return out[i].Price < out[j].Price
		case models.SortByPriceDesc:
			return out[i].Price > out[j].Price
		default:
			return out[i].Rating > out[j].Rating
		}
	})
	return out
}

// PageCount returns max(1, ceil(filtered/rows)).
func PageCount(filtered, rows int) int {
	if rows < 1 {
		rows = DefaultRowsPerPage
	}
	n := (filtered + rows - 1) / rows
	if n < 1 {
		n = 1
	}
	return n
}

// ClampPage forces page into [1, pageCount]. The HTTP layer clamps;
// the pipeline itself stays tolerant of out-of-range pages.
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Paginate slices the 1-based page out of an already filtered and
// sorted list. Pages past the end yield an empty slice rather than an
// error.
func Paginate(filtered []models.MenuItem, page, rows int) []models.MenuItem {
	if rows < 1 {
		rows = DefaultRowsPerPage
	}
	if page < 1 {
		page = 1
	}

	lo := (page - 1) * rows
	if lo >= len(filtered) {
		return []models.MenuItem{}
	}
	hi := lo + rows
	if hi > len(filtered) {
		hi = len(filtered)
	}
	return filtered[lo:hi]
}

// Apply runs the whole pipeline over a snapshot. It does not clamp
// the page; callers wanting clamping use ClampPage first.
func Apply(items []models.MenuItem, q Query) View {
	rows := q.RowsPerPage
	if rows < 1 {
		rows = DefaultRowsPerPage
	}

	filtered := Filtered(items, q)
	page := q.Page
	if page < 1 {
		page = 1
	}

	return View{
		Items:     Paginate(filtered, page, rows),
		Filtered:  len(filtered),
		Page:      page,
		PageCount: PageCount(len(filtered), rows),
	}
}
