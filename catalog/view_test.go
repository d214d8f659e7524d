package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvettable/velvet-admin/models"
)

func names(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestCategoryFilterExactMatch(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{Category: models.CategoryWine})

	assert.Len(t, got, 2)
	for _, it := range got {
		assert.Equal(t, models.CategoryWine, it.Category)
	}
}

func TestAllSentinelPassesEverything(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{Category: models.CategoryAll})
	assert.Len(t, got, len(models.SeedMenu()))

	// zero Category behaves like "All"
	got = Filtered(models.SeedMenu(), Query{})
	assert.Len(t, got, len(models.SeedMenu()))
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{Search: "  SALMON "})
	assert.Equal(t, []string{"Grilled Salmon"}, names(got))

	got = Filtered(models.SeedMenu(), Query{Search: "zzz"})
	assert.Empty(t, got)

	// empty search passes all
	got = Filtered(models.SeedMenu(), Query{Search: "   "})
	assert.Len(t, got, len(models.SeedMenu()))
}

func TestWineCategorySortedByRating(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{Category: models.CategoryWine, SortBy: models.SortByRating})

	assert.Equal(t, []string{"Cabernet Sauvignon", "Chardonnay"}, names(got))
	assert.Equal(t, uint64(4), got[0].ID)
	assert.Equal(t, uint64(5), got[1].ID)
}

func TestSaladSearchPriceAscending(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{
		Category: models.CategoryAll,
		Search:   "salad",
		SortBy:   models.SortByPriceAsc,
	})

	assert.Equal(t, []string{"Caesar Salad", "Greek Salad"}, names(got))
	assert.Equal(t, int64(850), got[0].Price)
	assert.Equal(t, int64(950), got[1].Price)
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Name: "First", Category: models.CategoryMainCourse, Price: 1000, Rating: 4.0},
		{ID: 2, Name: "Second", Category: models.CategoryMainCourse, Price: 1000, Rating: 4.0},
		{ID: 3, Name: "Third", Category: models.CategoryMainCourse, Price: 1000, Rating: 4.0},
	}

	for _, mode := range []models.SortMode{models.SortByRating, models.SortByPriceAsc, models.SortByPriceDesc} {
		got := Filtered(items, Query{SortBy: mode})
		assert.Equal(t, []string{"First", "Second", "Third"}, names(got), "mode %s", mode)
	}
}

func TestPriceDescending(t *testing.T) {
	got := Filtered(models.SeedMenu(), Query{SortBy: models.SortByPriceDesc})
	assert.Equal(t, "Cabernet Sauvignon", got[0].Name)
	assert.Equal(t, "Caesar Salad", got[len(got)-1].Name)
}

func TestPaginationSplitsEightItemsIntoTwoPages(t *testing.T) {
	q := Query{SortBy: models.SortByRating, RowsPerPage: 4}
	filtered := Filtered(models.SeedMenu(), q)

	assert.Equal(t, 2, PageCount(len(filtered), 4))

	page1 := Paginate(filtered, 1, 4)
	page2 := Paginate(filtered, 2, 4)
	assert.Len(t, page1, 4)
	assert.Len(t, page2, 4)
	assert.Equal(t, filtered[4:], page2)
}

func TestPaginationConcatenationReproducesFilteredSet(t *testing.T) {
	for _, rows := range []int{4, 6, 12} {
		q := Query{SortBy: models.SortByPriceAsc, RowsPerPage: rows}
		filtered := Filtered(models.SeedMenu(), q)
		pageCount := PageCount(len(filtered), rows)

		var all []models.MenuItem
		for p := 1; p <= pageCount; p++ {
			all = append(all, Paginate(filtered, p, rows)...)
		}
		assert.Equal(t, filtered, all, "rows=%d", rows)
	}
}

func TestPageBeyondRangeIsEmptyNotError(t *testing.T) {
	v := Apply(models.SeedMenu(), Query{Page: 42, RowsPerPage: 6})
	assert.Empty(t, v.Items)
	assert.Equal(t, 2, v.PageCount)
	assert.Equal(t, 8, v.Filtered)
}

func TestPageCountNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 6))
	assert.Equal(t, 1, PageCount(3, 6))
	assert.Equal(t, 2, PageCount(7, 6))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
}

func TestNormalizeRows(t *testing.T) {
	assert.Equal(t, 4, NormalizeRows(4))
	assert.Equal(t, 12, NormalizeRows(12))
	assert.Equal(t, DefaultRowsPerPage, NormalizeRows(5))
	assert.Equal(t, DefaultRowsPerPage, NormalizeRows(0))
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	items := models.SeedMenu()
	Filtered(items, Query{SortBy: models.SortByPriceAsc})

	assert.Equal(t, models.SeedMenu(), items)
}
