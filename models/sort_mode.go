package models

// SortMode selects the ordering of a catalog listing.
type SortMode string

const (
	SortByRating    SortMode = "rating"
	SortByPriceAsc  SortMode = "price_asc"
	SortByPriceDesc SortMode = "price_desc"
)

// ParseSortMode maps a query string value to a SortMode. Unknown
// values fall back to the rating sort, the listing default.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortByPriceAsc:
		return SortByPriceAsc
	case SortByPriceDesc:
		return SortByPriceDesc
	default:
		return SortByRating
	}
}
