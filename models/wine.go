package models

// Wine is an entry of the separate wine collection. Unlike the menu
// catalog the collection is read-only; price is in whole USD.
type Wine struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Year  int    `json:"year"`
	Price int64  `json:"price"`
}
