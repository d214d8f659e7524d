package models

// Category is the closed set of menu sections an item can belong to.
type Category string

const (
	CategoryMainCourse Category = "Main Course"
	CategorySalad      Category = "Salad"
	CategorySeafood    Category = "Seafood"
	CategoryWine       Category = "Wine"

	// CategoryAll is a filter-only sentinel. It is never stored on an item.
	CategoryAll Category = "All"
)

// Valid reports whether c may be stored on a menu item. The "All"
// sentinel is not a storable category.
func (c Category) Valid() bool {
	switch c {
	case CategoryMainCourse, CategorySalad, CategorySeafood, CategoryWine:
		return true
	}
	return false
}

// Categories lists the storable categories in menu order.
func Categories() []Category {
	return []Category{CategoryMainCourse, CategorySalad, CategorySeafood, CategoryWine}
}

// MenuItem is a single entry of the restaurant catalog. Price is in
// whole currency units (KES), no subunits.
type MenuItem struct {
	ID       uint64   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int64    `json:"price"`
	Rating   float64  `json:"rating"`
}
