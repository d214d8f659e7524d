package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvettable/velvet-admin/models"
)

func newSeededStore() *CatalogStore {
	seed := models.SeedMenu()
	return NewCatalogStore(seed, NewCounterGenerator(8))
}

func TestAddAssignsFreshIDAndPrepends(t *testing.T) {
	s := newSeededStore()

	stored := s.Add(models.MenuItem{
		Name:     "Lobster Bisque",
		Category: models.CategorySeafood,
		Price:    2100,
		Rating:   4.4,
	})

	assert.Equal(t, uint64(9), stored.ID)
	assert.Equal(t, "Lobster Bisque", stored.Name)

	list := s.List()
	assert.Len(t, list, 9)
	// newest item first, seed order preserved behind it
	assert.Equal(t, stored, list[0])
	assert.Equal(t, uint64(1), list[1].ID)
	assert.Equal(t, uint64(8), list[8].ID)
}

func TestAddIgnoresCallerSuppliedID(t *testing.T) {
	s := newSeededStore()

	stored := s.Add(models.MenuItem{ID: 999, Name: "Tiramisu", Category: models.CategoryMainCourse})
	assert.Equal(t, uint64(9), stored.ID)

	second := s.Add(models.MenuItem{Name: "Panna Cotta", Category: models.CategoryMainCourse})
	assert.Equal(t, uint64(10), second.ID)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	s := newSeededStore()

	updated, err := s.Update(3, models.MenuItem{
		Name:     "Caesar Salad Deluxe",
		Category: models.CategorySalad,
		Price:    990,
		Rating:   4.4,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), updated.ID)

	got, err := s.Get(3)
	assert.NoError(t, err)
	assert.Equal(t, "Caesar Salad Deluxe", got.Name)
	assert.Equal(t, int64(990), got.Price)
	assert.Equal(t, 4.4, got.Rating)
}

func TestUpdateMissingIDLeavesCatalogUnchanged(t *testing.T) {
	s := newSeededStore()
	before := s.List()

	_, err := s.Update(999, models.MenuItem{Name: "Ghost Dish", Category: models.CategoryMainCourse})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, before, s.List())
}

func TestRemove(t *testing.T) {
	s := newSeededStore()

	assert.NoError(t, s.Remove(4))
	assert.Equal(t, 7, s.Len())

	_, err := s.Get(4)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, s.Remove(4), ErrItemNotFound)
}

func TestListReturnsSnapshotCopy(t *testing.T) {
	s := newSeededStore()

	list := s.List()
	list[0].Name = "Mutated"

	got, err := s.Get(list[0].ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "Mutated", got.Name)
}

func TestCounterGeneratorIsMonotonic(t *testing.T) {
	g := NewCounterGenerator(8)
	assert.Equal(t, uint64(9), g.Next())
	assert.Equal(t, uint64(10), g.Next())
	assert.Equal(t, uint64(11), g.Next())
}
