package store

import (
	"errors"
	"sync"

	"github.com/velvettable/velvet-admin/models"
)

// ErrItemNotFound is returned when an update, get or remove names an
// id the catalog does not hold.
var ErrItemNotFound = errors.New("menu item not found")

// CatalogStore owns the in-memory menu catalog. All state lives in
// this process; a restart starts over from the seed list.
//
// Iteration order is prepend order: the seed items in their seeded
// order, newly added items in front. Display ordering is the view
// pipeline's job and is never written back here.
type CatalogStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
	ids   IDGenerator
}

// NewCatalogStore builds a store preloaded with seed. The generator
// must be seeded past the highest id in the seed list.
func NewCatalogStore(seed []models.MenuItem, ids IDGenerator) *CatalogStore {
	s := &CatalogStore{ids: ids}
	s.items = append(s.items, seed...)
	return s
}

// Add assigns a fresh unique id, prepends the item and returns the
// stored copy. Any id the caller set on item is discarded.
func (s *CatalogStore) Add(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.ids.Next()
	s.items = append([]models.MenuItem{item}, s.items...)
	return item
}

// Update replaces every field of the item with the given id, keeping
// the id itself. A missing id leaves the catalog untouched and
// returns ErrItemNotFound.
func (s *CatalogStore) Update(id uint64, fields models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			fields.ID = id
			s.items[i] = fields
			return fields, nil
		}
	}
	return models.MenuItem{}, ErrItemNotFound
}

// Remove deletes the item with the given id. Removal is immediate and
// has no undo.
func (s *CatalogStore) Remove(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Get returns the item with the given id.
func (s *CatalogStore) Get(id uint64) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.MenuItem{}, ErrItemNotFound
}

// List returns a snapshot copy of the catalog in iteration order.
// Callers may reorder or slice the result freely.
func (s *CatalogStore) List() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the current catalog size.
func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
