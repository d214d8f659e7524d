package store

import (
	"sync"

	"github.com/velvettable/velvet-admin/models"
)

// WinesPerPage matches the fixed page size of the wines grid.
const WinesPerPage = 5

// WineStore holds the read-only wine collection. It has no mutation
// surface; the list is fixed at construction.
type WineStore struct {
	mu    sync.RWMutex
	wines []models.Wine
}

func NewWineStore(seed []models.Wine) *WineStore {
	s := &WineStore{}
	s.wines = append(s.wines, seed...)
	return s
}

// List returns a snapshot copy of the whole collection.
func (s *WineStore) List() []models.Wine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Wine, len(s.wines))
	copy(out, s.wines)
	return out
}

// Page returns the 1-based page of the collection plus the total page
// count. Pages beyond the end come back empty.
func (s *WineStore) Page(page int) ([]models.Wine, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pageCount := (len(s.wines) + WinesPerPage - 1) / WinesPerPage
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}

	lo := (page - 1) * WinesPerPage
	if lo >= len(s.wines) {
		return []models.Wine{}, pageCount
	}
	hi := lo + WinesPerPage
	if hi > len(s.wines) {
		hi = len(s.wines)
	}

	out := make([]models.Wine, hi-lo)
	copy(out, s.wines[lo:hi])
	return out, pageCount
}

// Len reports the collection size.
func (s *WineStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wines)
}
