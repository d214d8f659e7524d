package store

import (
	"sync"
	"time"

	"github.com/velvettable/velvet-admin/models"
)

// DefaultFeedCapacity bounds how many notifications the feed retains.
const DefaultFeedCapacity = 50

// NotificationFeed keeps the most recent admin notifications in
// memory, newest first. Old entries fall off once the capacity is
// reached; nothing is persisted.
type NotificationFeed struct {
	mu      sync.Mutex
	entries []models.Notification
	cap     int
	lastID  uint64
	now     func() time.Time
}

func NewNotificationFeed(capacity int) *NotificationFeed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &NotificationFeed{cap: capacity, now: time.Now}
}

// Record prepends a notification and returns the stored entry.
func (f *NotificationFeed) Record(severity, title, message string) models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastID++
	n := models.Notification{
		ID:        f.lastID,
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: f.now(),
	}
	f.entries = append([]models.Notification{n}, f.entries...)
	if len(f.entries) > f.cap {
		f.entries = f.entries[:f.cap]
	}
	return n
}

// Recent returns a snapshot of the retained notifications, newest
// first.
func (f *NotificationFeed) Recent() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Notification, len(f.entries))
	copy(out, f.entries)
	return out
}
