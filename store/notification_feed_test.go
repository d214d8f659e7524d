package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvettable/velvet-admin/models"
)

func TestFeedRecordsNewestFirst(t *testing.T) {
	f := NewNotificationFeed(10)

	f.Record(models.SeveritySuccess, "Catalog", "Item added")
	f.Record(models.SeveritySuccess, "Catalog", "Item updated")
	f.Record(models.SeverityInfo, "Catalog", "Item removed")

	recent := f.Recent()
	assert.Len(t, recent, 3)
	assert.Equal(t, "Item removed", recent[0].Message)
	assert.Equal(t, models.SeverityInfo, recent[0].Severity)
	assert.Equal(t, "Item added", recent[2].Message)
}

func TestFeedDropsOldestBeyondCapacity(t *testing.T) {
	f := NewNotificationFeed(5)

	for i := 1; i <= 8; i++ {
		f.Record(models.SeverityInfo, "Catalog", fmt.Sprintf("event %d", i))
	}

	recent := f.Recent()
	assert.Len(t, recent, 5)
	assert.Equal(t, "event 8", recent[0].Message)
	assert.Equal(t, "event 4", recent[4].Message)
}

func TestFeedIDsAreUnique(t *testing.T) {
	f := NewNotificationFeed(3)

	a := f.Record(models.SeverityInfo, "Catalog", "one")
	b := f.Record(models.SeverityInfo, "Catalog", "two")
	assert.NotEqual(t, a.ID, b.ID)
}
