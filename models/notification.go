package models

import "time"

// Notification severities, mirroring the snackbar variants the admin
// frontend renders.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
)

// Notification is one transient admin-facing message ("Item added",
// "Exported CSV", ...). Entries live only in the in-memory feed.
type Notification struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
