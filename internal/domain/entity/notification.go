package entity

import (
	"time"
)

// Notification is a durable per-user notification entry. It is written
// independently of push delivery: a failed push still leaves a record.
type Notification struct {
	ID        string    `json:"id"`         // Document ID assigned by the store.
	UserID    string    `json:"user_id"`    // The recipient account ID.
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`       // Defaults to false on creation.
	CreatedAt time.Time `json:"created_at"` // Server-assigned.
}
