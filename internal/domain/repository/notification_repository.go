package repository

import (
	"context"
	"errors"

	"pawtag/internal/domain/entity"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related
// store operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification entry with read=false
	// and a server-assigned creation time, and assigns its ID.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser retrieves the most recent notifications for
	// a recipient.
	FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkNotificationRead sets the read flag on a notification.
	MarkNotificationRead(ctx context.Context, id string) error

	// WatchUnreadCount subscribes to the count of unread notifications for
	// a recipient. The count is recomputed from each snapshot, not
	// incrementally maintained.
	WatchUnreadCount(ctx context.Context, userID string) (<-chan int, error)
}
