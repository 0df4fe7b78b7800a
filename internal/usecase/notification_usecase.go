package usecase

import (
	"context"

	"pawtag/internal/domain/entity"
)

// NotificationDispatcher sends a push message and durably records a
// notification entry, independent of push delivery success.
type NotificationDispatcher interface {
	// Dispatch attempts push delivery when token is non-empty (failures
	// are logged, never propagated as errors) and persists a notification
	// record when recipientID is non-empty. Without a recipient the call
	// has no durable effect. delivered reports whether the relay call
	// succeeded; the error reports only a failure to persist the record,
	// and callers decide whether that is fatal.
	Dispatch(ctx context.Context, token, title, body, recipientID string) (delivered bool, err error)
}

// NotificationUsecase defines the notification center use cases.
type NotificationUsecase interface {
	NotificationDispatcher

	// ListNotifications retrieves the caller's most recent notifications.
	ListNotifications(ctx context.Context, session entity.Session, limit int) ([]*entity.Notification, error)

	// MarkRead flags one of the caller's notifications as read.
	MarkRead(ctx context.Context, session entity.Session, notificationID string) error

	// WatchUnreadCount subscribes to the caller's unread count, recomputed
	// on every snapshot.
	WatchUnreadCount(ctx context.Context, session entity.Session) (<-chan int, error)
}
