// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	"pawtag/internal/domain/service"
	"pawtag/internal/errors"
	"pawtag/internal/usecase"
)

const defaultNotificationLimit = 50

type dispatchService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
}

// NewDispatchService creates a new notification dispatcher instance
func NewDispatchService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
) usecase.NotificationUsecase {
	return &dispatchService{
		logger:           logger,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
	}
}

// Dispatch attempts a push delivery and records a durable notification
// entry. The two effects are independent: a failed push still leaves a
// record, and a missing token degrades to record-only.
func (s *dispatchService) Dispatch(ctx context.Context, token, title, body, recipientID string) (bool, error) {
	delivered := false
	if token == "" {
		s.logger.Debug("no push token provided, skipping push delivery",
			slog.String("recipient_id", recipientID))
	} else if err := s.pushSender.Send(ctx, token, title, body); err != nil {
		// Transient dispatch failure: logged, never propagated.
		s.logger.Warn("push delivery failed",
			slog.String("recipient_id", recipientID),
			slog.Any("error", err))
	} else {
		delivered = true
	}

	if recipientID == "" {
		s.logger.Warn("no recipient provided, notification not recorded")

		return delivered, nil
	}

	notification := &entity.Notification{
		UserID: recipientID,
		Title:  title,
		Body:   body,
		Read:   false,
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return delivered, errors.Wrap(err, "failed to record notification")
	}

	return delivered, nil
}

// ListNotifications retrieves the caller's most recent notifications
func (s *dispatchService) ListNotifications(ctx context.Context, session entity.Session, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, session.UserID, limit)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags a notification as read
func (s *dispatchService) MarkRead(ctx context.Context, session entity.Session, notificationID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to mark notification read")
	}

	return nil
}

// WatchUnreadCount subscribes to the caller's unread notification count
func (s *dispatchService) WatchUnreadCount(ctx context.Context, session entity.Session) (<-chan int, error) {
	counts, err := s.notificationRepo.WatchUnreadCount(ctx, session.UserID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to watch unread count")
	}

	return counts, nil
}
