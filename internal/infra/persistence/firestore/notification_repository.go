package firestore

import (
	"context"
	"log/slog"
	"time"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type notificationDocument struct {
	UserID    string    `firestore:"userId"`
	Title     string    `firestore:"title"`
	Body      string    `firestore:"body"`
	Read      bool      `firestore:"read"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d *notificationDocument) toEntity(id string) *entity.Notification {
	return &entity.Notification{
		ID:        id,
		UserID:    d.UserID,
		Title:     d.Title,
		Body:      d.Body,
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
	}
}

type notificationRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewNotificationRepository creates a Firestore-backed notification repository.
func NewNotificationRepository(client *firestore.Client, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	doc := &notificationDocument{
		UserID: notification.UserID,
		Title:  notification.Title,
		Body:   notification.Body,
		Read:   false,
	}

	ref, _, err := repo.client.Collection(notificationsCollection).Add(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "create notification")
	}

	notification.ID = ref.ID

	return nil
}

func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	docs, err := repo.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "query notifications")
	}

	notifications := make([]*entity.Notification, 0, len(docs))
	for _, d := range docs {
		var doc notificationDocument
		if err := d.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode notification document")
		}
		notifications = append(notifications, doc.toEntity(d.Ref.ID))
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := repo.client.Collection(notificationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "mark notification read")
	}

	return nil
}

func (repo *notificationRepository) WatchUnreadCount(ctx context.Context, userID string) (<-chan int, error) {
	query := repo.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		Where("read", "==", false)

	out := make(chan int, 1)
	go func() {
		defer close(out)

		snapshots := query.Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("unread count stream failed",
						slog.String("user_id", userID),
						slog.Any("error", err),
					)
				}

				return
			}

			publishLatest(ctx, out, snap.Size)
		}
	}()

	return out, nil
}
