package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	mockRepo "pawtag/internal/mocks/repository"
	mockSvc "pawtag/internal/mocks/service"
	"pawtag/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockPushSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewDispatchService(logger, notificationRepo, pushSender)

	return service, notificationRepo, pushSender
}

func TestDispatchService_Dispatch_Success(t *testing.T) {
	service, notificationRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	pushSender.EXPECT().Send(ctx, "ExponentPushToken[abc]", "Title", "Body").Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, &entity.Notification{
		UserID: "user-1",
		Title:  "Title",
		Body:   "Body",
		Read:   false,
	}).Return(nil)

	delivered, err := service.Dispatch(ctx, "ExponentPushToken[abc]", "Title", "Body", "user-1")

	require.NoError(t, err)
	assert.True(t, delivered)
}

// No token degrades to record-only; no push call is made at all.
func TestDispatchService_Dispatch_EmptyTokenRecordsOnly(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	delivered, err := service.Dispatch(ctx, "", "Title", "Body", "user-1")

	require.NoError(t, err)
	assert.False(t, delivered)
}

// A failed push still leaves the durable record.
func TestDispatchService_Dispatch_PushFailureStillRecords(t *testing.T) {
	service, notificationRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	pushSender.EXPECT().Send(ctx, "ExponentPushToken[abc]", "Title", "Body").
		Return(errors.New("relay unreachable"))
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	delivered, err := service.Dispatch(ctx, "ExponentPushToken[abc]", "Title", "Body", "user-1")

	require.NoError(t, err)
	assert.False(t, delivered)
}

// Without a recipient nothing durable happens; the delivery verdict still
// comes back.
func TestDispatchService_Dispatch_EmptyRecipient(t *testing.T) {
	service, _, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	pushSender.EXPECT().Send(ctx, "ExponentPushToken[abc]", "Title", "Body").Return(nil)

	delivered, err := service.Dispatch(ctx, "ExponentPushToken[abc]", "Title", "Body", "")

	require.NoError(t, err)
	assert.True(t, delivered)
}

// A record persistence failure is the one error Dispatch propagates, and
// the delivery verdict survives alongside it.
func TestDispatchService_Dispatch_RecordFailure(t *testing.T) {
	service, notificationRepo, pushSender := createTestDispatchService(t)

	ctx := context.Background()
	pushSender.EXPECT().Send(ctx, "ExponentPushToken[abc]", "Title", "Body").Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		Return(errors.New("write failed"))

	delivered, err := service.Dispatch(ctx, "ExponentPushToken[abc]", "Title", "Body", "user-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record notification")
	assert.True(t, delivered)
}

func TestDispatchService_ListNotifications_DefaultLimit(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	expected := []*entity.Notification{{ID: "n-1", UserID: "user-1", Title: "Title"}}
	notificationRepo.EXPECT().FindNotificationsByUser(ctx, "user-1", defaultNotificationLimit).
		Return(expected, nil)

	notifications, err := service.ListNotifications(ctx, entity.Session{UserID: "user-1"}, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestDispatchService_ListNotifications_ExplicitLimit(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindNotificationsByUser(ctx, "user-1", 5).
		Return([]*entity.Notification{}, nil)

	notifications, err := service.ListNotifications(ctx, entity.Session{UserID: "user-1"}, 5)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDispatchService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().MarkNotificationRead(ctx, "missing").
		Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, entity.Session{UserID: "user-1"}, "missing")

	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestDispatchService_MarkRead_Success(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().MarkNotificationRead(ctx, "n-1").Return(nil)

	err := service.MarkRead(ctx, entity.Session{UserID: "user-1"}, "n-1")

	require.NoError(t, err)
}

func TestDispatchService_WatchUnreadCount(t *testing.T) {
	service, notificationRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	counts := make(chan int, 1)
	counts <- 3
	close(counts)

	notificationRepo.EXPECT().WatchUnreadCount(ctx, "user-1").
		Return((<-chan int)(counts), nil)

	out, err := service.WatchUnreadCount(ctx, entity.Session{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 3, <-out)
}
