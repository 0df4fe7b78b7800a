package impl

import (
	"context"
	"testing"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	mockRepo "pawtag/internal/mocks/repository"
	"pawtag/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewProfileService(userRepo), userRepo
}

func TestProfileService_RegisterPushToken_Success(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().UpsertPushToken(ctx, "user-1", "ExponentPushToken[abc]").Return(nil)

	err := service.RegisterPushToken(ctx, entity.Session{UserID: "user-1"}, "ExponentPushToken[abc]")

	require.NoError(t, err)
}

func TestProfileService_RegisterPushToken_EmptyToken(t *testing.T) {
	service, _ := createTestProfileService(t)

	err := service.RegisterPushToken(context.Background(), entity.Session{UserID: "user-1"}, "   ")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().UpsertProfile(ctx, &entity.UserProfile{
		ID:    "user-1",
		Name:  "Ana",
		Phone: "555-0001",
	}).Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "user-1").
		Return(&entity.UserProfile{ID: "user-1", Name: "Ana", Phone: "555-0001", PushToken: "tok"}, nil)

	profile, err := service.UpdateProfile(ctx, entity.Session{UserID: "user-1"}, " Ana ", " 555-0001 ")

	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "tok", profile.PushToken)
}

func TestProfileService_UpdateProfile_AllBlank(t *testing.T) {
	service, _ := createTestProfileService(t)

	_, err := service.UpdateProfile(context.Background(), entity.Session{UserID: "user-1"}, "  ", "")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.UserProfile{ID: "user-1", Name: "Ana", Phone: "555-0001"}
	userRepo.EXPECT().FindUserByID(ctx, "user-1").Return(expected, nil)

	profile, err := service.GetProfile(ctx, entity.Session{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

// Profiles are created lazily, so a missing document reads back empty.
func TestProfileService_GetProfile_MissingIsEmpty(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByID(ctx, "user-1").Return(nil, repository.ErrUserNotFound)

	profile, err := service.GetProfile(ctx, entity.Session{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, &entity.UserProfile{ID: "user-1"}, profile)
}

func TestProfileService_GetProfile_StoreFailure(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByID(ctx, "user-1").Return(nil, errors.New("read failed"))

	_, err := service.GetProfile(ctx, entity.Session{UserID: "user-1"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}
