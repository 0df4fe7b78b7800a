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
	mockUC "pawtag/internal/mocks/usecase"
	"pawtag/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistryService(t *testing.T) (
	usecase.RegistryUsecase,
	*mockRepo.MockPetRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockLocationProvider,
	*mockSvc.MockQRTagService,
	*mockUC.MockNotificationDispatcher,
) {
	petRepo := mockRepo.NewMockPetRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	locationProvider := mockSvc.NewMockLocationProvider(t)
	qrTags := mockSvc.NewMockQRTagService(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewRegistryService(logger, petRepo, userRepo, locationProvider, qrTags, dispatcher)

	return service, petRepo, userRepo, locationProvider, qrTags, dispatcher
}

func TestRegistryService_CreatePet_Success(t *testing.T) {
	service, petRepo, userRepo, locationProvider, _, dispatcher := createTestRegistryService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 19.4326, Longitude: -99.1332}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	petRepo.EXPECT().CreatePet(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, pet *entity.Pet) error {
			pet.ID = "pet-1"
			return nil
		})
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").
		Return(&entity.UserProfile{ID: "owner-1", PushToken: "ExponentPushToken[abc]"}, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, "ExponentPushToken[abc]", "Nueva mascota agregada", "Has registrado a Rex.", "owner-1").
		Return(true, nil)

	pet, err := service.CreatePet(ctx, entity.Session{UserID: "owner-1"}, &usecase.NewPetInput{
		Name:  "  Rex ",
		Type:  "Perro",
		Breed: "Labrador",
	})

	require.NoError(t, err)
	assert.Equal(t, "pet-1", pet.ID)
	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, entity.PetStatusSafe, pet.Status)
	require.NotNil(t, pet.Location)
	assert.Equal(t, coords, *pet.Location)
	assert.False(t, pet.CreatedAt.IsZero())
}

func TestRegistryService_CreatePet_ValidationFailed(t *testing.T) {
	service, _, _, _, _, _ := createTestRegistryService(t)

	tests := []struct {
		name  string
		input *usecase.NewPetInput
	}{
		{name: "nil input", input: nil},
		{name: "blank name", input: &usecase.NewPetInput{Name: "   ", Type: "Perro"}},
		{name: "blank type", input: &usecase.NewPetInput{Name: "Rex", Type: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreatePet(context.Background(), entity.Session{UserID: "owner-1"}, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrPetValidation)
		})
	}
}

// A dead location provider must not block registration.
func TestRegistryService_CreatePet_WithoutLocation(t *testing.T) {
	service, petRepo, userRepo, locationProvider, _, dispatcher := createTestRegistryService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{}, errors.New("no fix"))
	petRepo.EXPECT().CreatePet(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").Return(nil, repository.ErrUserNotFound)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").Return(false, nil)

	pet, err := service.CreatePet(ctx, entity.Session{UserID: "owner-1"}, &usecase.NewPetInput{
		Name: "Rex",
		Type: "Perro",
	})

	require.NoError(t, err)
	assert.Nil(t, pet.Location)
}

// A notification record failure is swallowed: the pet was created.
func TestRegistryService_CreatePet_DispatchFailureIgnored(t *testing.T) {
	service, petRepo, userRepo, locationProvider, _, dispatcher := createTestRegistryService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{Latitude: 1, Longitude: 1}, nil)
	petRepo.EXPECT().CreatePet(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").Return(&entity.UserProfile{ID: "owner-1"}, nil)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").
		Return(false, errors.New("store write failed"))

	_, err := service.CreatePet(ctx, entity.Session{UserID: "owner-1"}, &usecase.NewPetInput{
		Name: "Rex",
		Type: "Perro",
	})

	require.NoError(t, err)
}

func TestRegistryService_DeletePet_Success(t *testing.T) {
	service, petRepo, userRepo, _, _, dispatcher := createTestRegistryService(t)

	ctx := context.Background()
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").
		Return(&entity.Pet{ID: "pet-1", OwnerID: "owner-1", Name: "Rex"}, nil)
	petRepo.EXPECT().DeletePet(ctx, "pet-1").Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").Return(&entity.UserProfile{ID: "owner-1"}, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, "", "Mascota eliminada", "Rex ha sido eliminada de tu lista.", "owner-1").
		Return(false, nil)

	err := service.DeletePet(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.NoError(t, err)
}

func TestRegistryService_DeletePet_NotOwner(t *testing.T) {
	service, petRepo, _, _, _, _ := createTestRegistryService(t)

	ctx := context.Background()
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").
		Return(&entity.Pet{ID: "pet-1", OwnerID: "someone-else"}, nil)

	err := service.DeletePet(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRegistryService_DeletePet_NotFound(t *testing.T) {
	service, petRepo, _, _, _, _ := createTestRegistryService(t)

	ctx := context.Background()
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(nil, repository.ErrPetNotFound)

	err := service.DeletePet(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestRegistryService_PetTag_Success(t *testing.T) {
	service, petRepo, _, _, qrTags, _ := createTestRegistryService(t)

	ctx := context.Background()
	pet := &entity.Pet{ID: "pet-1", OwnerID: "owner-1", Name: "Rex"}

	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(pet, nil)
	qrTags.EXPECT().TagPNG(pet.Identity()).Return([]byte("png-bytes"), nil)

	png, err := service.PetTag(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestRegistryService_PetTag_NotOwner(t *testing.T) {
	service, petRepo, _, _, _, _ := createTestRegistryService(t)

	ctx := context.Background()
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").
		Return(&entity.Pet{ID: "pet-1", OwnerID: "someone-else"}, nil)

	_, err := service.PetTag(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRegistryService_WatchOwnerPets(t *testing.T) {
	service, petRepo, _, _, _, _ := createTestRegistryService(t)

	ctx := context.Background()
	snapshots := make(chan []*entity.Pet, 1)
	snapshots <- []*entity.Pet{{ID: "pet-1", Name: "Rex"}}
	close(snapshots)

	petRepo.EXPECT().WatchPetsByOwner(ctx, "owner-1").
		Return((<-chan []*entity.Pet)(snapshots), nil)

	pets, err := service.WatchOwnerPets(ctx, entity.Session{UserID: "owner-1"})

	require.NoError(t, err)
	first := <-pets
	require.Len(t, first, 1)
	assert.Equal(t, "Rex", first[0].Name)
}
