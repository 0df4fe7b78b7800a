package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	"pawtag/internal/domain/service"
	"pawtag/internal/errors"
	"pawtag/internal/usecase"
)

type registryService struct {
	logger     *slog.Logger
	petRepo    repository.PetRepository
	userRepo   repository.UserRepository
	location   service.LocationProvider
	qrTags     service.QRTagService
	dispatcher usecase.NotificationDispatcher
}

// NewRegistryService creates a new pet registry instance
func NewRegistryService(
	logger *slog.Logger,
	petRepo repository.PetRepository,
	userRepo repository.UserRepository,
	location service.LocationProvider,
	qrTags service.QRTagService,
	dispatcher usecase.NotificationDispatcher,
) usecase.RegistryUsecase {
	return &registryService{
		logger:     logger,
		petRepo:    petRepo,
		userRepo:   userRepo,
		location:   location,
		qrTags:     qrTags,
		dispatcher: dispatcher,
	}
}

// CreatePet registers a pet with status safe. Location capture is
// best-effort and never blocks creation.
func (s *registryService) CreatePet(ctx context.Context, session entity.Session, input *usecase.NewPetInput) (*entity.Pet, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Type) == "" {
		return nil, domainerrors.ErrPetValidation
	}

	var location *entity.Coordinates
	if coords, err := s.location.Current(ctx); err != nil {
		s.logger.Warn("location unavailable, registering pet without location",
			slog.String("owner_id", session.UserID),
			slog.Any("error", err))
	} else {
		location = &coords
	}

	pet := &entity.Pet{
		OwnerID:   session.UserID,
		Name:      strings.TrimSpace(input.Name),
		Type:      strings.TrimSpace(input.Type),
		Age:       input.Age,
		Breed:     input.Breed,
		Color:     input.Color,
		Weight:    input.Weight,
		Vaccines:  input.Vaccines,
		Status:    entity.PetStatusSafe,
		Location:  location,
		CreatedAt: time.Now(),
	}

	if err := s.petRepo.CreatePet(ctx, pet); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create pet")
	}

	s.notifyOwner(ctx, session.UserID,
		"Nueva mascota agregada",
		fmt.Sprintf("Has registrado a %s.", pet.Name))

	return pet, nil
}

// DeletePet irreversibly removes an owned pet. Reports referencing the pet
// are deliberately left untouched: whether an orphaned active report should
// stay visible on the community map is an open product decision.
func (s *registryService) DeletePet(ctx context.Context, session entity.Session, petID string) error {
	pet, err := s.findOwnedPet(ctx, session, petID)
	if err != nil {
		return err
	}

	if err := s.petRepo.DeletePet(ctx, petID); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete pet")
	}

	s.notifyOwner(ctx, session.UserID,
		"Mascota eliminada",
		fmt.Sprintf("%s ha sido eliminada de tu lista.", pet.Name))

	return nil
}

// WatchOwnerPets subscribes to the caller's pets
func (s *registryService) WatchOwnerPets(ctx context.Context, session entity.Session) (<-chan []*entity.Pet, error) {
	pets, err := s.petRepo.WatchPetsByOwner(ctx, session.UserID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to watch pets")
	}

	return pets, nil
}

// PetTag renders the QR tag image for an owned pet
func (s *registryService) PetTag(ctx context.Context, session entity.Session, petID string) ([]byte, error) {
	pet, err := s.findOwnedPet(ctx, session, petID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrTags.TagPNG(pet.Identity())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pet tag")
	}

	return png, nil
}

func (s *registryService) findOwnedPet(ctx context.Context, session entity.Session, petID string) (*entity.Pet, error) {
	pet, err := s.petRepo.FindPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find pet")
	}

	if pet.OwnerID != session.UserID {
		return nil, domainerrors.ErrForbidden
	}

	return pet, nil
}

// notifyOwner emits a registry event notification. Both the token lookup
// and the dispatch are best-effort; registry operations never fail because
// a notification could not be produced.
func (s *registryService) notifyOwner(ctx context.Context, ownerID, title, body string) {
	token := ""
	if profile, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		s.logger.Debug("owner profile unavailable for notification",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
	} else {
		token = profile.PushToken
	}

	if _, err := s.dispatcher.Dispatch(ctx, token, title, body, ownerID); err != nil {
		s.logger.Warn("failed to record registry notification",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
	}
}
