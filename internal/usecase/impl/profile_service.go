package impl

import (
	"context"
	"strings"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	"pawtag/internal/errors"
	"pawtag/internal/usecase"
)

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(userRepo repository.UserRepository) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
	}
}

// RegisterPushToken merge-upserts the device push token onto the caller's
// profile. Repeated registrations are idempotent.
func (s *profileService) RegisterPushToken(ctx context.Context, session entity.Session, token string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidationFailed
	}

	if err := s.userRepo.UpsertPushToken(ctx, session.UserID, token); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to upsert push token")
	}

	return nil
}

// UpdateProfile merge-upserts the caller's display name and phone. Both
// fields go to the store as given; the phone doubles as the rescuer
// contact shown to owners, so it stays free text.
func (s *profileService) UpdateProfile(ctx context.Context, session entity.Session, name, phone string) (*entity.UserProfile, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" && phone == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	profile := &entity.UserProfile{
		ID:    session.UserID,
		Name:  name,
		Phone: phone,
	}
	if err := s.userRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to upsert profile")
	}

	return s.GetProfile(ctx, session)
}

// GetProfile retrieves the caller's profile. Profiles are created lazily
// by merge upserts, so a missing document is an empty profile, not an
// error.
func (s *profileService) GetProfile(ctx context.Context, session entity.Session) (*entity.UserProfile, error) {
	profile, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &entity.UserProfile{ID: session.UserID}, nil
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find profile")
	}

	return profile, nil
}
