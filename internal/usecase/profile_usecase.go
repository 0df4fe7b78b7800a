package usecase

import (
	"context"

	"pawtag/internal/domain/entity"
)

// ProfileUsecase defines the user profile use cases.
type ProfileUsecase interface {
	// RegisterPushToken merge-upserts the device push token onto the
	// caller's profile, creating the document if needed.
	RegisterPushToken(ctx context.Context, session entity.Session, token string) error

	// UpdateProfile merge-upserts the caller's display name and phone.
	UpdateProfile(ctx context.Context, session entity.Session, name, phone string) (*entity.UserProfile, error)

	// GetProfile retrieves the caller's profile.
	GetProfile(ctx context.Context, session entity.Session) (*entity.UserProfile, error)
}
