package repository

import (
	"context"
	"errors"

	"pawtag/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user profile does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user profile store operations.
// The profile document ID equals the auth provider's account ID.
type UserRepository interface {
	// FindUserByID retrieves a user profile by account ID.
	FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// UpsertPushToken writes the push token with merge semantics, creating
	// the profile document if it does not exist. Writes are idempotent;
	// readers tolerate staleness.
	UpsertPushToken(ctx context.Context, userID, token string) error

	// UpsertProfile writes the profile fields with merge semantics.
	UpsertProfile(ctx context.Context, profile *entity.UserProfile) error
}
