package service

import (
	"context"

	"pawtag/internal/domain/entity"
)

// TokenVerifier defines the interface for validating an auth provider ID
// token and producing the explicit session passed into every use case.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*entity.Session, error)
}
