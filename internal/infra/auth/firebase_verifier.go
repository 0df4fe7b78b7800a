// Package auth implements ID token verification through Firebase Auth.
package auth

import (
	"context"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/service"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a TokenVerifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, app *fb.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.Session, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	return &entity.Session{UserID: token.UID}, nil
}
