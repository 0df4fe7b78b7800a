// Package firestore implements the domain repositories on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	petsCollection          = "pets"
	reportsCollection       = "lost_pet_reports"
	notificationsCollection = "notifications"
	usersCollection         = "users"
)

// Params holds dependencies for the Firestore client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *fb.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client and closes it on shutdown.
func NewClient(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
