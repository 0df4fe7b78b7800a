// Package firebase bootstraps the shared Firebase application handle used by
// Firestore, token verification and Cloud Messaging.
package firebase

import (
	"context"

	"pawtag/config"

	fb "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp creates the Firebase application from configuration.
// Credentials fall back to Application Default Credentials when no
// credentials file is configured.
func NewApp(ctx context.Context, cfg *config.Config) (*fb.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := fb.NewApp(ctx, &fb.Config{
		ProjectID: cfg.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	return app, nil
}
