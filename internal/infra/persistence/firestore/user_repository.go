package firestore

import (
	"context"
	"log/slog"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userDocument struct {
	Name      string `firestore:"name"`
	Phone     string `firestore:"phone"`
	PushToken string `firestore:"expoPushToken"`
}

type userRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewUserRepository creates a Firestore-backed user repository.
func NewUserRepository(client *firestore.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	snap, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by id")
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode user document")
	}

	return &entity.UserProfile{
		ID:        snap.Ref.ID,
		Name:      doc.Name,
		Phone:     doc.Phone,
		PushToken: doc.PushToken,
	}, nil
}

func (repo *userRepository) UpsertPushToken(ctx context.Context, userID, token string) error {
	_, err := repo.client.Collection(usersCollection).Doc(userID).Set(ctx, map[string]any{
		"expoPushToken": token,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "upsert push token")
	}

	return nil
}

func (repo *userRepository) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	_, err := repo.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, map[string]any{
		"name":  profile.Name,
		"phone": profile.Phone,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "upsert profile")
	}

	return nil
}
