package firestore

import (
	"context"
	"log/slog"
	"time"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// petDocument is the Firestore shape of a pet. Field names follow the
// collection schema, not the Go entity.
type petDocument struct {
	OwnerID   string    `firestore:"userId"`
	Name      string    `firestore:"name"`
	Type      string    `firestore:"type"`
	Age       string    `firestore:"age"`
	Breed     string    `firestore:"breed"`
	Color     string    `firestore:"color"`
	Weight    string    `firestore:"weight"`
	Vaccines  string    `firestore:"vaccines"`
	Status    string    `firestore:"status"`
	Location  *geoPoint `firestore:"location"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// geoPoint mirrors the {latitude, longitude} map stored by the mobile
// clients. Firestore's native GeoPoint type is deliberately not used so
// existing documents keep decoding.
type geoPoint struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

func toGeoPoint(c *entity.Coordinates) *geoPoint {
	if c == nil {
		return nil
	}

	return &geoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}

func (g *geoPoint) toCoordinates() *entity.Coordinates {
	if g == nil {
		return nil
	}

	return &entity.Coordinates{Latitude: g.Latitude, Longitude: g.Longitude}
}

func (d *petDocument) toEntity(id string) *entity.Pet {
	return &entity.Pet{
		ID:        id,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Type:      d.Type,
		Age:       d.Age,
		Breed:     d.Breed,
		Color:     d.Color,
		Weight:    d.Weight,
		Vaccines:  d.Vaccines,
		Status:    entity.PetStatus(d.Status),
		Location:  d.Location.toCoordinates(),
		CreatedAt: d.CreatedAt,
	}
}

type petRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewPetRepository creates a Firestore-backed pet repository.
func NewPetRepository(client *firestore.Client, logger *slog.Logger) repository.PetRepository {
	return &petRepository{
		client: client,
		logger: logger,
	}
}

func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	doc := &petDocument{
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Type:      pet.Type,
		Age:       pet.Age,
		Breed:     pet.Breed,
		Color:     pet.Color,
		Weight:    pet.Weight,
		Vaccines:  pet.Vaccines,
		Status:    string(pet.Status),
		Location:  toGeoPoint(pet.Location),
		CreatedAt: pet.CreatedAt,
	}

	ref, _, err := repo.client.Collection(petsCollection).Add(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "create pet")
	}

	pet.ID = ref.ID

	return nil
}

func (repo *petRepository) FindPetByID(ctx context.Context, id string) (*entity.Pet, error) {
	snap, err := repo.client.Collection(petsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "find pet by id")
	}

	var doc petDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode pet document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *petRepository) UpdatePetStatus(ctx context.Context, id string, petStatus entity.PetStatus) error {
	_, err := repo.client.Collection(petsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(petStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPetNotFound
		}

		return errors.Wrap(err, "update pet status")
	}

	return nil
}

func (repo *petRepository) UpdatePetRecovery(ctx context.Context, id string, location entity.Coordinates) error {
	_, err := repo.client.Collection(petsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(entity.PetStatusSafe)},
		{Path: "location", Value: toGeoPoint(&location)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPetNotFound
		}

		return errors.Wrap(err, "update pet recovery")
	}

	return nil
}

func (repo *petRepository) DeletePet(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(petsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "delete pet")
	}

	return nil
}

func (repo *petRepository) WatchPetsByOwner(ctx context.Context, ownerID string) (<-chan []*entity.Pet, error) {
	query := repo.client.Collection(petsCollection).Where("userId", "==", ownerID)

	out := make(chan []*entity.Pet, 1)
	go func() {
		defer close(out)

		snapshots := query.Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("pet snapshot stream failed",
						slog.String("owner_id", ownerID),
						slog.Any("error", err),
					)
				}

				return
			}

			pets, err := decodePetSnapshot(snap)
			if err != nil {
				repo.logger.Error("decode pet snapshot failed",
					slog.String("owner_id", ownerID),
					slog.Any("error", err),
				)

				continue
			}

			publishLatest(ctx, out, pets)
		}
	}()

	return out, nil
}

func decodePetSnapshot(snap *firestore.QuerySnapshot) ([]*entity.Pet, error) {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "read pet snapshot")
	}

	pets := make([]*entity.Pet, 0, len(docs))
	for _, d := range docs {
		var doc petDocument
		if err := d.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode pet document")
		}
		pets = append(pets, doc.toEntity(d.Ref.ID))
	}

	return pets, nil
}

// publishLatest delivers a snapshot with latest-wins semantics: a pending
// undelivered value is dropped so slow consumers never see stale data.
func publishLatest[T any](ctx context.Context, out chan T, value T) {
	select {
	case <-out:
	default:
	}

	select {
	case out <- value:
	case <-ctx.Done():
	}
}
