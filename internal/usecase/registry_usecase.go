// Package usecase defines the application use case interfaces and their
// data transfer objects.
package usecase

import (
	"context"

	"pawtag/internal/domain/entity"
)

// NewPetInput carries the owner-supplied attributes for pet registration.
// Name and Type are required; everything else is free text.
type NewPetInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Age      string `json:"age"`
	Breed    string `json:"breed"`
	Color    string `json:"color"`
	Weight   string `json:"weight"`
	Vaccines string `json:"vaccines"`
}

// RegistryUsecase defines the interface for pet registry use cases.
type RegistryUsecase interface {
	// CreatePet registers a pet with status safe. The current device
	// location is captured best-effort: a provider failure leaves the
	// location nil and never blocks creation. Emits a registration
	// notification to the owner.
	CreatePet(ctx context.Context, session entity.Session, input *NewPetInput) (*entity.Pet, error)

	// DeletePet irreversibly removes an owned pet and emits a deletion
	// notification. Reports referencing the pet are left untouched.
	DeletePet(ctx context.Context, session entity.Session, petID string) error

	// WatchOwnerPets subscribes to the caller's pets as a sequence of full
	// snapshots; only the most recent snapshot is meaningful. The channel
	// closes when ctx is done.
	WatchOwnerPets(ctx context.Context, session entity.Session) (<-chan []*entity.Pet, error)

	// PetTag returns the QR tag PNG for an owned pet.
	PetTag(ctx context.Context, session entity.Session, petID string) ([]byte, error)
}
