// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pawtag/internal/domain/entity"
)

// Domain-specific errors for pet persistence.
var (
	// ErrPetNotFound is returned when a pet document does not exist.
	ErrPetNotFound = errors.New("pet not found")
)

// PetRepository defines the interface for pet-related store operations.
type PetRepository interface {
	// CreatePet persists a new pet and assigns its store-generated ID to
	// pet.ID.
	CreatePet(ctx context.Context, pet *entity.Pet) error

	// FindPetByID retrieves a pet by its document ID.
	FindPetByID(ctx context.Context, id string) (*entity.Pet, error)

	// UpdatePetStatus sets the pet's status field only.
	UpdatePetStatus(ctx context.Context, id string, status entity.PetStatus) error

	// UpdatePetRecovery sets status to safe and records the recovery
	// location in a single write.
	UpdatePetRecovery(ctx context.Context, id string, location entity.Coordinates) error

	// DeletePet removes the pet document. Associated reports are not
	// touched.
	DeletePet(ctx context.Context, id string) error

	// WatchPetsByOwner subscribes to the owner's pets. Each element is a
	// full snapshot of the current result set; only the most recent
	// snapshot is meaningful. The channel is closed when ctx is done.
	WatchPetsByOwner(ctx context.Context, ownerID string) (<-chan []*entity.Pet, error)
}
