// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PetStatus represents the safety state of a pet.
type PetStatus string

const (
	// PetStatusSafe means the pet has no active lost report.
	PetStatusSafe PetStatus = "safe"
	// PetStatusLost means exactly one active lost report exists for the pet.
	PetStatusLost PetStatus = "lost"
)

// Pet represents a registered pet owned by exactly one account.
type Pet struct {
	ID        string       `json:"id"`         // Document ID assigned by the store.
	OwnerID   string       `json:"owner_id"`   // The account ID of the owner.
	Name      string       `json:"name"`       // Display name, required.
	Type      string       `json:"type"`       // Species label (e.g. "Perro", "Gato"), required.
	Age       string       `json:"age"`        // Free-text age.
	Breed     string       `json:"breed"`      // Free-text breed.
	Color     string       `json:"color"`      // Free-text color.
	Weight    string       `json:"weight"`     // Free-text weight.
	Vaccines  string       `json:"vaccines"`   // Free-text vaccine notes.
	Status    PetStatus    `json:"status"`     // Current safety state.
	Location  *Coordinates `json:"location"`   // Last known location, nil when never captured.
	CreatedAt time.Time    `json:"created_at"` // Timestamp of registration.
}

// Identity returns the triple carried by the pet's QR tag.
func (p *Pet) Identity() PetIdentity {
	return PetIdentity{
		PetID:   p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
	}
}

// PetIdentity is the ephemeral payload encoded into a QR tag.
// It is produced at display time and consumed at scan time, never persisted.
type PetIdentity struct {
	PetID   string `json:"petId"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
}
