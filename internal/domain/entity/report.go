package entity

import (
	"time"
)

// ReportStatus represents the lifecycle state of a lost-pet report.
type ReportStatus string

const (
	// ReportStatusActive means the pet is still missing and the report is
	// visible on the community map.
	ReportStatusActive ReportStatus = "active"
	// ReportStatusFound means a finder resolved the report. Reports are
	// never hard-deleted, only closed through this status.
	ReportStatusFound ReportStatus = "found"
)

// LostPetReport represents a lost-pet alert. At most one report with status
// active exists per pet at any time; the check enforcing this is a
// best-effort query, not a transaction.
type LostPetReport struct {
	ID        string       `json:"id"`       // Document ID assigned by the store.
	PetID     string       `json:"pet_id"`   // The reported pet.
	OwnerID   string       `json:"owner_id"` // The pet owner's account ID.
	PetName   string       `json:"pet_name"` // Denormalized for map display.
	PetType   string       `json:"pet_type"` // Denormalized for map display.
	Location  Coordinates  `json:"location"` // Origin location of the report.
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"` // Server-assigned.

	// Resolution fields, set when the report transitions to found.
	FoundBy      string       `json:"found_by,omitempty"`
	FoundByPhone string       `json:"found_by_phone,omitempty"`
	FoundAt      *Coordinates `json:"found_at,omitempty"`
	FoundAtTime  *time.Time   `json:"found_at_time,omitempty"`
}

// MarkerTitle returns the display title for the report's community map
// marker.
func (r *LostPetReport) MarkerTitle() string {
	return "¡Perdido! - " + r.PetName
}

// ReportResolution carries the data applied to a report when a finder
// commits a rescue.
type ReportResolution struct {
	FoundBy      string
	FoundByPhone string
	FoundAt      Coordinates
}
