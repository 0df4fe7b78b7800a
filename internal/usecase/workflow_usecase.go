package usecase

import (
	"context"

	"pawtag/internal/domain/entity"
)

// ResolutionCandidate is the transient data staged between a successful
// scan decode and the final commit. It is never persisted; the finder may
// attach a free-text message before committing.
type ResolutionCandidate struct {
	PetID       string `json:"pet_id"`
	PetName     string `json:"pet_name"`
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	OwnerPhone  string `json:"owner_phone"`
	OwnerToken  string `json:"-"` // Push token, empty when the owner never registered one.
	FinderName  string `json:"finder_name"`
	FinderPhone string `json:"finder_phone"`
}

// ResolutionResult enumerates which sub-steps of ResolveFound succeeded.
// The transition is deliberately non-atomic: already-applied effects are
// never rolled back, and callers inspect this result instead of assuming
// all-or-nothing semantics.
type ResolutionResult struct {
	PushDelivered      bool `json:"push_delivered"`      // Push relay call succeeded (best-effort).
	NotificationStored bool `json:"notification_stored"` // Durable notification record written.
	ReportClosed       bool `json:"report_closed"`       // An active report existed and was resolved.
	PetUpdated         bool `json:"pet_updated"`         // Pet set to safe with the finder's coordinates.
}

// WorkflowUsecase defines the lost-and-found workflow engine. Each method
// is one named transition of the per-pet state machine safe -> lost ->
// safe, with its exact partial-failure behavior documented.
type WorkflowUsecase interface {
	// ReportLost transitions an owned, safe pet to lost. The caller's
	// current location is required; if it cannot be obtained the
	// transition aborts with no state change. A best-effort query rejects
	// pets that already have an active report; two concurrent calls can
	// race past that check, which is an accepted limitation. On success a
	// report with status active exists, the pet's status is lost, and the
	// reporter received an acknowledgement notification.
	ReportLost(ctx context.Context, session entity.Session, petID string) (*entity.LostPetReport, error)

	// ScanDiscovery handles a decoded QR payload from a finder. It is a
	// pure read: profiles are resolved, defaults substituted for a missing
	// finder profile, and a ResolutionCandidate returned with no state
	// change. Self-scans and payloads missing required keys are rejected.
	ScanDiscovery(ctx context.Context, session entity.Session, payload string) (*ResolutionCandidate, error)

	// ResolveFound commits a staged candidate. The finder's current
	// location is required (stricter than ReportLost's tolerance at pet
	// creation). Push delivery failure never aborts the transition; the
	// active report is closed if one exists; the pet is unconditionally
	// set to safe at the finder's coordinates. The returned result states
	// which of those sub-steps took effect.
	ResolveFound(ctx context.Context, session entity.Session, candidate *ResolutionCandidate, message string) (*ResolutionResult, error)

	// WatchActiveReports subscribes to all active reports for the
	// community map.
	WatchActiveReports(ctx context.Context) (<-chan []*entity.LostPetReport, error)
}
