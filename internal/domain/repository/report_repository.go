package repository

import (
	"context"
	"errors"

	"pawtag/internal/domain/entity"
)

// Domain-specific errors for report persistence.
var (
	// ErrReportNotFound is returned when no report matches the query.
	ErrReportNotFound = errors.New("report not found")
)

// ReportRepository defines the interface for lost-pet report store
// operations. Reports are soft-closed through status, never hard-deleted.
type ReportRepository interface {
	// CreateReport persists a new report and assigns its store-generated
	// ID to report.ID. CreatedAt is server-assigned.
	CreateReport(ctx context.Context, report *entity.LostPetReport) error

	// FindActiveReportByPet returns the report with status active for the
	// given pet, or ErrReportNotFound. If the documented duplicate-report
	// race produced more than one, the first match wins.
	FindActiveReportByPet(ctx context.Context, petID string) (*entity.LostPetReport, error)

	// ResolveReport transitions a report to found and records the
	// resolution fields. FoundAtTime is server-assigned.
	ResolveReport(ctx context.Context, id string, resolution *entity.ReportResolution) error

	// WatchActiveReports subscribes to all reports with status active,
	// feeding the community map. Snapshot semantics match
	// PetRepository.WatchPetsByOwner.
	WatchActiveReports(ctx context.Context) (<-chan []*entity.LostPetReport, error)
}
