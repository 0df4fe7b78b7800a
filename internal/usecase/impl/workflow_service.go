package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	"pawtag/internal/domain/service"
	"pawtag/internal/errors"
	"pawtag/internal/usecase"
)

// Default display values substituted when a finder has no stored profile.
// Owners must exist; finders may be anonymous accounts.
const (
	defaultFinderName  = "Un buen samaritano"
	defaultFinderPhone = "No proporcionado"
	defaultOwnerName   = "Dueño"
	defaultOwnerPhone  = "No disponible"
)

type workflowService struct {
	logger     *slog.Logger
	petRepo    repository.PetRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	qrTags     service.QRTagService
	location   service.LocationProvider
	dispatcher usecase.NotificationDispatcher
}

// NewWorkflowService creates a new lost-and-found workflow engine instance
func NewWorkflowService(
	logger *slog.Logger,
	petRepo repository.PetRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	qrTags service.QRTagService,
	location service.LocationProvider,
	dispatcher usecase.NotificationDispatcher,
) usecase.WorkflowUsecase {
	return &workflowService{
		logger:     logger,
		petRepo:    petRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		qrTags:     qrTags,
		location:   location,
		dispatcher: dispatcher,
	}
}

// ReportLost transitions an owned, safe pet to lost: it creates the active
// report first, then flips the pet's status. The two writes are not
// transactional; a failure between them leaves the report in place, which
// the next ReportLost attempt detects through the existence check.
func (s *workflowService) ReportLost(ctx context.Context, session entity.Session, petID string) (*entity.LostPetReport, error) {
	coords, err := s.location.Current(ctx)
	if err != nil {
		return nil, domainerrors.ErrLocationUnavailable
	}

	pet, err := s.petRepo.FindPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find pet")
	}

	if pet.OwnerID != session.UserID {
		return nil, domainerrors.ErrForbidden
	}

	if pet.Status == entity.PetStatusLost {
		return nil, domainerrors.ErrPetAlreadyLost
	}

	// Best-effort uniqueness check. Two concurrent reports for the same
	// pet can both pass it; that duplicate window is an accepted
	// limitation of the non-transactional store.
	if _, err := s.reportRepo.FindActiveReportByPet(ctx, petID); err == nil {
		return nil, domainerrors.ErrReportAlreadyActive
	} else if !errors.Is(err, repository.ErrReportNotFound) {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to check for active report")
	}

	report := &entity.LostPetReport{
		PetID:    pet.ID,
		OwnerID:  pet.OwnerID,
		PetName:  pet.Name,
		PetType:  pet.Type,
		Location: coords,
		Status:   entity.ReportStatusActive,
	}
	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create report")
	}

	if err := s.petRepo.UpdatePetStatus(ctx, pet.ID, entity.PetStatusLost); err != nil {
		// The report exists but the pet still reads safe. Not rolled
		// back; surfaced so the owner retries.
		return nil, domainerrors.NewStoreExecuteError(err, "failed to mark pet lost")
	}

	s.ackReporter(ctx, session.UserID, pet.Name)

	return report, nil
}

// ScanDiscovery stages a resolution candidate from a decoded QR payload.
// It performs no writes; the finder reviews the candidate and adds an
// optional message before ResolveFound commits anything.
func (s *workflowService) ScanDiscovery(ctx context.Context, session entity.Session, payload string) (*usecase.ResolutionCandidate, error) {
	identity, err := s.qrTags.Decode(payload)
	if err != nil {
		return nil, err
	}

	if identity.OwnerID == session.UserID {
		return nil, domainerrors.ErrSelfScan
	}

	owner, err := s.userRepo.FindUserByID(ctx, identity.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find owner profile")
	}

	candidate := &usecase.ResolutionCandidate{
		PetID:       identity.PetID,
		PetName:     identity.Name,
		OwnerID:     identity.OwnerID,
		OwnerName:   fallback(owner.Name, defaultOwnerName),
		OwnerPhone:  fallback(owner.Phone, defaultOwnerPhone),
		OwnerToken:  owner.PushToken,
		FinderName:  defaultFinderName,
		FinderPhone: defaultFinderPhone,
	}

	// A finder without a stored profile keeps the default display values.
	if finder, err := s.userRepo.FindUserByID(ctx, session.UserID); err != nil {
		s.logger.Debug("finder profile unavailable, using defaults",
			slog.String("finder_id", session.UserID),
			slog.Any("error", err))
	} else {
		candidate.FinderName = fallback(finder.Name, defaultFinderName)
		candidate.FinderPhone = fallback(finder.Phone, defaultFinderPhone)
	}

	return candidate, nil
}

// ResolveFound commits a staged candidate. Effects are applied in order:
// notification dispatch, report close, pet recovery. Later failures do not
// roll back earlier effects; the returned result states exactly which
// sub-steps took effect.
func (s *workflowService) ResolveFound(ctx context.Context, session entity.Session, candidate *usecase.ResolutionCandidate, message string) (*usecase.ResolutionResult, error) {
	if candidate == nil || candidate.PetID == "" || candidate.OwnerID == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	// Stricter than pet creation: without a rescue location there is
	// nothing useful to tell the owner, so the whole transition aborts.
	coords, err := s.location.Current(ctx)
	if err != nil {
		return nil, domainerrors.ErrLocationUnavailable
	}

	title := fmt.Sprintf("✅ ¡%s ha sido localizada!", candidate.PetName)
	body := fmt.Sprintf("%s escaneó el QR de tu mascota en: %s.\nTeléfono del rescatista: %s.",
		candidate.FinderName, coords, candidate.FinderPhone)
	if trimmed := strings.TrimSpace(message); trimmed != "" {
		body += fmt.Sprintf("\n\nMensaje: %q", trimmed)
	}

	result := &usecase.ResolutionResult{}

	delivered, err := s.dispatcher.Dispatch(ctx, candidate.OwnerToken, title, body, candidate.OwnerID)
	result.PushDelivered = delivered
	if err != nil {
		// Failure to persist the notification record is logged only; the
		// state transition must still reach its terminal value.
		s.logger.Warn("failed to record rescue notification",
			slog.String("owner_id", candidate.OwnerID),
			slog.Any("error", err))
	} else {
		result.NotificationStored = true
	}

	// Closing the report is best-effort: a missing active report (e.g.
	// already resolved by someone else) does not block pet recovery.
	report, err := s.reportRepo.FindActiveReportByPet(ctx, candidate.PetID)
	switch {
	case err == nil:
		resolution := &entity.ReportResolution{
			FoundBy:      candidate.FinderName,
			FoundByPhone: candidate.FinderPhone,
			FoundAt:      coords,
		}
		if err := s.reportRepo.ResolveReport(ctx, report.ID, resolution); err != nil {
			return result, domainerrors.NewStoreExecuteError(err, "failed to resolve report")
		}
		result.ReportClosed = true
	case errors.Is(err, repository.ErrReportNotFound):
		s.logger.Info("no active report for scanned pet, resolving without one",
			slog.String("pet_id", candidate.PetID))
	default:
		return result, domainerrors.NewStoreExecuteError(err, "failed to find active report")
	}

	if err := s.petRepo.UpdatePetRecovery(ctx, candidate.PetID, coords); err != nil {
		return result, domainerrors.NewStoreExecuteError(err, "failed to mark pet safe")
	}
	result.PetUpdated = true

	return result, nil
}

// WatchActiveReports subscribes to the community map feed
func (s *workflowService) WatchActiveReports(ctx context.Context) (<-chan []*entity.LostPetReport, error) {
	reports, err := s.reportRepo.WatchActiveReports(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to watch active reports")
	}

	return reports, nil
}

// ackReporter notifies the owner that their report is live. Best-effort:
// the report and pet writes already happened.
func (s *workflowService) ackReporter(ctx context.Context, ownerID, petName string) {
	token := ""
	if profile, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		s.logger.Debug("reporter profile unavailable for acknowledgement",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
	} else {
		token = profile.PushToken
	}

	title := "🆘 Reporte Creado"
	body := fmt.Sprintf("Tu reporte de %s está activo. ¡Esperamos que la encuentres pronto!", petName)
	if _, err := s.dispatcher.Dispatch(ctx, token, title, body, ownerID); err != nil {
		s.logger.Warn("failed to record report acknowledgement",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}
