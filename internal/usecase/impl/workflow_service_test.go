package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/repository"
	mockRepo "pawtag/internal/mocks/repository"
	mockSvc "pawtag/internal/mocks/service"
	mockUC "pawtag/internal/mocks/usecase"
	"pawtag/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWorkflowService(t *testing.T) (
	usecase.WorkflowUsecase,
	*mockRepo.MockPetRepository,
	*mockRepo.MockReportRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockQRTagService,
	*mockSvc.MockLocationProvider,
	*mockUC.MockNotificationDispatcher,
) {
	petRepo := mockRepo.NewMockPetRepository(t)
	reportRepo := mockRepo.NewMockReportRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrTags := mockSvc.NewMockQRTagService(t)
	locationProvider := mockSvc.NewMockLocationProvider(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewWorkflowService(
		logger,
		petRepo,
		reportRepo,
		userRepo,
		qrTags,
		locationProvider,
		dispatcher,
	)

	return service, petRepo, reportRepo, userRepo, qrTags, locationProvider, dispatcher
}

func TestWorkflowService_ReportLost_Success(t *testing.T) {
	service, petRepo, reportRepo, userRepo, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	session := entity.Session{UserID: "owner-1"}
	coords := entity.Coordinates{Latitude: 19.4326, Longitude: -99.1332}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(&entity.Pet{
		ID:      "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
		Type:    "Perro",
		Status:  entity.PetStatusSafe,
	}, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").Return(nil, repository.ErrReportNotFound)
	reportRepo.EXPECT().CreateReport(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, report *entity.LostPetReport) error {
			report.ID = "report-1"
			return nil
		})
	petRepo.EXPECT().UpdatePetStatus(ctx, "pet-1", entity.PetStatusLost).Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").
		Return(&entity.UserProfile{ID: "owner-1", PushToken: "ExponentPushToken[abc]"}, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, "ExponentPushToken[abc]", "🆘 Reporte Creado", mock.Anything, "owner-1").
		Return(true, nil)

	report, err := service.ReportLost(ctx, session, "pet-1")

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "report-1", report.ID)
	assert.Equal(t, "Rex", report.PetName)
	assert.Equal(t, entity.ReportStatusActive, report.Status)
	assert.Equal(t, coords, report.Location)
}

func TestWorkflowService_ReportLost_LocationUnavailable(t *testing.T) {
	service, _, _, _, _, locationProvider, _ := createTestWorkflowService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{}, errors.New("permission denied"))

	report, err := service.ReportLost(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	assert.Nil(t, report)
}

func TestWorkflowService_ReportLost_NotOwner(t *testing.T) {
	service, petRepo, _, _, _, locationProvider, _ := createTestWorkflowService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{Latitude: 1, Longitude: 1}, nil)
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(&entity.Pet{
		ID:      "pet-1",
		OwnerID: "someone-else",
		Status:  entity.PetStatusSafe,
	}, nil)

	_, err := service.ReportLost(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWorkflowService_ReportLost_AlreadyLost(t *testing.T) {
	service, petRepo, _, _, _, locationProvider, _ := createTestWorkflowService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{Latitude: 1, Longitude: 1}, nil)
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(&entity.Pet{
		ID:      "pet-1",
		OwnerID: "owner-1",
		Status:  entity.PetStatusLost,
	}, nil)

	_, err := service.ReportLost(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrPetAlreadyLost)
}

func TestWorkflowService_ReportLost_ActiveReportExists(t *testing.T) {
	service, petRepo, reportRepo, _, _, locationProvider, _ := createTestWorkflowService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{Latitude: 1, Longitude: 1}, nil)
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(&entity.Pet{
		ID:      "pet-1",
		OwnerID: "owner-1",
		Status:  entity.PetStatusSafe,
	}, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").
		Return(&entity.LostPetReport{ID: "report-0", Status: entity.ReportStatusActive}, nil)

	_, err := service.ReportLost(ctx, entity.Session{UserID: "owner-1"}, "pet-1")

	require.ErrorIs(t, err, domainerrors.ErrReportAlreadyActive)
}

// Two rapid reports for the same pet can both pass the best-effort
// existence check before either report lands. This is the single accepted
// race: both calls succeed and two active reports exist until one is
// resolved. Anything stricter needs a transactional store.
func TestWorkflowService_ReportLost_DuplicateWindow(t *testing.T) {
	service, petRepo, reportRepo, userRepo, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 19.4326, Longitude: -99.1332}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil).Times(2)
	petRepo.EXPECT().FindPetByID(ctx, "pet-1").Return(&entity.Pet{
		ID:      "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
		Status:  entity.PetStatusSafe,
	}, nil).Times(2)
	// Both callers land inside the window: the existence check sees no
	// active report either time.
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").
		Return(nil, repository.ErrReportNotFound).Times(2)

	created := 0
	reportRepo.EXPECT().CreateReport(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, report *entity.LostPetReport) error {
			created++
			report.ID = fmt.Sprintf("report-%d", created)
			return nil
		}).Times(2)
	petRepo.EXPECT().UpdatePetStatus(ctx, "pet-1", entity.PetStatusLost).Return(nil).Times(2)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").
		Return(&entity.UserProfile{ID: "owner-1"}, nil).Times(2)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").
		Return(false, nil).Times(2)

	session := entity.Session{UserID: "owner-1"}

	first, err := service.ReportLost(ctx, session, "pet-1")
	require.NoError(t, err)

	second, err := service.ReportLost(ctx, session, "pet-1")
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.ReportStatusActive, first.Status)
	assert.Equal(t, entity.ReportStatusActive, second.Status)
}

func TestWorkflowService_ScanDiscovery_Success(t *testing.T) {
	service, _, _, userRepo, qrTags, _, _ := createTestWorkflowService(t)

	ctx := context.Background()
	payload := `{"petId":"pet-1","ownerId":"owner-1","name":"Rex"}`

	qrTags.EXPECT().Decode(payload).Return(&entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
	}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").Return(&entity.UserProfile{
		ID:        "owner-1",
		Name:      "Ana",
		Phone:     "555-0001",
		PushToken: "ExponentPushToken[abc]",
	}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "finder-1").Return(&entity.UserProfile{
		ID:    "finder-1",
		Name:  "Luis",
		Phone: "555-0002",
	}, nil)

	candidate, err := service.ScanDiscovery(ctx, entity.Session{UserID: "finder-1"}, payload)

	require.NoError(t, err)
	assert.Equal(t, "pet-1", candidate.PetID)
	assert.Equal(t, "Rex", candidate.PetName)
	assert.Equal(t, "Ana", candidate.OwnerName)
	assert.Equal(t, "ExponentPushToken[abc]", candidate.OwnerToken)
	assert.Equal(t, "Luis", candidate.FinderName)
	assert.Equal(t, "555-0002", candidate.FinderPhone)
}

func TestWorkflowService_ScanDiscovery_SelfScan(t *testing.T) {
	service, _, _, _, qrTags, _, _ := createTestWorkflowService(t)

	qrTags.EXPECT().Decode(mock.Anything).Return(&entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
	}, nil)

	_, err := service.ScanDiscovery(context.Background(), entity.Session{UserID: "owner-1"}, "payload")

	require.ErrorIs(t, err, domainerrors.ErrSelfScan)
}

func TestWorkflowService_ScanDiscovery_InvalidPayload(t *testing.T) {
	service, _, _, _, qrTags, _, _ := createTestWorkflowService(t)

	qrTags.EXPECT().Decode("not json").Return(nil, domainerrors.ErrInvalidPayload)

	_, err := service.ScanDiscovery(context.Background(), entity.Session{UserID: "finder-1"}, "not json")

	require.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}

func TestWorkflowService_ScanDiscovery_OwnerMissing(t *testing.T) {
	service, _, _, userRepo, qrTags, _, _ := createTestWorkflowService(t)

	ctx := context.Background()
	qrTags.EXPECT().Decode(mock.Anything).Return(&entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "gone-owner",
		Name:    "Rex",
	}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "gone-owner").Return(nil, repository.ErrUserNotFound)

	_, err := service.ScanDiscovery(ctx, entity.Session{UserID: "finder-1"}, "payload")

	require.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestWorkflowService_ScanDiscovery_FinderDefaults(t *testing.T) {
	service, _, _, userRepo, qrTags, _, _ := createTestWorkflowService(t)

	ctx := context.Background()
	qrTags.EXPECT().Decode(mock.Anything).Return(&entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
	}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "owner-1").
		Return(&entity.UserProfile{ID: "owner-1"}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "finder-1").Return(nil, repository.ErrUserNotFound)

	candidate, err := service.ScanDiscovery(ctx, entity.Session{UserID: "finder-1"}, "payload")

	require.NoError(t, err)
	assert.Equal(t, "Un buen samaritano", candidate.FinderName)
	assert.Equal(t, "No proporcionado", candidate.FinderPhone)
	assert.Equal(t, "Dueño", candidate.OwnerName)
	assert.Equal(t, "No disponible", candidate.OwnerPhone)
}

// The full rescue path: push delivered, record stored, report closed and
// pet recovered at the finder's coordinates.
func TestWorkflowService_ResolveFound_Success(t *testing.T) {
	service, petRepo, reportRepo, _, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 19.4326, Longitude: -99.1332}
	candidate := &usecase.ResolutionCandidate{
		PetID:       "pet-1",
		PetName:     "Rex",
		OwnerID:     "owner-1",
		OwnerName:   "Ana",
		OwnerPhone:  "555-0001",
		OwnerToken:  "ExponentPushToken[abc]",
		FinderName:  "Luis",
		FinderPhone: "555-0002",
	}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	dispatcher.EXPECT().
		Dispatch(ctx, "ExponentPushToken[abc]", "✅ ¡Rex ha sido localizada!", mock.Anything, "owner-1").
		Run(func(_ context.Context, _ string, _ string, body string, _ string) {
			assert.Contains(t, body, "Luis escaneó el QR de tu mascota en: Lat: 19.4326, Lon: -99.1332.")
			assert.Contains(t, body, "Teléfono del rescatista: 555-0002.")
			assert.Contains(t, body, `Mensaje: "La vi cerca del parque"`)
		}).
		Return(true, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").
		Return(&entity.LostPetReport{ID: "report-1", PetID: "pet-1", Status: entity.ReportStatusActive}, nil)
	reportRepo.EXPECT().
		ResolveReport(ctx, "report-1", &entity.ReportResolution{
			FoundBy:      "Luis",
			FoundByPhone: "555-0002",
			FoundAt:      coords,
		}).
		Return(nil)
	petRepo.EXPECT().UpdatePetRecovery(ctx, "pet-1", coords).Return(nil)

	result, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, candidate, "La vi cerca del parque")

	require.NoError(t, err)
	assert.True(t, result.PushDelivered)
	assert.True(t, result.NotificationStored)
	assert.True(t, result.ReportClosed)
	assert.True(t, result.PetUpdated)
}

// Push failure must not block the pet's return to safe.
func TestWorkflowService_ResolveFound_PushFailureStillRecoversPet(t *testing.T) {
	service, petRepo, reportRepo, _, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 1, Longitude: 2}
	candidate := &usecase.ResolutionCandidate{
		PetID:       "pet-1",
		PetName:     "Rex",
		OwnerID:     "owner-1",
		FinderName:  "Luis",
		FinderPhone: "555-0002",
	}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").
		Return(false, errors.New("store write failed"))
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").
		Return(&entity.LostPetReport{ID: "report-1", Status: entity.ReportStatusActive}, nil)
	reportRepo.EXPECT().ResolveReport(ctx, "report-1", mock.Anything).Return(nil)
	petRepo.EXPECT().UpdatePetRecovery(ctx, "pet-1", coords).Return(nil)

	result, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, candidate, "")

	require.NoError(t, err)
	assert.False(t, result.PushDelivered)
	assert.False(t, result.NotificationStored)
	assert.True(t, result.ReportClosed)
	assert.True(t, result.PetUpdated)
}

// A pet scanned without an active report (never reported, or already
// resolved) is still recovered.
func TestWorkflowService_ResolveFound_NoActiveReport(t *testing.T) {
	service, petRepo, reportRepo, _, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 1, Longitude: 2}
	candidate := &usecase.ResolutionCandidate{
		PetID:       "pet-1",
		PetName:     "Rex",
		OwnerID:     "owner-1",
		FinderName:  "Luis",
		FinderPhone: "555-0002",
	}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").Return(false, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").Return(nil, repository.ErrReportNotFound)
	petRepo.EXPECT().UpdatePetRecovery(ctx, "pet-1", coords).Return(nil)

	result, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, candidate, "")

	require.NoError(t, err)
	assert.False(t, result.ReportClosed)
	assert.True(t, result.NotificationStored)
	assert.True(t, result.PetUpdated)
}

func TestWorkflowService_ResolveFound_LocationRequired(t *testing.T) {
	service, _, _, _, _, locationProvider, _ := createTestWorkflowService(t)

	ctx := context.Background()
	locationProvider.EXPECT().Current(ctx).Return(entity.Coordinates{}, errors.New("no fix"))

	result, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, &usecase.ResolutionCandidate{
		PetID:   "pet-1",
		OwnerID: "owner-1",
	}, "")

	require.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	assert.Nil(t, result)
}

func TestWorkflowService_ResolveFound_InvalidCandidate(t *testing.T) {
	service, _, _, _, _, _, _ := createTestWorkflowService(t)

	_, err := service.ResolveFound(context.Background(), entity.Session{UserID: "finder-1"}, nil, "")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.ResolveFound(context.Background(), entity.Session{UserID: "finder-1"},
		&usecase.ResolutionCandidate{PetID: "pet-1"}, "")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// A report-close failure surfaces the error but keeps the partial result,
// so callers can see the notification already went out.
func TestWorkflowService_ResolveFound_ReportCloseFailure(t *testing.T) {
	service, _, reportRepo, _, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 1, Longitude: 2}
	candidate := &usecase.ResolutionCandidate{
		PetID:       "pet-1",
		PetName:     "Rex",
		OwnerID:     "owner-1",
		FinderName:  "Luis",
		FinderPhone: "555-0002",
	}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").Return(true, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").
		Return(&entity.LostPetReport{ID: "report-1", Status: entity.ReportStatusActive}, nil)
	reportRepo.EXPECT().ResolveReport(ctx, "report-1", mock.Anything).
		Return(errors.New("update failed"))

	result, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, candidate, "")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
	require.NotNil(t, result)
	assert.True(t, result.PushDelivered)
	assert.True(t, result.NotificationStored)
	assert.False(t, result.ReportClosed)
	assert.False(t, result.PetUpdated)
}

// The message is optional; whitespace-only input is dropped entirely.
func TestWorkflowService_ResolveFound_BlankMessageOmitted(t *testing.T) {
	service, petRepo, reportRepo, _, _, locationProvider, dispatcher := createTestWorkflowService(t)

	ctx := context.Background()
	coords := entity.Coordinates{Latitude: 1, Longitude: 2}
	candidate := &usecase.ResolutionCandidate{
		PetID:       "pet-1",
		PetName:     "Rex",
		OwnerID:     "owner-1",
		FinderName:  "Luis",
		FinderPhone: "555-0002",
	}

	locationProvider.EXPECT().Current(ctx).Return(coords, nil)
	dispatcher.EXPECT().Dispatch(ctx, "", mock.Anything, mock.Anything, "owner-1").
		Run(func(_ context.Context, _ string, _ string, body string, _ string) {
			assert.False(t, strings.Contains(body, "Mensaje:"))
		}).
		Return(false, nil)
	reportRepo.EXPECT().FindActiveReportByPet(ctx, "pet-1").Return(nil, repository.ErrReportNotFound)
	petRepo.EXPECT().UpdatePetRecovery(ctx, "pet-1", coords).Return(nil)

	_, err := service.ResolveFound(ctx, entity.Session{UserID: "finder-1"}, candidate, "   ")

	require.NoError(t, err)
}
