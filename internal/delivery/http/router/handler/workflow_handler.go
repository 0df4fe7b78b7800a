package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/response"
	"pawtag/internal/domain/entity"
	"pawtag/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WorkflowHandlerParams holds dependencies for WorkflowHandler, injected by Fx.
type WorkflowHandlerParams struct {
	fx.In

	WorkflowUC usecase.WorkflowUsecase
	Logger     *slog.Logger
}

// WorkflowHandler holds dependencies for lost-and-found workflow handlers
type WorkflowHandler struct {
	workflowUC usecase.WorkflowUsecase
	logger     *slog.Logger
}

// NewWorkflowHandler is the constructor for WorkflowHandler
func NewWorkflowHandler(params WorkflowHandlerParams) *WorkflowHandler {
	return &WorkflowHandler{
		workflowUC: params.WorkflowUC,
		logger:     params.Logger,
	}
}

// ScanRequest represents the request body for processing a scanned QR payload
type ScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ResolveRequest represents the request body for committing a rescue
type ResolveRequest struct {
	Candidate *usecase.ResolutionCandidate `json:"candidate" validate:"required"`
	Message   string                       `json:"message"`
}

// reportMarker decorates a report with its map display title.
type reportMarker struct {
	*entity.LostPetReport
	Title string `json:"title"`
}

func toMarkers(reports []*entity.LostPetReport) []reportMarker {
	markers := make([]reportMarker, 0, len(reports))
	for _, report := range reports {
		markers = append(markers, reportMarker{
			LostPetReport: report,
			Title:         report.MarkerTitle(),
		})
	}

	return markers
}

// ReportLost handles transitioning an owned pet to lost
func (h *WorkflowHandler) ReportLost(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	report, err := h.workflowUC.ReportLost(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report, "Report created successfully")
}

// Scan handles a decoded QR payload from a finder
func (h *WorkflowHandler) Scan(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	candidate, err := h.workflowUC.ScanDiscovery(c.Request().Context(), session, req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidate, "Scan processed successfully")
}

// Resolve commits a staged resolution candidate
func (h *WorkflowHandler) Resolve(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.workflowUC.ResolveFound(c.Request().Context(), session, req.Candidate, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Rescue committed")
}

// ActiveReports returns the current community map markers
func (h *WorkflowHandler) ActiveReports(c echo.Context) error {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	snapshots, err := h.workflowUC.WatchActiveReports(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reports, ok := <-snapshots
	if !ok {
		return response.InternalServerError(c, "SNAPSHOT_FAILED", "Could not read report snapshot")
	}

	return response.Success(c, http.StatusOK, toMarkers(reports), "Active reports retrieved successfully")
}

// StreamReports streams active report snapshots as server-sent events until
// the client disconnects.
func (h *WorkflowHandler) StreamReports(c echo.Context) error {
	ctx := c.Request().Context()

	snapshots, err := h.workflowUC.WatchActiveReports(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case reports, ok := <-snapshots:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(toMarkers(reports))
			if err != nil {
				h.logger.Error("marshal report snapshot failed", slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(res, "event: reports\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
