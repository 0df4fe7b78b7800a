package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/response"
	"pawtag/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification center handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications returns the caller's most recent notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
		}
		limit = parsed
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), session, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead flags one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Notification marked as read")
}

// UnreadCount returns the caller's current unread notification count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	counts, err := h.notificationUC.WatchUnreadCount(ctx, session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, ok := <-counts
	if !ok {
		return response.InternalServerError(c, "SNAPSHOT_FAILED", "Could not read unread count")
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "Unread count retrieved successfully")
}
