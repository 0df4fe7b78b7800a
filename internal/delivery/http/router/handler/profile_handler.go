package handler

import (
	"log/slog"
	"net/http"

	"pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/response"
	"pawtag/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// PushTokenRequest represents the request body for registering a device
// push token
type PushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterPushToken merge-upserts the device push token onto the caller's
// profile
func (h *ProfileHandler) RegisterPushToken(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	var req PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.profileUC.RegisterPushToken(c.Request().Context(), session, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token registered successfully")
}

// UpdateProfileRequest represents the request body for updating the
// caller's profile
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile merge-upserts the caller's display name and phone
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), session, req.Name, req.Phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// GetProfile returns the caller's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}
