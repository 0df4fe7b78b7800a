package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/response"
	"pawtag/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// PetHandler holds dependencies for pet registry handlers
type PetHandler struct {
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
}

// NewPetHandler is the constructor for PetHandler
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// CreatePetRequest represents the request body for registering a pet
type CreatePetRequest struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Age      string `json:"age"`
	Breed    string `json:"breed"`
	Color    string `json:"color"`
	Weight   string `json:"weight"`
	Vaccines string `json:"vaccines"`
}

// CreatePet handles pet registration
func (h *PetHandler) CreatePet(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	var req CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pet, err := h.registryUC.CreatePet(c.Request().Context(), session, &usecase.NewPetInput{
		Name:     req.Name,
		Type:     req.Type,
		Age:      req.Age,
		Breed:    req.Breed,
		Color:    req.Color,
		Weight:   req.Weight,
		Vaccines: req.Vaccines,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet registered successfully")
}

// ListPets returns the caller's pets from the most recent store snapshot
func (h *PetHandler) ListPets(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	snapshots, err := h.registryUC.WatchOwnerPets(ctx, session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pets, ok := <-snapshots
	if !ok {
		return response.InternalServerError(c, "SNAPSHOT_FAILED", "Could not read pet snapshot")
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// DeletePet handles irreversible pet removal
func (h *PetHandler) DeletePet(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	if err := h.registryUC.DeletePet(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Pet deleted successfully")
}

// PetTag returns the pet's identity QR tag as a PNG image
func (h *PetHandler) PetTag(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session")
	}

	tag, err := h.registryUC.PetTag(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=pet-tag.png")

	return c.Blob(http.StatusOK, "image/png", tag)
}
