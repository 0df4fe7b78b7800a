// Package router contains routing setup for the HTTP delivery.
package router

import (
	"pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PetHandler          *handler.PetHandler
	WorkflowHandler     *handler.WorkflowHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	petHandler          *handler.PetHandler
	workflowHandler     *handler.WorkflowHandler
	notificationHandler *handler.NotificationHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		petHandler:          params.PetHandler,
		workflowHandler:     params.WorkflowHandler,
		notificationHandler: params.NotificationHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires an authenticated session; device coordinates
	// ride along as optional headers.
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)
	api.Use(r.authMiddleware.CaptureDeviceLocation)

	petGroup := api.Group("/pets")
	{
		petGroup.POST("", r.petHandler.CreatePet)
		petGroup.GET("", r.petHandler.ListPets)
		petGroup.DELETE("/:id", r.petHandler.DeletePet)
		petGroup.GET("/:id/qr", r.petHandler.PetTag)
		petGroup.POST("/:id/report", r.workflowHandler.ReportLost)
	}

	scanGroup := api.Group("/scan")
	{
		scanGroup.POST("", r.workflowHandler.Scan)
		scanGroup.POST("/resolve", r.workflowHandler.Resolve)
	}

	reportGroup := api.Group("/reports")
	{
		reportGroup.GET("/active", r.workflowHandler.ActiveReports)
		reportGroup.GET("/stream", r.workflowHandler.StreamReports)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/push-token", r.profileHandler.RegisterPushToken)
	}
}
