package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pawtag/config"
	httpmiddleware "pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/router"
	"pawtag/internal/delivery/http/router/handler"
	deliverymiddleware "pawtag/internal/delivery/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func createTestServerParams(t *testing.T, cfg *config.Config) HTTPParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return HTTPParams{
		Lifecycle:       nopLifecycle{},
		Config:          cfg,
		Logger:          logger,
		RequestID:       deliverymiddleware.NewRequestIDMiddleware(),
		DebugLogger:     deliverymiddleware.NewLoggerMiddleware(logger, cfg),
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			PetHandler:          handler.NewPetHandler(handler.PetHandlerParams{Logger: logger}),
			WorkflowHandler:     handler.NewWorkflowHandler(handler.WorkflowHandlerParams{Logger: logger}),
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{Logger: logger}),
			ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{Logger: logger}),
			AuthMiddleware:      httpmiddleware.NewAuthMiddleware(nil),
		},
	}
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 30 * time.Second

	d, err := NewServer(createTestServerParams(t, cfg))
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, srv.server.Server.IdleTimeout)
	// Unset in config: the report stream depends on an unbounded write.
	assert.Zero(t, srv.server.Server.WriteTimeout)
}
