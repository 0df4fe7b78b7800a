package push

import (
	"context"
	"log/slog"

	"pawtag/config"
	"pawtag/internal/domain/service"

	fb "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerExpo = "expo"
	providerFCM  = "fcm"
)

// noopSender is used when push delivery is not configured. Notifications
// are still recorded; only device delivery is skipped.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(_ context.Context, token, title, _ string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("token", token),
		slog.String("title", title),
	)

	return nil
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *fb.App
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration.
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	switch cfg.Provider {
	case providerExpo:
		logger.Info("Using Expo push relay",
			slog.String("endpoint", cfg.ExpoEndpoint),
		)

		return NewExpoService(cfg.ExpoEndpoint, logger), nil

	case providerFCM:
		logger.Info("Using Firebase Cloud Messaging sender")

		return NewFCMService(params.Ctx, params.App)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
