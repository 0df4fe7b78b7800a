package main

import (
	"context"
	"log/slog"
	"os"

	"pawtag/config"
	"pawtag/internal/delivery"
	"pawtag/internal/delivery/http"
	httpmiddleware "pawtag/internal/delivery/http/middleware"
	"pawtag/internal/delivery/http/router/handler"
	deliverymiddleware "pawtag/internal/delivery/middleware"
	"pawtag/internal/domain/service"
	"pawtag/internal/infra/auth"
	"pawtag/internal/infra/firebase"
	"pawtag/internal/infra/location"
	logs "pawtag/internal/infra/log"
	"pawtag/internal/infra/persistence/firestore"
	"pawtag/internal/infra/push"
	"pawtag/internal/infra/qrcode"
	"pawtag/internal/usecase"
	"pawtag/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewPetRepository,
			firestore.NewReportRepository,
			firestore.NewNotificationRepository,
			firestore.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseVerifier,
			location.NewDeviceProvider,
			push.NewPushSender,
			newQRTagService,
		),
	)
}

// newQRTagService creates the QR tag codec with dependency injection
func newQRTagService(cfg *config.Config) service.QRTagService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRTagService(256, "M")
	}

	return qrcode.NewQRTagService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			newDispatcher,
			impl.NewRegistryService,
			impl.NewWorkflowService,
			impl.NewProfileService,
		),
	)
}

// newDispatcher narrows the notification usecase to the dispatcher port
// consumed by the registry and workflow services.
func newDispatcher(uc usecase.NotificationUsecase) usecase.NotificationDispatcher {
	return uc
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPetHandler,
			handler.NewWorkflowHandler,
			handler.NewNotificationHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
