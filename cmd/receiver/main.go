package main

import (
	"context"
	"log/slog"
	"os"

	"receiver/config"
	"receiver/internal/delivery"
	"receiver/internal/delivery/http"
	"receiver/internal/delivery/http/router/handler"
	"receiver/internal/delivery/scheduler"
	"receiver/internal/domain/service"
	"receiver/internal/infra/location"
	logs "receiver/internal/infra/log"
	"receiver/internal/infra/persistence/sqlite"
	"receiver/internal/infra/remote"
	"receiver/internal/infra/transport"
	"receiver/internal/usecase/impl"

	"github.com/google/uuid"
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
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		newConfig,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

// newConfig loads the configuration and stamps a generated gateway ID when
// none is configured, so every payload carries a stable sender identity.
func newConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if cfg.Gateway.ID == "" {
		cfg.Gateway.ID = uuid.NewString()
	}

	return cfg, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUploadQueueRepository,
			sqlite.NewSightingRepository,
			sqlite.NewWhitelistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			transport.NewHTTPUploader,
			remote.NewAllowListClient,
			newLocationProvider,
		),
	)
}

// newLocationProvider selects the configured position source and wraps it
// with the movement-aware cache.
func newLocationProvider(cfg *config.Config, logger *slog.Logger) service.LocationProvider {
	var inner service.LocationProvider
	switch cfg.Location.Source {
	case "http":
		inner = location.NewHTTPProvider(cfg)
	default:
		inner = location.NewStaticProvider(cfg)
	}

	return location.NewCachedProvider(inner, cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAllowListService,
			impl.NewScanService,
			impl.NewUploadService,
			impl.NewStatusService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewStatusHandler,
			handler.NewTestHandler,
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
			fx.Annotate(
				scheduler.New,
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
