package main

import (
	"context"
	"log/slog"
	"os"

	"fivestar/config"
	"fivestar/internal/delivery"
	"fivestar/internal/delivery/worker"
	"fivestar/internal/delivery/worker/handler"
	"fivestar/internal/infra/channel"
	logs "fivestar/internal/infra/log"
	"fivestar/internal/infra/notification"
	"fivestar/internal/usecase"
	"fivestar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		channel.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPermissionService,
			impl.NewRouterService,
			newToastService,
		),
	)
}

// newToastService creates the toast queue with the configured TTL.
func newToastService(cfg *config.Config) usecase.ToastUsecase {
	if cfg.Inbox == nil {
		return impl.NewToastService(0)
	}

	return impl.NewToastService(cfg.Inbox.ToastTTL)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
