package main

import (
	"context"
	"log/slog"
	"os"

	"fivestar/config"
	"fivestar/internal/delivery"
	"fivestar/internal/delivery/http"
	"fivestar/internal/delivery/http/middleware"
	"fivestar/internal/delivery/http/router/handler"
	"fivestar/internal/infra/auth"
	"fivestar/internal/infra/channel"
	"fivestar/internal/infra/localstate"
	logs "fivestar/internal/infra/log"
	"fivestar/internal/infra/notification"
	"fivestar/internal/infra/persistence/postgres"
	"fivestar/internal/infra/pubsub"
	"fivestar/internal/usecase"
	"fivestar/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTokenRepository,
			postgres.NewNotificationRepository,
			postgres.NewBroadcastRepository,
			postgres.NewTransactionManager,
			localstate.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		channel.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPermissionService,
			impl.NewTokenService,
			impl.NewRouterService,
			newToastService,
			impl.NewInboxService,
			impl.NewReadStateService,
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

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewTokenHandler,
			handler.NewToastHandler,
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
