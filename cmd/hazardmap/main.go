package main

import (
	"context"
	"log/slog"
	"os"

	"hazardmap/config"
	"hazardmap/internal/delivery"
	"hazardmap/internal/delivery/api"
	"hazardmap/internal/delivery/api/middleware"
	"hazardmap/internal/delivery/api/router/handler"
	"hazardmap/internal/infra/auth"
	logs "hazardmap/internal/infra/log"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/infra/persistence/database"
	"hazardmap/internal/infra/pubsub"
	"hazardmap/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
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
		clockwork.NewRealClock,
		metrics.New,
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewHazardRepository,
			database.NewShelterRepository,
			database.NewFavoriteRepository,
			database.NewAccountRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRiskService,
			impl.NewShelterService,
			impl.NewFavoriteService,
			impl.NewIdentityService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRiskHandler,
			handler.NewShelterHandler,
			handler.NewFavoriteHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
