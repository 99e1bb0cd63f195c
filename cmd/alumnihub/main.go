package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"alumnihub/config"
	"alumnihub/internal/delivery"
	"alumnihub/internal/delivery/http"
	"alumnihub/internal/delivery/http/middleware"
	"alumnihub/internal/delivery/http/router/handler"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/infra/auth"
	logs "alumnihub/internal/infra/log"
	"alumnihub/internal/infra/otp"
	"alumnihub/internal/infra/persistence/postgres"
	"alumnihub/internal/usecase/impl"

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
			postgres.NewAlumniRepository,
			postgres.NewDonationRepository,
			postgres.NewEventRepository,
			postgres.NewAlbumRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newCodeStore,
		),
	)
}

// newCodeStore picks the reset-code backend from configuration.
// A single instance defaults to the in-process store; shared deployments
// point at Redis so any instance can verify a code.
func newCodeStore(cfg *config.Config) service.CodeStore {
	if cfg.OTP != nil && strings.EqualFold(cfg.OTP.Store, "redis") && cfg.OTP.Redis != nil {
		return otp.NewRedisStore(otp.NewRedisClient(cfg.OTP.Redis))
	}

	return otp.NewMemoryStore()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDirectoryService,
			impl.NewAdminService,
			impl.NewEventService,
			impl.NewAlbumService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAlumniHandler,
			handler.NewAdminHandler,
			handler.NewEventHandler,
			handler.NewAlbumHandler,
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
