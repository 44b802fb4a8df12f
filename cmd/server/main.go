package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/delivery"
	"github.com/Felix-Hz/cofr/internal/delivery/http"
	"github.com/Felix-Hz/cofr/internal/delivery/http/middleware"
	"github.com/Felix-Hz/cofr/internal/delivery/http/router/handler"
	"github.com/Felix-Hz/cofr/internal/domain/service"
	"github.com/Felix-Hz/cofr/internal/infra/auth"
	"github.com/Felix-Hz/cofr/internal/infra/auth/oauth"
	"github.com/Felix-Hz/cofr/internal/infra/auth/telegram"
	logs "github.com/Felix-Hz/cofr/internal/infra/log"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
	"github.com/Felix-Hz/cofr/internal/infra/persistence/postgres"
	"github.com/Felix-Hz/cofr/internal/infra/qrcode"
	"github.com/Felix-Hz/cofr/internal/usecase/impl"
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
		metrics.NewCollector,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewLinkRepository,
			postgres.NewExpenseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			telegram.NewWidgetVerifier,
			oauth.NewExchangers,
			oauth.NewStateStore,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewLinkService,
			impl.NewAccountService,
			impl.NewExpenseService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewExpenseHandler,
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
