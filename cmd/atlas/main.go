package main

import (
	"context"
	"log/slog"
	"os"

	"atlas/config"
	"atlas/internal/delivery"
	"atlas/internal/delivery/http"
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"
	"atlas/internal/infra/answer"
	"atlas/internal/infra/guardian"
	logs "atlas/internal/infra/log"
	"atlas/internal/infra/persistence/memory"
	"atlas/internal/infra/qrcode"
	"atlas/internal/usecase/impl"

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
		memory.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewFanRepository,
			memory.NewConversationRepository,
			memory.NewQuestionRepository,
			memory.NewHandoffExchange,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			answer.NewResolver,
			qrcode.NewQRCodeService,
			guardian.NewStaticProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFanService,
			impl.NewConversationService,
			impl.NewQuestionService,
			impl.NewStatsService,
			impl.NewHandoffService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatsHandler,
			handler.NewFanHandler,
			handler.NewConversationHandler,
			handler.NewQuestionHandler,
			handler.NewHandoffHandler,
			handler.NewGuardianHandler,
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
