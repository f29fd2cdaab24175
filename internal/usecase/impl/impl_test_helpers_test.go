package impl

import (
	"io"
	"log/slog"
	"testing"

	"atlas/config"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/answer"
	"atlas/internal/infra/persistence/memory"
	"atlas/internal/infra/qrcode"
	"atlas/internal/usecase"
)

// fixture wires the services against real in-memory stores. The stores are
// cheap enough that mocking them would only blur what the tests verify.
type fixture struct {
	fans      repository.FanRepository
	questions repository.QuestionRepository

	fanUC      usecase.FanUsecase
	convUC     usecase.ConversationUsecase
	questionUC usecase.QuestionUsecase
	statsUC    usecase.StatsUsecase
	handoffUC  usecase.HandoffUsecase
}

func newFixture(t *testing.T, seeded bool) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Seed:     &config.SeedConfig{Enabled: seeded},
		Resolver: &config.ResolverConfig{DefaultModel: "sophia_lee"},
		QRCode:   &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BaseURL: "http://localhost:8080"},
	}

	store := memory.New(cfg, logger)
	fans := memory.NewFanRepository(store)
	conversations := memory.NewConversationRepository(store)
	questions := memory.NewQuestionRepository(store)
	exchange := memory.NewHandoffExchange()
	resolver := answer.NewResolver(cfg, fans, logger)
	qrService := qrcode.NewQRCodeService(cfg)

	return &fixture{
		fans:       fans,
		questions:  questions,
		fanUC:      NewFanService(fans, logger),
		convUC:     NewConversationService(conversations, logger),
		questionUC: NewQuestionService(questions, resolver, qrService, logger),
		statsUC:    NewStatsService(fans, questions, logger),
		handoffUC:  NewHandoffService(exchange, logger),
	}
}
