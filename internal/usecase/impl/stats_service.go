package impl

import (
	"context"
	"log/slog"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	fans      repository.FanRepository
	questions repository.QuestionRepository
	logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	fans repository.FanRepository,
	questions repository.QuestionRepository,
	logger *slog.Logger,
) usecase.StatsUsecase {
	return &statsService{
		fans:      fans,
		questions: questions,
		logger:    logger,
	}
}

// ComputeStats derives the dashboard summary from the current store
// state. Revenue is summed as exact decimals, never floats; fans whose
// amount fails to parse contribute nothing rather than failing the
// whole summary.
func (srv *statsService) ComputeStats(ctx context.Context) (*entity.DashboardStats, error) {
	fans, err := srv.fans.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fans")
	}

	questionCount, err := srv.questions.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count questions")
	}

	totalMessages := 0
	activeFans := 0
	revenue := decimal.Zero

	for _, fan := range fans {
		totalMessages += fan.MessageCount
		if fan.Status == entity.FanStatusActive {
			activeFans++
		}

		amount, err := decimal.NewFromString(fan.TotalAmount)
		if err != nil {
			srv.logger.Warn("Skipping unparsable fan amount", "fanID", fan.ID, "amount", fan.TotalAmount)

			continue
		}
		revenue = revenue.Add(amount)
	}

	return &entity.DashboardStats{
		TotalMessages: totalMessages,
		ActiveFans:    activeFans,
		Revenue:       revenue.StringFixed(2),
		AiQuestions:   questionCount,
	}, nil
}
