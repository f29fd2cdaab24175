package impl

import (
	"context"
	"log/slog"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

// handoffService implements the HandoffUsecase interface.
type handoffService struct {
	exchange repository.HandoffExchange
	logger   *slog.Logger
}

// NewHandoffService is the constructor for handoffService.
func NewHandoffService(
	exchange repository.HandoffExchange,
	logger *slog.Logger,
) usecase.HandoffUsecase {
	return &handoffService{
		exchange: exchange,
		logger:   logger,
	}
}

// Stash stores a result for a single later redemption.
func (srv *handoffService) Stash(ctx context.Context, result *entity.AnswerResult) (*usecase.StashOutput, error) {
	ticket, err := srv.exchange.Put(ctx, result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stash handoff payload")
	}

	srv.logger.Debug("Stashed handoff payload", "ticket", ticket)

	return &usecase.StashOutput{Ticket: ticket}, nil
}

// Redeem consumes a ticket. Unknown and already-consumed tickets are
// indistinguishable to callers.
func (srv *handoffService) Redeem(ctx context.Context, ticket string) (*entity.AnswerResult, error) {
	result, err := srv.exchange.Take(ctx, ticket)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHandoffNotFound, "ticket not found")
		}

		return nil, errors.Wrap(err, "failed to redeem handoff payload")
	}

	return result, nil
}
