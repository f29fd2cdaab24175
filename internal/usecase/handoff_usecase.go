package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// StashOutput returns the one-shot ticket for a stashed result.
type StashOutput struct {
	Ticket string `json:"ticket"`
}

// HandoffUsecase is the server-side channel of the cross-page result
// handoff. A stashed result is redeemable exactly once.
type HandoffUsecase interface {
	Stash(ctx context.Context, result *entity.AnswerResult) (*StashOutput, error)
	Redeem(ctx context.Context, ticket string) (*entity.AnswerResult, error)
}
