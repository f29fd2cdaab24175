package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"
)

// ErrTicketNotFound is returned when a handoff ticket is unknown or was
// already consumed.
var ErrTicketNotFound = errors.New("handoff ticket not found")

// HandoffExchange is the one-shot channel carrying an answer result across
// a page transition. A stored payload can be taken exactly once; taking it
// clears it, so stale reads on back-navigation are impossible.
type HandoffExchange interface {
	// Put stores the result and returns the ticket that redeems it.
	Put(ctx context.Context, result *entity.AnswerResult) (string, error)

	// Take returns the result for the ticket and removes it. A second Take
	// with the same ticket returns ErrTicketNotFound.
	Take(ctx context.Context, ticket string) (*entity.AnswerResult, error)
}
