package memory

import (
	"context"
	"sync"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// handoffExchange is the one-shot ticket store for cross-page answer
// payloads. It keeps its own lock; tickets are independent of the entity
// collections.
type handoffExchange struct {
	mu      sync.Mutex
	pending map[string]*entity.AnswerResult
}

// NewHandoffExchange is the constructor for the handoff exchange adapter.
func NewHandoffExchange() repository.HandoffExchange {
	return &handoffExchange{
		pending: make(map[string]*entity.AnswerResult),
	}
}

// Put stores the result under a fresh ticket.
func (x *handoffExchange) Put(ctx context.Context, result *entity.AnswerResult) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	ticket := uuid.NewString()
	stored := *result
	if result.Snippet != nil {
		stored.Snippet = make([]entity.SnippetMessage, len(result.Snippet))
		copy(stored.Snippet, result.Snippet)
	}
	x.pending[ticket] = &stored

	return ticket, nil
}

// Take redeems a ticket exactly once; the payload is cleared on read.
func (x *handoffExchange) Take(ctx context.Context, ticket string) (*entity.AnswerResult, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	result, ok := x.pending[ticket]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	delete(x.pending, ticket)

	return result, nil
}
