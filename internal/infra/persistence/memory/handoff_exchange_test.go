package memory

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffExchange_OneShot(t *testing.T) {
	exchange := NewHandoffExchange()

	result := &entity.AnswerResult{
		Answer:  "canned answer",
		Snippet: []entity.SnippetMessage{{Speaker: entity.SpeakerFan, Text: "hello"}},
		Fan:     entity.FanIdentity{Username: "tina"},
		Model:   entity.ModelIdentity{Name: "sophia_lee"},
	}

	ticket, err := exchange.Put(context.Background(), result)
	require.NoError(t, err)
	require.NotEmpty(t, ticket)

	taken, err := exchange.Take(context.Background(), ticket)
	require.NoError(t, err)
	assert.Equal(t, result.Answer, taken.Answer)
	assert.Equal(t, result.Fan.Username, taken.Fan.Username)

	// Second take must fail: the payload is cleared on read.
	_, err = exchange.Take(context.Background(), ticket)
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestHandoffExchange_UnknownTicket(t *testing.T) {
	exchange := NewHandoffExchange()

	_, err := exchange.Take(context.Background(), "no-such-ticket")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)
}

func TestHandoffExchange_TicketsAreUnique(t *testing.T) {
	exchange := NewHandoffExchange()
	result := &entity.AnswerResult{Answer: "a"}

	first, err := exchange.Put(context.Background(), result)
	require.NoError(t, err)
	second, err := exchange.Put(context.Background(), result)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
