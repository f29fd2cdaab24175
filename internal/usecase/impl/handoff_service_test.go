package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffService_StashAndRedeemOnce(t *testing.T) {
	f := newFixture(t, false)

	result := &entity.AnswerResult{
		Answer: "stored answer",
		Fan:    entity.FanIdentity{Username: "tina"},
		Model:  entity.ModelIdentity{Name: "sophia_lee"},
	}

	output, err := f.handoffUC.Stash(context.Background(), result)
	require.NoError(t, err)
	require.NotEmpty(t, output.Ticket)

	redeemed, err := f.handoffUC.Redeem(context.Background(), output.Ticket)
	require.NoError(t, err)
	assert.Equal(t, "stored answer", redeemed.Answer)

	_, err = f.handoffUC.Redeem(context.Background(), output.Ticket)
	assert.ErrorIs(t, err, domainerrors.ErrHandoffNotFound)
}

func TestHandoffService_RedeemUnknownTicket(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.handoffUC.Redeem(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrHandoffNotFound)
}
