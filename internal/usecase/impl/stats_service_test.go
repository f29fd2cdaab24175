package impl

import (
	"context"
	"regexp"
	"testing"

	"atlas/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_ComputeStats_SeededDataset(t *testing.T) {
	f := newFixture(t, true)

	stats, err := f.statsUC.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 274, stats.TotalMessages)
	assert.Equal(t, 4, stats.ActiveFans)
	assert.Equal(t, "503.21", stats.Revenue)
	assert.Equal(t, 2, stats.AiQuestions)
}

func TestStatsService_ComputeStats_EmptyStore(t *testing.T) {
	f := newFixture(t, false)

	stats, err := f.statsUC.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalMessages)
	assert.Zero(t, stats.ActiveFans)
	assert.Equal(t, "0.00", stats.Revenue)
	assert.Zero(t, stats.AiQuestions)
}

func TestStatsService_ComputeStats_TracksChanges(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.fanUC.CreateFan(context.Background(), &usecase.CreateFanInput{Name: "Newcomer"})
	require.NoError(t, err)
	_, err = f.questionUC.Ask(context.Background(), &usecase.AskInput{Question: "anything new?"})
	require.NoError(t, err)

	stats, err := f.statsUC.ComputeStats(context.Background())
	require.NoError(t, err)

	// New fan starts active with a zero amount; the revenue is unchanged.
	assert.Equal(t, 5, stats.ActiveFans)
	assert.Equal(t, "503.21", stats.Revenue)
	assert.Equal(t, 3, stats.AiQuestions)
}

func TestStatsService_RevenueAlwaysTwoDecimals(t *testing.T) {
	f := newFixture(t, false)

	amounts := []string{"10", "0.5", "3.999"}
	for _, amount := range amounts {
		fan, err := f.fanUC.CreateFan(context.Background(), &usecase.CreateFanInput{Name: "Fan " + amount})
		require.NoError(t, err)
		_, err = f.fanUC.UpdateFan(context.Background(), fan.ID, &usecase.UpdateFanInput{TotalAmount: &amount})
		require.NoError(t, err)
	}

	stats, err := f.statsUC.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d{2}$`), stats.Revenue)
	assert.Equal(t, "14.50", stats.Revenue)
}
