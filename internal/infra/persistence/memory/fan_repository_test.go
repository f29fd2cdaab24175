package memory

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanRepository_List_InsertionOrder(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	fans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, fans, 6)

	assert.Equal(t, "fan_1", fans[0].ID)
	assert.Equal(t, "fan_6", fans[5].ID)
}

func TestFanRepository_Create_AppliesDefaults(t *testing.T) {
	repo := NewFanRepository(newEmptyStore())

	created, err := repo.Create(context.Background(), &entity.Fan{Name: "New Fan"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.FanStatusActive, created.Status)
	assert.Equal(t, "0.00", created.TotalAmount)
	assert.Zero(t, created.MessageCount)
	assert.Zero(t, created.PaidMessages)
	require.NotNil(t, created.LastActivity)

	// The create appends to the listing.
	fans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, fans, 1)
	assert.Equal(t, created.ID, fans[0].ID)
}

func TestFanRepository_FindByID_NotFound(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	_, err := repo.FindByID(context.Background(), "fan_999")
	assert.ErrorIs(t, err, repository.ErrFanNotFound)
}

func TestFanRepository_FindByHandle_CaseInsensitive(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	for _, handle := range []string{"tina", "Tina", "TINALOVE", " tina "} {
		fan, err := repo.FindByHandle(context.Background(), handle)
		require.NoError(t, err, "handle %q", handle)
		assert.Equal(t, "fan_1", fan.ID, "handle %q", handle)
	}

	_, err := repo.FindByHandle(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrFanNotFound)
}

func TestFanRepository_RegisterHandle(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	require.NoError(t, repo.RegisterHandle(context.Background(), "MICHI", "fan_6"))

	fan, err := repo.FindByHandle(context.Background(), "michi")
	require.NoError(t, err)
	assert.Equal(t, "fan_6", fan.ID)

	err = repo.RegisterHandle(context.Background(), "ghost", "fan_999")
	assert.ErrorIs(t, err, repository.ErrFanNotFound)
}

func TestFanRepository_Search(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	matches, err := repo.Search(context.Background(), "jessica")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "fan_2", matches[0].ID)

	// Empty query returns the full directory.
	all, err := repo.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	none, err := repo.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFanRepository_Update(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	fan, err := repo.FindByID(context.Background(), "fan_3")
	require.NoError(t, err)

	fan.MessageCount = 40
	fan.Status = entity.FanStatusOffline

	updated, err := repo.Update(context.Background(), fan)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.MessageCount)
	assert.Equal(t, entity.FanStatusOffline, updated.Status)

	reread, err := repo.FindByID(context.Background(), "fan_3")
	require.NoError(t, err)
	assert.Equal(t, 40, reread.MessageCount)

	_, err = repo.Update(context.Background(), &entity.Fan{ID: "fan_999"})
	assert.ErrorIs(t, err, repository.ErrFanNotFound)
}

func TestFanRepository_ReturnsCopies(t *testing.T) {
	repo := NewFanRepository(newSeededStore())

	fan, err := repo.FindByID(context.Background(), "fan_1")
	require.NoError(t, err)

	fan.Name = "mutated"

	reread, err := repo.FindByID(context.Background(), "fan_1")
	require.NoError(t, err)
	assert.Equal(t, "TINA ❤️ LOVE", reread.Name)
}
