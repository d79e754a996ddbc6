package repositories_test

import (
	"context"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
)

func TestPlayerCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPlayerRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	player, err := models.NewPlayer("  Maya  ", "female", "", nil)
	require.NoError(t, err)
	require.Equal(t, "Maya", player.Name, "name must be trimmed")
	require.Equal(t, "en", player.Language, "language defaults to en")

	created, err := repo.Create(ctx, player)
	require.NoError(t, err)
	require.Positive(t, created.ID)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	_, err = repo.Get(ctx, 9999)
	require.ErrorIs(t, err, game.ErrNotFound)
}

func TestNewPlayerValidation(t *testing.T) {
	tests := []struct {
		name   string
		player string
		gender string
	}{
		{"empty name", "", "male"},
		{"whitespace name", "   ", "male"},
		{"empty gender", "Omar", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.NewPlayer(tt.player, tt.gender, "ar", nil)
			require.ErrorIs(t, err, game.ErrValidation)
		})
	}
}

func TestPlayerIDsStrictlyIncreasing(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPlayerRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	var previous int64
	for range 5 {
		player, err := models.NewPlayer("Sam", "other", "en", nil)
		require.NoError(t, err)
		created, err := repo.Create(ctx, player)
		require.NoError(t, err)
		require.Greater(t, created.ID, previous)
		previous = created.ID
	}
}

func TestPlayerConcurrentCreateUniqueIDs(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPlayerRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	const creators = 20
	ids := make(chan int64, creators)
	var wg sync.WaitGroup
	for range creators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			player, err := models.NewPlayer("Concurrent", "other", "en", nil)
			if err != nil {
				t.Error(err)
				return
			}
			created, err := repo.Create(ctx, player)
			if err != nil {
				t.Error(err)
				return
			}
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, creators)
	for id := range ids {
		require.False(t, seen[id], "duplicate player id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, creators)
}

func TestPlayerAttachPhoto(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPlayerRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	player, err := models.NewPlayer("Lena", "female", "en", nil)
	require.NoError(t, err)
	created, err := repo.Create(ctx, player)
	require.NoError(t, err)
	require.Nil(t, created.PhotoURL)

	updated, err := repo.AttachPhoto(ctx, created.ID, "/photos/lena.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoURL)
	require.Equal(t, "/photos/lena.jpg", *updated.PhotoURL)

	_, err = repo.AttachPhoto(ctx, 9999, "/photos/nobody.jpg")
	require.ErrorIs(t, err, game.ErrNotFound)

	_, err = repo.AttachPhoto(ctx, created.ID, "")
	require.ErrorIs(t, err, game.ErrValidation)
}

func TestPlayerList(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPlayerRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	players, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, players)

	for _, name := range []string{"Ada", "Bo"} {
		player, err := models.NewPlayer(name, "other", "en", nil)
		require.NoError(t, err)
		_, err = repo.Create(ctx, player)
		require.NoError(t, err)
	}

	players, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "Ada", players[0].Name)
	require.Equal(t, "Bo", players[1].Name)
}
