package repositories_test

import (
	"context"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
)

func TestVoteRecordAndStats(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	// Seeded scenario level 1 has tokens green/red.
	first, err := repo.Record(ctx, 1, "green", int64Ptr(7))
	require.NoError(t, err)
	require.Positive(t, first.ID)
	require.NotNil(t, first.PlayerID)
	require.Equal(t, int64(7), *first.PlayerID)

	// Anonymous votes are permitted.
	second, err := repo.Record(ctx, 1, "red", nil)
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
	require.Nil(t, second.PlayerID)

	stats, err := repo.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalVotes)
	require.Equal(t, map[string]int{"green": 1, "red": 1}, stats.PerChoice)
	require.Equal(t, map[string]int{"green": 50, "red": 50}, stats.Percentages())
}

func TestVoteStatsZeroVotes(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))

	stats, err := repo.Stats(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalVotes)
	require.Equal(t, map[string]int{"police": 0, "nothing": 0}, stats.PerChoice)
	require.Equal(t, map[string]int{"police": 0, "nothing": 0}, stats.Percentages())
}

func TestVoteStatsPercentages(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	for range 3 {
		_, err := repo.Record(ctx, 1, "green", nil)
		require.NoError(t, err)
	}
	_, err := repo.Record(ctx, 1, "red", nil)
	require.NoError(t, err)

	stats, err := repo.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalVotes)
	require.Equal(t, map[string]int{"green": 3, "red": 1}, stats.PerChoice)
	require.Equal(t, map[string]int{"green": 75, "red": 25}, stats.Percentages())
}

func TestVoteUnknownScenario(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	_, err := repo.Record(ctx, 9999, "pull", nil)
	require.ErrorIs(t, err, game.ErrNotFound)

	// Nothing was appended to the ledger.
	count, err := repo.Count(ctx, 9999)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	_, err = repo.Stats(ctx, 9999)
	require.ErrorIs(t, err, game.ErrNotFound)
}

func TestVoteInvalidChoiceToken(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	// "pull" is not a token of the level 1 scenario (green/red).
	_, err := repo.Record(ctx, 1, "pull", nil)
	require.ErrorIs(t, err, game.ErrValidation)

	count, err := repo.Count(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestVoteConcurrentRecordUniqueIDs(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewVoteRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	const voters = 20
	ids := make(chan int64, voters)
	var wg sync.WaitGroup
	for i := range voters {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			choice := "green"
			if i%2 == 0 {
				choice = "red"
			}
			vote, err := repo.Record(ctx, 1, choice, nil)
			if err != nil {
				t.Error(err)
				return
			}
			ids <- vote.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, voters)
	for id := range ids {
		require.False(t, seen[id], "duplicate vote id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, voters)

	stats, err := repo.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, voters, stats.TotalVotes)
}
