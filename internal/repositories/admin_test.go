package repositories_test

import (
	"context"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestAdminAuthenticate(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAdminRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	created, err := repo.Create(ctx, "root", "hunter2hunter2")
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.NotEqual(t, []byte("hunter2hunter2"), created.PasswordHash)

	admin, err := repo.Authenticate(ctx, "root", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, created.ID, admin.ID)

	_, err = repo.Authenticate(ctx, "root", "wrong")
	require.ErrorIs(t, err, repositories.ErrInvalidCredentials)

	_, err = repo.Authenticate(ctx, "nobody", "hunter2hunter2")
	require.ErrorIs(t, err, repositories.ErrInvalidCredentials)
}

func TestAdminCreateValidation(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAdminRepository(db, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	_, err := repo.Create(ctx, "", "secret")
	require.ErrorIs(t, err, game.ErrValidation)

	_, err = repo.Create(ctx, "root", "")
	require.ErrorIs(t, err, game.ErrValidation)
}
