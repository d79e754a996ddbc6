package repositories

import (
	"context"
	"database/sql"
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/sqlite"
	"log/slog"
)

// PlayerRepository is the player registry. Players are created once during
// setup, never deleted, and only mutated to attach a photo reference.
type PlayerRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewPlayerRepository(db *sqlite.Database, logger *slog.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:     db,
		logger: logger.With("source", "PlayerRepository"),
	}
}

// Create inserts the player and assigns a fresh, strictly increasing id.
func (r *PlayerRepository) Create(ctx context.Context, player models.Player) (*models.Player, error) {
	stmt := `INSERT INTO players (name, gender, language, photo_url)
	VALUES (:name, :gender, :language, :photo_url)`
	res, err := r.db.ReadWrite.NamedExecContext(ctx, stmt, player)
	if err != nil {
		return nil, errors.Wrap(err, "insert player")
	}
	if player.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "player last insert id")
	}
	return &player, nil
}

// Get returns the player with the given id or game.ErrNotFound.
func (r *PlayerRepository) Get(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	stmt := `SELECT id, name, gender, language, photo_url FROM players WHERE id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &player, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(game.ErrNotFound, "player not found", slog.Int64("id", id))
		}
		return nil, errors.Wrap(err, "get player")
	}
	return &player, nil
}

// List returns every player in creation order. Admin use only.
func (r *PlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	players := []models.Player{}
	stmt := `SELECT id, name, gender, language, photo_url FROM players ORDER BY id`
	if err := r.db.ReadOnly.SelectContext(ctx, &players, stmt); err != nil {
		return nil, errors.Wrap(err, "list players")
	}
	return players, nil
}

// AttachPhoto stores a photo reference on the player. The only mutation the
// registry allows.
func (r *PlayerRepository) AttachPhoto(ctx context.Context, id int64, photoURL string) (*models.Player, error) {
	if photoURL == "" {
		return nil, errors.Wrap(game.ErrValidation, "photo url must not be empty")
	}
	res, err := r.db.ReadWrite.ExecContext(ctx, `UPDATE players SET photo_url = ? WHERE id = ?`, photoURL, id)
	if err != nil {
		return nil, errors.Wrap(err, "update player photo")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "player photo rows affected")
	}
	if affected == 0 {
		return nil, errors.Wrap(game.ErrNotFound, "player not found", slog.Int64("id", id))
	}
	return r.Get(ctx, id)
}
