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

// VoteRepository is the append-only vote ledger and the statistics
// aggregator over it. Votes are immutable: there is no update or delete.
type VoteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewVoteRepository(db *sqlite.Database, logger *slog.Logger) *VoteRepository {
	return &VoteRepository{
		db:     db,
		logger: logger.With("source", "VoteRepository"),
	}
}

// Record appends exactly one vote. The scenario must exist (game.ErrNotFound)
// and choice must be one of its two tokens (game.ErrValidation). The check and
// the insert run in one transaction on the single-writer pool so a concurrent
// scenario deletion cannot slip between them and id assignment stays atomic.
func (r *VoteRepository) Record(ctx context.Context, scenarioID int64, choice string, playerID *int64) (*models.Vote, error) {
	tx, err := r.db.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin vote transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var tokens struct {
		Choice1 string `db:"choice1_token"`
		Choice2 string `db:"choice2_token"`
	}
	stmt := `SELECT choice1_token, choice2_token FROM scenarios WHERE id = ?`
	if err = tx.GetContext(ctx, &tokens, stmt, scenarioID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(game.ErrNotFound, "scenario not found", slog.Int64("scenarioID", scenarioID))
		}
		return nil, errors.Wrap(err, "get scenario tokens")
	}
	if choice != tokens.Choice1 && choice != tokens.Choice2 {
		return nil, errors.Wrap(game.ErrValidation, "choice is not a valid token for the scenario",
			slog.Int64("scenarioID", scenarioID), slog.String("choice", choice))
	}

	vote := models.Vote{
		ID:         0,
		ScenarioID: scenarioID,
		Choice:     choice,
		PlayerID:   playerID,
	}
	res, err := tx.NamedExecContext(ctx,
		`INSERT INTO votes (scenario_id, choice, player_id) VALUES (:scenario_id, :choice, :player_id)`, vote)
	if err != nil {
		return nil, errors.Wrap(err, "insert vote")
	}
	if vote.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "vote last insert id")
	}
	if err = tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit vote")
	}
	return &vote, nil
}

// Stats aggregates the ledger for one scenario: counts per choice token with
// both of the scenario's tokens zero-filled. Recomputed fresh on every call,
// the ledger is the single source of truth.
func (r *VoteRepository) Stats(ctx context.Context, scenarioID int64) (game.Stats, error) {
	var tokens struct {
		Choice1 string `db:"choice1_token"`
		Choice2 string `db:"choice2_token"`
	}
	stmt := `SELECT choice1_token, choice2_token FROM scenarios WHERE id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &tokens, stmt, scenarioID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.Stats{}, errors.Wrap(game.ErrNotFound, "scenario not found",
				slog.Int64("scenarioID", scenarioID))
		}
		return game.Stats{}, errors.Wrap(err, "get scenario tokens")
	}

	rows := []struct {
		Choice string `db:"choice"`
		Count  int    `db:"count"`
	}{}
	stmt = `SELECT choice, COUNT(*) AS count FROM votes WHERE scenario_id = ? GROUP BY choice`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt, scenarioID); err != nil {
		return game.Stats{}, errors.Wrap(err, "aggregate votes")
	}

	stats := game.NewStats(tokens.Choice1, tokens.Choice2)
	for _, row := range rows {
		stats.Add(row.Choice, row.Count)
	}
	return stats, nil
}

// Count returns the ledger size for one scenario, orphaned or not.
func (r *VoteRepository) Count(ctx context.Context, scenarioID int64) (int, error) {
	var count int
	if err := r.db.ReadOnly.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM votes WHERE scenario_id = ?`, scenarioID); err != nil {
		return 0, errors.Wrap(err, "count votes")
	}
	return count, nil
}
