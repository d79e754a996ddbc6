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

// ScenarioRepository is the scenario catalog: the ordered set of dilemmas,
// read-only during gameplay and mutated only through admin commands.
type ScenarioRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewScenarioRepository(db *sqlite.Database, logger *slog.Logger) *ScenarioRepository {
	return &ScenarioRepository{
		db:     db,
		logger: logger.With("source", "ScenarioRepository"),
	}
}

const scenarioColumns = `id, level, title, title_arabic, description, description_arabic,
	choice1_token, choice1_label, choice1_label_arabic,
	choice2_token, choice2_label, choice2_label_arabic, type`

// Get returns the scenario with the given id or game.ErrNotFound.
func (r *ScenarioRepository) Get(ctx context.Context, id int64) (*models.Scenario, error) {
	var scenario models.Scenario
	stmt := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &scenario, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(game.ErrNotFound, "scenario not found", slog.Int64("id", id))
		}
		return nil, errors.Wrap(err, "get scenario")
	}
	return &scenario, nil
}

// GetByLevel returns the scenario for the given level or game.ErrNotFound.
// When several scenarios share a level, the lowest id wins.
func (r *ScenarioRepository) GetByLevel(ctx context.Context, level int64) (*models.Scenario, error) {
	var scenario models.Scenario
	stmt := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE level = ? ORDER BY id LIMIT 1`
	if err := r.db.ReadOnly.GetContext(ctx, &scenario, stmt, level); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(game.ErrNotFound, "scenario not found", slog.Int64("level", level))
		}
		return nil, errors.Wrap(err, "get scenario by level")
	}
	return &scenario, nil
}

// List returns all scenarios ascending by level, id as the tiebreaker.
func (r *ScenarioRepository) List(ctx context.Context) ([]models.Scenario, error) {
	scenarios := []models.Scenario{}
	stmt := `SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY level, id`
	if err := r.db.ReadOnly.SelectContext(ctx, &scenarios, stmt); err != nil {
		return nil, errors.Wrap(err, "list scenarios")
	}
	return scenarios, nil
}

// Create validates and inserts a new scenario, assigning a fresh id.
func (r *ScenarioRepository) Create(ctx context.Context, scenario models.Scenario) (*models.Scenario, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	stmt := `INSERT INTO scenarios (level, title, title_arabic, description, description_arabic,
		choice1_token, choice1_label, choice1_label_arabic,
		choice2_token, choice2_label, choice2_label_arabic, type)
	VALUES (:level, :title, :title_arabic, :description, :description_arabic,
		:choice1_token, :choice1_label, :choice1_label_arabic,
		:choice2_token, :choice2_label, :choice2_label_arabic, :type)`
	res, err := r.db.ReadWrite.NamedExecContext(ctx, stmt, scenario)
	if err != nil {
		return nil, errors.Wrap(err, "insert scenario")
	}
	if scenario.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "scenario last insert id")
	}
	return &scenario, nil
}

// ScenarioUpdate carries the admin's partial edit. Nil fields keep their
// current values.
type ScenarioUpdate struct {
	Level              *int64  `json:"level"`
	Title              *string `json:"title"`
	TitleArabic        *string `json:"titleArabic"`
	Description        *string `json:"description"`
	DescriptionArabic  *string `json:"descriptionArabic"`
	Choice1Token       *string `json:"choice1Token"`
	Choice1Label       *string `json:"choice1Label"`
	Choice1LabelArabic *string `json:"choice1LabelArabic"`
	Choice2Token       *string `json:"choice2Token"`
	Choice2Label       *string `json:"choice2Label"`
	Choice2LabelArabic *string `json:"choice2LabelArabic"`
	Type               *string `json:"type"`
}

func (u ScenarioUpdate) apply(scenario *models.Scenario) {
	if u.Level != nil {
		scenario.Level = *u.Level
	}
	if u.Title != nil {
		scenario.Title = *u.Title
	}
	if u.TitleArabic != nil {
		scenario.TitleArabic = u.TitleArabic
	}
	if u.Description != nil {
		scenario.Description = *u.Description
	}
	if u.DescriptionArabic != nil {
		scenario.DescriptionArabic = u.DescriptionArabic
	}
	if u.Choice1Token != nil {
		scenario.Choice1Token = *u.Choice1Token
	}
	if u.Choice1Label != nil {
		scenario.Choice1Label = *u.Choice1Label
	}
	if u.Choice1LabelArabic != nil {
		scenario.Choice1LabelArabic = u.Choice1LabelArabic
	}
	if u.Choice2Token != nil {
		scenario.Choice2Token = *u.Choice2Token
	}
	if u.Choice2Label != nil {
		scenario.Choice2Label = *u.Choice2Label
	}
	if u.Choice2LabelArabic != nil {
		scenario.Choice2LabelArabic = u.Choice2LabelArabic
	}
	if u.Type != nil {
		scenario.Type = *u.Type
	}
}

// Update merges the partial edit into the stored scenario, validates the
// merged record, and persists it. Returns game.ErrNotFound for unknown ids.
func (r *ScenarioRepository) Update(ctx context.Context, id int64, update ScenarioUpdate) (*models.Scenario, error) {
	tx, err := r.db.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin update transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var scenario models.Scenario
	stmt := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = ?`
	if err = tx.GetContext(ctx, &scenario, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(game.ErrNotFound, "scenario not found", slog.Int64("id", id))
		}
		return nil, errors.Wrap(err, "get scenario for update")
	}

	update.apply(&scenario)
	if err = scenario.Validate(); err != nil {
		return nil, err
	}

	stmt = `UPDATE scenarios
	SET level = :level, title = :title, title_arabic = :title_arabic,
		description = :description, description_arabic = :description_arabic,
		choice1_token = :choice1_token, choice1_label = :choice1_label, choice1_label_arabic = :choice1_label_arabic,
		choice2_token = :choice2_token, choice2_label = :choice2_label, choice2_label_arabic = :choice2_label_arabic,
		type = :type
	WHERE id = :id`
	if _, err = tx.NamedExecContext(ctx, stmt, scenario); err != nil {
		return nil, errors.Wrap(err, "update scenario")
	}
	if err = tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit scenario update")
	}
	return &scenario, nil
}

// Delete removes the scenario and reports whether it existed. Votes referring
// to the scenario stay in the ledger as orphans, they are simply unreachable
// through the catalog.
func (r *ScenarioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ReadWrite.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrap(err, "delete scenario")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete scenario rows affected")
	}
	return affected > 0, nil
}
