package models

import (
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"log/slog"
)

// Scenario is one leveled moral dilemma with exactly two mutually exclusive
// choices. Choices are identified by stable tokens, never by display text;
// votes in the ledger reference those tokens. The Arabic variants are optional
// localized texts carried for the presentation layer.
type Scenario struct {
	ID                 int64   `db:"id" json:"id"`
	Level              int64   `db:"level" json:"level"`
	Title              string  `db:"title" json:"title"`
	TitleArabic        *string `db:"title_arabic" json:"titleArabic"`
	Description        string  `db:"description" json:"description"`
	DescriptionArabic  *string `db:"description_arabic" json:"descriptionArabic"`
	Choice1Token       string  `db:"choice1_token" json:"choice1Token"`
	Choice1Label       string  `db:"choice1_label" json:"choice1Label"`
	Choice1LabelArabic *string `db:"choice1_label_arabic" json:"choice1LabelArabic"`
	Choice2Token       string  `db:"choice2_token" json:"choice2Token"`
	Choice2Label       string  `db:"choice2_label" json:"choice2Label"`
	Choice2LabelArabic *string `db:"choice2_label_arabic" json:"choice2LabelArabic"`
	Type               string  `db:"type" json:"type"`
}

// ChoiceTokens returns the scenario's two valid choice tokens.
func (s Scenario) ChoiceTokens() [2]string {
	return [2]string{s.Choice1Token, s.Choice2Token}
}

// ValidChoice reports whether token is one of the scenario's two choice tokens.
func (s Scenario) ValidChoice(token string) bool {
	return token == s.Choice1Token || token == s.Choice2Token
}

// Validate checks the catalog invariants: non-empty texts and tokens, distinct
// tokens and a positive level. Level uniqueness is deliberately not enforced,
// the admin owns that responsibility.
func (s Scenario) Validate() error {
	if s.Level < 1 {
		return errors.Wrap(game.ErrValidation, "level must be a positive integer", slog.Int64("level", s.Level))
	}
	if s.Title == "" {
		return errors.Wrap(game.ErrValidation, "title must not be empty")
	}
	if s.Description == "" {
		return errors.Wrap(game.ErrValidation, "description must not be empty")
	}
	if s.Choice1Label == "" || s.Choice2Label == "" {
		return errors.Wrap(game.ErrValidation, "choice labels must not be empty")
	}
	if s.Choice1Token == "" || s.Choice2Token == "" {
		return errors.Wrap(game.ErrValidation, "choice tokens must not be empty")
	}
	if s.Choice1Token == s.Choice2Token {
		return errors.Wrap(game.ErrValidation, "choice tokens must be distinct",
			slog.String("token", s.Choice1Token))
	}
	return nil
}
