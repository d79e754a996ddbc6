package models

import (
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"strings"
)

// Player is the minimal per-session identity record. Created once during
// setup and never mutated afterwards, except for attaching a photo reference.
type Player struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Gender   string  `db:"gender" json:"gender"`
	Language string  `db:"language" json:"language"`
	PhotoURL *string `db:"photo_url" json:"photoUrl"`
}

// NewPlayer validates the setup input and returns a player ready for
// insertion. Name is trimmed; language defaults to "en".
func NewPlayer(name, gender, language string, photoURL *string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, errors.Wrap(game.ErrValidation, "name must not be empty")
	}
	if gender == "" {
		return Player{}, errors.Wrap(game.ErrValidation, "gender must not be empty")
	}
	if language == "" {
		language = "en"
	}
	return Player{
		ID:       0,
		Name:     name,
		Gender:   gender,
		Language: language,
		PhotoURL: photoURL,
	}, nil
}
