package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
)

type createPlayerRequest struct {
	Name     string  `json:"name"`
	Gender   string  `json:"gender"`
	Language string  `json:"language"`
	PhotoURL *string `json:"photoUrl"`
}

func (app *application) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := app.readJSON(r, &req); err != nil {
		app.apiError(w, r, err)
		return
	}

	player, err := models.NewPlayer(req.Name, req.Gender, req.Language, req.PhotoURL)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	created, err := app.players.Create(r.Context(), player)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, created)
}

func (app *application) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "playerID")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	player, err := app.players.Get(r.Context(), id)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, player)
}

type attachPhotoRequest struct {
	PhotoURL string `json:"photoUrl"`
}

func (app *application) attachPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "playerID")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	var req attachPhotoRequest
	if err = app.readJSON(r, &req); err != nil {
		app.apiError(w, r, err)
		return
	}

	player, err := app.players.AttachPhoto(r.Context(), id, req.PhotoURL)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, player)
}

// pathID parses a numeric path segment.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, errors.Wrap(game.ErrValidation, "invalid id in path",
			slog.String("segment", name), slog.String("value", r.PathValue(name)))
	}
	return id, nil
}
