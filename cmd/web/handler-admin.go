package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmakela/crossroads/internal/contexthelpers"
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/repositories"
)

const adminTokenLifetime = 12 * time.Hour

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := app.readJSON(r, &req); err != nil {
		app.apiError(w, r, err)
		return
	}

	admin, err := app.admins.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.Username,
		"iat": now.Unix(),
		"exp": now.Add(adminTokenLifetime).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(app.jwtSecret)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "sign token"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, envelope{"token": signed})
}

func (app *application) adminCreateScenario(w http.ResponseWriter, r *http.Request) {
	var scenario models.Scenario
	if err := app.readJSON(r, &scenario); err != nil {
		app.apiError(w, r, err)
		return
	}

	created, err := app.scenarios.Create(r.Context(), scenario)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.logger.Info("scenario created", "id", created.ID, "level", created.Level,
		"admin", contexthelpers.AdminUsername(r.Context()))
	app.writeJSON(w, r, http.StatusCreated, created)
}

func (app *application) adminUpdateScenario(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "scenarioID")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	var update repositories.ScenarioUpdate
	if err = app.readJSON(r, &update); err != nil {
		app.apiError(w, r, err)
		return
	}

	updated, err := app.scenarios.Update(r.Context(), id, update)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, updated)
}

func (app *application) adminDeleteScenario(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "scenarioID")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	deleted, err := app.scenarios.Delete(r.Context(), id)
	if err != nil {
		app.apiError(w, r, err)
		return
	}
	if !deleted {
		app.apiError(w, r, errors.Wrap(game.ErrNotFound, "scenario not found", slog.Int64("id", id)))
		return
	}

	app.logger.Info("scenario deleted", "id", id, "admin", contexthelpers.AdminUsername(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.List(r.Context())
	if err != nil {
		app.apiError(w, r, err)
		return
	}
	if players == nil {
		players = []models.Player{}
	}

	app.writeJSON(w, r, http.StatusOK, players)
}
