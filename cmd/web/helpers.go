package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/repositories"
)

type envelope map[string]any

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(http.StatusText(status), "method", method, "uri", uri, slog.Any("formdata", r.Form))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

func (app *application) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Debug("unauthorized", "method", r.Method, "uri", r.URL.RequestURI(), errors.SlogError(err))
	app.writeJSON(w, r, http.StatusUnauthorized, envelope{"message": "invalid or missing credentials"})
}

// apiError maps the error kinds from the core to HTTP status codes. Anything
// unrecognized is a 500 with the details kept out of the response body.
func (app *application) apiError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, game.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, repositories.ErrInvalidCredentials):
		app.unauthorized(w, r, err)
		return
	default:
		app.serverError(w, r, err)
		return
	}

	app.logger.Debug("request rejected", "method", r.Method, "uri", r.URL.RequestURI(), errors.SlogError(err))
	app.writeJSON(w, r, status, envelope{"message": err.Error()})
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

func (app *application) readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(game.ErrValidation, "malformed request body", slog.String("cause", err.Error()))
	}
	return nil
}
