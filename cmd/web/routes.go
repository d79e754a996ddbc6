package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.lockSession, app.sessionManager.LoadAndSave, commonContext)

	mux.HandleFunc("/", app.notFound)
	mux.HandleFunc("GET /api/healthy", app.healthy)

	// The public JSON API used by native clients.
	mux.HandleFunc("POST /api/players", app.createPlayer)
	mux.HandleFunc("GET /api/players/{playerID}", app.getPlayer)
	mux.HandleFunc("PATCH /api/players/{playerID}/photo", app.attachPlayerPhoto)
	mux.HandleFunc("GET /api/scenarios", app.listScenarios)
	mux.HandleFunc("GET /api/scenarios/level/{level}", app.getScenarioByLevel)
	mux.HandleFunc("GET /api/scenarios/{scenarioID}/stats", app.scenarioStats)
	mux.HandleFunc("POST /api/votes", app.recordVote)

	// Catalog administration requires a bearer token from /api/admin/login.
	admin := alice.New(app.requireAdmin)
	mux.HandleFunc("POST /api/admin/login", app.adminLogin)
	mux.Handle("POST /api/admin/scenarios", admin.ThenFunc(app.adminCreateScenario))
	mux.Handle("PATCH /api/admin/scenarios/{scenarioID}", admin.ThenFunc(app.adminUpdateScenario))
	mux.Handle("DELETE /api/admin/scenarios/{scenarioID}", admin.ThenFunc(app.adminDeleteScenario))
	mux.Handle("GET /api/admin/players", admin.ThenFunc(app.adminListPlayers))

	// The browser play-through keeps its progress in the session.
	mux.Handle("GET /{$}", session.ThenFunc(app.play))
	mux.Handle("POST /play/setup", session.ThenFunc(app.playSetup))
	mux.Handle("POST /play/choose", session.ThenFunc(app.playChoose))
	mux.Handle("POST /play/advance", session.ThenFunc(app.playAdvance))

	return app.recoverPanic(app.logRequest(secureHeaders(noSurf(mux))))
}
