package main

import (
	"net/http"

	"github.com/jmakela/crossroads/internal/models"
)

func (app *application) listScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := app.scenarios.List(r.Context())
	if err != nil {
		app.apiError(w, r, err)
		return
	}
	if scenarios == nil {
		scenarios = []models.Scenario{}
	}

	app.writeJSON(w, r, http.StatusOK, scenarios)
}

func (app *application) getScenarioByLevel(w http.ResponseWriter, r *http.Request) {
	level, err := pathID(r, "level")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	scenario, err := app.scenarios.GetByLevel(r.Context(), level)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, scenario)
}
