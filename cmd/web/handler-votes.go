package main

import (
	"net/http"
)

type recordVoteRequest struct {
	ScenarioID int64  `json:"scenarioId"`
	Choice     string `json:"choice"`
	PlayerID   *int64 `json:"playerId"`
}

func (app *application) recordVote(w http.ResponseWriter, r *http.Request) {
	var req recordVoteRequest
	if err := app.readJSON(r, &req); err != nil {
		app.apiError(w, r, err)
		return
	}

	vote, err := app.votes.Record(r.Context(), req.ScenarioID, req.Choice, req.PlayerID)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, vote)
}

func (app *application) scenarioStats(w http.ResponseWriter, r *http.Request) {
	scenarioID, err := pathID(r, "scenarioID")
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	stats, err := app.votes.Stats(r.Context(), scenarioID)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, envelope{
		"scenarioId":  scenarioID,
		"perChoice":   stats.PerChoice,
		"percentages": stats.Percentages(),
		"totalVotes":  stats.TotalVotes,
	})
}
