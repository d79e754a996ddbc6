package main

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jmakela/crossroads/internal/models"
	"github.com/stretchr/testify/require"
)

type messageResponse struct {
	Message string `json:"message"`
}

type statsResponse struct {
	ScenarioID  int64          `json:"scenarioId"`
	PerChoice   map[string]int `json:"perChoice"`
	Percentages map[string]int `json:"percentages"`
	TotalVotes  int            `json:"totalVotes"`
}

func TestAPIPlayers(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	var player models.Player
	status, err := client.DoJSON(ctx, http.MethodPost, "/api/players", "", map[string]any{
		"name":     "  Maya ",
		"gender":   "female",
		"language": "ar",
	}, &player)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	require.Positive(t, player.ID)
	require.Equal(t, "Maya", player.Name)
	require.Equal(t, "ar", player.Language)
	require.Nil(t, player.PhotoURL)

	var fetched models.Player
	status, err = client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/api/players/%d", player.ID), "", nil, &fetched)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, player, fetched)

	var missing messageResponse
	status, err = client.DoJSON(ctx, http.MethodGet, "/api/players/9999", "", nil, &missing)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status)
	require.NotEmpty(t, missing.Message)

	var invalid messageResponse
	status, err = client.DoJSON(ctx, http.MethodPost, "/api/players", "", map[string]any{
		"name":   "   ",
		"gender": "male",
	}, &invalid)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, invalid.Message)

	var updated models.Player
	status, err = client.DoJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/players/%d/photo", player.ID), "",
		map[string]any{"photoUrl": "/photos/maya.jpg"}, &updated)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, updated.PhotoURL)
	require.Equal(t, "/photos/maya.jpg", *updated.PhotoURL)

	status, err = client.DoJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/players/%d/photo", player.ID), "",
		map[string]any{"photoUrl": ""}, &invalid)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestAPIScenarios(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	var scenarios []models.Scenario
	status, err := client.DoJSON(ctx, http.MethodGet, "/api/scenarios", "", nil, &scenarios)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, scenarios, 3)
	require.Equal(t, int64(1), scenarios[0].Level)
	require.Equal(t, int64(3), scenarios[2].Level)

	var scenario models.Scenario
	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/level/2", "", nil, &scenario)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "The Bystander's Choice", scenario.Title)
	require.Equal(t, [2]string{"police", "nothing"}, scenario.ChoiceTokens())

	var missing messageResponse
	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/level/99", "", nil, &missing)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status)

	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/level/abc", "", nil, &missing)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestAPIVotesAndStats(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	var player models.Player
	status, err := client.DoJSON(ctx, http.MethodPost, "/api/players", "", map[string]any{
		"name":   "Omar",
		"gender": "male",
	}, &player)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	var vote models.Vote
	status, err = client.DoJSON(ctx, http.MethodPost, "/api/votes", "", map[string]any{
		"scenarioId": 1,
		"choice":     "green",
		"playerId":   player.ID,
	}, &vote)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	require.Positive(t, vote.ID)
	require.NotNil(t, vote.PlayerID)
	require.Equal(t, player.ID, *vote.PlayerID)

	// Anonymous votes are allowed.
	var anonymous models.Vote
	status, err = client.DoJSON(ctx, http.MethodPost, "/api/votes", "", map[string]any{
		"scenarioId": 1,
		"choice":     "red",
	}, &anonymous)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	require.Greater(t, anonymous.ID, vote.ID)
	require.Nil(t, anonymous.PlayerID)

	var stats statsResponse
	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/1/stats", "", nil, &stats)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int64(1), stats.ScenarioID)
	require.Equal(t, map[string]int{"green": 1, "red": 1}, stats.PerChoice)
	require.Equal(t, map[string]int{"green": 50, "red": 50}, stats.Percentages)
	require.Equal(t, 2, stats.TotalVotes)

	var failure messageResponse
	status, err = client.DoJSON(ctx, http.MethodPost, "/api/votes", "", map[string]any{
		"scenarioId": 9999,
		"choice":     "green",
	}, &failure)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status)

	// A token from another scenario is rejected and nothing is appended.
	status, err = client.DoJSON(ctx, http.MethodPost, "/api/votes", "", map[string]any{
		"scenarioId": 1,
		"choice":     "police",
	}, &failure)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, status)

	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/1/stats", "", nil, &stats)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 2, stats.TotalVotes)

	status, err = client.DoJSON(ctx, http.MethodGet, "/api/scenarios/9999/stats", "", nil, &failure)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status)
}
