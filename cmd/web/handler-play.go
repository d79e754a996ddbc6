package main

import (
	"net/http"

	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/game"
	"github.com/jmakela/crossroads/internal/models"
)

type playTemplateData struct {
	BaseTemplateData

	Phase      string
	Level      int64
	PlayerName string
	Scenario   *scenarioView
	Results    []resultView
	TotalVotes int
}

// scenarioView is the scenario with its texts resolved to the player's language.
type scenarioView struct {
	Title        string
	Description  string
	Choice1Token string
	Choice1Label string
	Choice2Token string
	Choice2Label string
}

type resultView struct {
	Token      string
	Label      string
	Percentage int
	Count      int
}

func localizeScenario(s models.Scenario, language string) scenarioView {
	view := scenarioView{
		Title:        s.Title,
		Description:  s.Description,
		Choice1Token: s.Choice1Token,
		Choice1Label: s.Choice1Label,
		Choice2Token: s.Choice2Token,
		Choice2Label: s.Choice2Label,
	}
	if language != "ar" {
		return view
	}
	if s.TitleArabic != nil {
		view.Title = *s.TitleArabic
	}
	if s.DescriptionArabic != nil {
		view.Description = *s.DescriptionArabic
	}
	if s.Choice1LabelArabic != nil {
		view.Choice1Label = *s.Choice1LabelArabic
	}
	if s.Choice2LabelArabic != nil {
		view.Choice2Label = *s.Choice2LabelArabic
	}
	return view
}

// play renders the page matching the session's progress phase.
func (app *application) play(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	progress := app.progressFromSession(ctx)
	data := playTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Phase:            string(progress.Phase),
		Level:            progress.Level,
	}
	if progress.Phase == game.PhaseChoiceMade {
		// A choice without a recorded vote renders as the scenario again.
		data.Phase = string(game.PhasePlaying)
	}

	if progress.PlayerID != 0 {
		player, err := app.players.Get(ctx, progress.PlayerID)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data.PlayerName = player.Name

		switch progress.Phase {
		case game.PhasePlaying, game.PhaseChoiceMade, game.PhaseResultsShown:
			scenario, err := app.scenarios.GetByLevel(ctx, progress.Level)
			if errors.Is(err, game.ErrNotFound) {
				// The catalog shrank under a running session.
				data.Phase = string(game.PhaseComplete)
				break
			}
			if err != nil {
				app.serverError(w, r, err)
				return
			}
			view := localizeScenario(*scenario, player.Language)
			data.Scenario = &view

			if progress.Phase == game.PhaseResultsShown {
				stats, err := app.votes.Stats(ctx, scenario.ID)
				if err != nil {
					app.serverError(w, r, err)
					return
				}
				percentages := stats.Percentages()
				data.Results = []resultView{
					{
						Token:      scenario.Choice1Token,
						Label:      view.Choice1Label,
						Percentage: percentages[scenario.Choice1Token],
						Count:      stats.PerChoice[scenario.Choice1Token],
					},
					{
						Token:      scenario.Choice2Token,
						Label:      view.Choice2Label,
						Percentage: percentages[scenario.Choice2Token],
						Count:      stats.PerChoice[scenario.Choice2Token],
					},
				}
				data.TotalVotes = stats.TotalVotes
			}
		}
	}

	app.render(w, r, http.StatusOK, "play", data)
}

func (app *application) playSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	progress := app.progressFromSession(ctx)
	if progress.Phase != game.PhaseAwaitingSetup {
		// Refreshing or resubmitting the setup form must not spawn a second player.
		app.playRefresh(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	player, err := models.NewPlayer(r.PostForm.Get("name"), r.PostForm.Get("gender"), r.PostForm.Get("language"), nil)
	if err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	created, err := app.players.Create(ctx, player)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = progress.Start(created.ID); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.saveProgress(ctx, progress)
	app.playRefresh(w, r)
}

func (app *application) playChoose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	progress := app.progressFromSession(ctx)

	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	// The guard rejects double submissions before anything reaches the ledger.
	if err := progress.Choose(r.PostForm.Get("choice")); err != nil {
		app.playRefresh(w, r)
		return
	}

	scenario, err := app.scenarios.GetByLevel(ctx, progress.Level)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			// The catalog shrank under a running session.
			app.playRefresh(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	playerID := progress.PlayerID
	if _, err = app.votes.Record(ctx, scenario.ID, progress.Choice, &playerID); err != nil {
		// The session keeps its previous state when the write fails.
		if errors.Is(err, game.ErrValidation) {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		app.serverError(w, r, err)
		return
	}

	if err = progress.ShowResults(); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.saveProgress(ctx, progress)
	app.playRefresh(w, r)
}

func (app *application) playAdvance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	progress := app.progressFromSession(ctx)
	if progress.Phase != game.PhaseResultsShown {
		app.playRefresh(w, r)
		return
	}

	hasNext := true
	if _, err := app.scenarios.GetByLevel(ctx, progress.Level+1); err != nil {
		if !errors.Is(err, game.ErrNotFound) {
			app.serverError(w, r, err)
			return
		}
		hasNext = false
	}

	if err := progress.Advance(hasNext); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.saveProgress(ctx, progress)
	app.playRefresh(w, r)
}

// playRefresh re-renders the play page for htmx requests and redirects plain
// form submissions back to the front page.
func (app *application) playRefresh(w http.ResponseWriter, r *http.Request) {
	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		app.play(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
