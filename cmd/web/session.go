package main

import (
	"context"
	"encoding/gob"

	"github.com/jmakela/crossroads/internal/game"
)

const progressSessionKey = "progress"

func init() {
	gob.Register(game.Progress{})
}

// progressFromSession returns the session's game progress, or a fresh one when
// the session has none yet.
func (app *application) progressFromSession(ctx context.Context) game.Progress {
	progress, ok := app.sessionManager.Get(ctx, progressSessionKey).(game.Progress)
	if !ok {
		return game.NewProgress()
	}
	return progress
}

func (app *application) saveProgress(ctx context.Context, progress game.Progress) {
	app.sessionManager.Put(ctx, progressSessionKey, progress)
}
