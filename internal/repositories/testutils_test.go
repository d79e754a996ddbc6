package repositories_test

import (
	"context"
	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/sqlite"
	"github.com/jmakela/crossroads/internal/testhelpers"
	"io"
	"testing"
)

// newTestDB creates a new in-memory database for testing purposes. The
// default scenario catalog (levels 1-3) is seeded by the schema bootstrap.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Fatal(err)
		}
	})
	return db
}

func validScenario(level int64) models.Scenario {
	return models.Scenario{
		ID:                 0,
		Level:              level,
		Title:              "The Fork",
		TitleArabic:        nil,
		Description:        "A runaway trolley approaches a fork in the tracks.",
		DescriptionArabic:  nil,
		Choice1Token:       "pull",
		Choice1Label:       "Pull the lever",
		Choice1LabelArabic: nil,
		Choice2Token:       "nothing",
		Choice2Label:       "Do nothing",
		Choice2LabelArabic: nil,
		Type:               "classic",
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
