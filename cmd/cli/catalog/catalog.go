// Package catalog manages the scenario catalog from the command line.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmakela/crossroads/internal/models"
	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "catalog",
	Title: "Scenario catalog operations",
}

func init() {
	Import.Flags().String("sqlite-url", defaultSqliteURL(), "SQLite URL")
	List.Flags().String("sqlite-url", defaultSqliteURL(), "SQLite URL")
}

var Import = &cobra.Command{
	Use:     "import [file]",
	GroupID: "catalog",
	Short:   "Import scenarios",
	Long:    `Imports scenarios from a JSON array into the catalog. Ids are assigned on insert.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "read file: %v\n", err)
			os.Exit(1)
		}
		var scenarios []models.Scenario
		if err = json.Unmarshal(data, &scenarios); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "parse file: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		repo, cleanup := scenarioRepository(ctx, cmd)
		defer cleanup()

		for _, scenario := range scenarios {
			created, err := repo.Create(ctx, scenario)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "import scenario level %d: %v\n", scenario.Level, err)
				os.Exit(1)
			}
			fmt.Printf("imported level %d %q (id %d)\n", created.Level, created.Title, created.ID)
		}
	},
}

var List = &cobra.Command{
	Use:     "list",
	GroupID: "catalog",
	Short:   "List scenarios",
	Long:    `Lists the scenarios in the catalog ordered by level.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo, cleanup := scenarioRepository(ctx, cmd)
		defer cleanup()

		scenarios, err := repo.List(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "list scenarios: %v\n", err)
			os.Exit(1)
		}
		for _, scenario := range scenarios {
			fmt.Printf("%d\tlevel %d\t%s\t(%s/%s)\n",
				scenario.ID, scenario.Level, scenario.Title, scenario.Choice1Token, scenario.Choice2Token)
		}
	},
}

func scenarioRepository(ctx context.Context, cmd *cobra.Command) (*repositories.ScenarioRepository, func()) {
	sqliteURL, _ := cmd.Flags().GetString("sqlite-url")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	return repositories.NewScenarioRepository(db, logger), func() {
		_ = db.Close()
	}
}

func defaultSqliteURL() string {
	if url, ok := os.LookupEnv("CROSSROADS_SQLITE_URL"); ok {
		return url
	}
	return "./crossroads.sqlite"
}
