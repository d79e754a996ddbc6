// Package admin bootstraps administrator accounts for the catalog API.
package admin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "admin",
	Title: "Admin account operations",
}

func init() {
	Create.Flags().String("sqlite-url", defaultSqliteURL(), "SQLite URL")
}

var Create = &cobra.Command{
	Use:     "create [username]",
	GroupID: "admin",
	Short:   "Create admin account",
	Long: `Creates an administrator account for the scenario catalog API.
The password is read from the CROSSROADS_ADMIN_PASSWORD environment variable.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		password := os.Getenv("CROSSROADS_ADMIN_PASSWORD")
		if password == "" {
			_, _ = fmt.Fprintln(os.Stderr, "CROSSROADS_ADMIN_PASSWORD is not set")
			os.Exit(1)
		}

		sqliteURL, _ := cmd.Flags().GetString("sqlite-url")
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "open database: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = db.Close()
		}()

		admins := repositories.NewAdminRepository(db, logger)
		admin, err := admins.Create(ctx, username, password)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created admin %q (id %d)\n", admin.Username, admin.ID)
	},
}

func defaultSqliteURL() string {
	if url, ok := os.LookupEnv("CROSSROADS_SQLITE_URL"); ok {
		return url
	}
	return "./crossroads.sqlite"
}
