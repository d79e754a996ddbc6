package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/jmakela/crossroads/internal/envstruct"
	"github.com/jmakela/crossroads/internal/errors"
	"github.com/jmakela/crossroads/internal/logging"
	"github.com/jmakela/crossroads/internal/pprofserver"
	"github.com/jmakela/crossroads/internal/repositories"
	"github.com/jmakela/crossroads/internal/sqlite"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	sessionLocks   *sessionLocker
	htmx           *htmx.HTMX
	jwtSecret      []byte
	scenarios      *repositories.ScenarioRepository
	players        *repositories.PlayerRepository
	votes          *repositories.VoteRepository
	admins         *repositories.AdminRepository
}

type config struct {
	// Addr is the address the server listens on. Use port 0 to pick a free port.
	Addr string `env:"CROSSROADS_ADDR" envDefault:"localhost:4000"`
	// PprofPort is the localhost port for the pprof server. Empty disables it.
	PprofPort string `env:"CROSSROADS_PPROF_PORT" envDefault:":6060"`
	// SqliteURL is the database path. The value ":memory:" gives an in-memory database.
	SqliteURL string `env:"CROSSROADS_SQLITE_URL" envDefault:"./crossroads.sqlite"`
	// JWTSecret signs the admin bearer tokens.
	JWTSecret string `env:"CROSSROADS_JWT_SECRET" envDefault:"insecure-dev-secret"`
	// AdminUsername and AdminPassword bootstrap an admin account on startup
	// when both are set. Existing accounts are left alone.
	AdminUsername string `env:"CROSSROADS_ADMIN_USERNAME" envDefault:""`
	AdminPassword string `env:"CROSSROADS_ADMIN_PASSWORD" envDefault:""`
}

func main() {
	loggerHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(logging.NewContextHandler(loggerHandler))
	ctx := context.Background()

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	// A missing .env file is fine, the environment may be configured elsewhere.
	_ = godotenv.Load()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	// pprof listens on localhost so that it's not open to the world.
	if cfg.PprofPort != "" {
		pprofserver.Launch(cfg.PprofPort, logger)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database", slog.String("url", cfg.SqliteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	admins := repositories.NewAdminRepository(db, logger)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, err = admins.Create(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			// Likely the account already exists from an earlier start.
			logger.LogAttrs(ctx, slog.LevelWarn, "bootstrap admin",
				slog.String("username", cfg.AdminUsername), errors.SlogError(err))
		}
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		sessionLocks:   newSessionLocker(),
		htmx:           htmx.New(),
		jwtSecret:      []byte(cfg.JWTSecret),
		scenarios:      repositories.NewScenarioRepository(db, logger),
		players:        repositories.NewPlayerRepository(db, logger),
		votes:          repositories.NewVoteRepository(db, logger),
		admins:         admins,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
