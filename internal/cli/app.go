// Package cli implements the interactive terminal app. It is a thin
// collaborator around the identity store, the portfolio ledger, and the
// investor-profile store: it prompts, invokes operations, and renders
// results, holding no persistent state of its own.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/datarium/datarium/internal/config"
	"github.com/datarium/datarium/internal/identity"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/portfolio"
	"github.com/datarium/datarium/internal/profile"
	"github.com/datarium/datarium/internal/storage"
	"github.com/datarium/datarium/internal/storage/kv"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	identity *identity.Store
	ledger   *portfolio.Ledger
	profiles *profile.Store
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database, wires the services, and restores any
// persisted session so the user stays signed in across restarts.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, parseLevel(cfg.LogLevel))

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	ids := identity.NewStore(repo, log, cfg.SignInDelay)
	ledger := portfolio.NewLedger(repo, ids, log)
	profiles := profile.NewStore(repo, ids, log)

	app := &App{
		config:   cfg,
		log:      log,
		db:       db,
		identity: ids,
		ledger:   ledger,
		profiles: profiles,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if err := ids.Restore(ctx); err != nil {
		// A broken session record is not fatal; the user can sign in again.
		log.Warn(ctx, "could not restore previous session", "error", err)
	}
	if err := ledger.Load(ctx); err != nil {
		log.Warn(ctx, "could not load portfolio", "error", err)
	}

	return app, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.identity.CurrentUserID()
	return ok
}
