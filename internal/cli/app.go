// Package cli is the interactive front end: a small REPL over the
// session manager, the user registry and the yard inventory.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dsakiyama/motopatio/internal/config"
	"github.com/dsakiyama/motopatio/internal/filex"
	"github.com/dsakiyama/motopatio/internal/fleet"
	"github.com/dsakiyama/motopatio/internal/logging"
	"github.com/dsakiyama/motopatio/internal/registry"
	"github.com/dsakiyama/motopatio/internal/session"
	"github.com/dsakiyama/motopatio/internal/storage"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	store     storage.Store
	registry  *registry.Registry
	session   *session.Manager
	inventory *fleet.Inventory
	log       logging.Logger
	reader    *bufio.Reader
}

// NewApp opens the local database in the configured data directory and
// wires the registry and session manager on top of it.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureSubDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	store := storage.NewSQLiteStore(db)
	reg := registry.New(store, log, registry.Seed())

	return &App{
		config:    cfg,
		db:        db,
		store:     store,
		registry:  reg,
		session:   session.NewManager(store, reg, log),
		inventory: fleet.Demo(),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run loads the persisted registry, restores the previous session if one
// exists, and hands control to the REPL. Restore always runs before the
// loop so no login or registration can race the startup read.
func (a *App) Run(ctx context.Context) error {
	if a.db != nil {
		defer a.db.Close()
	}

	if _, err := a.registry.Load(ctx); err != nil {
		a.log.Warn(ctx, "snapshot unreadable, continuing with seed data", "error", err)
		fmt.Println("Aviso: não foi possível ler os dados locais.")
	}

	out, err := a.session.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore degraded", "error", err)
	}
	switch out {
	case session.OutcomeRestored:
		fmt.Printf("Bem-vindo(a) de volta, %s!\n", a.session.Current().Name)
	case session.OutcomeStaleTokenCleared:
		fmt.Println("Sessão anterior expirou. Faça login novamente.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
