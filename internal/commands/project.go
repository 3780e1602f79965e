package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/razao-dev/razao/internal/accounts"
	"github.com/razao-dev/razao/internal/config"
	"github.com/razao-dev/razao/internal/journal"
	"github.com/razao-dev/razao/internal/store"
)

// configFile is the project marker at the directory root.
const configFile = "razao.yaml"

// Project bundles everything a command needs to work on one set of books.
type Project struct {
	Root    string
	Config  *config.Config
	Chart   *accounts.Service
	Store   *store.SQLite
	Journal *journal.Service
	Log     zerolog.Logger
}

// openProject loads the config, chart of accounts, and database of the
// project at dir.
func openProject(dir string, verbose bool) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		return nil, fmt.Errorf("not a razao project (missing %s): %w", configFile, err)
	}

	chart, err := accounts.Load(filepath.Join(root, cfg.Ledger.ChartFile))
	if err != nil {
		return nil, err
	}

	log := newLogger(verbose)

	db, err := store.Open(filepath.Join(root, cfg.Ledger.DatabaseFile), log)
	if err != nil {
		return nil, err
	}

	return &Project{
		Root:    root,
		Config:  cfg,
		Chart:   chart,
		Store:   db,
		Journal: journal.NewService(db, chart, log),
		Log:     log,
	}, nil
}

// Close releases the project's database handle.
func (p *Project) Close() error {
	return p.Store.Close()
}
