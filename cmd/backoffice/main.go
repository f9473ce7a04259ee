package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/EzequielOmarArraygada/backoffice/internal/cli"
	"github.com/EzequielOmarArraygada/backoffice/internal/config"
	"github.com/EzequielOmarArraygada/backoffice/internal/db"
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
	"github.com/EzequielOmarArraygada/backoffice/internal/tasks"
	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config lives in BACKOFFICE_HOME or ~/.backoffice; a default config.toml
	// is written on first run.
	configDir := os.Getenv("BACKOFFICE_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configDir = filepath.Join(home, ".backoffice")
	}

	cfg, err := config.LoadOrInit(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	clock, err := timeutil.NewClock(cfg.Timezone)
	if err != nil {
		return err
	}

	// Open the local sqlite row store. Deployments backed by the spreadsheet
	// swap in their own rowstore.Store here.
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	store := rowstore.NewSQLiteStore(database)

	taskSvc := tasks.NewService(store, clock, tasks.SheetNames{
		Active:  cfg.Sheets.Active,
		History: cfg.Sheets.History,
	}, tasks.NewLogUseCaseObserver(os.Stderr))

	notifier := &cli.ConsoleNotifier{Out: os.Stdout}

	app := &cli.App{
		Tasks:      taskSvc,
		Store:      store,
		Scanner:    sheetscan.NewScanner(store, notifier, clock),
		Clock:      clock,
		CasesSheet: cfg.Sheets.Cases,
	}

	// Interactive forms are only offered on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
