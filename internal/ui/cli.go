package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/db"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   event.Repository
	blocks selection.BlockStore
	closer func() error
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path the first time a command needs storage.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}
	if bs, ok := repo.(selection.BlockStore); ok {
		a.blocks = bs
	}

	a.root = &cobra.Command{
		Use:   "calpick",
		Short: "A terminal month calendar and date picker",
		Long: `Calpick is a month calendar for the terminal.

It picks single dates, date ranges or fixed-length blocks of days,
marks days that carry events, and keeps those events in a local database.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.blocks, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to calpick-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.eventCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("calpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.blocks = repo
	a.closer = repo.Close
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database opened by ensureRepo. Injected repositories
// are left to the caller.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}
