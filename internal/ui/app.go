// Package ui provides the command-line interface for pubtimeline.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/store"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   timeline.Repository
	config *config.Config
	logger *zap.Logger
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and
// config. repo may be nil; commands open the configured database on
// demand.
func NewApp(repo timeline.Repository, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{repo: repo, config: cfg, logger: logger}

	a.root = &cobra.Command{
		Use:   "pubtimeline",
		Short: "Interactive delivery timeline",
		Long: `Pubtimeline renders a scrollable calendar timeline of delivery
stages, per-day activity aggregates, and capacity load.

Import a dataset first, then run without arguments to open the
interactive view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.daysCmd())
	a.root.AddCommand(a.rowsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pubtimeline %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo lazily opens the configured database.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := store.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
