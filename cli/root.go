// Package cli provides the showcase command-line interface.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gpsshowcase/catalog"
	"gpsshowcase/config"
	"gpsshowcase/database"
	"gpsshowcase/showcase"
	"gpsshowcase/storage"
	"gpsshowcase/tui"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

type rootFlags struct {
	catalogPath string
	sqlitePath  string
}

// NewRoot builds the command tree. The bare command starts the terminal UI.
func NewRoot() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "showcase",
		Short: "GPS Showcase - restaurant discovery demo",
		Long: `GPS Showcase walks a restaurant owner through sign-up and a short
questionnaire, then opens a dashboard for browsing the restaurant catalog.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()
			return runTUI(showcase.Options{
				Store:           env.store,
				Catalog:         env.catalog,
				NotificationTTL: env.cfg.NotificationTTL,
			}, tui.Config{AdvanceDelay: env.cfg.AdvanceDelay})
		},
	}
	root.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "YAML catalog file (default: built-in seed)")
	root.PersistentFlags().StringVar(&flags.sqlitePath, "db", "", "SQLite file for saved state (default: SQLITE_PATH)")

	root.AddCommand(catalogCmd(flags))
	root.AddCommand(settingsCmd(flags))
	root.AddCommand(answersCmd(flags))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg     *config.Config
	db      *sql.DB
	store   storage.Store
	catalog *catalog.Catalog
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func loadCatalog(cfg *config.Config, flags *rootFlags) (*catalog.Catalog, error) {
	path := cfg.CatalogPath
	if flags.catalogPath != "" {
		path = flags.catalogPath
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// openEnv loads config, the catalog and the key-value database.
func openEnv(flags *rootFlags) (*env, error) {
	cfg := config.Load()
	if flags.sqlitePath != "" {
		cfg.SQLitePath = flags.sqlitePath
	}
	cat, err := loadCatalog(cfg, flags)
	if err != nil {
		return nil, err
	}
	db, err := database.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &env{cfg: cfg, db: db, store: storage.NewSQLStore(db), catalog: cat}, nil
}
