// Package main applies or rolls back the SQL migrations of the analyzer database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
	applog "github.com/johnquangdev/meeting-notes-analyzer/pkg/logger"
)

var migrationsDir string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
	Long: `migrate runs the SQL migrations found in the migrations directory
against the database configured through DB_* environment variables.

Examples:
  # Apply every pending migration
  migrate up

  # Roll back all migrations from a custom directory
  migrate down --dir ./migrations`,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), migrate.Up)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), migrate.Down)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "", "migrations directory (defaults to DB_MIGRATIONS_DIR)")
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
}

func run(ctx context.Context, direction migrate.MigrationDirection) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := applog.New(cfg.Server.Environment, cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	dir := migrationsDir
	if dir == "" {
		dir = cfg.Database.MigrationsDir
	}

	n, err := database.Migrate(db, dir, direction, logger)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Successfully applied %d migration(s)\n", n)
	return nil
}
