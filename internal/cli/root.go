// Package cli wires flags, configuration and credentials into one
// load-then-report run.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/censustat/popestat/internal/config"
	"github.com/censustat/popestat/internal/db"
	"github.com/censustat/popestat/internal/logging"
	"github.com/censustat/popestat/internal/services"
	"github.com/censustat/popestat/pkg/popestat"
)

var rootCmd = &cobra.Command{
	Use:   "popestat <csv_file>",
	Short: "Load a Census population-estimates CSV and report aggregates",
	Long: `popestat loads a population-estimates CSV file into a PostgreSQL table,
recreating the table on every run, then reports three aggregate statistics:
the minimum 2014 estimate, the maximum 2013 estimate, and the mean and
population standard deviation of the 2012 estimate.

Rows whose integer fields cannot be coerced (e.g. a census2010pop of "N/A")
are skipped, counted and reported; the load continues.

Password Authentication:
  For security, the password is NOT accepted as a CLI flag. Use one of:
    1. $PGPASSWORD environment variable
    2. .pgpass file (PostgreSQL standard: chmod 600 ~/.pgpass)
    3. The interactive prompt (terminals only)

Exit Codes:
  0  - Success
  1  - General error (bad arguments, database or data failure)
  2  - Interrupted by the user
  3  - Standard output pipe closed by the downstream reader`,
	Args:         requireCSVFile,
	RunE:         runRoot,
	SilenceUsage: true,
}

var rootFlags struct {
	verbose bool
}

func init() {
	// -v is taken by --version, so verbose has no shorthand.
	rootCmd.PersistentFlags().BoolVar(&rootFlags.verbose, "verbose", false,
		"Enable verbose diagnostic output on stderr")
}

// Execute runs the root command.
func Execute() error {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

// requireCSVFile validates that exactly one csv_file argument is provided.
func requireCSVFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <csv_file>

Usage: %s

Example:
  %s SUB-EST2014_ALL.csv`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.NewConsoleLogger(rootFlags.verbose)

	// Best-effort .env load before reading PG* variables.
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		projectCfg = nil
	}

	cfg, err := db.ResolveConnConfig(db.LoadFromEnvironment(), projectCfg)
	if err != nil {
		return err
	}
	if err := resolvePassword(cfg, logger); err != nil {
		return err
	}

	logger.Verbose("connecting to %s:%d/%s as %s (table %s)",
		cfg.Host, cfg.Port, cfg.Database, cfg.Username, cfg.Table)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewConnector(cfg, logger).Connect(ctx)
	if err != nil {
		return translateInterrupt(ctx, err)
	}
	defer pool.Close()

	conn := db.NewPoolAdapter(pool)

	loader := services.NewLoaderService(conn, logger)
	if _, err := loader.Load(ctx, cfg.Table, path); err != nil {
		return translateInterrupt(ctx, err)
	}

	reporter := services.NewReporterService(conn, os.Stdout, logger)
	if err := reporter.Report(ctx, cfg.Table); err != nil {
		return translateInterrupt(ctx, err)
	}
	return nil
}

// translateInterrupt maps failures caused by a pending cancellation onto
// the interrupted sentinel so the process exits with the interrupt code.
func translateInterrupt(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", popestat.ErrInterrupted, err)
	}
	return err
}
