package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"compliance-tracker/internal/api"
	"compliance-tracker/internal/config"
	"compliance-tracker/internal/logging"
	"compliance-tracker/internal/repository/sqlite"
	"compliance-tracker/internal/server"
	"compliance-tracker/internal/sweep"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root cobra command with configuration flags.
// Flags take priority over environment variables, which take priority over
// .env and the built-in defaults.
func newRootCommand() *cobra.Command {
	var (
		addr         string
		dbPath       string
		staticDir    string
		statsProfile string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "trackerd",
		Short: "Compliance task tracker HTTP server",
		Long: `trackerd serves the compliance task tracker: a REST JSON API over a
single task table plus due-date and status statistics, with a scheduled
sweep that maintains derived task state.

CONFIGURATION:
  CT_ADDR                Listen address (default :3000)
  CT_STATIC_DIR          Directory of the front end entry page (default static)
  CT_DB_PATH             SQLite database path (default tasks.db)
  CT_DB_QUERY_TIMEOUT    Store query timeout (default 10s)
  CT_STATS_PROFILE       due-windows or status-counts (default due-windows)
  CT_SWEEP_ENABLED       Run the maintenance sweep (default true)
  CT_SWEEP_SCHEDULE      Sweep cron schedule (default "5 0 * * *")
  CT_REQUEST_TIMEOUT     Per-request store timeout (default 10s)
  CT_LOG_LEVEL           debug, info, warn or error (default info)

A .env file in the working directory is merged into the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.ConfigOverrides{
				Addr:         &addr,
				DBPath:       &dbPath,
				StaticDir:    &staticDir,
				StatsProfile: &statsProfile,
				LogLevel:     &logLevel,
			}
			cfg, err := config.NewLoader().LoadWithOverrides(overrides)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "", "Listen address (overrides CT_ADDR)")
	flags.StringVar(&dbPath, "db", "", "SQLite database path (overrides CT_DB_PATH)")
	flags.StringVar(&staticDir, "static-dir", "", "Front end directory (overrides CT_STATIC_DIR)")
	flags.StringVar(&statsProfile, "stats-profile", "", "Stats profile (overrides CT_STATS_PROFILE)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (overrides CT_LOG_LEVEL)")

	return cmd
}

func run(cfg *config.Config) error {
	logger := logging.New(cfg.Application.LogLevel)

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer repo.Close()
	logger.Info("task store ready", "path", cfg.Database.Path)

	apiInstance := api.New(repo, cfg.StatsProfile())
	srv := server.New(cfg.Server, apiInstance, cfg.Application.RequestTimeout, logger)

	var sweeper *sweep.Sweeper
	if cfg.Sweep.Enabled {
		sweeper, err = sweep.New(apiInstance, cfg.StatsProfile(), cfg.Sweep.Schedule, cfg.Database.QueryTimeout, logger)
		if err != nil {
			return fmt.Errorf("schedule sweep: %w", err)
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
