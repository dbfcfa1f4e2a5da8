package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/config"
	"github.com/TudorHulban/availability/internal/logger"
	"github.com/TudorHulban/availability/internal/repository"
	"github.com/TudorHulban/availability/internal/service"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "availability",
	Short: "Group availability planner for one month",
	Long: `availability collects the date ranges people are free during one month
and finds the days and windows most of them can attend.

Example usage:
  availability serve                                  # Start the HTTP API
  availability add Alice 2026-07-01 2026-07-10        # Register a range
  availability list                                   # Show registered ranges
  availability summary --min-days 5                   # Print the overlap summary`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .availability.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	log.Debug("configuration loaded",
		"period_year", cfg.Period.Year,
		"period_month", cfg.Period.Month,
		"backend", cfg.Storage.Backend,
	)

	return nil
}

// buildService opens the configured storage backend.
// The returned func releases it.
func buildService(ctx context.Context) (*service.AvailabilityService, func(), error) {
	period, errPeriod := availability.NewPeriod(
		&availability.ParamsNewPeriod{
			Year:  cfg.Period.Year,
			Month: time.Month(cfg.Period.Month),
		},
	)
	if errPeriod != nil {
		return nil, nil, errPeriod
	}

	var (
		repo    repository.Repository
		release = func() {}
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, errPool := repository.NewPool(ctx, cfg.Storage.DatabaseURL, log)
		if errPool != nil {
			return nil, nil, errPool
		}

		postgres := repository.NewPostgresRepository(pool, log)

		if err := postgres.EnsureSchema(ctx); err != nil {
			pool.Close()

			return nil, nil, err
		}

		repo = postgres
		release = pool.Close

	default:
		file, errFile := repository.NewFileRepository(cfg.Storage.DataDir, log)
		if errFile != nil {
			return nil, nil, errFile
		}

		repo = file
	}

	availabilityService, errService := service.NewAvailabilityService(
		&service.ParamsNewAvailabilityService{
			Period:     period,
			Repository: repo,
			Logger:     log,
		},
	)
	if errService != nil {
		release()

		return nil, nil, errService
	}

	return availabilityService, release, nil
}
