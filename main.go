package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"clinic-manager/internal/clinic"
	"clinic-manager/internal/config"
	"clinic-manager/internal/console"
	"clinic-manager/internal/export"
	"clinic-manager/internal/models"
	"clinic-manager/internal/seed"
)

func main() {
	root := &cobra.Command{
		Use:           "clinic-manager",
		Short:         "Console-driven clinic record manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(consoleCmd(), exportCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, builds the logger and opens the store. The
// store failing to open here is the one fatal condition in the design.
func setup() (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	db, err := models.InitDB(cfg.DBPath)
	if err != nil {
		return nil, logger, nil, fmt.Errorf("opening store %q: %w", cfg.DBPath, err)
	}

	return cfg, logger, db, nil
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive clinic session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := setup()
			if err != nil {
				return err
			}
			svc := clinic.NewService(db, cfg, logger)
			return console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the patient graph to JSON, CSV, XML and YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := setup()
			if err != nil {
				return err
			}
			report := export.New(db, cfg.ExportDir, logger).Run()
			for _, name := range report.Written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
			}
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d of 4 export files failed", len(report.Failed))
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the store to the reference dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := setup()
			if err != nil {
				return err
			}
			if err := seed.Apply(db); err != nil {
				return fmt.Errorf("seeding store: %w", err)
			}
			logger.Info().Msg("reference data seeded")
			return nil
		},
	}
}
