package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-dashboard/internal/config"
	"github.com/jonathan/talent-dashboard/internal/scoring"
	"github.com/jonathan/talent-dashboard/internal/server"
	"github.com/jonathan/talent-dashboard/internal/session"
	"github.com/jonathan/talent-dashboard/internal/types"
)

var (
	servePort   int
	serveConfig string
	serveData   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for candidate ingestion, filtering, sorting, pagination and shortlist curation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Optional candidate dataset loaded at startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveData != "" {
		cfg.DataPath = serveData
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctrl := newController(cfg, log)

	// Loading a bundled dataset at startup is a convenience only; it goes
	// through the same ingestion path as a user upload.
	if cfg.DataPath != "" {
		data, err := os.ReadFile(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("failed to read dataset %s: %w", cfg.DataPath, err)
		}
		summary, err := ctrl.Ingest(data)
		if err != nil {
			return fmt.Errorf("failed to load dataset %s: %w", cfg.DataPath, err)
		}
		log.WithFields(logrus.Fields{
			"accepted": summary.Accepted,
			"rejected": summary.Rejected,
		}).Info("default dataset loaded")
	}

	srv := server.New(server.Config{Port: cfg.Port}, ctrl, log)
	return srv.Start()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return log
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	return cfg.MergeWithDefaults(config.Config{}), nil
}

func newController(cfg config.Config, log *logrus.Logger) *session.Controller {
	scorer := scoring.Scorer{LocationBonus: cfg.LocationBonus}
	criteria := types.FilterCriteria{
		Location:       types.FilterWildcard,
		EducationLevel: types.FilterWildcard,
		Availability:   types.FilterWildcard,
		SalaryMax:      cfg.SalaryFilterMax,
	}
	return session.NewController(scorer, criteria, log)
}
