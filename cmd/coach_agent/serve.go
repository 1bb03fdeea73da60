package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, interview practice, and job matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	jwtCfg, err := config.JWTFromEnv()
	if err != nil {
		return fmt.Errorf("invalid JWT configuration: %w", err)
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		DatabaseURL: cfg.DatabaseURL,
		JWT:         jwtCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadConfig resolves the effective configuration: config file, then
// environment, then built-in defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
