package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/war-atlas/pkg/bootstrap"
	"github.com/de-tools/war-atlas/pkg/server"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	catalogPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "atlas-web",
		Short: "Serve War Atlas front-line and loss series over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML configuration file")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to the datasets.ini catalog (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	logger, err := bootstrap.NewLogger(os.Stdout, cfg.Logging.Level)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas: %w", err)
	}
	defer app.Close()

	result, err := app.Analysis.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	logger.Info().
		Int("events", result.Events).
		Int("civilian_explosions", len(result.Civilian)).
		Msg("analysis ready")

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = cfg.Server.Host
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Reader: analysis.NewSnapshot(result),
			Logger: logger,
		},
	})

	return api.Start()
}
