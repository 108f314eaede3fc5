package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gamingleague/tournaments-web/internal/config"
	"github.com/gamingleague/tournaments-web/internal/factory"
	"github.com/gamingleague/tournaments-web/internal/web"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "tournaments-web",
		Short:        "Web frontend for the gaming tournament platform",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCmd runs the HTTP server. Flags mirror the environment variables and
// take precedence over them when set.
func serveCmd() *cobra.Command {
	var (
		port        int
		storageType string
		staticDir   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := func(cfg *config.Config) {
				if cmd.Flags().Changed("port") {
					cfg.ServerPort = port
				}
				if cmd.Flags().Changed("storage") {
					cfg.StorageType = storageType
				}
			}
			return run(overrides, staticDir)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on (SERVER_PORT)")
	cmd.Flags().StringVar(&storageType, "storage", "memory", "session storage backend, memory or redis (STORAGE_TYPE)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "static assets directory (autodetected when empty)")

	return cmd
}

func run(overrides func(*config.Config), staticDir string) error {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return err
	}
	overrides(cfg)

	if staticDir == "" {
		staticDir = findStaticDir()
	}

	app, err := factory.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	router := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		Gateway:          app.Gateway,
		CatalogService:   app.CatalogService,
		EnrollService:    app.EnrollService,
		RegisterService:  app.RegisterService,
		SessionService:   app.SessionService,
		DiscordInviteURL: cfg.DiscordInviteURL,
		StaticDir:        staticDir,
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Port = cfg.ServerPort
	server := web.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "internal/web/static"
}
