package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/api"
	"github.com/graretg02/Superbowl-app2/internal/config"
	"github.com/graretg02/Superbowl-app2/internal/factory"
	redisstorage "github.com/graretg02/Superbowl-app2/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	factoryCfg := factory.Config{
		Logger:        logger,
		StorageType:   cfg.StorageType,
		SQLitePath:    cfg.SQLitePath,
		SaveDelay:     cfg.SaveDebounce,
		AnalysisKey:   cfg.AnalysisKey(),
		AnalysisModel: cfg.AnalysisModel,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.KeyPrefix = cfg.RedisPrefix
		factoryCfg.RedisConfig = &redisCfg
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create application factory; this also restores the saved board
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
	)

	// Wait for shutdown or error
	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	// Write the last board change before exiting
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()
	if err := app.Close(closeCtx); err != nil {
		logger.Error("failed to flush board", slog.String("error", err.Error()))
		exitCode = 1
	}

	logger.Info("server stopped")
	if exitCode != 0 {
		closeCancel()
		cancel()
		os.Exit(exitCode)
	}
}
