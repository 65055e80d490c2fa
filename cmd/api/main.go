package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"homesite/internal/config"
	"homesite/internal/logger"
	"homesite/internal/otel"
	"homesite/internal/server"
	"homesite/internal/service"
)

// @title Homesite
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	log := logger.NewStdout(loc, cfg.LogLevel)
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, cfg.AppName, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	homeSvc := service.NewHomeService(service.HomeInfo{
		AppName:     cfg.AppName,
		Version:     cfg.Version,
		Environment: cfg.AppEnv,
	}, loc)

	app, err := server.New(cfg, server.Deps{
		Home:     homeSvc,
		Registry: reg,
		Logger:   log,
	})
	if err != nil {
		log.Fatal("failed to build server", zap.Error(err))
	}

	addr := ":" + cfg.Port

	// Listen in a goroutine so the signal wait below controls shutdown.
	go func() {
		log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := app.Listen(addr); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout())
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", zap.Error(err))
	}

	log.Info("server stopped cleanly")
}
