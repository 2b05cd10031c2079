// cmd/webhook-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"weather-fulfillment/internal/app"
	"weather-fulfillment/internal/common/config"
	"weather-fulfillment/internal/common/logger"
	"weather-fulfillment/internal/common/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer func() { _ = zapLog.Sync() }()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting webhook server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	if !cfg.OpenWeather.HasAPIKey() {
		zapLog.Warn(config.APIKeyEnv + " is not set; webhook calls will answer with a configuration error")
	}

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.TraceSampleRatio, log)
	defer obs.Shutdown()

	components := app.Build(cfg, log, obs)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.HTTPHandler(),
		ReadHeaderTimeout: config.GetDuration(cfg.Server.ReadHeaderTimeout),
	}

	go func() {
		zapLog.Info("Webhook server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("webhook server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("Error during server shutdown", zap.Error(err))
	}

	zapLog.Info("Webhook server stopped gracefully")
}
