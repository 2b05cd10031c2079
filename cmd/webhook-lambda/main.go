// cmd/webhook-lambda/main.go
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"weather-fulfillment/internal/app"
	"weather-fulfillment/internal/common/config"
	"weather-fulfillment/internal/common/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer func() { _ = zapLog.Sync() }()
	log := logger.NewZapAdapter(zapLog)

	if !cfg.OpenWeather.HasAPIKey() {
		zapLog.Warn(config.APIKeyEnv + " is not set; webhook calls will answer with a configuration error")
	}

	// No /metrics endpoint inside Lambda.
	components := app.Build(cfg, log, nil)

	lambda.Start(components.LambdaHandler().Handle)
}
