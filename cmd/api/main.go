package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/app"
	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	"jarvis-assistant/internal/httpserver"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting JARVIS assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core: vocabulary, sanitizer, classifier, resolver, executor, knowledge
	core, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		return
	}
	defer func() {
		if err := core.Close(); err != nil {
			logger.Warnf(context.Background(), "Failed to close resources: %v", err)
		}
	}()

	registry, err := core.NewRegistry(cfg.Session, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize sessions: %v", err)
		return
	}
	mw := middleware.New(logger, session.NewLimiter(cfg.Session.RateLimitPerMin))

	// 4. Delivery
	assistantHandler := assistantHTTP.New(logger, assistantHTTP.Config{
		Registry:  registry,
		Sanitizer: core.Sanitizer,
		Detector:  core.Detector,
		Resolver:  core.Resolver,
	})

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, registry, bot)
		registerWebhook(ctx, cfg.Telegram, bot, logger)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		Sessions:         registry,
		AssistantHandler: assistantHandler,
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL first,
// then an ngrok tunnel when an ngrok API is configured.
func registerWebhook(ctx context.Context, cfg config.TelegramConfig, bot *telegram.Bot, logger log.Logger) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokAttempts, ngrokInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL not set; updates will not be delivered")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
