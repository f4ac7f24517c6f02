package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wholesale_catalog_bot/internal/app"
	"wholesale_catalog_bot/internal/infra/catalogfile"
	"wholesale_catalog_bot/internal/infra/config"
	"wholesale_catalog_bot/internal/infra/logger"
	"wholesale_catalog_bot/internal/infra/metrics"
	"wholesale_catalog_bot/internal/infra/scheduler"
	"wholesale_catalog_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Wholesale Catalog Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"admin_id":    cfg.AdminTelegramID,
		"channel_id":  cfg.ChannelID,
	}).Info("Configuration loaded")

	// Load the static catalog once; it is never mutated afterwards.
	cat, err := catalogfile.Load(cfg.CatalogPath)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not load catalog")
	}
	mainLogger.WithFields(logrus.Fields{
		"prices":   len(cat.Prices),
		"stock":    len(cat.Stock),
		"upcoming": len(cat.Upcoming),
	}).Info("Catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c telebot.Context) { // Global error handler
			metrics.HandlerErrors.Inc()
			entry := log.WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{"sender_id": c.Sender().ID, "chat_id": c.Chat().ID})
			}
			entry.Error("Update handling failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	renderer := app.NewRenderer(cat, cfg.BotLink)
	adminService := app.NewAdminService(telegram.NewTelebotAdapter(bot), cfg.AdminTelegramID, cfg.ChannelID, cfg.BotLink)
	dispatcher := app.NewDispatcher(renderer, adminService, log.WithField("component", "app"))

	// Register Handlers
	handlerLogger := log.WithField("component", "telegram")
	telegram.RegisterBotCommands(ctx, bot, dispatcher, handlerLogger)
	telegram.RegisterAdminHandlers(ctx, bot, dispatcher, handlerLogger)
	telegram.RegisterMenuHandlers(ctx, bot, dispatcher, handlerLogger)
	if err := telegram.PublishCommandList(bot); err != nil {
		mainLogger.WithError(err).Warn("Could not publish command list")
	}
	mainLogger.Info("Handlers registered")

	var promoScheduler *scheduler.PromoScheduler
	if cfg.PromoPostCron != "" {
		promoScheduler = scheduler.NewPromoScheduler(adminService, log.WithField("component", "scheduler"), cfg.PromoPostCron)
		if err := promoScheduler.Start(); err != nil {
			mainLogger.WithError(err).Fatal("Could not start promo scheduler")
		}
	}

	if cfg.MetricsAddr != "" {
		metricsServer := metrics.NewServer(cfg.MetricsAddr, log.WithField("component", "metrics"))
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				mainLogger.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()
	mainLogger.Info("Bot started. Press Ctrl+C to stop.")

	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	bot.Stop()
	if promoScheduler != nil {
		promoScheduler.Stop()
	}
	mainLogger.Info("Application shut down gracefully.")
}
