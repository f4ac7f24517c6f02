package config

import (
	"fmt"
	"strings" // For LogLevel normalization
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken   string        `env:"TELEGRAM_TOKEN,required,notEmpty"`
	AdminTelegramID int64         `env:"ADMIN_TELEGRAM_ID,required,notEmpty"`
	ChannelID       string        `env:"CHANNEL_ID,required,notEmpty"` // numeric chat ID or @username
	BotLink         string        `env:"BOT_LINK" envDefault:"https://t.me/frozen_fruits_opt_bot"`
	CatalogPath     string        `env:"CATALOG_PATH"` // empty: use the embedded catalog
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	PromoPostCron   string        `env:"PROMO_POST_CRON"` // empty: no scheduled promo posts
	MetricsAddr     string        `env:"METRICS_ADDR"`    // empty: metrics server disabled
	PollTimeout     time.Duration `env:"POLL_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)
	cfg.ChannelID = strings.TrimSpace(cfg.ChannelID)

	return cfg, nil
}
