package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultRateURL = "https://cdn.jsdelivr.net/gh/fawazahmed0/currency-api@1/latest/currencies/usd/rub.json"

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken   string
	DatabaseURL     string
	RateURL         string
	RateCurrency    string
	BroadcastTime   string
	HistoryPageSize int
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RateURL:         strings.TrimSpace(os.Getenv("RATE_API_URL")),
		RateCurrency:    strings.ToLower(strings.TrimSpace(os.Getenv("RATE_CURRENCY"))),
		BroadcastTime:   strings.TrimSpace(os.Getenv("BROADCAST_TIME")),
		HistoryPageSize: parsePageSize(strings.TrimSpace(os.Getenv("HISTORY_PAGE_SIZE"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "currency_bot.db"
	}
	if cfg.RateURL == "" {
		cfg.RateURL = defaultRateURL
	}
	if cfg.RateCurrency == "" {
		cfg.RateCurrency = "rub"
	}
	if cfg.BroadcastTime == "" {
		cfg.BroadcastTime = "06:00"
	}
	if cfg.HistoryPageSize == 0 {
		cfg.HistoryPageSize = 5
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parsePageSize(raw string) int {
	if raw == "" {
		return 0
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return 0
	}
	return size
}
