// Package config provides configuration management for PitchSignals.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	// LiveScore provider settings
	ProviderAPIKey string
	ProviderHost   string
	FetchBudget    int

	// Telegram settings
	TelegramBotToken string
	TelegramChatID   int64

	// Facebook settings
	FacebookPageID      string
	FacebookAccessToken string

	// Caption generation (OpenAI-compatible endpoint)
	OpenAIAPIKey   string
	OpenAIEndpoint string
	OpenAIModel    string

	// MongoDB settings
	MongoURI string
	MongoDB  string

	// Pipeline settings
	DigestSize          int
	RecordLimit         int
	LedgerRetentionDays int
	DigestHourUTC       int
	SettleInterval      time.Duration
	LiveInterval        time.Duration
	CardImageURL        string

	// Server settings
	HTTPAddr string
	Debug    bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		// Provider
		ProviderAPIKey: getEnv("RAPIDAPI_KEY", ""),
		ProviderHost:   getEnv("RAPIDAPI_HOST", "livescore6.p.rapidapi.com"),
		FetchBudget:    getEnvInt("FETCH_BUDGET", 1),

		// Telegram
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnvInt64("TELEGRAM_CHAT_ID", 0),

		// Facebook
		FacebookPageID:      getEnv("FACEBOOK_PAGE_ID", ""),
		FacebookAccessToken: getEnv("FACEBOOK_PAGE_ACCESS_TOKEN", ""),

		// Captions
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIEndpoint: getEnv("OPENAI_ENDPOINT", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// MongoDB
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "pitchsignals"),

		// Pipeline
		DigestSize:          getEnvInt("DIGEST_SIZE", 5),
		RecordLimit:         getEnvInt("RECORD_LIMIT", 5),
		LedgerRetentionDays: getEnvInt("LEDGER_RETENTION_DAYS", 14),
		DigestHourUTC:       getEnvInt("DIGEST_HOUR_UTC", 8),
		SettleInterval:      getEnvDuration("SETTLE_INTERVAL", 6*time.Hour),
		LiveInterval:        getEnvDuration("LIVE_INTERVAL", 0), // zero disables the live sweep
		CardImageURL:        getEnv("CARD_IMAGE_URL", ""),

		// Server
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Debug:    getEnvBool("DEBUG", false),
	}

	return cfg, nil
}

// Validate checks if required configuration is present.
func (c *Config) Validate() error {
	if c.ProviderAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY not set, fixture fetching will be disabled")
	}
	if c.TelegramBotToken == "" || c.TelegramChatID == 0 {
		log.Warn().Msg("Telegram credentials not set, channel posting will be disabled")
	}
	if c.FacebookAccessToken == "" || c.FacebookPageID == "" {
		log.Warn().Msg("Facebook credentials not set, page posting will be disabled")
	}
	if c.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, caption generation will use the local template")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
