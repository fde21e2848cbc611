package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// BaseURL overrides the Kréta calendar endpoint, empty means the
	// school's default instance.
	BaseURL        string
	DatabasePath   string
	EncryptionKey  string
	TelegramToken  string
	TelegramChatID int64
	UpdatesDir     string
	MountRemote    string
	MountPoint     string
}

// FromEnv loads .env from the working directory when present, then reads
// KRETATOOLS_* variables. Flags take precedence over everything here.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		BaseURL:       os.Getenv("KRETATOOLS_BASE_URL"),
		DatabasePath:  envOr("KRETATOOLS_DATABASE_PATH", "kretatools.db"),
		EncryptionKey: envOr("KRETATOOLS_ENCRYPTION_KEY", "please-change-me"),
		TelegramToken: os.Getenv("KRETATOOLS_TELEGRAM_TOKEN"),
		UpdatesDir:    os.Getenv("KRETATOOLS_UPDATES_DIR"),
		MountRemote:   os.Getenv("KRETATOOLS_MOUNT_REMOTE"),
		MountPoint:    os.Getenv("KRETATOOLS_MOUNT_POINT"),
	}

	if raw := os.Getenv("KRETATOOLS_TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("KRETATOOLS_TELEGRAM_CHAT_ID: %w", err)
		}
		config.TelegramChatID = chatID
	}

	return config, nil
}

func (c *Config) TelegramConfigured() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
