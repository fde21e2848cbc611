package config_test

import (
	"testing"

	"github.com/kretatools/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, name := range []string{
		"KRETATOOLS_BASE_URL",
		"KRETATOOLS_DATABASE_PATH",
		"KRETATOOLS_ENCRYPTION_KEY",
		"KRETATOOLS_TELEGRAM_TOKEN",
		"KRETATOOLS_TELEGRAM_CHAT_ID",
	} {
		t.Setenv(name, "")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabasePath != "kretatools.db" {
		t.Fatalf("DatabasePath: got %q", cfg.DatabasePath)
	}
	if cfg.EncryptionKey != "please-change-me" {
		t.Fatalf("EncryptionKey: got %q", cfg.EncryptionKey)
	}
	if cfg.TelegramConfigured() {
		t.Fatal("telegram must not be configured by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KRETATOOLS_BASE_URL", "http://localhost:8080/api")
	t.Setenv("KRETATOOLS_DATABASE_PATH", "/tmp/db")
	t.Setenv("KRETATOOLS_TELEGRAM_TOKEN", "token")
	t.Setenv("KRETATOOLS_TELEGRAM_CHAT_ID", "42")

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.DatabasePath != "/tmp/db" {
		t.Fatalf("DatabasePath: got %q", cfg.DatabasePath)
	}
	if !cfg.TelegramConfigured() {
		t.Fatal("expected telegram to be configured")
	}
	if cfg.TelegramChatID != 42 {
		t.Fatalf("TelegramChatID: got %d", cfg.TelegramChatID)
	}
}

func TestFromEnvBadChatID(t *testing.T) {
	t.Setenv("KRETATOOLS_TELEGRAM_CHAT_ID", "not-a-number")

	if _, err := config.FromEnv(); err == nil {
		t.Fatal("expected error for malformed chat id")
	}
}
