package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Bot.DefaultLanguage != DefaultLanguage {
		t.Errorf("language = %q, want %q", cfg.Bot.DefaultLanguage, DefaultLanguage)
	}
	if cfg.Gateway.Host != DefaultHost {
		t.Errorf("host = %q, want %q", cfg.Gateway.Host, DefaultHost)
	}
	if cfg.Gateway.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Gateway.Port, DefaultPort)
	}
	if !cfg.Channels.WebUI.Enabled {
		t.Error("web UI should be enabled by default")
	}
	if cfg.Channels.Telegram.Enabled {
		t.Error("telegram should be disabled until a token is configured")
	}
	if cfg.Booking.SyncSchedule != DefaultSyncSchedule {
		t.Errorf("syncSchedule = %q, want %q", cfg.Booking.SyncSchedule, DefaultSyncSchedule)
	}
	if cfg.Report.OutputDir == "" {
		t.Error("report output dir should have a default")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MAHABOTE_TELEGRAM_TOKEN", "")
	t.Setenv("MAHABOTE_LANG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Bot.DefaultLanguage != DefaultLanguage {
		t.Errorf("language = %q, want default %q", cfg.Bot.DefaultLanguage, DefaultLanguage)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("MAHABOTE_TELEGRAM_TOKEN", "")
	t.Setenv("MAHABOTE_LANG", "")
	t.Setenv("MAHABOTE_WEBHOOK_URL", "")

	cfgDir := filepath.Join(tmpDir, ".mahabote")
	os.MkdirAll(cfgDir, 0755)

	testCfg := map[string]any{
		"bot": map[string]any{"defaultLanguage": "en"},
		"channels": map[string]any{
			"telegram": map[string]any{
				"enabled":   true,
				"token":     "file-token",
				"allowFrom": []string{"123"},
			},
		},
		"booking": map[string]any{
			"webhookUrl": "https://script.google.com/macros/s/abc/exec",
		},
	}
	data, _ := json.MarshalIndent(testCfg, "", "  ")
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Bot.DefaultLanguage != "en" {
		t.Errorf("language = %q, want en", cfg.Bot.DefaultLanguage)
	}
	if cfg.Channels.Telegram.Token != "file-token" {
		t.Errorf("token = %q, want file-token", cfg.Channels.Telegram.Token)
	}
	if cfg.Booking.WebhookURL == "" {
		t.Error("webhook URL should be loaded from the file")
	}
	// Unset fields keep their defaults
	if cfg.Gateway.Port != DefaultPort {
		t.Errorf("port = %d, want default %d", cfg.Gateway.Port, DefaultPort)
	}
	if cfg.Booking.SyncSchedule != DefaultSyncSchedule {
		t.Errorf("syncSchedule = %q, want default", cfg.Booking.SyncSchedule)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MAHABOTE_TELEGRAM_TOKEN", "env-token")
	t.Setenv("MAHABOTE_LANG", "en")
	t.Setenv("MAHABOTE_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("MAHABOTE_DB_PATH", "/tmp/test-bookings.db")
	t.Setenv("MAHABOTE_ADMIN_TOKEN", "env-admin")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Channels.Telegram.Token != "env-token" {
		t.Errorf("token = %q, want env-token", cfg.Channels.Telegram.Token)
	}
	if cfg.Bot.DefaultLanguage != "en" {
		t.Errorf("language = %q, want en", cfg.Bot.DefaultLanguage)
	}
	if cfg.Booking.WebhookURL != "https://example.com/hook" {
		t.Errorf("webhook = %q", cfg.Booking.WebhookURL)
	}
	if cfg.Booking.DBPath != "/tmp/test-bookings.db" {
		t.Errorf("dbPath = %q", cfg.Booking.DBPath)
	}
	if cfg.Report.AdminToken != "env-admin" {
		t.Errorf("adminToken = %q", cfg.Report.AdminToken)
	}
}

func TestLoadConfig_InvalidLanguageFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MAHABOTE_LANG", "fr") // unsupported, ignored

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bot.DefaultLanguage != DefaultLanguage {
		t.Errorf("language = %q, want fallback %q", cfg.Bot.DefaultLanguage, DefaultLanguage)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MAHABOTE_TELEGRAM_TOKEN", "")
	t.Setenv("MAHABOTE_LANG", "")
	t.Setenv("MAHABOTE_WEBHOOK_URL", "")

	cfg := DefaultConfig()
	cfg.Channels.Telegram.Enabled = true
	cfg.Channels.Telegram.Token = "saved-token"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Channels.Telegram.Token != "saved-token" {
		t.Errorf("token = %q, want saved-token", loaded.Channels.Telegram.Token)
	}
}
