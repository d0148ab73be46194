package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 5050
	DefaultBufSize      = 100
	DefaultLanguage     = "my"
	DefaultSyncSchedule = "0 */10 * * * *" // every 10 minutes, with seconds field
)

type Config struct {
	Bot      BotConfig      `json:"bot"`
	Channels ChannelsConfig `json:"channels"`
	Gateway  GatewayConfig  `json:"gateway"`
	Booking  BookingConfig  `json:"booking"`
	Report   ReportConfig   `json:"report"`
}

type BotConfig struct {
	DefaultLanguage string `json:"defaultLanguage"` // "my" or "en"
}

type ChannelsConfig struct {
	Telegram TelegramConfig `json:"telegram"`
	WebUI    WebUIConfig    `json:"webui"`
}

type TelegramConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allowFrom"`
	Proxy     string   `json:"proxy,omitempty"`
}

type WebUIConfig struct {
	Enabled   bool     `json:"enabled"`
	AllowFrom []string `json:"allowFrom"`
}

type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type BookingConfig struct {
	DBPath       string `json:"dbPath,omitempty"`
	WebhookURL   string `json:"webhookUrl,omitempty"`
	SyncSchedule string `json:"syncSchedule,omitempty"`
	// Where the daily booking summary is delivered, e.g. "telegram:123456".
	SummaryTo string `json:"summaryTo,omitempty"`
}

type ReportConfig struct {
	FontPath     string `json:"fontPath,omitempty"`     // Padauk-Regular.ttf
	BoldFontPath string `json:"boldFontPath,omitempty"` // Padauk-Bold.ttf
	OutputDir    string `json:"outputDir,omitempty"`
	AdminToken   string `json:"adminToken,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{DefaultLanguage: DefaultLanguage},
		Gateway: GatewayConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Channels: ChannelsConfig{
			WebUI: WebUIConfig{Enabled: true},
		},
		Booking: BookingConfig{
			SyncSchedule: DefaultSyncSchedule,
		},
		Report: ReportConfig{
			OutputDir: filepath.Join(ConfigDir(), "reports"),
		},
	}
}

func ConfigDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".mahabote")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if token := os.Getenv("MAHABOTE_TELEGRAM_TOKEN"); token != "" {
		cfg.Channels.Telegram.Token = token
	}
	if lang := os.Getenv("MAHABOTE_LANG"); lang == "my" || lang == "en" {
		cfg.Bot.DefaultLanguage = lang
	}
	if url := os.Getenv("MAHABOTE_WEBHOOK_URL"); url != "" {
		cfg.Booking.WebhookURL = url
	}
	if dbPath := os.Getenv("MAHABOTE_DB_PATH"); dbPath != "" {
		cfg.Booking.DBPath = dbPath
	}
	if fontPath := os.Getenv("MAHABOTE_FONT_PATH"); fontPath != "" {
		cfg.Report.FontPath = fontPath
	}
	if token := os.Getenv("MAHABOTE_ADMIN_TOKEN"); token != "" {
		cfg.Report.AdminToken = token
	}

	if cfg.Bot.DefaultLanguage != "my" && cfg.Bot.DefaultLanguage != "en" {
		cfg.Bot.DefaultLanguage = DefaultLanguage
	}
	if cfg.Booking.SyncSchedule == "" {
		cfg.Booking.SyncSchedule = DefaultSyncSchedule
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = DefaultConfig().Report.OutputDir
	}

	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}
