package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyawzl/mahabote-bot/internal/calendar"
	"github.com/kyawzl/mahabote-bot/internal/config"
	"github.com/kyawzl/mahabote-bot/internal/conversation"
	"github.com/kyawzl/mahabote-bot/internal/gateway"
	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

var rootCmd = &cobra.Command{
	Use:   "mahabote",
	Short: "mahabote - Myanmar astrology chatbot",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot (web UI, telegram, booking sync)",
	RunE:  runServe,
}

var readingCmd = &cobra.Command{
	Use:   "reading",
	Short: "Calculate a reading from the command line",
	RunE:  runReading,
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize the config directory",
	RunE:  runOnboard,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration status",
	RunE:  runStatus,
}

var (
	nameFlag        string
	dateFlag        string
	wednesdayPMFlag bool
	langFlag        string
	forecastFlag    bool
)

func init() {
	readingCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Name for the reading")
	readingCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Birth date (YYYY-MM-DD)")
	readingCmd.Flags().BoolVar(&wednesdayPMFlag, "wednesday-pm", false, "Born Wednesday afternoon (Rahu)")
	readingCmd.Flags().StringVarP(&langFlag, "lang", "l", "my", "Language: my or en")
	readingCmd.Flags().BoolVarP(&forecastFlag, "forecast", "f", false, "Include the 6-month forecast")
	_ = readingCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(serveCmd, readingCmd, onboardCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Channels.Telegram.Enabled && cfg.Channels.Telegram.Token == "" {
		return fmt.Errorf("telegram enabled but no token set; run 'mahabote onboard' or set MAHABOTE_TELEGRAM_TOKEN")
	}

	gw, err := gateway.New(cfg)
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}

	return gw.Run(context.Background())
}

func runReading(cmd *cobra.Command, args []string) error {
	dob, err := time.Parse("2006-01-02", dateFlag)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	name := nameFlag
	if name == "" {
		name = "-"
	}

	engine := mahabote.NewEngine(calendar.New())
	reading, err := engine.Calculate(name, dob, wednesdayPMFlag)
	if err != nil {
		return err
	}

	lang := mahabote.ParseLanguage(langFlag)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, conversation.RenderReading(reading, lang))

	if forecastFlag {
		entries := engine.Forecast(reading, lang)
		fmt.Fprintln(out)
		fmt.Fprintln(out, conversation.RenderForecast(reading, entries, lang))
	}
	return nil
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfgDir := config.ConfigDir()
	cfgPath := config.ConfigPath()

	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		data, _ := json.MarshalIndent(cfg, "", "  ")
		if err := os.WriteFile(cfgPath, data, 0644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created config: %s\n", cfgPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", cfgPath)
	}

	cfg, _ := config.LoadConfig()
	if err := os.MkdirAll(cfg.Report.OutputDir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Edit %s\n", cfgPath)
	fmt.Fprintln(out, "  2. Set channels.telegram.token (or MAHABOTE_TELEGRAM_TOKEN) to enable telegram")
	fmt.Fprintln(out, "  3. Set report.fontPath to a Padauk .ttf for PNG report cards")
	fmt.Fprintln(out, "  4. Run 'mahabote serve'")

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(out, "Config: error (%v)\n", err)
		return nil
	}

	fmt.Fprintf(out, "Config: %s\n", config.ConfigPath())
	fmt.Fprintf(out, "Language: %s\n", cfg.Bot.DefaultLanguage)
	fmt.Fprintf(out, "Web UI: enabled=%v (%s:%d)\n", cfg.Channels.WebUI.Enabled, cfg.Gateway.Host, cfg.Gateway.Port)
	fmt.Fprintf(out, "Telegram: enabled=%v\n", cfg.Channels.Telegram.Enabled)

	if cfg.Booking.WebhookURL != "" {
		fmt.Fprintf(out, "Booking webhook: set (sync %q)\n", cfg.Booking.SyncSchedule)
	} else {
		fmt.Fprintln(out, "Booking webhook: not set")
	}

	if cfg.Report.FontPath != "" {
		if _, err := os.Stat(cfg.Report.FontPath); err != nil {
			fmt.Fprintf(out, "Report font: %s (missing)\n", cfg.Report.FontPath)
		} else {
			fmt.Fprintf(out, "Report font: %s\n", cfg.Report.FontPath)
		}
	} else {
		fmt.Fprintln(out, "Report font: not set (PNG cards disabled)")
	}

	return nil
}
