// Package gateway wires the channels, the dialogue engine, the booking store
// and the schedulers together and runs the message loop.
package gateway

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/booking"
	"github.com/kyawzl/mahabote-bot/internal/bus"
	"github.com/kyawzl/mahabote-bot/internal/calendar"
	"github.com/kyawzl/mahabote-bot/internal/channel"
	"github.com/kyawzl/mahabote-bot/internal/config"
	"github.com/kyawzl/mahabote-bot/internal/conversation"
	"github.com/kyawzl/mahabote-bot/internal/cron"
	"github.com/kyawzl/mahabote-bot/internal/mahabote"
	"github.com/kyawzl/mahabote-bot/internal/report"
)

const (
	syncJobName    = "booking-webhook-sync"
	summaryJobName = "booking-daily-summary"
	// 9:00 every morning, local time.
	summarySchedule = "0 0 9 * * *"
)

// Options for creating a Gateway
type Options struct {
	SignalChan    chan os.Signal // for testing signal handling
	CronStorePath string         // overrides the default job store location
}

type Gateway struct {
	cfg        *config.Config
	bus        *bus.MessageBus
	astro      *mahabote.Engine
	conv       *conversation.Engine
	store      *booking.Store
	syncer     *booking.Syncer
	reports    *report.Generator
	cron       *cron.Service
	channels   *channel.ChannelManager
	signalChan chan os.Signal // for testing
}

// New creates a Gateway with default options
func New(cfg *config.Config) (*Gateway, error) {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions creates a Gateway with custom options for testing
func NewWithOptions(cfg *config.Config, opts Options) (*Gateway, error) {
	g := &Gateway{cfg: cfg}

	g.bus = bus.NewMessageBus(config.DefaultBufSize)

	g.astro = mahabote.NewEngine(calendar.New())
	sessions := conversation.NewStore(mahabote.ParseLanguage(cfg.Bot.DefaultLanguage))
	g.conv = conversation.NewEngine(g.astro, sessions)

	dbPath := strings.TrimSpace(cfg.Booking.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join(config.ConfigDir(), "data", "bookings.db")
	}
	store, err := booking.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open booking store: %w", err)
	}
	g.store = store
	g.syncer = booking.NewSyncer(store, cfg.Booking.WebhookURL)

	g.reports = report.NewGenerator(cfg.Report.FontPath, cfg.Report.BoldFontPath, cfg.Report.OutputDir)

	g.signalChan = opts.SignalChan

	cronStorePath := opts.CronStorePath
	if cronStorePath == "" {
		cronStorePath = filepath.Join(config.ConfigDir(), "data", "cron", "jobs.json")
	}
	g.cron = cron.NewService(cronStorePath)
	g.cron.OnJob = g.handleJob

	chMgr, err := channel.NewChannelManager(cfg.Channels, cfg.Gateway, g.bus)
	if err != nil {
		_ = g.store.Close()
		return nil, fmt.Errorf("create channel manager: %w", err)
	}
	g.channels = chMgr

	if webui := chMgr.WebUI(); webui != nil {
		webui.SetAPI(g.apiHandler())
	}

	return g, nil
}

func (g *Gateway) handleJob(job cron.Job) (string, error) {
	switch job.Payload.Task {
	case cron.TaskSyncPending:
		if !g.syncer.Enabled() {
			return "webhook sync disabled", nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := g.syncer.SyncPending(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("synced %d bookings", n), nil

	case cron.TaskDailySummary:
		summary, err := g.dailySummary()
		if err != nil {
			return "", err
		}
		if job.Payload.Deliver && job.Payload.Channel != "" {
			g.bus.Outbound <- bus.OutboundMessage{
				Channel: job.Payload.Channel,
				ChatID:  job.Payload.To,
				Content: summary,
			}
		}
		return summary, nil
	}
	return "", fmt.Errorf("unknown task %q", job.Payload.Task)
}

func (g *Gateway) dailySummary() (string, error) {
	cutoff := time.Now().Add(-24 * time.Hour)
	bookings, err := g.store.CreatedSince(cutoff)
	if err != nil {
		return "", fmt.Errorf("load recent bookings: %w", err)
	}
	if len(bookings) == 0 {
		return "📋 No new bookings in the last 24 hours.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 %d new booking(s) in the last 24 hours:\n", len(bookings))
	for _, b := range bookings {
		fmt.Fprintf(&sb, "• %s — %s (%s) %s %s [%s]\n", b.Ref, b.Name, b.Phone, b.Date, b.Time, b.Status)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// deliverReport pushes a generated report card to a chat as a photo. The
// target uses the same channel:chat-id form as the summary target.
func (g *Gateway) deliverReport(to, path, caption string) error {
	ch, chatID, ok := strings.Cut(strings.TrimSpace(to), ":")
	if !ok || ch == "" || chatID == "" {
		return fmt.Errorf("invalid deliver_to %q, want channel:chat-id", to)
	}
	g.bus.Outbound <- bus.OutboundMessage{
		Channel:  ch,
		ChatID:   chatID,
		Content:  "🔮 " + caption,
		Metadata: map[string]any{"photo_path": path},
	}
	return nil
}

// ensureScheduledJobs reconciles the persisted job list with the configured
// schedules, so editing config.json is enough to change them.
func (g *Gateway) ensureScheduledJobs() error {
	if _, err := g.cron.EnsureJob(syncJobName,
		cron.Schedule{Kind: "cron", Expr: g.cfg.Booking.SyncSchedule},
		cron.Payload{Task: cron.TaskSyncPending},
	); err != nil {
		return err
	}

	if to := strings.TrimSpace(g.cfg.Booking.SummaryTo); to != "" {
		ch, chatID, ok := strings.Cut(to, ":")
		if !ok {
			return fmt.Errorf("invalid summaryTo %q, want channel:chat-id", to)
		}
		if _, err := g.cron.EnsureJob(summaryJobName,
			cron.Schedule{Kind: "cron", Expr: summarySchedule},
			cron.Payload{Task: cron.TaskDailySummary, Deliver: true, Channel: ch, To: chatID},
		); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go g.bus.DispatchOutbound(ctx)

	if err := g.channels.StartAll(ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}
	log.Printf("[gateway] channels started: %v", g.channels.EnabledChannels())

	if err := g.cron.Start(ctx); err != nil {
		log.Printf("[gateway] cron start warning: %v", err)
	}
	if err := g.ensureScheduledJobs(); err != nil {
		log.Printf("[gateway] ensure scheduled jobs warning: %v", err)
	}

	go g.processLoop(ctx)

	log.Printf("[gateway] running on %s:%d", g.cfg.Gateway.Host, g.cfg.Gateway.Port)

	// Use injected signal channel for testing, or create default
	sigCh := g.signalChan
	if sigCh == nil {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	}
	<-sigCh

	log.Printf("[gateway] shutting down...")
	return g.Shutdown()
}

func (g *Gateway) processLoop(ctx context.Context) {
	for {
		select {
		case msg := <-g.bus.Inbound:
			log.Printf("[gateway] inbound from %s/%s: %s", msg.Channel, msg.SenderID, truncate(msg.Content, 80))

			var reply conversation.Reply
			if strings.TrimSpace(msg.Content) == "/start" {
				reply = g.conv.Greeting(msg.SessionKey())
			} else {
				reply = g.conv.ProcessMessage(msg.SessionKey(), msg.Content)
			}

			if reply.Text == "" {
				continue
			}
			out := bus.OutboundMessage{
				Channel: msg.Channel,
				ChatID:  msg.ChatID,
				Content: reply.Text,
			}
			if reply.Hint != "" {
				out.Metadata = map[string]any{"hint": reply.Hint}
			}
			g.bus.Outbound <- out
		case <-ctx.Done():
			return
		}
	}
}

func (g *Gateway) Shutdown() error {
	g.cron.Stop()
	_ = g.channels.StopAll()
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			log.Printf("[gateway] close booking store warning: %v", err)
		}
	}
	log.Printf("[gateway] shutdown complete")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
