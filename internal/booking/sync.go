package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Syncer pushes bookings to the spreadsheet webhook. A booking stays flagged
// unsynced until the webhook accepts it, so failed pushes are retried by the
// scheduled SyncPending run.
type Syncer struct {
	store      *Store
	webhookURL string
	client     *http.Client
}

func NewSyncer(store *Store, webhookURL string) *Syncer {
	return &Syncer{
		store:      store,
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether a webhook is configured.
func (s *Syncer) Enabled() bool {
	return s.webhookURL != ""
}

type syncPayload struct {
	Event   string   `json:"event"`
	Booking *Booking `json:"booking"`
}

// SyncNew pushes a freshly created booking. Errors are returned but callers
// may treat them as non-fatal; the booking is already stored locally.
func (s *Syncer) SyncNew(ctx context.Context, b *Booking) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.post(ctx, syncPayload{Event: "booking.created", Booking: b}); err != nil {
		return err
	}
	return s.store.MarkSynced(b.Ref)
}

// SyncStatus pushes a status change.
func (s *Syncer) SyncStatus(ctx context.Context, b *Booking) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.post(ctx, syncPayload{Event: "booking.status", Booking: b}); err != nil {
		return err
	}
	return s.store.MarkSynced(b.Ref)
}

// SyncPending retries every unsynced booking and reports how many succeeded.
func (s *Syncer) SyncPending(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}

	pending, err := s.store.ListUnsynced()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, b := range pending {
		if err := s.post(ctx, syncPayload{Event: "booking.sync", Booking: b}); err != nil {
			log.Printf("[booking] sync %s failed: %v", b.Ref, err)
			continue
		}
		if err := s.store.MarkSynced(b.Ref); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

func (s *Syncer) post(ctx context.Context, payload syncPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
