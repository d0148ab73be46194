package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSyncer_SyncNew(t *testing.T) {
	s := openTestStore(t)

	var got syncPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b := newTestBooking()
	if err := s.Create(b); err != nil {
		t.Fatal(err)
	}

	syncer := NewSyncer(s, srv.URL)
	if err := syncer.SyncNew(context.Background(), b); err != nil {
		t.Fatal(err)
	}

	if got.Event != "booking.created" {
		t.Errorf("event = %q, want booking.created", got.Event)
	}
	if got.Booking == nil || got.Booking.Ref != b.Ref {
		t.Errorf("payload booking = %+v", got.Booking)
	}

	stored, err := s.Get(b.Ref)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.Synced {
		t.Error("booking should be marked synced after a successful push")
	}
}

func TestSyncer_SyncPendingRetries(t *testing.T) {
	s := openTestStore(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First request fails, the rest succeed.
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	first := newTestBooking()
	second := newTestBooking()
	if err := s.Create(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(second); err != nil {
		t.Fatal(err)
	}

	syncer := NewSyncer(s, srv.URL)
	synced, err := syncer.SyncPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if synced != 1 {
		t.Fatalf("synced = %d, want 1 (one push failed)", synced)
	}

	pending, err := s.ListUnsynced()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}

	// Second run drains the rest.
	synced, err = syncer.SyncPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if synced != 1 {
		t.Fatalf("retry synced = %d, want 1", synced)
	}
	pending, err = s.ListUnsynced()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending after retry = %d, want 0", len(pending))
	}
}

func TestSyncer_DisabledIsNoop(t *testing.T) {
	s := openTestStore(t)
	syncer := NewSyncer(s, "")

	if syncer.Enabled() {
		t.Error("empty webhook should disable the syncer")
	}
	b := newTestBooking()
	if err := s.Create(b); err != nil {
		t.Fatal(err)
	}
	if err := syncer.SyncNew(context.Background(), b); err != nil {
		t.Errorf("disabled sync should not error: %v", err)
	}
	if n, err := syncer.SyncPending(context.Background()); err != nil || n != 0 {
		t.Errorf("disabled SyncPending = (%d, %v), want (0, nil)", n, err)
	}
}
