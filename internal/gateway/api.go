package gateway

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/booking"
	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

// apiHandler builds the REST surface the web UI and the admin tooling use.
// It is mounted under /api/ on the web UI server.
func (g *Gateway) apiHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/init", g.handleInit)
	mux.HandleFunc("POST /api/chat", g.handleChat)
	mux.HandleFunc("POST /api/set_lang", g.handleSetLang)
	mux.HandleFunc("GET /api/session", g.handleSession)
	mux.HandleFunc("POST /api/reset", g.handleReset)

	mux.HandleFunc("POST /api/bookings", g.handleCreateBooking)
	mux.HandleFunc("GET /api/bookings", g.requireAdmin(g.handleListBookings))
	mux.HandleFunc("POST /api/bookings/{ref}/status", g.requireAdmin(g.handleBookingStatus))
	mux.HandleFunc("DELETE /api/bookings/{ref}", g.requireAdmin(g.handleDeleteBooking))

	mux.HandleFunc("POST /api/admin/report", g.requireAdmin(g.handleReport))

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// requireAdmin guards the booking management and report endpoints. With no
// token configured the endpoints stay closed.
func (g *Gateway) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := g.cfg.Report.AdminToken
		if token == "" {
			writeError(w, http.StatusForbidden, "admin API disabled")
			return
		}
		got := r.Header.Get("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			writeError(w, http.StatusUnauthorized, "invalid admin token")
			return
		}
		next(w, r)
	}
}

func sessionID(r *http.Request) string {
	return r.URL.Query().Get("session_id")
}

func (g *Gateway) handleInit(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	reply := g.conv.Greeting(sid)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": reply.Text,
		"state":   reply.State,
		"hint":    reply.Hint,
	})
}

// handleChat is the HTTP fallback for clients without a websocket.
func (g *Gateway) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "session_id and message are required")
		return
	}
	reply := g.conv.ProcessMessage(req.SessionID, req.Message)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": reply.Text,
		"state":   reply.State,
		"hint":    reply.Hint,
	})
}

func (g *Gateway) handleSetLang(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Language  string `json:"language"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	lang := g.conv.SetLanguage(req.SessionID, mahabote.ParseLanguage(req.Language))
	writeJSON(w, http.StatusOK, map[string]any{"lang": lang})
}

func (g *Gateway) handleSession(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	writeJSON(w, http.StatusOK, g.conv.View(sid))
}

func (g *Gateway) handleReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	g.conv.Reset(req.SessionID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (g *Gateway) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var b booking.Booking
	if !readJSON(w, r, &b) {
		return
	}
	if err := g.store.Create(&b); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("[api] booking created: %s (%s)", b.Ref, b.Name)

	// Push to the webhook off the request path; the cron retry picks up
	// anything that fails here.
	if g.syncer.Enabled() {
		go func(b booking.Booking) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := g.syncer.SyncNew(ctx, &b); err != nil {
				log.Printf("[api] booking %s webhook push failed: %v", b.Ref, err)
			}
		}(b)
	}

	writeJSON(w, http.StatusCreated, b)
}

func (g *Gateway) handleListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := g.store.List(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (g *Gateway) handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	var req struct {
		Status string `json:"status"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if err := g.store.UpdateStatus(ref, req.Status); err != nil {
		if err == booking.ErrNotFound {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := g.store.Get(ref)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if g.syncer.Enabled() {
		go func(b booking.Booking) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := g.syncer.SyncStatus(ctx, &b); err != nil {
				log.Printf("[api] booking %s status push failed: %v", b.Ref, err)
			}
		}(*b)
	}
	writeJSON(w, http.StatusOK, b)
}

func (g *Gateway) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	if err := g.store.Delete(ref); err != nil {
		if err == booking.ErrNotFound {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (g *Gateway) handleReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		BirthDate   string `json:"birth_date"` // YYYY-MM-DD
		WednesdayPM bool   `json:"wednesday_pm"`
		Language    string `json:"lang"`
		DeliverTo   string `json:"deliver_to"` // optional channel:chat-id
	}
	if !readJSON(w, r, &req) {
		return
	}

	dob, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	reading, err := g.astro.Calculate(req.Name, dob, req.WednesdayPM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lang := mahabote.ParseLanguage(req.Language)
	entries := g.astro.Forecast(reading, lang)

	path, err := g.reports.Generate(reading, entries, lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[api] report card generated: %s", path)

	if req.DeliverTo != "" {
		if err := g.deliverReport(req.DeliverTo, path, reading.Name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}
