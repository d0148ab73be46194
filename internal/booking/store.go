package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a booking reference does not exist.
var ErrNotFound = errors.New("booking not found")

// Store persists bookings in sqlite.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.configure(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}
	return nil
}

func (s *Store) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			ref TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT 'general',
			note TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL,
			synced INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_synced ON bookings(synced)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create validates and inserts a booking, filling in ref, status and
// creation time.
func (s *Store) Create(b *Booking) error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("name is required")
	}
	if !ValidatePhone(b.Phone) {
		return errors.New("invalid phone number")
	}
	if b.Date == "" || b.Time == "" {
		return errors.New("date and time are required")
	}
	if b.Topic == "" {
		b.Topic = "general"
	}

	now := time.Now()
	b.Ref = NewRef(now)
	b.Status = StatusPending
	// Stored as UTC so the RFC3339 strings compare and sort correctly.
	b.CreatedAt = now.UTC()
	b.Synced = false

	_, err := s.db.Exec(`
		INSERT INTO bookings (ref, name, phone, date, time, topic, note, status, created_at, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		b.Ref, b.Name, b.Phone, b.Date, b.Time, b.Topic, b.Note, b.Status,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// Get returns one booking by reference.
func (s *Store) Get(ref string) (*Booking, error) {
	row := s.db.QueryRow(`
		SELECT ref, name, phone, date, time, topic, note, status, created_at, synced
		FROM bookings WHERE ref = ?`, ref)
	return scanBooking(row)
}

// List returns bookings newest first, optionally filtered by status.
func (s *Store) List(status string) ([]*Booking, error) {
	query := `
		SELECT ref, name, phone, date, time, topic, note, status, created_at, synced
		FROM bookings`
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CreatedSince returns bookings created at or after the cutoff, newest first.
func (s *Store) CreatedSince(cutoff time.Time) ([]*Booking, error) {
	rows, err := s.db.Query(`
		SELECT ref, name, phone, date, time, topic, note, status, created_at, synced
		FROM bookings WHERE created_at >= ? ORDER BY created_at DESC`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking to a new status and marks it unsynced so the
// change propagates on the next sync.
func (s *Store) UpdateStatus(ref, status string) error {
	if !validStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	res, err := s.db.Exec(`UPDATE bookings SET status = ?, synced = 0 WHERE ref = ?`, status, ref)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a booking.
func (s *Store) Delete(ref string) error {
	res, err := s.db.Exec(`DELETE FROM bookings WHERE ref = ?`, ref)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkSynced flags a booking as pushed to the webhook.
func (s *Store) MarkSynced(ref string) error {
	_, err := s.db.Exec(`UPDATE bookings SET synced = 1 WHERE ref = ?`, ref)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}

// ListUnsynced returns bookings not yet pushed, oldest first so retries keep
// order.
func (s *Store) ListUnsynced() ([]*Booking, error) {
	rows, err := s.db.Query(`
		SELECT ref, name, phone, date, time, topic, note, status, created_at, synced
		FROM bookings WHERE synced = 0 ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list unsynced: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var createdAt string
	var synced int
	err := row.Scan(&b.Ref, &b.Name, &b.Phone, &b.Date, &b.Time, &b.Topic, &b.Note, &b.Status, &createdAt, &synced)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.Synced = synced != 0
	return &b, nil
}
