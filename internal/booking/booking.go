// Package booking stores Tarot appointment requests and pushes them to the
// Google Sheets webhook.
package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status values a booking moves through.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// Booking is one Tarot appointment request.
type Booking struct {
	Ref       string    `json:"booking_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"`
	Topic     string    `json:"topic"`
	Note      string    `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Synced    bool      `json:"synced"`
}

// phoneRe accepts Myanmar mobile numbers in local (09...) or international
// (+959...) form.
var phoneRe = regexp.MustCompile(`^(09|\+959)\d{7,9}$`)

// ValidatePhone reports whether the number is a plausible Viber number.
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(strings.TrimSpace(phone))
}

// NewRef builds a reference like BK-20260825-3F2A9C.
func NewRef(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), suffix)
}

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	}
	return false
}
