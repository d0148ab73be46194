// Package conversation drives the reading dialogue: a small state machine
// that collects a name and birth date, asks the Wednesday morning/afternoon
// question when it applies, and renders the reading and forecast.
package conversation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

// Keyword sets. Myanmar keywords match literally; latin ones are compared
// case-insensitively.
var (
	bookingKeywords     = []string{"ရက်ချိန်း", "appointment", "book"}
	affirmativeKeywords = []string{"ဟုတ်", "ဟော", "ကဲ", "yes", "forecast", "ok"}
	thanksKeywords      = []string{"ကျေးဇူး", "thank", "ကောင်း"}
	wednesdayPMKeywords = []string{"ညနေ", "afternoon", "pm"}
	wednesdayAMKeywords = []string{"နံနက်", "morning", "am"}
)

// Reply is what the dialogue says back: the message, the state after the
// message was handled, and the input hint for the next turn.
type Reply struct {
	Text  string
	State State
	Hint  string
}

// Engine ties the session store to the astrology engine.
type Engine struct {
	astro    *mahabote.Engine
	sessions *Store
	now      func() time.Time
}

func NewEngine(astro *mahabote.Engine, sessions *Store) *Engine {
	return &Engine{astro: astro, sessions: sessions, now: time.Now}
}

// NewEngineAt pins the clock, for deterministic date-range checks in tests.
func NewEngineAt(astro *mahabote.Engine, sessions *Store, now func() time.Time) *Engine {
	return &Engine{astro: astro, sessions: sessions, now: now}
}

// Greeting opens (or reopens) the dialogue for a session.
func (e *Engine) Greeting(sessionID string) Reply {
	var r Reply
	e.sessions.Do(sessionID, func(s *Session) {
		s.State = StateGreeting
		r = Reply{
			Text:  text(s.Language, "greeting"),
			State: s.State,
			Hint:  Hint(s.Language, s.State),
		}
	})
	return r
}

// SetLanguage switches a session's language and returns it.
func (e *Engine) SetLanguage(sessionID string, lang mahabote.Language) mahabote.Language {
	var out mahabote.Language
	e.sessions.Do(sessionID, func(s *Session) {
		s.Language = lang
		out = s.Language
	})
	return out
}

// SessionView is a read-only snapshot for the session API.
type SessionView struct {
	State      State             `json:"state"`
	Language   mahabote.Language `json:"lang"`
	Name       string            `json:"name,omitempty"`
	HasReading bool              `json:"has_reading"`
	Hint       string            `json:"hint"`
}

// View returns the current snapshot, creating the session if needed.
func (e *Engine) View(sessionID string) SessionView {
	var v SessionView
	e.sessions.Do(sessionID, func(s *Session) {
		v = SessionView{
			State:      s.State,
			Language:   s.Language,
			Name:       s.Name,
			HasReading: s.Reading != nil,
			Hint:       Hint(s.Language, s.State),
		}
	})
	return v
}

// Reset drops the session.
func (e *Engine) Reset(sessionID string) {
	e.sessions.Reset(sessionID)
}

// ProcessMessage advances the dialogue by one user message.
func (e *Engine) ProcessMessage(sessionID, input string) Reply {
	input = strings.TrimSpace(input)

	var r Reply
	e.sessions.Do(sessionID, func(s *Session) {
		msg := e.step(s, input)
		r = Reply{Text: msg, State: s.State, Hint: Hint(s.Language, s.State)}
	})
	return r
}

func (e *Engine) step(s *Session, input string) string {
	lang := s.Language

	// Booking intent wins over the dialogue state, so a user deep in the
	// flow can always reach the booking link.
	if matchAny(input, bookingKeywords) {
		return text(lang, "booking_link")
	}

	switch s.State {
	case StateGreeting:
		if input == "" {
			return text(lang, "ask_name")
		}
		s.Name = input
		s.State = StateAskDob
		return fmt.Sprintf(text(lang, "ask_dob"), s.Name)

	case StateAskDob:
		dob, ok := e.parseDate(input)
		if !ok {
			return text(lang, "invalid_date")
		}
		s.BirthDate = dob

		wd, err := e.astro.Weekday(dob)
		if err != nil {
			return fmt.Sprintf(text(lang, "calc_error"), err)
		}
		if wd == 4 {
			s.State = StateAskWednesday
			return text(lang, "ask_wednesday")
		}
		return e.computeReading(s, false)

	case StateAskWednesday:
		switch {
		case matchAny(input, wednesdayPMKeywords):
			return e.computeReading(s, true)
		case matchAny(input, wednesdayAMKeywords):
			return e.computeReading(s, false)
		default:
			return text(lang, "wednesday_invalid")
		}

	case StateReadingShown:
		if matchAny(input, affirmativeKeywords) {
			s.State = StateForecastShown
			entries := e.astro.Forecast(s.Reading, lang)
			return RenderForecast(s.Reading, entries, lang) + promo[lang]
		}
		if matchAny(input, thanksKeywords) {
			return text(lang, "thank_response")
		}
		return text(lang, "other_response")

	case StateForecastShown:
		return text(lang, "forecast_done")
	}

	return text(lang, "refresh")
}

// computeReading runs the calculation and renders it. On failure the session
// keeps its name and birth date so the user can simply retry.
func (e *Engine) computeReading(s *Session, wednesdayPM bool) string {
	reading, err := e.astro.Calculate(s.Name, s.BirthDate, wednesdayPM)
	if err != nil {
		return fmt.Sprintf(text(s.Language, "calc_error"), err)
	}
	s.Reading = reading
	reply := RenderReading(reading, s.Language) + promo[s.Language]
	s.State = StateReadingShown
	return reply
}

// matchAny reports whether input contains any keyword. Latin keywords are
// matched case-insensitively, Myanmar ones byte-literally.
func matchAny(input string, keywords []string) bool {
	lower := strings.ToLower(input)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006.01.02",
	"01-02-2006",
	"01/02/2006",
}

var freeDateRe = regexp.MustCompile(`(\d{4})\s*[-/.]?\s*(\d{1,2})\s*[-/.]?\s*(\d{1,2})`)

// parseDate accepts the common numeric layouts and falls back to extracting
// year/month/day from free text. Years outside [1900, now] are rejected.
func (e *Engine) parseDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		if e.yearOK(t) {
			return t, true
		}
	}

	m := freeDateRe.FindStringSubmatch(input)
	if m != nil {
		t, err := time.Parse("2006-1-2", fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]))
		if err == nil && e.yearOK(t) {
			return t, true
		}
	}

	return time.Time{}, false
}

func (e *Engine) yearOK(t time.Time) bool {
	return t.Year() >= 1900 && t.Year() <= e.now().Year()
}
