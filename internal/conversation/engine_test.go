package conversation

import (
	"strings"
	"testing"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/calendar"
	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
}

func testEngine(lang mahabote.Language) *Engine {
	astro := mahabote.NewEngineAt(calendar.New(), fixedNow)
	return NewEngineAt(astro, NewStore(lang), fixedNow)
}

func TestDialogue_FullFlow(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "webui:abc"

	greet := e.Greeting(sid)
	if greet.State != StateGreeting {
		t.Fatalf("state = %q, want greeting", greet.State)
	}

	r := e.ProcessMessage(sid, "Su Mon Myint Oo")
	if r.State != StateAskDob {
		t.Fatalf("state = %q, want ask_dob", r.State)
	}
	if !strings.Contains(r.Text, "Su Mon Myint Oo") {
		t.Errorf("dob prompt should echo the name: %q", r.Text)
	}

	r = e.ProcessMessage(sid, "1978-10-10")
	if r.State != StateReadingShown {
		t.Fatalf("state = %q, want reading_shown", r.State)
	}
	if !strings.Contains(r.Text, "ဘင်္ဂအိမ်") {
		t.Errorf("reading should name the binga house:\n%s", r.Text)
	}
	if !strings.Contains(r.Text, "Tarot") {
		t.Error("reading should end with the promo")
	}

	r = e.ProcessMessage(sid, "yes")
	if r.State != StateForecastShown {
		t.Fatalf("state = %q, want forecast_shown", r.State)
	}
	if !strings.Contains(r.Text, "August 2026") {
		t.Errorf("forecast should start at the current month:\n%s", r.Text)
	}

	r = e.ProcessMessage(sid, "anything else")
	if r.State != StateForecastShown {
		t.Fatalf("state = %q, want forecast_shown", r.State)
	}
	if r.Text != text(mahabote.LangMyanmar, "forecast_done") {
		t.Errorf("after forecast, reply = %q", r.Text)
	}
}

func TestDialogue_EmptyNameReprompts(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	r := e.ProcessMessage("webui:x", "   ")
	if r.State != StateGreeting {
		t.Errorf("state = %q, want greeting", r.State)
	}
	if r.Text != text(mahabote.LangMyanmar, "ask_name") {
		t.Errorf("reply = %q, want ask_name", r.Text)
	}
}

func TestDialogue_InvalidDateKeepsName(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "webui:x"

	e.ProcessMessage(sid, "Mya Mya")
	r := e.ProcessMessage(sid, "not a date")
	if r.State != StateAskDob {
		t.Fatalf("state = %q, want ask_dob", r.State)
	}
	if r.Text != text(mahabote.LangMyanmar, "invalid_date") {
		t.Errorf("reply = %q, want invalid_date", r.Text)
	}
	if v := e.View(sid); v.Name != "Mya Mya" {
		t.Errorf("name = %q, want preserved", v.Name)
	}
}

func TestDialogue_WednesdayBranch(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "telegram:42"

	e.ProcessMessage(sid, "Aye Aye")
	r := e.ProcessMessage(sid, "1990-05-16") // a Wednesday
	if r.State != StateAskWednesday {
		t.Fatalf("state = %q, want ask_wednesday", r.State)
	}

	r = e.ProcessMessage(sid, "lunchtime?")
	if r.State != StateAskWednesday {
		t.Fatalf("state = %q, want ask_wednesday after invalid answer", r.State)
	}
	if r.Text != text(mahabote.LangMyanmar, "wednesday_invalid") {
		t.Errorf("reply = %q, want wednesday_invalid", r.Text)
	}

	r = e.ProcessMessage(sid, "ညနေ")
	if r.State != StateReadingShown {
		t.Fatalf("state = %q, want reading_shown", r.State)
	}
	if !strings.Contains(r.Text, "ရာဟု") {
		t.Errorf("afternoon birth should read as Rahu:\n%s", r.Text)
	}
}

func TestDialogue_WednesdayMorningEnglish(t *testing.T) {
	e := testEngine(mahabote.LangEnglish)
	const sid = "webui:en"

	e.ProcessMessage(sid, "John")
	r := e.ProcessMessage(sid, "1990-05-16")
	if r.State != StateAskWednesday {
		t.Fatalf("state = %q, want ask_wednesday", r.State)
	}

	r = e.ProcessMessage(sid, "MORNING")
	if r.State != StateReadingShown {
		t.Fatalf("state = %q, want reading_shown", r.State)
	}
	if !strings.Contains(r.Text, "Mercury") {
		t.Errorf("morning birth should read as Mercury:\n%s", r.Text)
	}
	if strings.Contains(r.Text, "ဘင်္ဂ") {
		t.Error("english reading should not contain myanmar house names")
	}
}

func TestDialogue_ThanksAndOther(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "webui:x"

	e.ProcessMessage(sid, "Mya Mya")
	e.ProcessMessage(sid, "1978-10-10")

	r := e.ProcessMessage(sid, "ကျေးဇူးတင်ပါတယ်")
	if r.Text != text(mahabote.LangMyanmar, "thank_response") {
		t.Errorf("thanks reply = %q", r.Text)
	}
	if r.State != StateReadingShown {
		t.Errorf("state = %q, thanks should not advance", r.State)
	}

	r = e.ProcessMessage(sid, "hmm")
	if r.Text != text(mahabote.LangMyanmar, "other_response") {
		t.Errorf("other reply = %q", r.Text)
	}
}

func TestDialogue_BookingIntentWinsInAnyState(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "webui:x"

	e.ProcessMessage(sid, "Mya Mya")

	// Mid-flow booking request answers with the link without losing state.
	r := e.ProcessMessage(sid, "I want an appointment")
	if r.Text != text(mahabote.LangMyanmar, "booking_link") {
		t.Errorf("reply = %q, want booking_link", r.Text)
	}
	if r.State != StateAskDob {
		t.Errorf("state = %q, want ask_dob preserved", r.State)
	}

	e.ProcessMessage(sid, "1978-10-10")
	r = e.ProcessMessage(sid, "ရက်ချိန်း ယူချင်ပါတယ်")
	if r.Text != text(mahabote.LangMyanmar, "booking_link") {
		t.Errorf("reply = %q, want booking_link", r.Text)
	}
	if r.State != StateReadingShown {
		t.Errorf("state = %q, want reading_shown preserved", r.State)
	}
}

func TestSetLanguage(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)
	const sid = "webui:x"

	if got := e.SetLanguage(sid, mahabote.LangEnglish); got != mahabote.LangEnglish {
		t.Fatalf("lang = %q, want en", got)
	}
	r := e.Greeting(sid)
	if !strings.Contains(r.Text, "Welcome") {
		t.Errorf("greeting should be english: %q", r.Text)
	}
}

func TestParseDate(t *testing.T) {
	e := testEngine(mahabote.LangMyanmar)

	tests := []struct {
		in   string
		want string // "" means reject
	}{
		{"1990-05-15", "1990-05-15"},
		{"1990/05/15", "1990-05-15"},
		{"15-05-1990", "1990-05-15"},
		{"15/05/1990", "1990-05-15"},
		{"1990.05.15", "1990-05-15"},
		{"born on 1990-5-15 I think", "1990-05-15"},
		{"1990 05 15", "1990-05-15"},
		{"1899-12-31", ""},
		{"2044-01-01", ""}, // future
		{"hello", ""},
		{"15-13-1990", ""},
	}

	for _, tt := range tests {
		got, ok := e.parseDate(tt.in)
		if tt.want == "" {
			if ok {
				t.Errorf("parseDate(%q) = %v, want reject", tt.in, got)
			}
			continue
		}
		if !ok {
			t.Errorf("parseDate(%q) rejected, want %s", tt.in, tt.want)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}
