package mahabote

import (
	"testing"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/calendar"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
}

func testEngine() *Engine {
	return NewEngineAt(calendar.New(), fixedNow)
}

func TestCalculate_KnownReading(t *testing.T) {
	// Oct 10, 1978 was a Tuesday in 1340 ME: Mars, remainder 3, binga.
	e := testEngine()
	r, err := e.Calculate("Su Mon Myint Oo", time.Date(1978, time.October, 10, 0, 0, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatal(err)
	}

	if r.EraYear != 1340 {
		t.Errorf("era year = %d, want 1340", r.EraYear)
	}
	if r.YearRemainder != 3 {
		t.Errorf("remainder = %d, want 3", r.YearRemainder)
	}
	if r.BirthDay.PlanetID != PlanetMars {
		t.Errorf("birth planet = %d, want Mars", r.BirthDay.PlanetID)
	}
	if r.House.ID != "binga" {
		t.Errorf("house = %q, want binga", r.House.ID)
	}
	if r.CurrentEraYear != 1388 {
		t.Errorf("current era year = %d, want 1388", r.CurrentEraYear)
	}
	if r.CurrentAge != 49 {
		t.Errorf("age = %d, want 49", r.CurrentAge)
	}
	if r.CurrentAge != r.CurrentEraYear-r.EraYear+1 {
		t.Errorf("age %d inconsistent with era years %d..%d", r.CurrentAge, r.EraYear, r.CurrentEraYear)
	}
	if r.CurrentHouse.ID != "puti" {
		t.Errorf("current house = %q, want puti", r.CurrentHouse.ID)
	}
	if len(r.ForecastRules.DoMM) == 0 {
		t.Error("forecast rules empty")
	}
}

func TestCalculate_WednesdaySplit(t *testing.T) {
	e := testEngine()
	dob := time.Date(1990, time.May, 16, 0, 0, 0, 0, time.UTC)

	wd, err := e.Weekday(dob)
	if err != nil {
		t.Fatal(err)
	}
	if wd != 4 {
		t.Fatalf("weekday = %d, want 4 (Wednesday)", wd)
	}

	am, err := e.Calculate("Aye Aye", dob, false)
	if err != nil {
		t.Fatal(err)
	}
	pm, err := e.Calculate("Aye Aye", dob, true)
	if err != nil {
		t.Fatal(err)
	}

	if am.BirthDay.PlanetID != PlanetMercury {
		t.Errorf("am planet = %d, want Mercury", am.BirthDay.PlanetID)
	}
	if pm.BirthDay.PlanetID != PlanetRahu {
		t.Errorf("pm planet = %d, want Rahu", pm.BirthDay.PlanetID)
	}
	if am.HouseIndex != pm.HouseIndex {
		t.Errorf("am house %d != pm house %d, Rahu should chart as Mercury", am.HouseIndex, pm.HouseIndex)
	}
	if am.House.ID != "marana" {
		t.Errorf("house = %q, want marana", am.House.ID)
	}
}

func TestForecast_UsesCurrentHouse(t *testing.T) {
	e := testEngine()
	r, err := e.Calculate("Su Mon Myint Oo", time.Date(1978, time.October, 10, 0, 0, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatal(err)
	}

	entries := e.Forecast(r, LangMyanmar)
	if len(entries) != 6 {
		t.Fatalf("got %d entries, want 6", len(entries))
	}
	if entries[0].Do != r.ForecastRules.DoMM[0] {
		t.Errorf("forecast do = %q, want current-house rule %q", entries[0].Do, r.ForecastRules.DoMM[0])
	}
	if entries[0].MonthLabel != "August 2026" {
		t.Errorf("first month = %q, want August 2026", entries[0].MonthLabel)
	}
}
