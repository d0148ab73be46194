// Package mahabote implements the traditional Myanmar Mahabote chart: the
// eight-day week, the seven houses derived from the era-year remainder, the
// thet-yauk yearly rotation and the six-month Do/Don't forecast.
package mahabote

import (
	"fmt"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/calendar"
)

// Reading is the complete chart for one person.
type Reading struct {
	Name        string
	BirthDate   time.Time
	WednesdayPM bool

	Calendar      calendar.Date
	EraYear       int
	YearRemainder int

	BirthDay   WeekdayPlanet
	HouseIndex int
	House      House

	CurrentAge        int
	CurrentEraYear    int
	CurrentHouseIndex int
	CurrentHouse      House

	// ForecastRules belong to the current-year house, not the birth house.
	ForecastRules ForecastRuleSet
}

// Engine computes readings. The calendar converter and clock are injected so
// tests can pin both.
type Engine struct {
	conv calendar.Converter
	now  func() time.Time
}

func NewEngine(conv calendar.Converter) *Engine {
	return &Engine{conv: conv, now: time.Now}
}

// NewEngineAt pins the engine's clock, for deterministic readings.
func NewEngineAt(conv calendar.Converter, now func() time.Time) *Engine {
	return &Engine{conv: conv, now: now}
}

// Weekday reports the calendar weekday index (0=Saturday .. 6=Friday) for a
// birth date, used to decide whether the Wednesday AM/PM question applies.
func (e *Engine) Weekday(dob time.Time) (int, error) {
	d, err := e.conv.Convert(dob.Year(), dob.Month(), dob.Day())
	if err != nil {
		return 0, err
	}
	return d.Weekday, nil
}

// Calculate computes the full reading: birth-house placement plus the
// thet-yauk position for the current era year.
func (e *Engine) Calculate(name string, dob time.Time, wednesdayPM bool) (*Reading, error) {
	birthCal, err := e.conv.Convert(dob.Year(), dob.Month(), dob.Day())
	if err != nil {
		return nil, fmt.Errorf("convert birth date: %w", err)
	}

	res, err := Resolve(birthCal.Weekday, wednesdayPM, birthCal.EraYear)
	if err != nil {
		return nil, err
	}
	house, _ := HouseByIndex(res.HouseIndex)

	now := e.now()
	nowCal, err := e.conv.Convert(now.Year(), now.Month(), now.Day())
	if err != nil {
		return nil, fmt.Errorf("convert current date: %w", err)
	}

	rot := Rotate(res.WeekdayPlanet.PlanetID, birthCal.EraYear, nowCal.EraYear)
	currentHouse, _ := HouseByIndex(rot.CurrentHouseIndex)
	rules, _ := RulesByIndex(rot.CurrentHouseIndex)

	return &Reading{
		Name:              name,
		BirthDate:         dob,
		WednesdayPM:       wednesdayPM,
		Calendar:          birthCal,
		EraYear:           birthCal.EraYear,
		YearRemainder:     res.YearRemainder,
		BirthDay:          res.WeekdayPlanet,
		HouseIndex:        res.HouseIndex,
		House:             house,
		CurrentAge:        rot.CurrentAge,
		CurrentEraYear:    nowCal.EraYear,
		CurrentHouseIndex: rot.CurrentHouseIndex,
		CurrentHouse:      currentHouse,
		ForecastRules:     rules,
	}, nil
}

// Forecast generates the six-month outlook for a reading, anchored at the
// engine's current time.
func (e *Engine) Forecast(r *Reading, lang Language) []ForecastEntry {
	return GenerateForecast(r.CurrentHouseIndex, lang, e.now())
}
