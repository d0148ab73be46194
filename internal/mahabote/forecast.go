package mahabote

import (
	"time"

	"github.com/kyawzl/mahabote-bot/internal/calendar"
)

// ForecastEntry is one month of the six-month outlook.
type ForecastEntry struct {
	MonthLabel   string // Gregorian month + year, e.g. "August 2026"
	MonthLabelMM string // approximate Myanmar month name
	Do           string
	Dont         string
	Modifier     string
}

// GenerateForecast produces the six-month Do/Don't outlook for a house. The
// guidance lists rotate independently so shorter lists wrap around, and each
// month carries its fixed seasonal modifier. ref anchors the month labels;
// each entry advances thirty days.
func GenerateForecast(houseIndex int, lang Language, ref time.Time) []ForecastEntry {
	rules, ok := RulesByIndex(houseIndex)
	if !ok {
		rules = forecastRules[0]
	}

	do := pickList(rules.DoMM, rules.DoEN, lang)
	dont := pickList(rules.DontMM, rules.DontEN, lang)

	entries := make([]ForecastEntry, 0, 6)
	for i := 0; i < 6; i++ {
		target := ref.AddDate(0, 0, i*30)
		entries = append(entries, ForecastEntry{
			MonthLabel:   target.Format("January 2006"),
			MonthLabelMM: calendar.MonthName(target.Month()),
			Do:           do[i%len(do)],
			Dont:         dont[i%len(dont)],
			Modifier:     pick(monthModifiersMM[i], monthModifiersEN[i], lang),
		})
	}
	return entries
}
