// Package calendar converts Gregorian dates into the Myanmar-calendar data the
// Mahabote calculation consumes: era year, the 0=Saturday..6=Friday weekday
// index, moon phase and month name.
package calendar

import (
	"fmt"
	"math"
	"time"
)

// Myanmar solar year constants. The era year of a Julian day number jdn is
// floor((jdn - 0.5 - eraOffset) / solarYear).
const (
	solarYear = 1577917828.0 / 4320000.0 // days
	eraOffset = 1954168.050623          // JD of Myanmar era epoch
)

const synodicMonth = 29.530588853 // days

// Date is the Myanmar-calendar view of a Gregorian date.
type Date struct {
	EraYear     int
	Weekday     int // 0=Saturday .. 6=Friday
	MonthName   string
	MonthNameEn string
	MoonPhase   string
	MoonPhaseEn string
	Display     string
	DisplayEn   string
}

// Converter is the collaborator interface the rest of the system depends on.
type Converter interface {
	Convert(year int, month time.Month, day int) (Date, error)
}

// MyanmarConverter implements Converter with the standard JDN arithmetic.
type MyanmarConverter struct{}

func New() *MyanmarConverter {
	return &MyanmarConverter{}
}

func (c *MyanmarConverter) Convert(year int, month time.Month, day int) (Date, error) {
	if year < 1 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}

	jdn := JulianDayNumber(year, month, day)
	eraYear := int(math.Floor((float64(jdn) - 0.5 - eraOffset) / solarYear))
	weekday := (jdn + 2) % 7

	phaseMM, phaseEN := moonPhase(jdn)
	monthMM := MonthName(month)
	monthEN := monthNamesEn[int(month)-1]

	return Date{
		EraYear:     eraYear,
		Weekday:     weekday,
		MonthName:   monthMM,
		MonthNameEn: monthEN,
		MoonPhase:   phaseMM,
		MoonPhaseEn: phaseEN,
		Display:     fmt.Sprintf("%d ခုနှစ် %s %s", eraYear, monthMM, phaseMM),
		DisplayEn:   fmt.Sprintf("%d ME, %s, %s", eraYear, monthEN, phaseEN),
	}, nil
}

// JulianDayNumber for the given Gregorian calendar date (at noon).
func JulianDayNumber(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// moonPhase is an approximation from the mean synodic month, anchored at the
// new moon of 2000-01-06.
func moonPhase(jdn int) (mm, en string) {
	age := math.Mod(float64(jdn)-2451550.1, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}
	day := int(age) + 1

	switch {
	case age < 1:
		return "လကွယ်", "New Moon"
	case age < 14:
		return fmt.Sprintf("လဆန်း %d ရက်", day), fmt.Sprintf("Waxing %d", day)
	case age < 15.5:
		return "လပြည့်", "Full Moon"
	default:
		return fmt.Sprintf("လဆုတ် %d ရက်", day-15), fmt.Sprintf("Waning %d", day-15)
	}
}

// Myanmar month names mapped by Gregorian month. This is the usual rough
// correspondence (April is the first month, Tagu), not a lunisolar boundary
// computation.
var monthNames = [12]string{
	"ပြာသိုလ", "တပို့တွဲလ", "တပေါင်းလ", "တန်ခူးလ",
	"ကဆုန်လ", "နယုန်လ", "ဝါဆိုလ", "ဝါခေါင်လ",
	"တော်သလင်းလ", "သီတင်းကျွတ်လ", "တန်ဆောင်မုန်းလ", "နတ်တော်လ",
}

var monthNamesEn = [12]string{
	"Pyatho", "Tabodwe", "Tabaung", "Tagu",
	"Kason", "Nayon", "Waso", "Wagaung",
	"Tawthalin", "Thadingyut", "Tazaungmon", "Natdaw",
}

// MonthName returns the Myanmar month name for a Gregorian month.
func MonthName(month time.Month) string {
	return monthNames[(int(month)-1)%12]
}
