package conversation

import (
	"fmt"
	"strings"

	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

const divider = "═══════════════════════════════════════"

// RenderReading formats a full reading as markdown in the chosen language.
func RenderReading(r *mahabote.Reading, lang mahabote.Language) string {
	L := labels[lang]
	h := r.House
	bd := r.BirthDay

	var houseDisplay, currentHouseDisplay, dayDisplay, planetDisplay, animalDisplay, directionDisplay string
	var personality string
	var strengths []string

	if lang == mahabote.LangEnglish {
		houseDisplay = h.NameEN
		currentHouseDisplay = fmt.Sprintf("%s (%s)", r.CurrentHouse.NameEN, r.CurrentHouse.Nature)
		dayDisplay = fmt.Sprintf("%s (%s)", bd.NameEN, bd.PlanetEN)
		planetDisplay = bd.PlanetEN
		animalDisplay = bd.AnimalEN
		directionDisplay = bd.DirectionEN
		personality = h.PersonalityEN
		strengths = h.StrengthsEN
	} else {
		houseDisplay = fmt.Sprintf("%s (%s)", h.NameMM, h.NameEN)
		currentHouseDisplay = fmt.Sprintf("%s (%s)", r.CurrentHouse.NameMM, r.CurrentHouse.NameEN)
		dayDisplay = fmt.Sprintf("%s (%s)", bd.NameMM, bd.NameEN)
		planetDisplay = fmt.Sprintf("%s (%s)", bd.PlanetMM, bd.PlanetEN)
		animalDisplay = fmt.Sprintf("%s (%s)", bd.AnimalMM, bd.AnimalEN)
		directionDisplay = bd.DirectionMM
		personality = h.PersonalityMM
		strengths = h.StrengthsMM
	}

	moonPhase := r.Calendar.MoonPhase
	myanmarDate := r.Calendar.Display
	if lang == mahabote.LangEnglish {
		moonPhase = r.Calendar.MoonPhaseEn
		myanmarDate = r.Calendar.DisplayEn
	}

	lines := []string{
		fmt.Sprintf(L.title, r.Name),
		"",
		divider,
		fmt.Sprintf("%s: %s", L.birthDate, r.BirthDate.Format("2006-01-02")),
		fmt.Sprintf("%s: %s", L.myanmarDate, myanmarDate),
		fmt.Sprintf("%s: %d %s", L.myanmarEra, r.EraYear, fmt.Sprintf(L.eraSuffix, r.YearRemainder)),
		fmt.Sprintf("%s: %s", L.currentAge, fmt.Sprintf(L.ageFormat, r.CurrentAge, r.CurrentEraYear)),
		fmt.Sprintf("%s: %s", L.currentFortune, currentHouseDisplay),
		fmt.Sprintf("%s: %s", L.moonPhase, moonPhase),
		"",
		divider,
		fmt.Sprintf("%s: %s", L.houseLabel, houseDisplay),
		fmt.Sprintf("%s: %d", L.houseIndex, r.HouseIndex),
		fmt.Sprintf("%s: %s", L.natureLabel, h.Nature),
		"",
		divider,
		fmt.Sprintf("%s: %s", L.birthDayLabel, dayDisplay),
		fmt.Sprintf("%s: %s", L.planetLabel, planetDisplay),
		fmt.Sprintf("%s: %s", L.animalLabel, animalDisplay),
		fmt.Sprintf("%s: %s", L.directionLabel, directionDisplay),
		"",
		divider,
		L.personality,
		"",
		personality,
		"",
		L.strengths,
	}
	for _, s := range strengths {
		lines = append(lines, fmt.Sprintf("  ✅ %s", s))
	}
	lines = append(lines, "", divider)

	return strings.Join(lines, "\n")
}

// RenderForecast formats the six-month forecast as markdown.
func RenderForecast(r *mahabote.Reading, entries []mahabote.ForecastEntry, lang mahabote.Language) string {
	L := labels[lang]

	var currentHouseDisplay, birthHouseDisplay string
	if lang == mahabote.LangEnglish {
		currentHouseDisplay = fmt.Sprintf("%s (%s)", r.CurrentHouse.NameEN, r.CurrentHouse.Nature)
		birthHouseDisplay = fmt.Sprintf("%s (%s)", r.House.NameEN, r.House.Nature)
	} else {
		currentHouseDisplay = fmt.Sprintf("%s (%s)", r.CurrentHouse.NameMM, r.CurrentHouse.NameEN)
		birthHouseDisplay = fmt.Sprintf("%s (%s)", r.House.NameMM, r.House.NameEN)
	}

	lines := []string{
		fmt.Sprintf(L.forecastTitle, r.Name),
		fmt.Sprintf(L.forecastAge, r.CurrentAge, r.CurrentEraYear),
		fmt.Sprintf("%s: %s", L.forecastFortune, currentHouseDisplay),
		fmt.Sprintf("%s: %s", L.forecastHouse, birthHouseDisplay),
		"",
		divider,
	}

	for _, f := range entries {
		lines = append(lines,
			"",
			fmt.Sprintf("🗓️ **%s**", f.MonthLabel),
			fmt.Sprintf("💫 %s", f.Modifier),
			fmt.Sprintf("%s: %s", L.doLabel, f.Do),
			fmt.Sprintf("%s: %s", L.dontLabel, f.Dont),
		)
	}

	lines = append(lines, "", divider)
	return strings.Join(lines, "\n")
}
