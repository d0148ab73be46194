package mahabote

import "fmt"

// Resolution is the chart placement for a birth: the eight-day-week record,
// the era-year remainder and the resulting house index.
type Resolution struct {
	WeekdayPlanet WeekdayPlanet
	YearRemainder int
	HouseIndex    int
}

// chartPlanet maps a planet onto the 7-house chart layout. Rahu occupies
// Mercury's position there.
func chartPlanet(planetID int) int {
	if planetID == PlanetRahu {
		return PlanetMercury
	}
	return planetID
}

// floorMod keeps the result in [0, m) even for negative dividends.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Resolve places a birth on the chart: weekday is the calendar weekday
// (0=Saturday .. 6=Friday), eraYear the Myanmar era year of the birth date.
func Resolve(weekday int, wednesdayPM bool, eraYear int) (Resolution, error) {
	wp, ok := Weekday(weekday, wednesdayPM)
	if !ok {
		return Resolution{}, fmt.Errorf("weekday %d out of range", weekday)
	}
	remainder := floorMod(eraYear, 7)
	houseIndex := floorMod(chartPlanet(wp.PlanetID)-remainder, 7)
	return Resolution{
		WeekdayPlanet: wp,
		YearRemainder: remainder,
		HouseIndex:    houseIndex,
	}, nil
}
