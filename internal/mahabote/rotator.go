package mahabote

// planetCycle is the eight-planet thet-yauk order the fortune walks through,
// one step per year of age: Sun, Moon, Mars, Mercury, Saturn, Jupiter, Rahu,
// Venus.
var planetCycle = [8]int{
	PlanetSun, PlanetMoon, PlanetMars, PlanetMercury,
	PlanetSaturn, PlanetJupiter, PlanetRahu, PlanetVenus,
}

// Rotation is the thet-yauk position for a target year.
type Rotation struct {
	CurrentAge        int
	CurrentPlanetID   int
	CurrentHouseIndex int
}

// Rotate advances the birth planet along the thet-yauk cycle to the target
// era year. Age is the traditional inclusive count, so the birth year itself
// is age 1 and the rotation starts at the birth planet.
func Rotate(birthPlanetID, birthEraYear, targetEraYear int) Rotation {
	age := targetEraYear - birthEraYear + 1

	currentPlanet := birthPlanetID
	if pos := cyclePosition(birthPlanetID); pos >= 0 {
		currentPlanet = planetCycle[floorMod(pos+age-1, 8)]
	}

	targetRemainder := floorMod(targetEraYear, 7)
	houseIndex := floorMod(chartPlanet(currentPlanet)-targetRemainder, 7)

	return Rotation{
		CurrentAge:        age,
		CurrentPlanetID:   currentPlanet,
		CurrentHouseIndex: houseIndex,
	}
}

func cyclePosition(planetID int) int {
	for i, p := range planetCycle {
		if p == planetID {
			return i
		}
	}
	return -1
}
