package mahabote

import "testing"

func TestRotate_BirthYearIsAgeOne(t *testing.T) {
	// In the birth year the rotation has not moved: age is 1 and the
	// current house equals the birth house.
	for wd := 0; wd <= 6; wd++ {
		wp, _ := Weekday(wd, false)
		res, err := Resolve(wd, false, 1340)
		if err != nil {
			t.Fatal(err)
		}
		rot := Rotate(wp.PlanetID, 1340, 1340)
		if rot.CurrentAge != 1 {
			t.Errorf("weekday %d: age = %d, want 1", wd, rot.CurrentAge)
		}
		if rot.CurrentPlanetID != wp.PlanetID {
			t.Errorf("weekday %d: planet = %d, want %d", wd, rot.CurrentPlanetID, wp.PlanetID)
		}
		if rot.CurrentHouseIndex != res.HouseIndex {
			t.Errorf("weekday %d: house = %d, want birth house %d", wd, rot.CurrentHouseIndex, res.HouseIndex)
		}
	}
}

func TestRotate_CycleRepeatsEveryEightYears(t *testing.T) {
	base := Rotate(PlanetMars, 1340, 1345)
	next := Rotate(PlanetMars, 1340, 1345+8)
	if base.CurrentPlanetID != next.CurrentPlanetID {
		t.Errorf("planet after 8 years = %d, want %d", next.CurrentPlanetID, base.CurrentPlanetID)
	}
	if next.CurrentAge != base.CurrentAge+8 {
		t.Errorf("age = %d, want %d", next.CurrentAge, base.CurrentAge+8)
	}
}

func TestRotate_WalksPlanetCycle(t *testing.T) {
	// Starting from the Sun, the next seven years follow the cycle order.
	want := []int{PlanetSun, PlanetMoon, PlanetMars, PlanetMercury, PlanetSaturn, PlanetJupiter, PlanetRahu, PlanetVenus}
	for i, w := range want {
		rot := Rotate(PlanetSun, 1340, 1340+i)
		if rot.CurrentPlanetID != w {
			t.Errorf("year +%d: planet = %d, want %d", i, rot.CurrentPlanetID, w)
		}
	}
}

func TestRotate_RahuOccupiesMercuryPosition(t *testing.T) {
	// A year landing on Rahu places the chart at Mercury's house.
	rahu := Rotate(PlanetSun, 1340, 1346)   // position 6 of the cycle
	if rahu.CurrentPlanetID != PlanetRahu {
		t.Fatalf("planet = %d, want Rahu", rahu.CurrentPlanetID)
	}
	mercury := Rotate(PlanetMoon, 1340, 1342) // position 3 of the cycle
	if mercury.CurrentPlanetID != PlanetMercury {
		t.Fatalf("planet = %d, want Mercury", mercury.CurrentPlanetID)
	}
	// Same target year, both chart at Mercury's slot.
	wantHouse := floorMod(PlanetMercury-floorMod(1346, 7), 7)
	if rahu.CurrentHouseIndex != wantHouse {
		t.Errorf("rahu house = %d, want %d", rahu.CurrentHouseIndex, wantHouse)
	}
}

func TestRotate_UnknownPlanetFallsBack(t *testing.T) {
	rot := Rotate(42, 1340, 1350)
	if rot.CurrentPlanetID != 42 {
		t.Errorf("planet = %d, want fallback to birth planet", rot.CurrentPlanetID)
	}
	if rot.CurrentHouseIndex < 0 || rot.CurrentHouseIndex > 6 {
		t.Errorf("house index %d out of range", rot.CurrentHouseIndex)
	}
}
