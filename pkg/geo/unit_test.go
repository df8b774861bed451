package geo

import "testing"

func TestParseUnit(t *testing.T) {
	cases := map[string]Unit{
		"K":      Kilometers,
		"k":      Kilometers,
		"KM":     Kilometers,
		"Km":     Kilometers,
		"N":      NauticalMiles,
		"n":      NauticalMiles,
		"MN":     NauticalMiles,
		"mn":     NauticalMiles,
		"M":      Miles,
		"mi":     Miles,
		"":       Miles,
		"NM":     Miles,
		"meters": Miles,
	}

	for in, want := range cases {
		if got := ParseUnit(in); got != want {
			t.Errorf("ParseUnit(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestUnitString(t *testing.T) {
	if Kilometers.String() != "km" || NauticalMiles.String() != "nmi" || Miles.String() != "mi" {
		t.Errorf("unexpected unit names: %s %s %s", Kilometers, NauticalMiles, Miles)
	}
}
