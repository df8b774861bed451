package geo

import "strings"

// Unit selects the output unit of a distance. The zero value is Miles.
type Unit uint8

const (
	Miles Unit = iota
	Kilometers
	NauticalMiles
)

// ParseUnit never fails: unknown or empty text falls back to Miles.
func ParseUnit(s string) Unit {
	switch strings.ToUpper(s) {
	case "K", "KM":
		return Kilometers
	case "MN", "N":
		return NauticalMiles
	default:
		return Miles
	}
}

func (u Unit) String() string {
	switch u {
	case Kilometers:
		return "km"
	case NauticalMiles:
		return "nmi"
	default:
		return "mi"
	}
}

func (u Unit) fromMiles(miles float64) float64 {
	switch u {
	case Kilometers:
		return miles * milesToKilometers
	case NauticalMiles:
		return miles * milesToNauticalMiles
	default:
		return miles
	}
}
