package geo

import "math"

const (
	// 60 nautical miles per degree of arc, 1.1515 statute miles per nautical mile.
	nauticalMilesPerDegree  = 60.0
	statuteMilesPerNautical = 1.1515

	milesToKilometers    = 1.609344
	milesToNauticalMiles = 0.8684
)

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// Distance returns the great-circle distance between (lat1, lon1) and (lat2, lon2) using the
// spherical law of cosines. unit is matched case-insensitively: "K"/"KM" kilometers,
// "N"/"MN" nautical miles, anything else statute miles.
func Distance(lat1, lon1, lat2, lon2 float64, unit string) float64 {
	return DistanceIn(lat1, lon1, lat2, lon2, ParseUnit(unit))
}

func DistanceIn(lat1, lon1, lat2, lon2 float64, unit Unit) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	theta := lon1 - lon2
	latOne := degreeToRadians(lat1)
	latTwo := degreeToRadians(lat2)

	cosCentralAngle := math.Sin(latOne)*math.Sin(latTwo) +
		math.Cos(latOne)*math.Cos(latTwo)*math.Cos(degreeToRadians(theta))

	// rounding can push the sum just outside [-1, 1] for near-antipodal points
	cosCentralAngle = clamp(cosCentralAngle, -1, 1)

	centralAngle := radiansToDegree(math.Acos(cosCentralAngle))
	miles := centralAngle * nauticalMilesPerDegree * statuteMilesPerNautical

	return unit.fromMiles(miles)
}

func DistanceBetween(a, b GeoPoint, unit Unit) float64 {
	return DistanceIn(a.Lat, a.Lon, b.Lat, b.Lon, unit)
}

// clamp keeps NaN as NaN.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
