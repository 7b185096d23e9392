// README: Pure geographic computation helpers.
package distance

import "math"

const (
	earthRadiusMiles = 3959.0
	metersPerMile    = 1609.34
)

// haversineMiles returns the great-circle distance in miles between two
// points specified in decimal degrees.
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// round1 rounds to one decimal place, the precision all resolved distances
// are reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
