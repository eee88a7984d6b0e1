package geo

import "math"

// Flat-earth degree/meter factors for the test area (around 57.7N).
const (
	LatDegPerMeter = 1.0 / 111111.0
	LonDegPerMeter = LatDegPerMeter / 0.534 // 1/cos(57.7 degrees)
)

// OffsetMeters returns the per-axis offset in meters implied by two
// lat/lon pairs, north and east positive.
func OffsetMeters(fromLat, fromLon, toLat, toLon float64) (northM, eastM float64) {
	northM = (toLat - fromLat) / LatDegPerMeter
	eastM = (toLon - fromLon) / LonDegPerMeter
	return northM, eastM
}

// WithinBox reports whether the offset between the two positions stays
// under maxMeters on both axes. The check is per axis, not euclidean.
func WithinBox(fromLat, fromLon, toLat, toLon, maxMeters float64) bool {
	northM, eastM := OffsetMeters(fromLat, fromLon, toLat, toLon)
	return math.Abs(northM) < maxMeters && math.Abs(eastM) < maxMeters
}
