package render

import "math"

// MaxLat is the Mercator latitude cutoff.
const MaxLat = 85.05112878

// Project converts WGS84 Lon/Lat to unit-square coordinates (x growing east,
// y growing south) using a Mercator projection.
func Project(lon, lat float64) (x, y float64) {
	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}

	// lon: [-180..180] -> x: [0..1]
	x = (lon + 180.0) / 360.0

	// Mercator projection for latitude
	latRad := lat * (math.Pi / 180.0)
	mercatorY := math.Log(math.Tan(math.Pi/4.0 + latRad/2.0))

	// mercatorY: [-PI..PI] -> y: [1..0]
	y = 0.5 - mercatorY/(2.0*math.Pi)

	return x, y
}
