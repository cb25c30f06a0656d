package render

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MapSpan is the latitude and longitude extent, in degrees, of the map
// shown for a publication.
const MapSpan = 0.005

const earthRadiusKm = 6371.0088

// CalamaCenter is the default reference point for distances.
var CalamaCenter = s2.LatLngFromDegrees(-22.4560, -68.9290)

// MapRect is the area shown around a publication's coordinates.
func MapRect(lat, lng float64) s2.Rect {
	return s2.RectFromCenterSize(s2.LatLngFromDegrees(lat, lng), s2.LatLngFromDegrees(MapSpan, MapSpan))
}

// MapLink is an OpenStreetMap embed URL for MapRect with a marker on the point.
func MapLink(lat, lng float64) string {
	r := MapRect(lat, lng)
	lo, hi := r.Lo(), r.Hi()
	return fmt.Sprintf(
		"https://www.openstreetmap.org/export/embed.html?bbox=%.6f%%2C%.6f%%2C%.6f%%2C%.6f&layer=mapnik&marker=%.6f%%2C%.6f",
		lo.Lng.Degrees(), lo.Lat.Degrees(), hi.Lng.Degrees(), hi.Lat.Degrees(), lat, lng,
	)
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b s2.LatLng) float64 {
	return angleToKm(a.Distance(b))
}

func angleToKm(a s1.Angle) float64 {
	return a.Radians() * earthRadiusKm
}

// FormatDistance prints metres below one kilometre and km with one
// decimal above.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}
