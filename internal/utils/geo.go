package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

const earthRadiusKm = 6371.0

// EncodeGeohash converts a coordinate to a geohash string
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether p lies inside the circle of radiusKm around center
func WithinRadius(center, p GeoPoint, radiusKm float64) bool {
	return CalculateDistance(center, p) <= radiusKm
}

// ClampLatLng keeps a coordinate inside the valid WGS84 ranges
func ClampLatLng(lat, lng float64) (float64, float64) {
	return math.Max(-90, math.Min(90, lat)), math.Max(-180, math.Min(180, lng))
}
