package trailcost

import (
	"fmt"
	"math"
)

const (
	earthRadius = 6370.986884258304
	pi180       = math.Pi / 180.0
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// greatCircleDistance returns distance between two geo-points (kilometers)
func greatCircleDistance(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lon1 := degreesToRadians(p.Lon)
	lat2 := degreesToRadians(q.Lat)
	lon2 := degreesToRadians(q.Lon)
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	ans := c * earthRadius
	return ans
}

// getSphericalLength returns length for given line (kilometers)
func getSphericalLength(line []GeoPoint) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += greatCircleDistance(line[i-1], line[i])
	}
	return totalLength
}

// PlanarDistanceMeters returns length of edge geometry ignoring elevation (meters)
func PlanarDistanceMeters(line []GeoPoint) float64 {
	return getSphericalLength(line) * 1000.0
}
