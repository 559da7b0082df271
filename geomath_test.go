package trailcost

import (
	"math"
	"testing"
)

func TestGreatCircleDistance(t *testing.T) {
	p1 := GeoPoint{
		Lon: 37.6417350769043,
		Lat: 55.751849391735284,
	}
	p2 := GeoPoint{
		Lon: 37.668514251708984,
		Lat: 55.73261980350401,
	}
	res := 2.71693096539 // kilometers
	gcd := greatCircleDistance(p1, p2)
	if Round(gcd, 0.0005) != Round(res, 0.0005) {
		t.Errorf("Great circle dist must be %f, but got %f", res, gcd)
	}
}

func TestPlanarDistanceMeters(t *testing.T) {
	line := []GeoPoint{
		{Lon: 37.6417350769043, Lat: 55.751849391735284},
		{Lon: 37.668514251708984, Lat: 55.73261980350401},
		{Lon: 37.6417350769043, Lat: 55.751849391735284},
	}
	res := 2 * 1000 * greatCircleDistance(line[0], line[1])
	dist := PlanarDistanceMeters(line)
	if math.Abs(dist-res) > 1e-6 {
		t.Errorf("Distance must be %f, but got %f", res, dist)
	}
	if PlanarDistanceMeters(line[:1]) != 0 {
		t.Errorf("Distance of single point must be zero")
	}
}

func Round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}
