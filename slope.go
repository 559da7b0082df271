package trailcost

import (
	"fmt"
	"math"

	"github.com/paulmach/osm"
)

const (
	// Edges shorter than this (meters) have undefined slope
	minSlopeDistance = 2.0
	// Slope below this is treated as flat
	flatSlope = 0.005
	// Lower bound of corrected speed (km/h)
	minSlopeSpeed = 0.3
)

// Point3D is a sample of edge geometry with elevation (meters)
type Point3D struct {
	Lon float64
	Lat float64
	Ele float64
}

// ElevationProfile is an ordered sequence of points sampled along one edge
type ElevationProfile struct {
	points []Point3D
	is3D   bool
}

// NewElevationProfile creates profile. Profile with elevation data must contain at least two points
func NewElevationProfile(points []Point3D, is3D bool) (ElevationProfile, error) {
	if is3D && len(points) < 2 {
		return ElevationProfile{}, fmt.Errorf("3D elevation profile needs at least 2 points, got %d", len(points))
	}
	copied := make([]Point3D, len(points))
	copy(copied, points)
	return ElevationProfile{points: copied, is3D: is3D}, nil
}

// Is3D checks if profile carries elevation data
func (p ElevationProfile) Is3D() bool {
	return p.is3D
}

// Len returns number of points
func (p ElevationProfile) Len() int {
	return len(p.points)
}

// Point returns i-th point
func (p ElevationProfile) Point(i int) Point3D {
	return p.points[i]
}

// Points returns copy of points
func (p ElevationProfile) Points() []Point3D {
	copied := make([]Point3D, len(p.points))
	copy(copied, p.points)
	return copied
}

// SlopeCorrector rescales encoded speed of edges for elevation change
type SlopeCorrector struct {
	enc *WayEncoder
}

// NewSlopeCorrector creates corrector which reads and writes flags in layout of given encoder
func NewSlopeCorrector(enc *WayEncoder) *SlopeCorrector {
	return &SlopeCorrector{enc: enc}
}

// CorrectedSpeed returns speed for sloped edge and true, or false when speed should stay unchanged.
//
// Base speed is always recomputed from tags: speed stored in flags is never used as input
func (sc *SlopeCorrector) CorrectedSpeed(flags EdgeFlags, profile ElevationProfile, tags osm.Tags, distance float64) (float64, bool) {
	if !profile.Is3D() || profile.Len() < 2 {
		return 0, false
	}
	// Elevation data is unreliable for tunnels and bridges, steps have their own speed
	if hasTag(tags, "tunnel", "yes") || hasTag(tags, "bridge", "yes") || hasTag(tags, "highway", "steps") {
		return 0, false
	}
	if distance < minSlopeDistance {
		return 0, false
	}
	eleDelta := math.Abs(profile.Point(profile.Len()-1).Ele - profile.Point(0).Ele)
	slope := eleDelta / distance
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0, false
	}
	accessible := sc.enc.IsAccessible(flags, false) || sc.enc.IsAccessible(flags, true)
	if !accessible || slope <= flatSlope {
		return 0, false
	}
	// Horizontal and vertical movement are serial contributions to travel time:
	// v = s_3d / (h/v_vert + s_2d/v_hor) = sqrt(1+slope²) / (slope + 1/v_hor)
	newSpeed := math.Sqrt(1+slope*slope) / (slope + 1/sc.enc.speedOf(tags))
	return keepIn(newSpeed, minSlopeSpeed, sc.enc.profile.SpeedDefault()), true
}

// Correct rewrites speed field of flags for sloped edges. Flags are returned unchanged otherwise
func (sc *SlopeCorrector) Correct(flags EdgeFlags, profile ElevationProfile, tags osm.Tags, distance float64) (EdgeFlags, error) {
	speed, ok := sc.CorrectedSpeed(flags, profile, tags, distance)
	if !ok {
		return flags, nil
	}
	return sc.enc.SetSpeed(flags, speed)
}

func keepIn(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}
