package trailcost

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// Node is an OSM node referenced by accepted ways
type Node struct {
	ID       osm.NodeID
	Point    GeoPoint
	Ele      float64
	HasEle   bool
	useCount int
}

// parseElevation parses `ele` tag value (meters). Values like "1234 m" are accepted.
// Comma is rejected since it could be either decimal or thousands separator
func parseElevation(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, ",") {
		return 0, false
	}
	text = strings.TrimSpace(strings.TrimSuffix(text, "m"))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
