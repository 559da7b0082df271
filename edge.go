package trailcost

import (
	"github.com/paulmach/osm"
)

type EdgeID int64

// Edge is a part of OSM way between two graph vertices
type Edge struct {
	ID               EdgeID
	WayID            osm.WayID
	SourceNodeID     osm.NodeID
	TargetNodeID     osm.NodeID
	DistanceMeters   float64
	Geom             []GeoPoint
	Elevation        ElevationProfile
	Tags             osm.Tags
	Access           AccessDecision
	RelationPriority PriorityCode
}
