package trailcost

import (
	"github.com/paulmach/osm"
)

// Way is an OSM way accepted by profile
type Way struct {
	ID               osm.WayID
	Nodes            []osm.NodeID
	TagMap           osm.Tags
	Access           AccessDecision
	RelationPriority PriorityCode
}
