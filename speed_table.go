package trailcost

import (
	"sort"
)

// SAC scale values (terrain difficulty classification). See ref.: https://wiki.openstreetmap.org/wiki/Key:sac_scale
const (
	SAC_HIKING                    = "hiking"
	SAC_MOUNTAIN_HIKING           = "mountain_hiking"
	SAC_DEMANDING_MOUNTAIN_HIKING = "demanding_mountain_hiking"
	SAC_ALPINE_HIKING             = "alpine_hiking"
	SAC_DEMANDING_ALPINE_HIKING   = "demanding_alpine_hiking"
	SAC_DIFFICULT_ALPINE_HIKING   = "difficult_alpine_hiking"
)

// SpeedTable maps terrain difficulty classification to base traversal speed (km/h)
//
// Table is immutable after construction: it holds its own copy of provided values
type SpeedTable struct {
	speeds map[string]float64
}

// NewSpeedTable creates table from given definition. Definition is copied
func NewSpeedTable(speeds map[string]float64) SpeedTable {
	copied := make(map[string]float64, len(speeds))
	for k, v := range speeds {
		copied[k] = v
	}
	return SpeedTable{speeds: copied}
}

// Speed returns speed for given classification and whether it has been found
func (table SpeedTable) Speed(classification string) (float64, bool) {
	if classification == "" {
		return 0, false
	}
	v, ok := table.speeds[classification]
	return v, ok
}

// Classifications returns sorted list of known classifications
func (table SpeedTable) Classifications() []string {
	keys := make([]string, 0, len(table.speeds))
	for k := range table.speeds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns number of entries
func (table SpeedTable) Len() int {
	return len(table.speeds)
}

// NetworkPriorityTable maps hierarchical network classification (iwn, nwn, rwn, lwn) to priority code
type NetworkPriorityTable struct {
	codes map[string]PriorityCode
}

// NewNetworkPriorityTable creates table from given definition. Definition is copied
func NewNetworkPriorityTable(codes map[string]PriorityCode) NetworkPriorityTable {
	copied := make(map[string]PriorityCode, len(codes))
	for k, v := range codes {
		copied[k] = v
	}
	return NetworkPriorityTable{codes: copied}
}

// Code returns priority code for given network and whether it has been found
func (table NetworkPriorityTable) Code(network string) (PriorityCode, bool) {
	v, ok := table.codes[network]
	return v, ok
}

var (
	// Speeds for CALIBRATION_STANDARD
	standardSacScaleSpeeds = map[string]float64{
		SAC_HIKING:                    5.0,
		SAC_MOUNTAIN_HIKING:           4.5,
		SAC_DEMANDING_MOUNTAIN_HIKING: 1.8,
		SAC_ALPINE_HIKING:             1.4,
		SAC_DEMANDING_ALPINE_HIKING:   1.2,
		SAC_DIFFICULT_ALPINE_HIKING:   1.2,
	}

	// Speeds for CALIBRATION_CONSERVATIVE
	conservativeSacScaleSpeeds = map[string]float64{
		SAC_HIKING:                    4.0,
		SAC_MOUNTAIN_HIKING:           2.5,
		SAC_DEMANDING_MOUNTAIN_HIKING: 1.1,
		SAC_ALPINE_HIKING:             1.0,
		SAC_DEMANDING_ALPINE_HIKING:   0.9,
		SAC_DIFFICULT_ALPINE_HIKING:   0.8,
	}

	// Plain walking does not differ speed by terrain
	footSacScaleSpeeds = map[string]float64{
		SAC_HIKING: 5.0,
	}

	hikingNetworkCodes = map[string]PriorityCode{
		"iwn": PRIORITY_BEST,
		"nwn": PRIORITY_BEST,
		"rwn": PRIORITY_VERY_NICE,
		"lwn": PRIORITY_VERY_NICE,
	}

	footNetworkCodes = map[string]PriorityCode{
		"iwn": PRIORITY_UNCHANGED,
		"nwn": PRIORITY_UNCHANGED,
		"rwn": PRIORITY_UNCHANGED,
		"lwn": PRIORITY_UNCHANGED,
	}
)
