package trailcost

import (
	"github.com/paulmach/osm"
)

// AccessDecision is a result of deciding whether way is traversable by the profile
type AccessDecision uint16

const (
	ACCESS_WAY = AccessDecision(iota + 1)
	ACCESS_FERRY
	ACCESS_CAN_SKIP = AccessDecision(0)
)

func (iotaIdx AccessDecision) String() string {
	return [...]string{"can_skip", "way", "ferry"}[iotaIdx]
}

// IsFerry checks if way is a ferry crossing
func (iotaIdx AccessDecision) IsFerry() bool {
	return iotaIdx == ACCESS_FERRY
}

// CanSkip checks if way is not traversable
func (iotaIdx AccessDecision) CanSkip() bool {
	return iotaIdx == ACCESS_CAN_SKIP
}

// AccessDecider decides whether way should be included into graph for the profile
type AccessDecider struct {
	profile    ProfileConfig
	blockFords bool
}

// NewAccessDecider creates decider for given profile
func NewAccessDecider(profile ProfileConfig, blockFords bool) AccessDecider {
	return AccessDecider{profile: profile, blockFords: blockFords}
}

// GetAccess returns access decision for given tags
func (decider AccessDecider) GetAccess(tags osm.Tags) AccessDecision {
	highwayStr := tags.Find("highway")
	if highwayStr == "" {
		if hasTagValue(tags, "route", ferryRoutes) {
			foot := tags.Find("foot")
			if foot == "" {
				return ACCESS_FERRY
			}
			if _, ok := intendedValues[foot]; ok {
				return ACCESS_FERRY
			}
		}
		if hasTag(tags, "railway", "platform") || hasTag(tags, "man_made", "pier") {
			return ACCESS_WAY
		}
		return ACCESS_CAN_SKIP
	}

	sacScale := tags.Find("sac_scale")
	if sacScale != "" && !decider.profile.IsSuitableSacScale(sacScale) {
		return ACCESS_CAN_SKIP
	}

	// Fords and ferries are fine when foot access is explicitly given
	if hasTagValue(tags, "foot", intendedValues) {
		return ACCESS_WAY
	}

	for _, key := range restrictionKeys {
		if hasTagValue(tags, key, restrictedValues) {
			return ACCESS_CAN_SKIP
		}
	}

	if hasTagValue(tags, "sidewalk", sidewalkValues) {
		return ACCESS_WAY
	}

	if _, ok := allowedHighwayTags[getHighwayType(highwayStr)]; !ok {
		return ACCESS_CAN_SKIP
	}

	if hasTag(tags, "motorroad", "yes") {
		return ACCESS_CAN_SKIP
	}

	if decider.blockFords && isFord(tags) {
		return ACCESS_CAN_SKIP
	}
	return ACCESS_WAY
}

func isFord(tags osm.Tags) bool {
	if hasTag(tags, "highway", "ford") {
		return true
	}
	ford := tags.Find("ford")
	return ford != "" && ford != "no"
}
