package trailcost

import (
	"sort"

	"github.com/paulmach/osm"
)

// Weights of priority signals. Signal with the biggest weight wins
const (
	weightNoRelation       = 0.0
	weightRelation         = 110.0
	weightFootDesignated   = 100.0
	weightHighwayClass     = 40.0
	weightBicycleDesignate = 44.0
	weightAvoidHighway     = 45.0
)

// priorityCandidates collects priority signals keyed by weight
type priorityCandidates map[float64]PriorityCode

// best returns code of signal with the biggest weight
func (pc priorityCandidates) best() PriorityCode {
	weights := make([]float64, 0, len(pc))
	for w := range pc {
		weights = append(weights, w)
	}
	sort.Float64s(weights)
	return pc[weights[len(weights)-1]]
}

// PriorityResolver merges relation-derived and way-derived priority signals
type PriorityResolver struct {
	profile ProfileConfig
}

// NewPriorityResolver creates resolver for given profile
func NewPriorityResolver(profile ProfileConfig) PriorityResolver {
	return PriorityResolver{profile: profile}
}

// Resolve returns priority code for way with given tags and relation priority
func (resolver PriorityResolver) Resolve(tags osm.Tags, relation PriorityCode) PriorityCode {
	candidates := make(priorityCandidates)
	if relation == 0 {
		candidates[weightNoRelation] = PRIORITY_UNCHANGED
	} else {
		candidates[weightRelation] = relation
	}
	resolver.collect(tags, candidates)
	return candidates.best()
}

func (resolver PriorityResolver) collect(tags osm.Tags, candidates priorityCandidates) {
	highway := getHighwayType(tags.Find("highway"))
	if hasTag(tags, "foot", "designated") {
		candidates[weightFootDesignated] = PRIORITY_PREFER
	}

	maxSpeed := parseMaxSpeed(tags)
	_, safe := safeHighwayTags[highway]
	_, avoid := avoidHighwayTags[highway]
	if safe || (maxSpeed > 0 && maxSpeed <= 20) {
		candidates[weightHighwayClass] = PRIORITY_PREFER
		if hasTagValue(tags, "tunnel", intendedValues) {
			if hasTagValue(tags, "sidewalk", noSidewalkValues) {
				candidates[weightHighwayClass] = PRIORITY_AVOID_IF_POSSIBLE
			} else {
				candidates[weightHighwayClass] = PRIORITY_UNCHANGED
			}
		}
	} else if maxSpeed > 50 || avoid {
		if !hasTagValue(tags, "sidewalk", sidewalkValues) {
			candidates[weightAvoidHighway] = PRIORITY_AVOID_IF_POSSIBLE
		}
	}

	if hasTag(tags, "bicycle", "official") || hasTag(tags, "bicycle", "designated") {
		candidates[weightBicycleDesignate] = PRIORITY_AVOID_IF_POSSIBLE
	}

	if resolver.profile.IsPreferredWay(highway) {
		candidates[weightHighwayClass] = PRIORITY_VERY_NICE
	}
}

// RelationPriority returns priority code given by route relation with provided tags. Zero for relations which do not matter
func RelationPriority(profile ProfileConfig, relationTags osm.Tags) PriorityCode {
	if hasTagValue(relationTags, "route", hikingRouteValues) {
		if code, ok := profile.NetworkCodes().Code(relationTags.Find("network")); ok {
			return code
		}
		code, _ := profile.NetworkCodes().Code("lwn")
		return code
	}
	if hasTag(relationTags, "route", "ferry") {
		return PRIORITY_AVOID_IF_POSSIBLE
	}
	return 0
}

// MaxRelationPriority merges priorities of several containing relations
func MaxRelationPriority(codes ...PriorityCode) PriorityCode {
	result := PriorityCode(0)
	for _, code := range codes {
		if code > result {
			result = code
		}
	}
	return result
}
