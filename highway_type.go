package trailcost

// HighwayType is a value of `highway` tag which matters for pedestrian routing
type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_PATH
	HIGHWAY_PLATFORM
	HIGHWAY_ROAD
	HIGHWAY_UNDEFINED = HighwayType(0)
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"undefined", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified", "path", "platform", "road"}[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return HIGHWAY_UNDEFINED
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"residential":    HIGHWAY_RESIDENTIAL,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
		"cycleway":       HIGHWAY_CYCLEWAY,
		"footway":        HIGHWAY_FOOTWAY,
		"pedestrian":     HIGHWAY_PEDESTRIAN,
		"steps":          HIGHWAY_STEPS,
		"track":          HIGHWAY_TRACK,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
		"path":           HIGHWAY_PATH,
		"platform":       HIGHWAY_PLATFORM,
		"road":           HIGHWAY_ROAD,
	}

	// Highways which are pleasant to walk
	safeHighwayTags = map[HighwayType]struct{}{
		HIGHWAY_FOOTWAY:       {},
		HIGHWAY_PATH:          {},
		HIGHWAY_STEPS:         {},
		HIGHWAY_PEDESTRIAN:    {},
		HIGHWAY_LIVING_STREET: {},
		HIGHWAY_TRACK:         {},
		HIGHWAY_RESIDENTIAL:   {},
		HIGHWAY_SERVICE:       {},
		HIGHWAY_PLATFORM:      {},
	}

	// Highways with heavy traffic
	avoidHighwayTags = map[HighwayType]struct{}{
		HIGHWAY_TRUNK:          {},
		HIGHWAY_TRUNK_LINK:     {},
		HIGHWAY_PRIMARY:        {},
		HIGHWAY_PRIMARY_LINK:   {},
		HIGHWAY_SECONDARY:      {},
		HIGHWAY_SECONDARY_LINK: {},
		HIGHWAY_TERTIARY:       {},
		HIGHWAY_TERTIARY_LINK:  {},
	}

	// safe + avoid + a few neutral ones
	allowedHighwayTags = map[HighwayType]struct{}{
		HIGHWAY_FOOTWAY:        {},
		HIGHWAY_PATH:           {},
		HIGHWAY_STEPS:          {},
		HIGHWAY_PEDESTRIAN:     {},
		HIGHWAY_LIVING_STREET:  {},
		HIGHWAY_TRACK:          {},
		HIGHWAY_RESIDENTIAL:    {},
		HIGHWAY_SERVICE:        {},
		HIGHWAY_PLATFORM:       {},
		HIGHWAY_TRUNK:          {},
		HIGHWAY_TRUNK_LINK:     {},
		HIGHWAY_PRIMARY:        {},
		HIGHWAY_PRIMARY_LINK:   {},
		HIGHWAY_SECONDARY:      {},
		HIGHWAY_SECONDARY_LINK: {},
		HIGHWAY_TERTIARY:       {},
		HIGHWAY_TERTIARY_LINK:  {},
		HIGHWAY_CYCLEWAY:       {},
		HIGHWAY_UNCLASSIFIED:   {},
		HIGHWAY_ROAD:           {},
	}
)
