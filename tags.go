package trailcost

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

var (
	intendedValues = map[string]struct{}{
		"yes":        {},
		"designated": {},
		"official":   {},
		"permissive": {},
	}

	restrictedValues = map[string]struct{}{
		"private":    {},
		"no":         {},
		"restricted": {},
		"military":   {},
		"emergency":  {},
	}

	// Keys which could restrict pedestrian access (from general to specific)
	restrictionKeys = []string{"access", "foot"}

	sidewalkValues = map[string]struct{}{
		"yes":   {},
		"both":  {},
		"left":  {},
		"right": {},
	}

	noSidewalkValues = map[string]struct{}{
		"no":       {},
		"none":     {},
		"separate": {},
	}

	ferryRoutes = map[string]struct{}{
		"ferry":         {},
		"shuttle_train": {},
	}

	hikingRouteValues = map[string]struct{}{
		"hiking": {},
		"foot":   {},
	}
)

// hasTagValue checks if tag with given key is present and its value is in set
func hasTagValue(tags osm.Tags, key string, values map[string]struct{}) bool {
	v := tags.Find(key)
	if v == "" {
		return false
	}
	_, ok := values[v]
	return ok
}

// hasTag checks if tag with given key has exactly given value
func hasTag(tags osm.Tags, key, value string) bool {
	return tags.Find(key) == value
}

// parseMaxSpeed returns maxspeed tag in km/h or -1 if it could not be parsed
func parseMaxSpeed(tags osm.Tags) float64 {
	text := strings.TrimSpace(tags.Find("maxspeed"))
	if text == "" {
		return -1
	}
	factor := 1.0
	switch {
	case strings.HasSuffix(text, "mph"):
		factor = 1.609344
		text = strings.TrimSpace(strings.TrimSuffix(text, "mph"))
	case strings.HasSuffix(text, "km/h"):
		text = strings.TrimSpace(strings.TrimSuffix(text, "km/h"))
	case text == "walk":
		return 6
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return -1
	}
	return v * factor
}
