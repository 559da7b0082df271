package trailcost

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

const (
	shortTripFerrySpeed       = 20.0
	longTripFerrySpeed        = 30.0
	unknownDurationFerrySpeed = 5.0
)

var (
	isoDurationRegExp = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)
)

// FerrySpeed returns mode-independent ferry speed (km/h) estimated from `duration` and `estimated_distance` tags.
// Speed is not clamped here: caller clamps it to maximum storable one
func FerrySpeed(tags osm.Tags, speedFactor float64) float64 {
	durationHours := float64(ferryDurationSeconds(tags)) / 3600.0
	estimatedLength, lengthErr := strconv.ParseFloat(tags.Find("estimated_distance"), 64)
	hasLength := lengthErr == nil && estimatedLength >= 0
	if durationHours > 0 {
		if hasLength {
			tripSpeed := estimatedLength / 1000.0 / durationHours / 1.4
			// Sanity check against durations given in months instead of minutes
			if tripSpeed > 0.01 {
				if math.Round(tripSpeed) < speedFactor/2 {
					return speedFactor / 2
				}
				return math.Round(tripSpeed)
			}
		}
		if durationHours > 1 {
			return longTripFerrySpeed
		}
		return shortTripFerrySpeed
	}
	if hasLength && estimatedLength <= 300 {
		return speedFactor / 2
	}
	return unknownDurationFerrySpeed
}

// ferryDurationSeconds returns duration of ferry trip in seconds or 0 if unknown
func ferryDurationSeconds(tags osm.Tags) int64 {
	if v, err := strconv.ParseInt(tags.Find("duration:seconds"), 10, 64); err == nil && v > 0 {
		return v
	}
	return parseDuration(tags.Find("duration"))
}

// parseDuration parses ISO 8601 durations (PT1H30M) and clock values (HH:MM, HH:MM:SS, MM)
func parseDuration(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if match := isoDurationRegExp.FindStringSubmatch(text); match != nil {
		multipliers := []int64{86400, 3600, 60, 1}
		var total int64
		for i, m := range multipliers {
			if match[i+1] == "" {
				continue
			}
			v, _ := strconv.ParseInt(match[i+1], 10, 64)
			total += v * m
		}
		return total
	}
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0
	}
	// Single number is minutes, HH:MM, HH:MM:SS
	multipliers := map[int][]int64{
		1: {60},
		2: {3600, 60},
		3: {3600, 60, 1},
	}[len(parts)]
	var total int64
	for i, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 {
			return 0
		}
		total += v * multipliers[i]
	}
	return total
}
