package trailcost

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ProfileType is a tagged variant of pedestrian profile
type ProfileType uint16

const (
	PROFILE_FOOT = ProfileType(iota + 1)
	PROFILE_HIKING
	PROFILE_UNDEFINED = ProfileType(0)
)

func (iotaIdx ProfileType) String() string {
	if iotaIdx > PROFILE_HIKING {
		return "undefined"
	}
	return [...]string{"undefined", "foot", "hiking"}[iotaIdx]
}

// ParseProfileType returns profile for given name
func ParseProfileType(name string) (ProfileType, error) {
	if found, ok := profileTypes[name]; ok {
		return found, nil
	}
	return PROFILE_UNDEFINED, fmt.Errorf("unknown profile '%s'", name)
}

var (
	profileTypes = map[string]ProfileType{
		"foot":   PROFILE_FOOT,
		"hiking": PROFILE_HIKING,
	}

	footSuitableSacScales = map[string]struct{}{
		SAC_HIKING:                    {},
		SAC_MOUNTAIN_HIKING:           {},
		SAC_DEMANDING_MOUNTAIN_HIKING: {},
		SAC_ALPINE_HIKING:             {},
	}

	hikingSuitableSacScales = map[string]struct{}{
		SAC_HIKING:                    {},
		SAC_MOUNTAIN_HIKING:           {},
		SAC_DEMANDING_MOUNTAIN_HIKING: {},
		SAC_ALPINE_HIKING:             {},
		SAC_DEMANDING_ALPINE_HIKING:   {},
		SAC_DIFFICULT_ALPINE_HIKING:   {},
	}

	hikingPreferredWayTags = map[HighwayType]struct{}{
		HIGHWAY_TRACK:   {},
		HIGHWAY_PATH:    {},
		HIGHWAY_FOOTWAY: {},
	}
)

// ProfileConfig holds per-profile constants which are passed into shared encoding routine
type ProfileConfig struct {
	profile           ProfileType
	calibration       string
	speeds            SpeedTable
	networkCodes      NetworkPriorityTable
	suitableSacScales map[string]struct{}
	preferredWayTags  map[HighwayType]struct{}
	speedDefault      float64
}

// NewProfileConfig prepares constants for given profile.
//
// Speed table is taken from calibration for PROFILE_HIKING. PROFILE_FOOT walks with the
// calibration's easiest-class speed on every terrain
func NewProfileConfig(profile ProfileType, calibration Calibration) (ProfileConfig, error) {
	if err := calibration.Validate(); err != nil {
		return ProfileConfig{}, errors.Wrap(err, "Bad calibration")
	}
	cfg := ProfileConfig{
		profile:     profile,
		calibration: calibration.Name,
	}
	switch profile {
	case PROFILE_HIKING:
		cfg.speeds = NewSpeedTable(calibration.Speeds)
		cfg.networkCodes = NewNetworkPriorityTable(hikingNetworkCodes)
		cfg.suitableSacScales = hikingSuitableSacScales
		cfg.preferredWayTags = hikingPreferredWayTags
	case PROFILE_FOOT:
		cfg.speeds = NewSpeedTable(map[string]float64{SAC_HIKING: calibration.Speeds[SAC_HIKING]})
		cfg.networkCodes = NewNetworkPriorityTable(footNetworkCodes)
		cfg.suitableSacScales = footSuitableSacScales
		cfg.preferredWayTags = map[HighwayType]struct{}{}
	default:
		return ProfileConfig{}, fmt.Errorf("profile '%s' is not supported", profile)
	}
	cfg.speedDefault, _ = cfg.speeds.Speed(SAC_HIKING)
	return cfg, cfg.Validate()
}

// HikingProfile returns hiking profile for given preset. Presets are always valid
func HikingProfile(preset CalibrationPreset) ProfileConfig {
	cfg, err := NewProfileConfig(PROFILE_HIKING, preset.Calibration())
	if err != nil {
		panic(err)
	}
	return cfg
}

// FootProfile returns generic pedestrian profile
func FootProfile() ProfileConfig {
	cfg, err := NewProfileConfig(PROFILE_FOOT, CALIBRATION_STANDARD.Calibration())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks that default speed is consistent with speed table
func (cfg ProfileConfig) Validate() error {
	easiest, ok := cfg.speeds.Speed(SAC_HIKING)
	if !ok {
		return fmt.Errorf("speed table has no entry for '%s'", SAC_HIKING)
	}
	if cfg.speedDefault != easiest {
		return fmt.Errorf("default speed %f differs from speed of '%s' (%f)", cfg.speedDefault, SAC_HIKING, easiest)
	}
	return nil
}

// Profile returns profile variant
func (cfg ProfileConfig) Profile() ProfileType {
	return cfg.profile
}

// CalibrationName returns name of calibration preset used for speed table
func (cfg ProfileConfig) CalibrationName() string {
	return cfg.calibration
}

// Speeds returns speed table
func (cfg ProfileConfig) Speeds() SpeedTable {
	return cfg.speeds
}

// NetworkCodes returns network priority table
func (cfg ProfileConfig) NetworkCodes() NetworkPriorityTable {
	return cfg.networkCodes
}

// SpeedDefault returns fallback speed (km/h)
func (cfg ProfileConfig) SpeedDefault() float64 {
	return cfg.speedDefault
}

// IsSuitableSacScale checks whether ways with given sac_scale could be traversed with the profile
func (cfg ProfileConfig) IsSuitableSacScale(sacScale string) bool {
	_, ok := cfg.suitableSacScales[sacScale]
	return ok
}

// IsPreferredWay checks whether given highway value is preferred independent of network membership
func (cfg ProfileConfig) IsPreferredWay(highway HighwayType) bool {
	_, ok := cfg.preferredWayTags[highway]
	return ok
}

// baseSpeed returns terrain speed for given sac_scale value or default one
func (cfg ProfileConfig) baseSpeed(sacScale string) float64 {
	if v, ok := cfg.speeds.Speed(sacScale); ok {
		return v
	}
	return cfg.speedDefault
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
