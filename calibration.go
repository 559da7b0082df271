package trailcost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// CalibrationPreset names one of built-in speed table calibrations
type CalibrationPreset uint16

const (
	CALIBRATION_STANDARD = CalibrationPreset(iota + 1)
	CALIBRATION_CONSERVATIVE
)

func (iotaIdx CalibrationPreset) String() string {
	if iotaIdx < CALIBRATION_STANDARD || iotaIdx > CALIBRATION_CONSERVATIVE {
		return "undefined"
	}
	return [...]string{"standard", "conservative"}[iotaIdx-1]
}

// Calibration returns copy of built-in calibration
func (iotaIdx CalibrationPreset) Calibration() Calibration {
	switch iotaIdx {
	case CALIBRATION_CONSERVATIVE:
		return NewCalibration(iotaIdx.String(), conservativeSacScaleSpeeds)
	default:
		return NewCalibration(CALIBRATION_STANDARD.String(), standardSacScaleSpeeds)
	}
}

// Calibration is a named set of terrain speeds. Only one calibration is active per encoder
type Calibration struct {
	Name   string
	Speeds map[string]float64
}

// NewCalibration creates calibration with copy of given speeds
func NewCalibration(name string, speeds map[string]float64) Calibration {
	copied := make(map[string]float64, len(speeds))
	for k, v := range speeds {
		copied[k] = v
	}
	return Calibration{Name: name, Speeds: copied}
}

// Validate checks that every speed is positive and speed of easiest classification is present
func (c Calibration) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("calibration name is empty")
	}
	if _, ok := c.Speeds[SAC_HIKING]; !ok {
		return fmt.Errorf("calibration '%s' has no speed for '%s'", c.Name, SAC_HIKING)
	}
	for k, v := range c.Speeds {
		if !isPositiveFinite(v) {
			return fmt.Errorf("calibration '%s': speed for '%s' should be positive, got %f", c.Name, k, v)
		}
	}
	return nil
}

// Calibrations is a set of calibrations loaded from file
type Calibrations map[string]Calibration

// Names returns sorted calibration names
func (cs Calibrations) Names() []string {
	names := make([]string, 0, len(cs))
	for name := range cs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns calibration by name. Built-in presets are always available
func (cs Calibrations) Lookup(name string) (Calibration, error) {
	if c, ok := cs[name]; ok {
		return c, nil
	}
	switch name {
	case CALIBRATION_STANDARD.String():
		return CALIBRATION_STANDARD.Calibration(), nil
	case CALIBRATION_CONSERVATIVE.String():
		return CALIBRATION_CONSERVATIVE.Calibration(), nil
	}
	return Calibration{}, fmt.Errorf("unknown calibration '%s'", name)
}

type calibrationsTOML struct {
	Calibration map[string]calibrationTOML `toml:"calibration"`
}

type calibrationTOML struct {
	Speeds map[string]float64 `toml:"speeds"`
}

// LoadCalibrationsFile reads calibrations from TOML file
//
// Expected layout:
//
//	[calibration.lowland.speeds]
//	hiking = 5.5
//	mountain_hiking = 4.0
func LoadCalibrationsFile(fileName string) (Calibrations, error) {
	var raw calibrationsTOML
	md, err := toml.DecodeFile(fileName, &raw)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode calibrations file '%s'", fileName)
	}
	return prepareCalibrations(raw, md)
}

// ParseCalibrations reads calibrations from TOML document
func ParseCalibrations(data string) (Calibrations, error) {
	var raw calibrationsTOML
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "Can't decode calibrations")
	}
	return prepareCalibrations(raw, md)
}

func prepareCalibrations(raw calibrationsTOML, md toml.MetaData) (Calibrations, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return nil, fmt.Errorf("unknown keys in calibrations: %s", strings.Join(keys, ", "))
	}
	result := make(Calibrations, len(raw.Calibration))
	for name, section := range raw.Calibration {
		c := NewCalibration(name, section.Speeds)
		if err := c.Validate(); err != nil {
			return nil, err
		}
		result[name] = c
	}
	return result, nil
}
