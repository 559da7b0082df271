package trailcost

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCalibrationPresets(t *testing.T) {
	standard := HikingProfile(CALIBRATION_STANDARD)
	conservative := HikingProfile(CALIBRATION_CONSERVATIVE)
	if standard.SpeedDefault() != 5 {
		t.Errorf("Default speed of standard calibration must be 5, but got %f", standard.SpeedDefault())
	}
	if conservative.SpeedDefault() != 4 {
		t.Errorf("Default speed of conservative calibration must be 4, but got %f", conservative.SpeedDefault())
	}
	for _, profile := range []ProfileConfig{standard, conservative, FootProfile()} {
		hiking, _ := profile.Speeds().Speed(SAC_HIKING)
		if profile.SpeedDefault() != hiking {
			t.Errorf("Default speed of '%s' must equal speed of '%s'", profile.CalibrationName(), SAC_HIKING)
		}
	}
	if standard.Speeds().Len() != 6 || FootProfile().Speeds().Len() != 1 {
		t.Errorf("Unexpected sizes of speed tables: %d and %d", standard.Speeds().Len(), FootProfile().Speeds().Len())
	}
}

func TestParseCalibrations(t *testing.T) {
	calibrations, err := ParseCalibrations(`
[calibration.lowland.speeds]
hiking = 5.5
mountain_hiking = 4.0

[calibration.winter.speeds]
hiking = 3.0
`)
	if err != nil {
		t.Error(err)
		return
	}
	if !reflect.DeepEqual(calibrations.Names(), []string{"lowland", "winter"}) {
		t.Errorf("Calibrations must be [lowland winter], but got %v", calibrations.Names())
	}
	lowland, err := calibrations.Lookup("lowland")
	if err != nil {
		t.Error(err)
		return
	}
	if lowland.Speeds[SAC_MOUNTAIN_HIKING] != 4 {
		t.Errorf("Speed of '%s' must be 4, but got %f", SAC_MOUNTAIN_HIKING, lowland.Speeds[SAC_MOUNTAIN_HIKING])
	}
	builtin, err := calibrations.Lookup("conservative")
	if err != nil {
		t.Error(err)
		return
	}
	if builtin.Speeds[SAC_HIKING] != 4 {
		t.Errorf("Built-in calibration must be available, but got %v", builtin)
	}
	if _, err := calibrations.Lookup("desert"); err == nil {
		t.Errorf("Unknown calibration must be rejected")
	}

	profile, err := NewProfileConfig(PROFILE_HIKING, lowland)
	if err != nil {
		t.Error(err)
		return
	}
	if profile.SpeedDefault() != 5.5 {
		t.Errorf("Default speed must be 5.5, but got %f", profile.SpeedDefault())
	}
}

func TestParseCalibrationsErrors(t *testing.T) {
	bad := []string{
		"[calibration.nohiking.speeds]\nmountain_hiking = 4.0\n",
		"[calibration.negative.speeds]\nhiking = -4.0\n",
		"[calibration.extra]\ncolour = \"red\"\n[calibration.extra.speeds]\nhiking = 4.0\n",
		"[calibration.broken",
	}
	for _, data := range bad {
		if _, err := ParseCalibrations(data); err == nil {
			t.Errorf("Calibrations must be rejected:\n%s", data)
		}
	}
}

func TestLoadCalibrationsFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "calibrations.toml")
	err := os.WriteFile(fileName, []byte("[calibration.lowland.speeds]\nhiking = 5.5\n"), 0644)
	if err != nil {
		t.Error(err)
		return
	}
	calibrations, err := LoadCalibrationsFile(fileName)
	if err != nil {
		t.Error(err)
		return
	}
	if len(calibrations) != 1 {
		t.Errorf("Must be single calibration, but got %d", len(calibrations))
	}
	if _, err := LoadCalibrationsFile(fileName + ".missing"); err == nil {
		t.Errorf("Missing file must be an error")
	}
}

func TestSpeedTable(t *testing.T) {
	definition := map[string]float64{SAC_HIKING: 5, SAC_ALPINE_HIKING: 1.4}
	table := NewSpeedTable(definition)
	definition[SAC_HIKING] = 100
	if v, ok := table.Speed(SAC_HIKING); !ok || v != 5 {
		t.Errorf("Table must keep its own copy of speeds, but got %f", v)
	}
	if _, ok := table.Speed(""); ok {
		t.Errorf("Empty classification must not be found")
	}
	if _, ok := table.Speed("climbing"); ok {
		t.Errorf("Unknown classification must not be found")
	}
	if !reflect.DeepEqual(table.Classifications(), []string{SAC_ALPINE_HIKING, SAC_HIKING}) {
		t.Errorf("Classifications must be sorted, but got %v", table.Classifications())
	}
}

func TestParseProfileType(t *testing.T) {
	profile, err := ParseProfileType("hiking")
	if err != nil || profile != PROFILE_HIKING {
		t.Errorf("Profile must be %s, but got %s (%v)", PROFILE_HIKING, profile, err)
	}
	if _, err := ParseProfileType("cycling"); err == nil {
		t.Errorf("Unknown profile must be rejected")
	}
	if _, err := NewProfileConfig(PROFILE_UNDEFINED, CALIBRATION_STANDARD.Calibration()); err == nil {
		t.Errorf("Undefined profile must be rejected")
	}
}
