package trailcost

import (
	"math"
	"testing"

	"github.com/paulmach/osm"
)

func prepareProfile(t *testing.T, eles ...float64) ElevationProfile {
	points := make([]Point3D, len(eles))
	for i, ele := range eles {
		points[i] = Point3D{Lon: 7.0 + float64(i)*0.001, Lat: 46.0, Ele: ele}
	}
	profile, err := NewElevationProfile(points, true)
	if err != nil {
		t.Fatal(err)
	}
	return profile
}

func TestNewElevationProfile(t *testing.T) {
	_, err := NewElevationProfile([]Point3D{{Lon: 7, Lat: 46, Ele: 1000}}, true)
	if err == nil {
		t.Errorf("3D profile with single point must be rejected")
	}
	flat, err := NewElevationProfile([]Point3D{{Lon: 7, Lat: 46}}, false)
	if err != nil {
		t.Error(err)
		return
	}
	if flat.Is3D() || flat.Len() != 1 {
		t.Errorf("Profile must be 2D with single point, but got is3D=%t and %d points", flat.Is3D(), flat.Len())
	}
}

func TestSlopeCorrectedSpeed(t *testing.T) {
	enc, err := NewWayEncoder(HikingProfile(CALIBRATION_STANDARD))
	if err != nil {
		t.Error(err)
		return
	}
	corrector := NewSlopeCorrector(enc)
	tags := tagsOf("highway", "path", "sac_scale", SAC_HIKING)
	flags, _, err := enc.Encode(tags, 0)
	if err != nil {
		t.Error(err)
		return
	}

	// 10 meters up on 100 meters: sqrt(1.01) / (0.1 + 1/5)
	speed, ok := corrector.CorrectedSpeed(flags, prepareProfile(t, 1000, 1004, 1010), tags, 100)
	if !ok {
		t.Errorf("Sloped edge must be corrected")
		return
	}
	correctSpeed := math.Sqrt(1.01) / 0.3
	if math.Abs(speed-correctSpeed) > 1e-9 {
		t.Errorf("Corrected speed must be %f, but got %f", correctSpeed, speed)
	}

	// Descending is the same as ascending
	down, ok := corrector.CorrectedSpeed(flags, prepareProfile(t, 1010, 1000), tags, 100)
	if !ok || down != speed {
		t.Errorf("Descending speed must be %f, but got %f", speed, down)
	}

	corrected, err := corrector.Correct(flags, prepareProfile(t, 1000, 1010), tags, 100)
	if err != nil {
		t.Error(err)
		return
	}
	if enc.Speed(corrected) != 3 {
		t.Errorf("Stored corrected speed must be 3, but got %f", enc.Speed(corrected))
	}
	if enc.Priority(corrected) != enc.Priority(flags) || !enc.IsAccessible(corrected, false) || !enc.IsAccessible(corrected, true) {
		t.Errorf("Slope correction must change speed only: %s -> %s", flags, corrected)
	}
}

func TestSlopeCorrectedSpeedRange(t *testing.T) {
	for _, preset := range []CalibrationPreset{CALIBRATION_STANDARD, CALIBRATION_CONSERVATIVE} {
		profile := HikingProfile(preset)
		enc, err := NewWayEncoder(profile, WithSpeedBits(8), WithSpeedFactor(0.1))
		if err != nil {
			t.Error(err)
			return
		}
		corrector := NewSlopeCorrector(enc)
		for _, sacScale := range profile.Speeds().Classifications() {
			tags := tagsOf("highway", "path", "sac_scale", sacScale)
			flags, _, err := enc.Encode(tags, 0)
			if err != nil {
				t.Error(err)
				return
			}
			for _, rise := range []float64{1, 5, 20, 100, 500, 5000} {
				speed, ok := corrector.CorrectedSpeed(flags, prepareProfile(t, 0, rise), tags, 100)
				if !ok {
					t.Errorf("Edge with rise %f must be corrected", rise)
					continue
				}
				if speed < 0.3 || speed > profile.SpeedDefault() {
					t.Errorf("Corrected speed for '%s' (%s) with rise %f must be in [0.3, %f], but got %f", sacScale, preset, rise, profile.SpeedDefault(), speed)
				}
				if _, err := corrector.Correct(flags, prepareProfile(t, 0, rise), tags, 100); err != nil {
					t.Error(err)
				}
			}
		}
	}
}

func TestSlopeNoCorrection(t *testing.T) {
	enc, err := NewWayEncoder(HikingProfile(CALIBRATION_STANDARD))
	if err != nil {
		t.Error(err)
		return
	}
	corrector := NewSlopeCorrector(enc)
	tags := tagsOf("highway", "path")
	flags, _, err := enc.Encode(tags, 0)
	if err != nil {
		t.Error(err)
		return
	}
	flat, err := NewElevationProfile([]Point3D{{Lon: 7, Lat: 46}, {Lon: 7.001, Lat: 46}}, false)
	if err != nil {
		t.Error(err)
		return
	}
	type testCase struct {
		name     string
		flags    EdgeFlags
		profile  ElevationProfile
		tags     osm.Tags
		distance float64
	}
	cases := []testCase{
		{"2D profile", flags, flat, tags, 100},
		{"tunnel", flags, prepareProfile(t, 0, 50), tagsOf("highway", "path", "tunnel", "yes"), 100},
		{"bridge", flags, prepareProfile(t, 0, 50), tagsOf("highway", "path", "bridge", "yes"), 100},
		{"steps", flags, prepareProfile(t, 0, 50), tagsOf("highway", "steps"), 100},
		{"short edge", flags, prepareProfile(t, 0, 1), tags, 1.5},
		{"flat", flags, prepareProfile(t, 100, 100.4), tags, 100},
		{"NaN elevation", flags, prepareProfile(t, 100, math.NaN()), tags, 100},
		{"infinite elevation", flags, prepareProfile(t, 100, math.Inf(1)), tags, 100},
		{"inaccessible", enc.SetAccess(enc.SetAccess(flags, false, false), true, false), prepareProfile(t, 0, 50), tags, 100},
	}
	for _, tc := range cases {
		if _, ok := corrector.CorrectedSpeed(tc.flags, tc.profile, tc.tags, tc.distance); ok {
			t.Errorf("Case '%s' must not be corrected", tc.name)
		}
		corrected, err := corrector.Correct(tc.flags, tc.profile, tc.tags, tc.distance)
		if err != nil {
			t.Error(err)
			continue
		}
		if corrected != tc.flags {
			t.Errorf("Case '%s' must leave flags unchanged (%s), but got %s", tc.name, tc.flags, corrected)
		}
	}
}
