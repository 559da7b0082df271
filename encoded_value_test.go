package trailcost

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestDecimalEncodedValue(t *testing.T) {
	ev := newDecimalEncodedValue("speed", 3, 4, 0.5)
	if ev.MaxValue() != 7.5 {
		t.Errorf("Max value must be 7.5, but got %f", ev.MaxValue())
	}
	type testCase struct {
		value    float64
		expected uint64
	}
	cases := []testCase{
		{0, 0},
		{0.24, 0},
		{0.25, 1},
		{1.2, 2},
		{1.25, 3},
		{7.5, 15},
	}
	for _, tc := range cases {
		raw, err := ev.Quantize(tc.value)
		if err != nil {
			t.Error(err)
			continue
		}
		if raw != tc.expected {
			t.Errorf("Raw value of %f must be %d, but got %d", tc.value, tc.expected, raw)
		}
	}
	for _, bad := range []float64{-1, 7.8, math.NaN(), math.Inf(1)} {
		if _, err := ev.Quantize(bad); !errors.Is(err, ErrValueOutOfRange) {
			t.Errorf("Value %f must be out of range, but got %v", bad, err)
		}
	}

	flags := EdgeFlags(0b111)
	flags, err := ev.SetDecimal(flags, 3)
	if err != nil {
		t.Error(err)
		return
	}
	if flags != EdgeFlags(0b0110111) {
		t.Errorf("Flags must be %s, but got %s", EdgeFlags(0b0110111), flags)
	}
	if ev.GetDecimal(flags) != 3 {
		t.Errorf("Stored value must be 3, but got %f", ev.GetDecimal(flags))
	}
	flags = ev.SetRaw(flags, 0)
	if flags != EdgeFlags(0b111) {
		t.Errorf("Clearing value must keep neighbouring bits, but got %s", flags)
	}
}

func TestBoolEncodedValue(t *testing.T) {
	ev := newBoolEncodedValue("access", 5)
	flags := ev.SetBool(0, true)
	if flags != EdgeFlags(1<<5) || !ev.GetBool(flags) {
		t.Errorf("Bit 5 must be set, but got %s", flags)
	}
	flags = ev.SetBool(flags|1, false)
	if flags != 1 || ev.GetBool(flags) {
		t.Errorf("Bit 5 must be cleared, but got %s", flags)
	}
}
