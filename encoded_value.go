package trailcost

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DecimalEncodedValue is an unsigned quantized decimal occupying fixed number of bits in EdgeFlags
type DecimalEncodedValue struct {
	name   string
	shift  uint
	bits   uint
	mask   uint64
	factor decimal.Decimal
}

func newDecimalEncodedValue(name string, shift, bits uint, factor float64) DecimalEncodedValue {
	return DecimalEncodedValue{
		name:   name,
		shift:  shift,
		bits:   bits,
		mask:   (uint64(1) << bits) - 1,
		factor: decimal.NewFromFloat(factor),
	}
}

// Name returns name of encoded value
func (ev DecimalEncodedValue) Name() string {
	return ev.name
}

// Bits returns width of the field
func (ev DecimalEncodedValue) Bits() uint {
	return ev.bits
}

// MaxValue returns the largest storable value
func (ev DecimalEncodedValue) MaxValue() float64 {
	v, _ := decimal.NewFromInt(int64(ev.mask)).Mul(ev.factor).Float64()
	return v
}

// Quantize converts value to raw stored integer. Rounding is half away from zero
func (ev DecimalEncodedValue) Quantize(value float64) (uint64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, errors.Wrapf(ErrValueOutOfRange, "%s: can't store %f", ev.name, value)
	}
	raw := decimal.NewFromFloat(value).DivRound(ev.factor, 8).Round(0)
	if raw.GreaterThan(decimal.NewFromInt(int64(ev.mask))) {
		return 0, errors.Wrapf(ErrValueOutOfRange, "%s: value %f exceeds maximum %f", ev.name, value, ev.MaxValue())
	}
	return uint64(raw.IntPart()), nil
}

// SetDecimal stores value into flags
func (ev DecimalEncodedValue) SetDecimal(flags EdgeFlags, value float64) (EdgeFlags, error) {
	raw, err := ev.Quantize(value)
	if err != nil {
		return flags, err
	}
	return ev.SetRaw(flags, raw), nil
}

// SetRaw stores raw integer (already quantized, truncated to field width) into flags
func (ev DecimalEncodedValue) SetRaw(flags EdgeFlags, raw uint64) EdgeFlags {
	cleared := uint64(flags) &^ (ev.mask << ev.shift)
	return EdgeFlags(cleared | ((raw & ev.mask) << ev.shift))
}

// GetRaw returns raw stored integer
func (ev DecimalEncodedValue) GetRaw(flags EdgeFlags) uint64 {
	return (uint64(flags) >> ev.shift) & ev.mask
}

// GetDecimal returns stored value
func (ev DecimalEncodedValue) GetDecimal(flags EdgeFlags) float64 {
	v, _ := decimal.NewFromInt(int64(ev.GetRaw(flags))).Mul(ev.factor).Float64()
	return v
}

// BoolEncodedValue is a single bit in EdgeFlags
type BoolEncodedValue struct {
	name  string
	shift uint
}

func newBoolEncodedValue(name string, shift uint) BoolEncodedValue {
	return BoolEncodedValue{name: name, shift: shift}
}

// SetBool stores value into flags
func (ev BoolEncodedValue) SetBool(flags EdgeFlags, value bool) EdgeFlags {
	if value {
		return flags | EdgeFlags(uint64(1)<<ev.shift)
	}
	return flags &^ EdgeFlags(uint64(1)<<ev.shift)
}

// GetBool returns stored value
func (ev BoolEncodedValue) GetBool(flags EdgeFlags) bool {
	return uint64(flags)&(uint64(1)<<ev.shift) != 0
}
