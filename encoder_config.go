package trailcost

import (
	"fmt"
)

const (
	DEFAULT_SPEED_BITS   = 4
	DEFAULT_SPEED_FACTOR = 1.0
)

// EncoderConfig is a construction-time configuration of WayEncoder
type EncoderConfig struct {
	// Bit width reserved for quantized speed
	SpeedBits uint
	// Quantization scale of speed
	SpeedFactor float64
	// Whether fords are excluded from access
	BlockFords bool
}

// DefaultEncoderConfig returns configuration with default values
func DefaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		SpeedBits:   DEFAULT_SPEED_BITS,
		SpeedFactor: DEFAULT_SPEED_FACTOR,
		BlockFords:  false,
	}
}

func (cfg EncoderConfig) String() string {
	return fmt.Sprintf(`
Encoder parameters:
	speed_bits: %d
	speed_factor: %v
	block_fords: %t
	`,
		cfg.SpeedBits,
		cfg.SpeedFactor,
		cfg.BlockFords,
	)
}

// Validate checks bounds of configuration
func (cfg EncoderConfig) Validate() error {
	if cfg.SpeedBits < 1 || cfg.SpeedBits > 32 {
		return fmt.Errorf("speed_bits should be in [1, 32], got %d", cfg.SpeedBits)
	}
	if !isPositiveFinite(cfg.SpeedFactor) {
		return fmt.Errorf("speed_factor should be positive, got %f", cfg.SpeedFactor)
	}
	return nil
}

func WithSpeedBits(speedBits uint) func(*EncoderConfig) {
	return func(cfg *EncoderConfig) {
		cfg.SpeedBits = speedBits
	}
}

func WithSpeedFactor(speedFactor float64) func(*EncoderConfig) {
	return func(cfg *EncoderConfig) {
		cfg.SpeedFactor = speedFactor
	}
}

func WithBlockFords(blockFords bool) func(*EncoderConfig) {
	return func(cfg *EncoderConfig) {
		cfg.BlockFords = blockFords
	}
}
