// Package config loads trailcost settings from file, environment and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/LdDl/trailcost"
	"github.com/LdDl/trailcost/internal/logging"
	"github.com/spf13/viper"
)

// Config holds all CLI configuration.
type Config struct {
	Profile          string         `mapstructure:"profile"`
	Calibration      string         `mapstructure:"calibration"`
	CalibrationsFile string         `mapstructure:"calibrations_file"`
	Workers          int            `mapstructure:"workers"`
	Encoder          EncoderConfig  `mapstructure:"encoder"`
	Logging          logging.Config `mapstructure:"logging"`
}

type EncoderConfig struct {
	SpeedBits   uint    `mapstructure:"speed_bits"`
	SpeedFactor float64 `mapstructure:"speed_factor"`
	BlockFords  bool    `mapstructure:"block_fords"`
}

// Options turns encoder section into WayEncoder options
func (e EncoderConfig) Options() []func(*trailcost.EncoderConfig) {
	return []func(*trailcost.EncoderConfig){
		trailcost.WithSpeedBits(e.SpeedBits),
		trailcost.WithSpeedFactor(e.SpeedFactor),
		trailcost.WithBlockFords(e.BlockFords),
	}
}

// New returns viper instance with defaults, env binding and optional config file.
// Empty configFile means "look for trailcost.yaml in working directory"
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("profile", trailcost.PROFILE_HIKING.String())
	v.SetDefault("calibration", trailcost.CALIBRATION_STANDARD.String())
	v.SetDefault("calibrations_file", "")
	v.SetDefault("workers", 4)
	v.SetDefault("encoder.speed_bits", trailcost.DEFAULT_SPEED_BITS)
	v.SetDefault("encoder.speed_factor", trailcost.DEFAULT_SPEED_FACTOR)
	v.SetDefault("encoder.block_fords", false)
	defaults := logging.DefaultConfig()
	v.SetDefault("logging.level", defaults.Level)
	v.SetDefault("logging.format", defaults.Format)
	v.SetDefault("logging.output", defaults.Output)
	v.SetDefault("logging.development", defaults.Development)

	// Environment variables: TRAILCOST_ENCODER_SPEED_BITS → encoder.speed_bits
	v.SetEnvPrefix("TRAILCOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}
	v.SetConfigName("trailcost")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // OK if missing
	return v, nil
}

// Load reads configuration from given viper instance and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if _, err := trailcost.ParseProfileType(c.Profile); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Calibration == "" {
		errs = append(errs, "calibration is required")
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Sprintf("workers must be positive, got %d", c.Workers))
	}
	encCfg := trailcost.DefaultEncoderConfig()
	for _, option := range c.Encoder.Options() {
		option(&encCfg)
	}
	if err := encCfg.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ProfileConfig resolves profile and calibration. Calibrations file (if any) extends built-in presets
func (c *Config) ProfileConfig() (trailcost.ProfileConfig, error) {
	profile, err := trailcost.ParseProfileType(c.Profile)
	if err != nil {
		return trailcost.ProfileConfig{}, err
	}
	calibrations := trailcost.Calibrations{}
	if c.CalibrationsFile != "" {
		calibrations, err = trailcost.LoadCalibrationsFile(c.CalibrationsFile)
		if err != nil {
			return trailcost.ProfileConfig{}, err
		}
	}
	calibration, err := calibrations.Lookup(c.Calibration)
	if err != nil {
		return trailcost.ProfileConfig{}, err
	}
	return trailcost.NewProfileConfig(profile, calibration)
}
