// Package cmd provides the CLI commands for trailcost.
package cmd

import (
	"fmt"

	"github.com/LdDl/trailcost"
	"github.com/LdDl/trailcost/internal/config"
	"github.com/LdDl/trailcost/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	settings *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trailcost",
	Short: "Encode pedestrian and hiking costs of OSM ways",
	Long: `trailcost turns OpenStreetMap ways into per-edge travel attributes for
pedestrian and hiking routing: terrain speed, access and routing priority.

Examples:
  trailcost build --out alps.csv alps.osm.pbf
  trailcost build --calibration conservative --speed-factor 0.5 alps.osm.pbf
  trailcost weights --strict avoid_areas.geojson
  trailcost check-version alps_encoder.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: initSettings,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./trailcost.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.String("profile", trailcost.PROFILE_HIKING.String(), "pedestrian profile (foot, hiking)")
	flags.String("calibration", trailcost.CALIBRATION_STANDARD.String(), "speed table calibration (standard, conservative or one from calibrations file)")
	flags.String("calibrations", "", "TOML file with extra calibrations")
	flags.Uint("speed-bits", trailcost.DEFAULT_SPEED_BITS, "bits reserved for speed in edge flags")
	flags.Float64("speed-factor", trailcost.DEFAULT_SPEED_FACTOR, "speed quantization step, km/h")
	flags.Bool("block-fords", false, "treat fords as impassable")
	flags.Int("workers", 4, "number of parallel workers")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(checkVersionCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"profile":              "profile",
		"calibration":          "calibration",
		"calibrations_file":    "calibrations",
		"encoder.speed_bits":   "speed-bits",
		"encoder.speed_factor": "speed-factor",
		"encoder.block_fords":  "block-fords",
		"workers":              "workers",
	}
	for key, flagName := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}
	return nil
}

func initSettings(cmd *cobra.Command, args []string) error {
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	settings = cfg
	return nil
}

// newEncoder builds encoder for current settings
func newEncoder() (*trailcost.WayEncoder, error) {
	profile, err := settings.ProfileConfig()
	if err != nil {
		return nil, err
	}
	return trailcost.NewWayEncoder(profile, settings.Encoder.Options()...)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trailcost version 0.3.0 (encoding version %d)\n", trailcost.ENCODING_VERSION)
	},
}
