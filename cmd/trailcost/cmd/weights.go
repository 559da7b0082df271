package cmd

import (
	"fmt"
	"os"

	"github.com/LdDl/trailcost"
	"github.com/LdDl/trailcost/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strictSchema bool

// weightsCmd represents the weights command
var weightsCmd = &cobra.Command{
	Use:   "weights [file]",
	Short: "Parse user-supplied weighted regions",
	Long: `Parse GeoJSON Feature or FeatureCollection whose features carry Polygon or
MultiPolygon geometry and 'weight' property. Every parsed region is printed
as 'weight;geometry' line.

Examples:
  trailcost weights avoid_areas.geojson
  trailcost weights --strict --geomf geojson avoid_areas.geojson`,
	Args: cobra.ExactArgs(1),
	RunE: runWeights,
}

func init() {
	weightsCmd.Flags().BoolVar(&strictSchema, "strict", false, "validate document against JSON schema")
	weightsCmd.Flags().StringVar(&geomFormat, "geomf", "wkt", "format of output geometry. Expected values: wkt / geojson")
}

func runWeights(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "Can't read weights file")
	}
	parser := trailcost.NewUserWeightParser(trailcost.WithSchemaValidation(strictSchema))
	list, err := parser.Parse(data)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Weights have been parsed", zap.Int("regions", len(list)))
	for _, item := range list {
		geomStr := ""
		if useGeoJSON() {
			geomStr = trailcost.PrepareGeoJSONGeometry(item.Geometry)
		} else {
			geomStr = trailcost.PrepareWKTGeometry(item.Geometry)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g;%s\n", item.Weight, geomStr)
	}
	return nil
}
