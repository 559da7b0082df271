package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LdDl/trailcost"
	"github.com/LdDl/trailcost/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	out           string
	geomFormat    string
	doContraction bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Encode OSM ways and prepare routing graph",
	Long: `Read *.osm.pbf or *.osm file, encode speed, access and priority of every
accepted way, correct speeds by slope and write graph as CSV files.

If output file name is 'map.csv' then following files will be produced:
  map.csv            edges
  map_vertices.csv   vertices
  map_shortcuts.csv  contraction shortcuts (only with --contract)
  map_encoder.txt    encoder descriptor (see check-version command)`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&out, "out", "o", "graph.csv", "filename of 'Comma-Separated Values' (CSV) formatted file")
	buildCmd.Flags().StringVar(&geomFormat, "geomf", "wkt", "format of output geometry. Expected values: wkt / geojson")
	buildCmd.Flags().BoolVar(&doContraction, "contract", true, "prepare contraction hierarchies")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := logging.Logger

	enc, err := newEncoder()
	if err != nil {
		return err
	}
	logger.Info("Encoder is ready", zap.String("encoder", enc.String()))

	loader := trailcost.NewLoader(
		enc.Profile(),
		trailcost.WithLoaderBlockFords(enc.Config().BlockFords),
		trailcost.WithLoaderProcs(settings.Workers),
		trailcost.WithLoaderLogger(logger),
	)
	st := time.Now()
	edges, err := loader.LoadEdges(ctx, args[0])
	if err != nil {
		return err
	}
	logger.Info("Edges have been loaded", zap.Int("edges", len(edges)), zap.Duration("elapsed", time.Since(st)))

	st = time.Now()
	encoded, err := trailcost.EncodeEdges(ctx, enc, edges, settings.Workers)
	if err != nil {
		return err
	}
	logger.Info("Edges have been encoded", zap.Duration("elapsed", time.Since(st)))

	graph, err := trailcost.BuildGraph(encoded)
	if err != nil {
		return err
	}

	files := prepareOutputNames(out)
	if err := writeEdges(files.edges, encoded); err != nil {
		return err
	}

	if doContraction {
		logger.Info("Starting contraction process")
		st = time.Now()
		graph.PrepareContractionHierarchies()
		logger.Info("Done contraction process", zap.Duration("elapsed", time.Since(st)))
	}

	if err := writeVertices(files.vertices, graph, vertexGeoms(encoded)); err != nil {
		return err
	}

	if doContraction {
		err = graph.ExportShortcutsToFile(files.shortcuts)
		if err != nil {
			return errors.Wrap(err, "Can't export shortcuts")
		}
	}

	err = os.WriteFile(files.encoder, []byte(enc.String()+"\n"), 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write encoder descriptor")
	}
	fmt.Printf("Graph has been written to '%s' (%d edges, %d vertices)\n", files.edges, len(encoded), len(graph.Vertices))
	return nil
}

type outputNames struct {
	edges     string
	vertices  string
	shortcuts string
	encoder   string
}

func prepareOutputNames(fileName string) outputNames {
	base := strings.TrimSuffix(fileName, ".csv") // to guarantee proper filename and its extension
	return outputNames{
		edges:     base + ".csv",
		vertices:  base + "_vertices.csv",
		shortcuts: base + "_shortcuts.csv",
		encoder:   base + "_encoder.txt",
	}
}

func useGeoJSON() bool {
	return strings.ToLower(geomFormat) == "geojson"
}
