package trailcost

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileFormat is a format of OSM file
type FileFormat uint16

const (
	FORMAT_XML = FileFormat(iota + 1)
	FORMAT_PBF
)

func (iotaIdx FileFormat) String() string {
	if iotaIdx < FORMAT_XML || iotaIdx > FORMAT_PBF {
		return "undefined"
	}
	return [...]string{"xml", "pbf"}[iotaIdx-1]
}

// FormatByFilename guesses file format by extension
func FormatByFilename(fileName string) (FileFormat, error) {
	switch {
	case strings.HasSuffix(fileName, ".pbf"):
		return FORMAT_PBF, nil
	case strings.HasSuffix(fileName, ".osm"), strings.HasSuffix(fileName, ".xml"):
		return FORMAT_XML, nil
	}
	return 0, fmt.Errorf("file extension of '%s' is not handled yet", fileName)
}

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// Loader reads OSM data and splits accepted ways into edges
type Loader struct {
	profile    ProfileConfig
	blockFords bool
	procs      int
	logger     *zap.Logger
}

func WithLoaderBlockFords(blockFords bool) func(*Loader) {
	return func(loader *Loader) {
		loader.blockFords = blockFords
	}
}

func WithLoaderProcs(procs int) func(*Loader) {
	return func(loader *Loader) {
		loader.procs = procs
	}
}

func WithLoaderLogger(logger *zap.Logger) func(*Loader) {
	return func(loader *Loader) {
		loader.logger = logger
	}
}

// NewLoader creates loader for given profile
func NewLoader(profile ProfileConfig, options ...func(*Loader)) *Loader {
	loader := &Loader{
		profile: profile,
		procs:   4,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(loader)
	}
	return loader
}

// LoadEdges reads edges from *.osm / *.osm.pbf file
func (loader *Loader) LoadEdges(ctx context.Context, fileName string) ([]Edge, error) {
	format, err := FormatByFilename(fileName)
	if err != nil {
		return nil, err
	}
	loader.logger.Info("Opening file", zap.String("file", fileName), zap.Stringer("format", format))
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()
	return loader.ReadEdges(ctx, file, format)
}

func (loader *Loader) newScanner(ctx context.Context, r io.Reader, format FileFormat) OSMScanner {
	if format == FORMAT_PBF {
		return osmpbf.New(ctx, r, loader.procs)
	}
	return osmxml.New(ctx, r)
}

// ReadEdges reads edges from given source. Source is read twice: ways and relations first, nodes then
func (loader *Loader) ReadEdges(ctx context.Context, r io.ReadSeeker, format FileFormat) ([]Edge, error) {
	decider := NewAccessDecider(loader.profile, loader.blockFords)

	st := time.Now()
	ways := []*Way{}
	nodesSeen := make(map[osm.NodeID]struct{})
	relationCodes := make(map[osm.WayID]PriorityCode)
	{
		scanner := loader.newScanner(ctx, r, format)
		for scanner.Scan() {
			switch obj := scanner.Object().(type) {
			case *osm.Way:
				access := decider.GetAccess(obj.Tags)
				if access.CanSkip() || len(obj.Nodes) < 2 {
					continue
				}
				preparedWay := &Way{
					ID:     obj.ID,
					Nodes:  make([]osm.NodeID, 0, len(obj.Nodes)),
					TagMap: make(osm.Tags, len(obj.Tags)),
					Access: access,
				}
				copy(preparedWay.TagMap, obj.Tags)
				for _, node := range obj.Nodes {
					preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
					nodesSeen[node.ID] = struct{}{}
				}
				ways = append(ways, preparedWay)
			case *osm.Relation:
				code := RelationPriority(loader.profile, obj.Tags)
				if code == 0 {
					continue
				}
				for _, member := range obj.Members {
					if member.Type != osm.TypeWay {
						continue
					}
					wayID := osm.WayID(member.Ref)
					relationCodes[wayID] = MaxRelationPriority(relationCodes[wayID], code)
				}
			}
		}
		err := scanner.Err()
		scanner.Close()
		if err != nil {
			return nil, errors.Wrap(err, "Scanner error on Ways")
		}
	}
	for _, way := range ways {
		way.RelationPriority = relationCodes[way.ID]
	}
	loader.logger.Info("Ways have been scanned", zap.Duration("elapsed", time.Since(st)), zap.Int("ways", len(ways)), zap.Int("relation_ways", len(relationCodes)))

	// Seek file to start
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}

	st = time.Now()
	nodes := make(map[osm.NodeID]*Node, len(nodesSeen))
	{
		scanner := loader.newScanner(ctx, r, format)
		for scanner.Scan() {
			node, ok := scanner.Object().(*osm.Node)
			if !ok {
				continue
			}
			if _, ok := nodesSeen[node.ID]; !ok {
				continue
			}
			ele, hasEle := parseElevation(node.Tags.Find("ele"))
			nodes[node.ID] = &Node{
				ID:     node.ID,
				Point:  GeoPoint{Lon: node.Lon, Lat: node.Lat},
				Ele:    ele,
				HasEle: hasEle,
			}
		}
		err := scanner.Err()
		scanner.Close()
		if err != nil {
			return nil, errors.Wrap(err, "Scanner error on Nodes")
		}
	}
	loader.logger.Info("Nodes have been scanned", zap.Duration("elapsed", time.Since(st)), zap.Int("nodes", len(nodes)))

	// Count node use cases
	completeWays := ways[:0]
	for _, way := range ways {
		missing := false
		for _, nodeID := range way.Nodes {
			if _, ok := nodes[nodeID]; !ok {
				missing = true
				break
			}
		}
		if missing {
			loader.logger.Warn("Way references missing node, skipping it", zap.Int64("way_id", int64(way.ID)))
			continue
		}
		for i, nodeID := range way.Nodes {
			if i == 0 || i == len(way.Nodes)-1 {
				nodes[nodeID].useCount += 2
			} else {
				nodes[nodeID].useCount++
			}
		}
		completeWays = append(completeWays, way)
	}

	st = time.Now()
	edges := []Edge{}
	for _, way := range completeWays {
		source := way.Nodes[0]
		segment := []*Node{nodes[source]}
		for _, nodeID := range way.Nodes[1:] {
			node := nodes[nodeID]
			segment = append(segment, node)
			if node.useCount > 1 {
				edge, err := prepareEdge(EdgeID(len(edges)), way, segment)
				if err != nil {
					return nil, errors.Wrapf(err, "Can't prepare edge for way %d", way.ID)
				}
				edges = append(edges, edge)
				segment = []*Node{node}
			}
		}
	}
	loader.logger.Info("Edges have been prepared", zap.Duration("elapsed", time.Since(st)), zap.Int("edges", len(edges)))
	return edges, nil
}

func prepareEdge(id EdgeID, way *Way, segment []*Node) (Edge, error) {
	geom := make([]GeoPoint, len(segment))
	points := make([]Point3D, len(segment))
	is3D := true
	for i, node := range segment {
		geom[i] = node.Point
		points[i] = Point3D{Lon: node.Point.Lon, Lat: node.Point.Lat, Ele: node.Ele}
		is3D = is3D && node.HasEle
	}
	elevation, err := NewElevationProfile(points, is3D)
	if err != nil {
		return Edge{}, err
	}
	return Edge{
		ID:               id,
		WayID:            way.ID,
		SourceNodeID:     segment[0].ID,
		TargetNodeID:     segment[len(segment)-1].ID,
		DistanceMeters:   PlanarDistanceMeters(geom),
		Geom:             geom,
		Elevation:        elevation,
		Tags:             way.TagMap,
		Access:           way.Access,
		RelationPriority: way.RelationPriority,
	}, nil
}
