package trailcost

import (
	"context"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EncodedEdge is an edge with encoded and slope-corrected flags
type EncodedEdge struct {
	Edge
	Flags          EdgeFlags
	SpeedKmh       float64
	Priority       PriorityCode
	PriorityFactor float64
	Forward        bool
	Backward       bool
}

// TravelCost returns cost of traversing the edge: travel time (seconds) biased by priority factor.
// False is returned for edges with zero speed
func (e EncodedEdge) TravelCost() (float64, bool) {
	if e.SpeedKmh <= 0 {
		return 0, false
	}
	seconds := e.DistanceMeters / (e.SpeedKmh / 3.6)
	return seconds / (0.5 + e.PriorityFactor), true
}

// EncodeEdges encodes tags of every edge and applies slope correction. Work is split between given number of workers
func EncodeEdges(ctx context.Context, enc *WayEncoder, edges []Edge, workers int) ([]EncodedEdge, error) {
	if workers < 1 {
		workers = 1
	}
	corrector := NewSlopeCorrector(enc)
	result := make([]EncodedEdge, len(edges))
	chunk := (len(edges) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(edges); start += chunk {
		from, to := start, start+chunk
		if to > len(edges) {
			to = len(edges)
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				if i%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				encoded, err := encodeEdge(enc, corrector, edges[i])
				if err != nil {
					return errors.Wrapf(err, "Can't encode edge %d (way %d)", edges[i].ID, edges[i].WayID)
				}
				result[i] = encoded
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func encodeEdge(enc *WayEncoder, corrector *SlopeCorrector, edge Edge) (EncodedEdge, error) {
	flags, err := enc.HandleWayTags(0, edge.Tags, edge.Access, edge.RelationPriority)
	if err != nil {
		return EncodedEdge{}, err
	}
	flags, err = corrector.Correct(flags, edge.Elevation, edge.Tags, edge.DistanceMeters)
	if err != nil {
		return EncodedEdge{}, errors.Wrap(err, "Can't apply slope correction")
	}
	return EncodedEdge{
		Edge:           edge,
		Flags:          flags,
		SpeedKmh:       enc.Speed(flags),
		Priority:       enc.Priority(flags),
		PriorityFactor: enc.PriorityFactor(flags),
		Forward:        enc.IsAccessible(flags, false),
		Backward:       enc.IsAccessible(flags, true),
	}, nil
}

// BuildGraph prepares graph for contraction hierarchies. Vertices are labeled by OSM node IDs
func BuildGraph(edges []EncodedEdge) (*ch.Graph, error) {
	graph := ch.Graph{}
	for _, edge := range edges {
		cost, ok := edge.TravelCost()
		if !ok {
			continue
		}
		source := int64(edge.SourceNodeID)
		target := int64(edge.TargetNodeID)
		err := graph.CreateVertex(source)
		if err != nil {
			return nil, errors.Wrap(err, "Can not create source vertex")
		}
		err = graph.CreateVertex(target)
		if err != nil {
			return nil, errors.Wrap(err, "Can not create target vertex")
		}
		if edge.Forward {
			err = graph.AddEdge(source, target, cost)
			if err != nil {
				return nil, errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
			}
		}
		if edge.Backward {
			err = graph.AddEdge(target, source, cost)
			if err != nil {
				return nil, errors.Wrap(err, "Can not wrap Target and Source vertices as Edge")
			}
		}
	}
	return &graph, nil
}
