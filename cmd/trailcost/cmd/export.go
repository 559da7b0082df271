package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/LdDl/ch"
	"github.com/LdDl/trailcost"
	"github.com/pkg/errors"
)

// writeEdges writes encoded edges.
//
//	from_vertex_id - int64, OSM ID of source node
//	to_vertex_id - int64, OSM ID of target node
//	cost - float64, travel cost (seconds biased by priority)
//	distance_m - float64, length of an edge (meters)
//	speed_kmh - float64, slope-corrected speed
//	priority - routing priority name
//	forward - edge could be walked from source to target
//	backward - edge could be walked from target to source
//	geom - geometry (WKT or GeoJSON representation)
//	edge_id - int64, ID of generated edge
//	osm_way_id - int64, ID of source OSM Way
//	flags - encoded edge flags
func writeEdges(fileName string, edges []trailcost.EncodedEdge) error {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Can't create edges file")
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	writer.Comma = ';'
	err = writer.Write([]string{"from_vertex_id", "to_vertex_id", "cost", "distance_m", "speed_kmh", "priority", "forward", "backward", "geom", "edge_id", "osm_way_id", "flags"})
	if err != nil {
		return err
	}
	for _, edge := range edges {
		cost, ok := edge.TravelCost()
		if !ok {
			continue
		}
		geomStr := ""
		if useGeoJSON() {
			geomStr = trailcost.PrepareGeoJSONLinestring(edge.Geom)
		} else {
			geomStr = trailcost.PrepareWKTLinestring(edge.Geom)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", edge.SourceNodeID),
			fmt.Sprintf("%d", edge.TargetNodeID),
			fmt.Sprintf("%f", cost),
			fmt.Sprintf("%f", edge.DistanceMeters),
			fmt.Sprintf("%f", edge.SpeedKmh),
			edge.Priority.String(),
			fmt.Sprintf("%t", edge.Forward),
			fmt.Sprintf("%t", edge.Backward),
			geomStr,
			fmt.Sprintf("%d", edge.ID),
			fmt.Sprintf("%d", edge.WayID),
			edge.Flags.String(),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func vertexGeoms(edges []trailcost.EncodedEdge) map[int64]trailcost.GeoPoint {
	geoms := make(map[int64]trailcost.GeoPoint)
	for _, edge := range edges {
		if len(edge.Geom) < 2 {
			continue
		}
		source := int64(edge.SourceNodeID)
		target := int64(edge.TargetNodeID)
		if _, ok := geoms[source]; !ok {
			geoms[source] = edge.Geom[0]
		}
		if _, ok := geoms[target]; !ok {
			geoms[target] = edge.Geom[len(edge.Geom)-1]
		}
	}
	return geoms
}

// writeVertices writes vertices of graph.
//
//	vertex_id - int64, OSM ID of node
//	order_pos - int, Position of vertex in hierarchies (evaluted by library)
//	importance - int, Importance of vertex in graph (evaluted by library)
//	geom - geometry (WKT or GeoJSON representation)
func writeVertices(fileName string, graph *ch.Graph, geoms map[int64]trailcost.GeoPoint) error {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Can't create vertices file")
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	writer.Comma = ';'
	err = writer.Write([]string{"vertex_id", "order_pos", "importance", "geom"})
	if err != nil {
		return err
	}
	vertices := graph.Vertices
	for i := 0; i < len(vertices); i++ {
		label := vertices[i].Label
		geomStr := ""
		if useGeoJSON() {
			geomStr = trailcost.PrepareGeoJSONPoint(geoms[label])
		} else {
			geomStr = trailcost.PrepareWKTPoint(geoms[label])
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%d", vertices[i].OrderPos()),
			fmt.Sprintf("%d", vertices[i].Importance()),
			geomStr,
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
