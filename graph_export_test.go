package trailcost

import (
	"context"
	"math"
	"testing"
)

func TestEncodeEdges(t *testing.T) {
	edges := loadTestEdges(t)
	enc, err := NewWayEncoder(HikingProfile(CALIBRATION_STANDARD))
	if err != nil {
		t.Error(err)
		return
	}
	encoded, err := EncodeEdges(context.Background(), enc, edges, 2)
	if err != nil {
		t.Error(err)
		return
	}
	if len(encoded) != len(edges) {
		t.Errorf("Number of encoded edges must be %d, but got %d", len(edges), len(encoded))
		return
	}
	for i := range encoded {
		if encoded[i].ID != edges[i].ID {
			t.Errorf("Encoded edges must keep order: #%d has ID %d", i, encoded[i].ID)
		}
		if !encoded[i].Forward || !encoded[i].Backward {
			t.Errorf("Edge #%d must be accessible in both directions", i)
		}
	}
	// 50 meters up on ~111 meters of mountain_hiking path
	slope := 50 / edges[0].DistanceMeters
	correctSpeed := math.Round(math.Sqrt(1+slope*slope) / (slope + 1/4.5))
	if encoded[0].SpeedKmh != correctSpeed {
		t.Errorf("Speed of sloped edge must be %f, but got %f", correctSpeed, encoded[0].SpeedKmh)
	}
	if encoded[0].Priority != PRIORITY_BEST {
		t.Errorf("Priority of edge on iwn route must be %s, but got %s", PRIORITY_BEST, encoded[0].Priority)
	}
	// No elevation for node 4: speed stays as in the table
	if encoded[2].SpeedKmh != 5 {
		t.Errorf("Speed of 2D edge must be 5, but got %f", encoded[2].SpeedKmh)
	}
	if encoded[2].PriorityFactor != PRIORITY_VERY_NICE.Factor() {
		t.Errorf("Priority factor must be %f, but got %f", PRIORITY_VERY_NICE.Factor(), encoded[2].PriorityFactor)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EncodeEdges(cancelled, enc, edges, 1); err == nil {
		t.Errorf("Cancelled context must stop encoding")
	}
}

func TestTravelCost(t *testing.T) {
	edge := EncodedEdge{
		Edge:           Edge{DistanceMeters: 1000},
		SpeedKmh:       3.6,
		PriorityFactor: 0.5,
	}
	cost, ok := edge.TravelCost()
	if !ok || cost != 1000 {
		t.Errorf("Cost must be 1000, but got %f (%t)", cost, ok)
	}
	edge.PriorityFactor = 1
	better, _ := edge.TravelCost()
	if better >= cost {
		t.Errorf("Higher priority must give lower cost: %f >= %f", better, cost)
	}
	edge.SpeedKmh = 0
	if _, ok := edge.TravelCost(); ok {
		t.Errorf("Edge with zero speed has no cost")
	}
}

func TestBuildGraph(t *testing.T) {
	edges := loadTestEdges(t)
	enc, err := NewWayEncoder(HikingProfile(CALIBRATION_STANDARD))
	if err != nil {
		t.Error(err)
		return
	}
	encoded, err := EncodeEdges(context.Background(), enc, edges, 4)
	if err != nil {
		t.Error(err)
		return
	}
	graph, err := BuildGraph(encoded)
	if err != nil {
		t.Error(err)
		return
	}
	if len(graph.Vertices) != 4 {
		t.Errorf("Number of vertices must be 4, but got %d", len(graph.Vertices))
		return
	}
	graph.PrepareContractionHierarchies()
	cost, path := graph.ShortestPath(1, 4)
	correctPath := []int64{1, 2, 4}
	if len(path) != len(correctPath) {
		t.Errorf("Path must be %v, but got %v", correctPath, path)
		return
	}
	for i := range path {
		if path[i] != correctPath[i] {
			t.Errorf("Path must be %v, but got %v", correctPath, path)
			break
		}
	}
	cost01, _ := encoded[0].TravelCost()
	cost22, _ := encoded[2].TravelCost()
	if math.Abs(cost-(cost01+cost22)) > 1e-6 {
		t.Errorf("Path cost must be %f, but got %f", cost01+cost22, cost)
	}
}
