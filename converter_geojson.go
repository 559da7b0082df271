package trailcost

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) string {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONGeometry returns GeoJSON representation of augmentation region (Polygon or MultiPolygon)
func PrepareGeoJSONGeometry(geom orb.Geometry) string {
	var g *geojson.Geometry
	switch v := geom.(type) {
	case orb.Polygon:
		g = geojson.NewPolygonGeometry(polygonToCoordinates(v))
	case orb.MultiPolygon:
		polygons := make([][][][]float64, len(v))
		for i := range v {
			polygons[i] = polygonToCoordinates(v[i])
		}
		g = geojson.NewMultiPolygonGeometry(polygons...)
	default:
		fmt.Printf("Warning. Geometry of type %T can't be an augmentation region\n", geom)
		return ""
	}
	b, err := g.MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

func polygonToCoordinates(polygon orb.Polygon) [][][]float64 {
	rings := make([][][]float64, len(polygon))
	for i, ring := range polygon {
		rings[i] = make([][]float64, len(ring))
		for j, pt := range ring {
			rings[i][j] = []float64{pt.X(), pt.Y()}
		}
	}
	return rings
}

// regionFromGeoJSON converts decoded GeoJSON geometry into orb.Polygon or orb.MultiPolygon
func regionFromGeoJSON(g *geojson.Geometry) (orb.Geometry, error) {
	switch g.Type {
	case geojson.GeometryPolygon:
		return polygonFromCoordinates(g.Polygon)
	case geojson.GeometryMultiPolygon:
		if len(g.MultiPolygon) == 0 {
			return nil, fmt.Errorf("multipolygon has no polygons")
		}
		result := make(orb.MultiPolygon, len(g.MultiPolygon))
		for i := range g.MultiPolygon {
			polygon, err := polygonFromCoordinates(g.MultiPolygon[i])
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %s", i, err.Error())
			}
			result[i] = polygon
		}
		return result, nil
	default:
		return nil, fmt.Errorf("geometry type '%s' is not supported, expected Polygon or MultiPolygon", g.Type)
	}
}

func polygonFromCoordinates(rings [][][]float64) (orb.Polygon, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}
	polygon := make(orb.Polygon, len(rings))
	for i, ring := range rings {
		if len(ring) == 0 {
			return nil, fmt.Errorf("ring %d is empty", i)
		}
		polygon[i] = make(orb.Ring, len(ring))
		for j, position := range ring {
			if len(position) < 2 {
				return nil, fmt.Errorf("ring %d: position %d has %d coordinates", i, j, len(position))
			}
			polygon[i][j] = orb.Point{position[0], position[1]}
		}
	}
	return polygon, nil
}
