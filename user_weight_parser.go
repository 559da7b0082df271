package trailcost

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

const (
	documentFeature           = "Feature"
	documentFeatureCollection = "FeatureCollection"
)

// UserWeightParser converts GeoJSON Feature / FeatureCollection with `weight` properties into AugmentationList.
// Parser holds no mutable state and is safe for concurrent use
type UserWeightParser struct {
	strictSchema bool
}

// NewUserWeightParser creates parser
func NewUserWeightParser(options ...func(*UserWeightParser)) *UserWeightParser {
	parser := &UserWeightParser{
		strictSchema: false,
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithSchemaValidation enables validation of whole document against JSON schema after it has been parsed
func WithSchemaValidation(enabled bool) func(*UserWeightParser) {
	return func(parser *UserWeightParser) {
		parser.strictSchema = enabled
	}
}

// rawObject is a GeoJSON object with members which are parsed lazily
type rawObject struct {
	Type       string            `json:"type"`
	Properties json.RawMessage   `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
	Features   []json.RawMessage `json:"features"`
}

// ParseString is the same as Parse for string input
func (parser *UserWeightParser) ParseString(input string) (AugmentationList, error) {
	return parser.Parse([]byte(input))
}

// Parse returns augmentations in document order. No partial result is returned on failure
func (parser *UserWeightParser) Parse(data []byte) (AugmentationList, error) {
	var doc rawObject
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newWeightParseError(ErrMalformedDocument, "", err)
	}
	var result AugmentationList
	switch doc.Type {
	case documentFeature:
		aw, err := parseFeature(doc, "")
		if err != nil {
			return nil, err
		}
		result = AugmentationList{aw}
	case documentFeatureCollection:
		if doc.Features == nil {
			return nil, newWeightParseError(ErrMissingRequiredField, "features", nil)
		}
		result = make(AugmentationList, 0, len(doc.Features))
		for i, rawFeature := range doc.Features {
			path := fmt.Sprintf("features[%d].", i)
			var feature rawObject
			if err := json.Unmarshal(rawFeature, &feature); err != nil {
				return nil, newWeightParseError(ErrMalformedDocument, strings.TrimSuffix(path, "."), err)
			}
			if feature.Type != documentFeature {
				e := newWeightParseError(ErrUnsupportedDocumentShape, path+"type", fmt.Errorf("element of FeatureCollection should be a Feature"))
				e.Type = feature.Type
				return nil, e
			}
			aw, err := parseFeature(feature, path)
			if err != nil {
				return nil, err
			}
			result = append(result, aw)
		}
	default:
		return nil, bareGeometryError(data, doc.Type)
	}
	if parser.strictSchema {
		if err := validateUserWeightsSchema(data); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// AddWeightAugmentations appends augmentation built from explicit arguments to the list
func (parser *UserWeightParser) AddWeightAugmentations(list *AugmentationList, geometry orb.Geometry, weight float64) error {
	if geometry == nil {
		return newWeightParseError(ErrMissingRequiredField, "geometry", nil)
	}
	list.Add(geometry, weight)
	return nil
}

// bareGeometryError tries to read payload as plain Geometry. Such document has no weight thus it is never accepted
func bareGeometryError(data []byte, docType string) error {
	e := newWeightParseError(ErrUnsupportedDocumentShape, "type", nil)
	e.Type = docType
	if _, err := geojson.UnmarshalGeometry(data); err != nil {
		e.Err = err
	} else {
		e.Err = fmt.Errorf("geometry without Feature has no weight")
	}
	return e
}

func parseFeature(feature rawObject, path string) (AugmentedWeight, error) {
	weight, err := parseWeight(feature.Properties, path)
	if err != nil {
		return AugmentedWeight{}, err
	}
	if isNullJSON(feature.Geometry) {
		return AugmentedWeight{}, newWeightParseError(ErrMissingRequiredField, path+"geometry", nil)
	}
	g, err := geojson.UnmarshalGeometry(feature.Geometry)
	if err != nil {
		return AugmentedWeight{}, newWeightParseError(ErrMalformedGeometry, path+"geometry", err)
	}
	region, err := regionFromGeoJSON(g)
	if err != nil {
		return AugmentedWeight{}, newWeightParseError(ErrMalformedGeometry, path+"geometry", err)
	}
	return NewAugmentedWeight(region, weight), nil
}

// parseWeight extracts `weight` from raw properties. Both JSON numbers and numeric strings are accepted
func parseWeight(properties json.RawMessage, path string) (float64, error) {
	field := path + "properties.weight"
	if isNullJSON(properties) {
		return 0, newWeightParseError(ErrMissingRequiredField, field, nil)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(properties, &members); err != nil {
		return 0, newWeightParseError(ErrMalformedDocument, path+"properties", err)
	}
	raw, ok := members["weight"]
	if !ok || isNullJSON(raw) {
		return 0, newWeightParseError(ErrMissingRequiredField, field, nil)
	}
	var weight float64
	if err := json.Unmarshal(raw, &weight); err != nil {
		var text string
		if errStr := json.Unmarshal(raw, &text); errStr != nil {
			return 0, newWeightParseError(ErrInvalidWeight, field, fmt.Errorf("expected number or numeric string, got %s", string(raw)))
		}
		weight, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, newWeightParseError(ErrInvalidWeight, field, err)
		}
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, newWeightParseError(ErrInvalidWeight, field, fmt.Errorf("weight should be positive, got %v", weight))
	}
	return weight, nil
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
