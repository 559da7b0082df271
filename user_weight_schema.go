package trailcost

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema of user weights document used in strict mode. Besides the checks done by parser itself
// it requires closed-ring sized linear rings and explicit `type` members of features
const userWeightsSchemaJSON = `{
	"$defs": {
		"position": {"type": "array", "minItems": 2, "items": {"type": "number"}},
		"ring": {"type": "array", "minItems": 4, "items": {"$ref": "#/$defs/position"}},
		"polygon": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/ring"}},
		"geometry": {
			"type": "object",
			"required": ["type", "coordinates"],
			"oneOf": [
				{"properties": {"type": {"const": "Polygon"}, "coordinates": {"$ref": "#/$defs/polygon"}}},
				{"properties": {"type": {"const": "MultiPolygon"}, "coordinates": {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/polygon"}}}}
			]
		},
		"weight": {
			"oneOf": [
				{"type": "number", "exclusiveMinimum": 0},
				{"type": "string", "pattern": "^\\s*[0-9]*\\.?[0-9]+([eE][-+]?[0-9]+)?\\s*$"}
			]
		},
		"feature": {
			"type": "object",
			"required": ["type", "properties", "geometry"],
			"properties": {
				"type": {"const": "Feature"},
				"properties": {
					"type": "object",
					"required": ["weight"],
					"properties": {"weight": {"$ref": "#/$defs/weight"}}
				},
				"geometry": {"$ref": "#/$defs/geometry"}
			}
		}
	},
	"oneOf": [
		{"$ref": "#/$defs/feature"},
		{
			"type": "object",
			"required": ["type", "features"],
			"properties": {
				"type": {"const": "FeatureCollection"},
				"features": {"type": "array", "items": {"$ref": "#/$defs/feature"}}
			}
		}
	]
}`

var userWeightsSchema = jsonschema.MustCompileString("user_weights.schema.json", userWeightsSchemaJSON)

// validateUserWeightsSchema validates raw document against userWeightsSchema
func validateUserWeightsSchema(data []byte) error {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return newWeightParseError(ErrMalformedDocument, "", err)
	}
	if err := userWeightsSchema.Validate(doc); err != nil {
		return newWeightParseError(ErrSchemaViolation, "", err)
	}
	return nil
}
