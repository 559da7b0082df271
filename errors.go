package trailcost

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedDocumentShape is returned for top-level bare Geometry or unrecognized `type`
	ErrUnsupportedDocumentShape = errors.New("unsupported document shape")
	// ErrMissingRequiredField is returned when Feature lacks `properties.weight` or `geometry`
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMalformedGeometry is returned when geometry fails structural parsing
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrMalformedDocument is returned when payload is not a JSON object
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidWeight is returned when weight is not a positive finite number
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrSchemaViolation is returned when strict schema validation fails
	ErrSchemaViolation = errors.New("schema violation")
	// ErrIncompatibleEncodingVersion is returned when persisted encoding version differs from running encoder one
	ErrIncompatibleEncodingVersion = errors.New("incompatible encoding version")
	// ErrValueOutOfRange is returned when value can't be stored in its encoded field
	ErrValueOutOfRange = errors.New("value out of range")
)

// WeightParseError describes failure of user weights parsing
type WeightParseError struct {
	// One of Err* sentinels
	Kind error
	// Path to offending field, e.g. "features[1].properties.weight"
	Field string
	// Offending `type` value (if any)
	Type string
	// Underlying error (if any)
	Err error
}

func (e *WeightParseError) Error() string {
	msg := fmt.Sprintf("parameter 'user_weights' has incorrect value or format: %s", e.Kind.Error())
	if e.Field != "" {
		msg += fmt.Sprintf(" (field '%s')", e.Field)
	}
	if e.Type != "" {
		msg += fmt.Sprintf(" (type '%s')", e.Type)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap allows errors.Is against Kind
func (e *WeightParseError) Unwrap() error {
	return e.Kind
}

func newWeightParseError(kind error, field string, cause error) *WeightParseError {
	return &WeightParseError{Kind: kind, Field: field, Err: cause}
}
