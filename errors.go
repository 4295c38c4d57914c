package geojson

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedType is returned when an object carries a "type" member that
// is a string, but not one of the nine GeoJSON type names. It fires for any
// unrecognized value, including the empty string.
var ErrUnrecognizedType = errors.New("geojson: unrecognized \"type\" member")

// UnknownTypeError is returned when the member named by Field is missing from
// an object, or is present but not a string, so no conversion can be selected.
type UnknownTypeError struct {
	Field string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("geojson: missing or non-string %q member", e.Field)
}

// ExpectedObjectError is returned by FromValue when the top-level JSON value
// is not an object. Value holds the offending value for diagnostics.
type ExpectedObjectError struct {
	Value interface{}
}

func (e *ExpectedObjectError) Error() string {
	return fmt.Sprintf("geojson: expected a JSON object, got %T", e.Value)
}

// ExpectedObjectValueError is returned by Unmarshal when the document parsed
// cleanly but its top-level value is not an object.
type ExpectedObjectValueError struct {
	Value interface{}
}

func (e *ExpectedObjectValueError) Error() string {
	return fmt.Sprintf("geojson: document top level is %T, expected an object", e.Value)
}

// MalformedJSONError wraps the underlying parse error when the input is not
// valid JSON at all.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("geojson: malformed JSON: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// ExpectedTypeError is returned by the checked narrowing helpers when a
// GeoJSON value holds a different variant than the one requested.
type ExpectedTypeError struct {
	Expected string
	Actual   string
}

func (e *ExpectedTypeError) Error() string {
	return fmt.Sprintf("geojson: expected %s, got %s", e.Expected, e.Actual)
}
