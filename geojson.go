// Package geojson converts between generic JSON value trees and a typed model
// of the GeoJSON format (RFC 7946): geometries, features and feature
// collections.
//
// The package recognizes a document by its "type" member, structures it into
// the matching typed value, and converts it back to an equivalent JSON tree
// or text without loss. Top-level members outside the GeoJSON grammar are
// preserved verbatim as foreign members.
//
// For the GeoJSON RFC specification see:
//
//	https://tools.ietf.org/html/rfc7946
package geojson

import (
	"encoding/json"
	"io"
)

// Type identifies one of the nine GeoJSON object types named by the "type"
// member.
type Type string

const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// ResolveType inspects the "type" member of obj and maps it to one of the
// nine GeoJSON type names. Matching is exact and case-sensitive. A missing or
// non-string member yields an *UnknownTypeError; a string that is not one of
// the nine names yields ErrUnrecognizedType. The object is never mutated.
func ResolveType(obj Object) (Type, error) {
	raw, ok := obj["type"]
	if !ok {
		return "", &UnknownTypeError{Field: "type"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &UnknownTypeError{Field: "type"}
	}

	switch t := Type(s); t {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection,
		TypeFeature, TypeFeatureCollection:
		return t, nil
	}

	return "", ErrUnrecognizedType
}

// GeoJSON is the closed union of the three top-level GeoJSON object kinds.
// It is implemented only by *Geometry, *Feature and *FeatureCollection; the
// variant held always agrees with the "type" tag that produced it.
type GeoJSON interface {
	json.Marshaler

	// Kind returns the variant name: "Geometry", "Feature" or
	// "FeatureCollection".
	Kind() string

	// ToObject converts the value back into a JSON object. The conversion
	// is total and re-emits the "type" member, bounding box and foreign
	// members.
	ToObject() Object

	// String renders the value as compact JSON text.
	String() string

	// geoJSON seals the interface to the three variants above.
	geoJSON()
}

// FromObject converts a decoded JSON object into the matching GeoJSON
// variant, selected by the object's "type" member. Resolver failures and
// constructor failures are returned unchanged.
func FromObject(obj Object) (GeoJSON, error) {
	typ, err := ResolveType(obj)
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeFeature:
		return NewFeatureFromObject(obj)
	case TypeFeatureCollection:
		return NewFeatureCollectionFromObject(obj)
	default:
		return NewGeometryFromObject(obj)
	}
}

// FromValue converts any decoded JSON value into a GeoJSON variant. Values
// that are not objects fail with *ExpectedObjectError.
func FromValue(value interface{}) (GeoJSON, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, &ExpectedObjectError{Value: value}
	}
	return FromObject(Object(obj))
}

// Unmarshal parses a GeoJSON document from its JSON text encoding. Text that
// is not valid JSON fails with *MalformedJSONError; valid JSON whose top
// level is not an object fails with *ExpectedObjectValueError.
func Unmarshal(data []byte) (GeoJSON, error) {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, &ExpectedObjectValueError{Value: value}
	}

	return FromObject(Object(obj))
}

// FromReader parses a GeoJSON document from a stream of JSON text. Decode
// failures are returned as the json package's own error types, unwrapped.
func FromReader(r io.Reader) (GeoJSON, error) {
	var value interface{}
	if err := json.NewDecoder(r).Decode(&value); err != nil {
		return nil, err
	}
	return FromValue(value)
}

// ToValue converts g into a plain decoded JSON value of object kind. It is
// the inverse of FromValue for every validly constructed value.
func ToValue(g GeoJSON) interface{} {
	return map[string]interface{}(g.ToObject())
}

// Marshal renders g as compact JSON text.
func Marshal(g GeoJSON) ([]byte, error) {
	return g.MarshalJSON()
}

// AsGeometry narrows g to the Geometry variant, failing with
// *ExpectedTypeError when g holds a feature or collection instead.
func AsGeometry(g GeoJSON) (*Geometry, error) {
	geom, ok := g.(*Geometry)
	if !ok {
		return nil, &ExpectedTypeError{Expected: "Geometry", Actual: g.Kind()}
	}
	return geom, nil
}

// AsFeature narrows g to the Feature variant.
func AsFeature(g GeoJSON) (*Feature, error) {
	f, ok := g.(*Feature)
	if !ok {
		return nil, &ExpectedTypeError{Expected: "Feature", Actual: g.Kind()}
	}
	return f, nil
}

// AsFeatureCollection narrows g to the FeatureCollection variant.
func AsFeatureCollection(g GeoJSON) (*FeatureCollection, error) {
	fc, ok := g.(*FeatureCollection)
	if !ok {
		return nil, &ExpectedTypeError{Expected: "FeatureCollection", Actual: g.Kind()}
	}
	return fc, nil
}
