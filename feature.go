package geojson

import (
	"encoding/json"
	"fmt"
)

// Feature is a GeoJSON feature object: an optional geometry plus free-form
// properties, an optional identifier and bounding box, and any foreign
// top-level members carried through verbatim.
type Feature struct {
	Geometry       *Geometry
	ID             interface{}
	Properties     map[string]interface{}
	BoundingBox    []float64
	ForeignMembers Object
}

// NewFeature creates a feature wrapping the given geometry.
func NewFeature(geometry *Geometry) *Feature {
	return &Feature{Geometry: geometry}
}

// NewFeatureFromObject converts a decoded JSON object with a "Feature" type
// tag into a Feature.
func NewFeatureFromObject(obj Object) (*Feature, error) {
	typ, err := ResolveType(obj)
	if err != nil {
		return nil, err
	}
	if typ != TypeFeature {
		return nil, fmt.Errorf("geojson: object has type %s, expected Feature", typ)
	}

	f := &Feature{}

	if raw, ok := obj["geometry"]; ok && raw != nil {
		sub, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("geojson: \"geometry\" must be an object or null, got %T", raw)
		}
		if f.Geometry, err = NewGeometryFromObject(Object(sub)); err != nil {
			return nil, err
		}
	}

	if raw, ok := obj["properties"]; ok && raw != nil {
		props, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("geojson: \"properties\" must be an object or null, got %T", raw)
		}
		f.Properties = props
	}

	if raw, ok := obj["id"]; ok && raw != nil {
		switch raw.(type) {
		case string, float64:
			f.ID = raw
		default:
			return nil, fmt.Errorf("geojson: \"id\" must be a string or number, got %T", raw)
		}
	}

	if f.BoundingBox, err = decodeBBox(obj); err != nil {
		return nil, err
	}

	f.ForeignMembers = foreignMembers(obj, "type", "geometry", "properties", "id", "bbox")
	return f, nil
}

// ToObject converts the feature back into a JSON object. The "geometry" and
// "properties" members are always emitted, as null when absent, per RFC 7946.
func (f *Feature) ToObject() Object {
	obj := make(Object)
	obj["type"] = string(TypeFeature)

	if f.Geometry != nil {
		obj["geometry"] = map[string]interface{}(f.Geometry.ToObject())
	} else {
		obj["geometry"] = nil
	}

	if f.Properties != nil {
		obj["properties"] = f.Properties
	} else {
		obj["properties"] = nil
	}

	if f.ID != nil {
		obj["id"] = f.ID
	}
	if len(f.BoundingBox) > 0 {
		obj["bbox"] = encodeBBox(f.BoundingBox)
	}
	for k, v := range f.ForeignMembers {
		obj[k] = v
	}

	return obj
}

// Kind implements GeoJSON.
func (f *Feature) Kind() string {
	return "Feature"
}

// MarshalJSON converts the feature into its JSON encoding, including its
// child geometry.
func (f *Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToObject())
}

// UnmarshalJSON decodes JSON data into the feature.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return &MalformedJSONError{Err: err}
	}

	parsed, err := NewFeatureFromObject(obj)
	if err != nil {
		return err
	}

	*f = *parsed
	return nil
}

// String renders the feature as compact JSON text.
func (f *Feature) String() string {
	data, err := f.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (f *Feature) geoJSON() {}
