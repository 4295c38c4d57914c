package geojson

import (
	"encoding/json"
	"fmt"
)

// FeatureCollection is an ordered sequence of features, with an optional
// bounding box and any foreign top-level members carried through verbatim.
type FeatureCollection struct {
	Features       []*Feature
	BoundingBox    []float64
	ForeignMembers Object
}

// NewFeatureCollection creates an empty feature collection.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Features: make([]*Feature, 0)}
}

// AddFeature appends a feature to the collection.
func (fc *FeatureCollection) AddFeature(feature *Feature) *FeatureCollection {
	fc.Features = append(fc.Features, feature)
	return fc
}

// NewFeatureCollectionFromObject converts a decoded JSON object with a
// "FeatureCollection" type tag into a FeatureCollection. Element order of the
// "features" array is preserved.
func NewFeatureCollectionFromObject(obj Object) (*FeatureCollection, error) {
	typ, err := ResolveType(obj)
	if err != nil {
		return nil, err
	}
	if typ != TypeFeatureCollection {
		return nil, fmt.Errorf("geojson: object has type %s, expected FeatureCollection", typ)
	}

	raw, ok := obj["features"]
	if !ok {
		return nil, fmt.Errorf("geojson: FeatureCollection is missing the \"features\" member")
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: \"features\" must be an array, got %T", raw)
	}

	fc := &FeatureCollection{Features: make([]*Feature, len(arr))}
	for i, e := range arr {
		sub, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("geojson: feature %d is %T, expected an object", i, e)
		}
		if fc.Features[i], err = NewFeatureFromObject(Object(sub)); err != nil {
			return nil, err
		}
	}

	if fc.BoundingBox, err = decodeBBox(obj); err != nil {
		return nil, err
	}

	fc.ForeignMembers = foreignMembers(obj, "type", "features", "bbox")
	return fc, nil
}

// ToObject converts the collection back into a JSON object. The "features"
// member is always emitted, at least as an empty array, per RFC 7946.
func (fc *FeatureCollection) ToObject() Object {
	obj := make(Object)
	obj["type"] = string(TypeFeatureCollection)

	features := make([]interface{}, len(fc.Features))
	for i, f := range fc.Features {
		features[i] = map[string]interface{}(f.ToObject())
	}
	obj["features"] = features

	if len(fc.BoundingBox) > 0 {
		obj["bbox"] = encodeBBox(fc.BoundingBox)
	}
	for k, v := range fc.ForeignMembers {
		obj[k] = v
	}

	return obj
}

// Kind implements GeoJSON.
func (fc *FeatureCollection) Kind() string {
	return "FeatureCollection"
}

// MarshalJSON converts the collection into its JSON encoding, including all
// child features and geometries.
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(fc.ToObject())
}

// UnmarshalJSON decodes JSON data into the collection.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return &MalformedJSONError{Err: err}
	}

	parsed, err := NewFeatureCollectionFromObject(obj)
	if err != nil {
		return err
	}

	*fc = *parsed
	return nil
}

// String renders the collection as compact JSON text.
func (fc *FeatureCollection) String() string {
	data, err := fc.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (fc *FeatureCollection) geoJSON() {}
