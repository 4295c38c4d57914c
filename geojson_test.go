package geojson

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureDoc = `{
	"type": "Feature",
	"geometry": {
		"type": "Point",
		"coordinates": [102.0, 0.5]
	},
	"properties": null
}`

func TestUnmarshalFeature(t *testing.T) {
	g, err := Unmarshal([]byte(featureDoc))
	require.NoError(t, err)
	require.Equal(t, "Feature", g.Kind())

	f, err := AsFeature(g)
	require.NoError(t, err)
	require.NotNil(t, f.Geometry)
	assert.Equal(t, TypePoint, f.Geometry.Type)
	assert.Equal(t, Position{102.0, 0.5}, f.Geometry.Point)
	assert.Nil(t, f.Properties)
	assert.Nil(t, f.ID)
}

func TestUnmarshalFeatureRoundTrip(t *testing.T) {
	g, err := Unmarshal([]byte(featureDoc))
	require.NoError(t, err)

	out, err := Marshal(g)
	require.NoError(t, err)

	// Deep-equal against the original value tree, modulo key ordering.
	var want, got interface{}
	require.NoError(t, json.Unmarshal([]byte(featureDoc), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
}

func TestFromValue(t *testing.T) {
	var value interface{}
	require.NoError(t, json.Unmarshal([]byte(featureDoc), &value))

	g, err := FromValue(value)
	require.NoError(t, err)
	assert.Equal(t, "Feature", g.Kind())
}

func TestFromValueRejectsNonObjects(t *testing.T) {
	for _, value := range []interface{}{
		[]interface{}{1.0, 2.0},
		"Feature",
		42.0,
		true,
		nil,
	} {
		g, err := FromValue(value)
		assert.Nil(t, g)

		var expErr *ExpectedObjectError
		require.ErrorAs(t, err, &expErr)
		assert.Equal(t, value, expErr.Value)
	}
}

func TestUnmarshalRejectsNonObjectTopLevel(t *testing.T) {
	for _, doc := range []string{`[1, 2]`, `"Feature"`, `42`, `true`, `null`} {
		g, err := Unmarshal([]byte(doc))
		assert.Nil(t, g)

		var expErr *ExpectedObjectValueError
		assert.ErrorAs(t, err, &expErr, "doc %s", doc)
	}
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	// Stray token before a feature element in the features array.
	doc := `{
		"type": "FeatureCollection",
		"features": [
			!INTENTIONAL_TYPO! {
				"type": "Feature",
				"properties": {},
				"geometry": {
					"type": "Point",
					"coordinates": [-0.13583511114120483, 51.5218870403801]
				}
			}
		]
	}`

	g, err := Unmarshal([]byte(doc))
	assert.Nil(t, g)

	var malformed *MalformedJSONError
	require.ErrorAs(t, err, &malformed)
	assert.Error(t, malformed.Unwrap())
}

func TestFromReader(t *testing.T) {
	g1, err := FromReader(strings.NewReader(featureDoc))
	require.NoError(t, err)

	g2, err := Unmarshal([]byte(featureDoc))
	require.NoError(t, err)

	assert.Equal(t, g2, g1)
}

func TestFromReaderDecodeError(t *testing.T) {
	g, err := FromReader(strings.NewReader(`{invalid`))
	assert.Nil(t, g)
	require.Error(t, err)

	// Decode failures come back from the json package directly.
	var malformed *MalformedJSONError
	assert.False(t, errors.As(err, &malformed))
}

func TestResolveType(t *testing.T) {
	for _, name := range []string{
		"Point", "MultiPoint", "LineString", "MultiLineString",
		"Polygon", "MultiPolygon", "GeometryCollection",
		"Feature", "FeatureCollection",
	} {
		typ, err := ResolveType(Object{"type": name})
		require.NoError(t, err)
		assert.Equal(t, Type(name), typ)
	}
}

func TestResolveTypeMissing(t *testing.T) {
	for _, obj := range []Object{
		{},
		{"type": 7.0},
		{"type": nil},
		{"TYPE": "Point"},
	} {
		_, err := ResolveType(obj)

		var unknown *UnknownTypeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "type", unknown.Field)
	}
}

func TestResolveTypeUnrecognized(t *testing.T) {
	for _, name := range []string{"Circle", "point", " Point", "Point ", ""} {
		_, err := ResolveType(Object{"type": name})
		assert.ErrorIs(t, err, ErrUnrecognizedType, "type %q", name)
	}
}

func TestFromObjectVariantAgreement(t *testing.T) {
	cases := []struct {
		obj  Object
		kind string
	}{
		{Object{"type": "Point", "coordinates": []interface{}{1.0, 2.0}}, "Geometry"},
		{Object{"type": "MultiPoint", "coordinates": []interface{}{}}, "Geometry"},
		{Object{"type": "LineString", "coordinates": []interface{}{}}, "Geometry"},
		{Object{"type": "MultiLineString", "coordinates": []interface{}{}}, "Geometry"},
		{Object{"type": "Polygon", "coordinates": []interface{}{}}, "Geometry"},
		{Object{"type": "MultiPolygon", "coordinates": []interface{}{}}, "Geometry"},
		{Object{"type": "GeometryCollection", "geometries": []interface{}{}}, "Geometry"},
		{Object{"type": "Feature", "geometry": nil, "properties": nil}, "Feature"},
		{Object{"type": "FeatureCollection", "features": []interface{}{}}, "FeatureCollection"},
	}

	for _, tc := range cases {
		g, err := FromObject(tc.obj)
		require.NoError(t, err, "type %v", tc.obj["type"])
		assert.Equal(t, tc.kind, g.Kind())
	}
}

func TestFromObjectPropagatesConstructorErrors(t *testing.T) {
	// A recognized tag with a broken payload fails in the constructor, not
	// in the resolver.
	_, err := FromObject(Object{"type": "Point", "coordinates": "nope"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnrecognizedType)
}

func TestNarrowing(t *testing.T) {
	feature := NewFeature(NewPointGeometry(Position{1, 2}))

	f, err := AsFeature(feature)
	require.NoError(t, err)
	assert.Same(t, feature, f)

	_, err = AsGeometry(feature)
	var expected *ExpectedTypeError
	require.ErrorAs(t, err, &expected)
	assert.Equal(t, "Geometry", expected.Expected)
	assert.Equal(t, "Feature", expected.Actual)

	_, err = AsFeatureCollection(feature)
	require.ErrorAs(t, err, &expected)
	assert.Equal(t, "FeatureCollection", expected.Expected)
	assert.Equal(t, "Feature", expected.Actual)
}

func TestNarrowingGeometryAndCollection(t *testing.T) {
	geom := NewPointGeometry(Position{1, 2})
	g, err := AsGeometry(geom)
	require.NoError(t, err)
	assert.Same(t, geom, g)

	fc := NewFeatureCollection()
	c, err := AsFeatureCollection(fc)
	require.NoError(t, err)
	assert.Same(t, fc, c)

	var expected *ExpectedTypeError
	_, err = AsFeature(geom)
	require.ErrorAs(t, err, &expected)
	assert.Equal(t, "Feature", expected.Expected)
	assert.Equal(t, "Geometry", expected.Actual)
}

func TestFeatureCollectionOrder(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"n": 1}, "geometry": null},
			{"type": "Feature", "properties": {"n": 2}, "geometry": null},
			{"type": "Feature", "properties": {"n": 3}, "geometry": null}
		]
	}`

	g, err := Unmarshal([]byte(doc))
	require.NoError(t, err)

	fc, err := AsFeatureCollection(g)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	for i, f := range fc.Features {
		assert.Equal(t, float64(i+1), f.Properties["n"])
	}
}

func TestRoundTripPreservesForeignMembers(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"bbox": [100.0, 0.0, 105.0, 1.0],
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [102.0, 0.5]},
				"properties": {"name": "somewhere"},
				"id": "f1",
				"custom": {"nested": true}
			}
		],
		"generator": "unit-test",
		"revision": 3
	}`

	g1, err := Unmarshal([]byte(doc))
	require.NoError(t, err)

	fc, err := AsFeatureCollection(g1)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 0, 105, 1}, fc.BoundingBox)
	assert.Equal(t, Object{"generator": "unit-test", "revision": 3.0}, fc.ForeignMembers)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, Object{"custom": map[string]interface{}{"nested": true}}, fc.Features[0].ForeignMembers)

	out, err := Marshal(g1)
	require.NoError(t, err)

	g2, err := Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)

	var want, got interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
}

func TestToValue(t *testing.T) {
	g, err := Unmarshal([]byte(featureDoc))
	require.NoError(t, err)

	value := ToValue(g)
	g2, err := FromValue(value)
	require.NoError(t, err)
	assert.Equal(t, g, g2)
}

func TestToValueInvertsFromValue(t *testing.T) {
	// The value tree the destructors emit must be consumable by the
	// value-entry point for every variant, nested geometries included.
	gc := NewGeometryCollection(
		NewPointGeometry(Position{100, 0}),
		NewLineStringGeometry([]Position{{101, 0}, {102, 1}}),
	)
	gc.BoundingBox = []float64{100, 0, 102, 1}

	feature := NewFeature(NewPolygonGeometry([][]Position{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}))
	feature.ID = "f1"
	feature.Properties = map[string]interface{}{"name": "somewhere"}

	collection := NewFeatureCollection().
		AddFeature(NewFeature(NewMultiPointGeometry(Position{1, 2}, Position{3, 4}))).
		AddFeature(NewFeature(nil))
	collection.ForeignMembers = Object{"generator": "unit-test"}

	for _, doc := range []GeoJSON{gc, feature, collection} {
		got, err := FromValue(ToValue(doc))
		require.NoError(t, err, "kind %s", doc.Kind())
		assert.Equal(t, doc, got)
	}
}

func TestStringRendering(t *testing.T) {
	geom := NewPointGeometry(Position{102, 0.5})
	s := geom.String()

	g, err := Unmarshal([]byte(s))
	require.NoError(t, err)
	assert.Equal(t, GeoJSON(geom), g)
}
