package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustObject(t *testing.T, doc string) Object {
	t.Helper()
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(doc), &obj))
	return obj
}

func TestNewFeatureFromObject(t *testing.T) {
	obj := mustObject(t, `{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [102.0, 0.5]},
		"properties": {"name": "somewhere", "rank": 3},
		"id": "abc",
		"bbox": [102.0, 0.5, 102.0, 0.5]
	}`)

	f, err := NewFeatureFromObject(obj)
	require.NoError(t, err)
	require.NotNil(t, f.Geometry)
	assert.Equal(t, Position{102, 0.5}, f.Geometry.Point)
	assert.Equal(t, "abc", f.ID)
	assert.Equal(t, "somewhere", f.Properties["name"])
	assert.Equal(t, 3.0, f.Properties["rank"])
	assert.Equal(t, []float64{102, 0.5, 102, 0.5}, f.BoundingBox)
	assert.Nil(t, f.ForeignMembers)
}

func TestNewFeatureFromObjectNumericID(t *testing.T) {
	obj := mustObject(t, `{"type": "Feature", "geometry": null, "properties": null, "id": 7}`)

	f, err := NewFeatureFromObject(obj)
	require.NoError(t, err)
	assert.Equal(t, 7.0, f.ID)
}

func TestNewFeatureFromObjectOptionalMembers(t *testing.T) {
	// geometry and properties may be null or missing entirely.
	for _, doc := range []string{
		`{"type": "Feature", "geometry": null, "properties": null}`,
		`{"type": "Feature"}`,
	} {
		f, err := NewFeatureFromObject(mustObject(t, doc))
		require.NoError(t, err, "doc %s", doc)
		assert.Nil(t, f.Geometry)
		assert.Nil(t, f.Properties)
		assert.Nil(t, f.ID)
	}
}

func TestNewFeatureFromObjectErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"wrong tag", `{"type": "Point", "coordinates": [1, 2]}`},
		{"geometry not object", `{"type": "Feature", "geometry": [1, 2]}`},
		{"bad nested geometry", `{"type": "Feature", "geometry": {"type": "Point"}}`},
		{"properties not object", `{"type": "Feature", "properties": "x"}`},
		{"bool id", `{"type": "Feature", "id": true}`},
		{"object id", `{"type": "Feature", "id": {"v": 1}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFeatureFromObject(mustObject(t, tc.doc))
			assert.Nil(t, f)
			assert.Error(t, err)
		})
	}
}

func TestFeatureToObjectEmitsNullMembers(t *testing.T) {
	f := &Feature{}
	obj := f.ToObject()

	geometry, ok := obj["geometry"]
	assert.True(t, ok)
	assert.Nil(t, geometry)

	properties, ok := obj["properties"]
	assert.True(t, ok)
	assert.Nil(t, properties)

	_, ok = obj["id"]
	assert.False(t, ok)
	_, ok = obj["bbox"]
	assert.False(t, ok)
}

func TestFeatureForeignMembersRoundTrip(t *testing.T) {
	doc := `{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [1.0, 2.0]},
		"properties": null,
		"link": "https://example.com/f/1"
	}`

	f, err := NewFeatureFromObject(mustObject(t, doc))
	require.NoError(t, err)
	assert.Equal(t, Object{"link": "https://example.com/f/1"}, f.ForeignMembers)

	out, err := f.MarshalJSON()
	require.NoError(t, err)

	var want, got interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
}
