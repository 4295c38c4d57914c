package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geojson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	x, y := Project(0, 0)
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)

	x, _ = Project(-180, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	x, _ = Project(180, 0)
	assert.InDelta(t, 1.0, x, 1e-9)

	// North is up: larger latitude means smaller y.
	_, yNorth := Project(0, 50)
	_, ySouth := Project(0, -50)
	assert.Less(t, yNorth, 0.5)
	assert.Greater(t, ySouth, 0.5)

	// Latitudes beyond the Mercator cutoff clamp instead of diverging.
	_, yPole := Project(0, 90)
	_, yMax := Project(0, MaxLat)
	assert.Equal(t, yMax, yPole)
}

func TestRenderPoint(t *testing.T) {
	doc := geojson.NewPointGeometry(geojson.Position{102.0, 0.5})

	img, err := Render(doc, Options{Width: 64, Height: 64})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())

	// The marker lands in the center of the canvas.
	center := img.At(32, 32)
	def := DefaultOptions()
	assert.NotEqual(t, color.RGBAModel.Convert(def.Background), color.RGBAModel.Convert(center))
}

func TestRenderFeatureCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection().
		AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry([]geojson.Position{{0, 0}, {10, 10}}))).
		AddFeature(geojson.NewFeature(geojson.NewPolygonGeometry([][]geojson.Position{{{0, 0}, {5, 0}, {5, 5}, {0, 0}}})))

	img, err := Render(fc, Options{Width: 32, Height: 32})
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestSaveWebP(t *testing.T) {
	doc := geojson.NewPointGeometry(geojson.Position{102.0, 0.5})

	img, err := Render(doc, Options{Width: 16, Height: 16})
	require.NoError(t, err)

	// Zero quality falls back to DefaultQuality.
	path := filepath.Join(t.TempDir(), "preview.webp")
	require.NoError(t, SaveWebP(path, img, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderNoCoordinates(t *testing.T) {
	for _, doc := range []geojson.GeoJSON{
		geojson.NewFeature(nil),
		geojson.NewFeatureCollection(),
		geojson.NewGeometryCollection(),
	} {
		_, err := Render(doc, Options{})
		assert.ErrorContains(t, err, "no coordinates")
	}
}
