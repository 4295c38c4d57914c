package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
attribution: test data
layers:
  - name: cities
    path: testdata/cities.geojson
    aliases: [towns]
  - name: borders
    url: https://example.com/borders.geojson
  - name: pin
    inline_geojson:
      type: Feature
      geometry:
        type: Point
        coordinates: [102.0, 0.5]
      properties: null
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test data", cfg.Attribution)
	assert.Equal(t, "layers", cfg.CacheDir)
	require.Len(t, cfg.Layers, 3)

	assert.Equal(t, "testdata/cities.geojson", cfg.Layers[0].Source())
	assert.Equal(t, []string{"towns"}, cfg.Layers[0].Aliases)
	assert.Equal(t, "https://example.com/borders.geojson", cfg.Layers[1].Source())
	assert.Equal(t, "inline", cfg.Layers[2].Source())
	assert.Equal(t, "Feature", cfg.Layers[2].Inline["type"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "layers: [\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDuplicateLayerNames(t *testing.T) {
	path := writeConfig(t, `
layers:
  - name: a
    path: a.geojson
  - name: a
    path: b.geojson
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "duplicate layer name")
}

func TestLoadUnnamedLayer(t *testing.T) {
	path := writeConfig(t, `
layers:
  - path: a.geojson
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "without a name")
}

func TestLayerSourceNone(t *testing.T) {
	l := Layer{Name: "empty"}
	assert.Equal(t, "none", l.Source())
}
