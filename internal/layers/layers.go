// Package layers resolves configured GeoJSON layer sources into validated
// documents and caches them on disk.
package layers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"

	"github.com/rs/zerolog/log"
)

// Load resolves a layer's source and validates the document through the
// geojson package. Inline data takes priority over a local path, which takes
// priority over a URL.
func Load(client *http.Client, l config.Layer) (geojson.GeoJSON, error) {
	switch {
	case l.Inline != nil:
		log.Info().Str("layer", l.Name).Msg("Using inline GeoJSON from config")
		value, ok := Normalize(l.Inline).(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("layers: inline document for %q is not an object", l.Name)
		}
		return geojson.FromValue(value)

	case l.Path != "":
		log.Info().Str("layer", l.Name).Str("path", l.Path).Msg("Loading GeoJSON from file")
		data, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, err
		}
		return geojson.Unmarshal(data)

	case l.URL != "":
		log.Info().Str("layer", l.Name).Str("url", l.URL).Msg("Fetching GeoJSON from URL")
		return fetch(client, l.URL)
	}

	return nil, fmt.Errorf("layers: layer %q has no source", l.Name)
}

// fetch downloads and parses a remote GeoJSON document.
func fetch(client *http.Client, url string) (geojson.GeoJSON, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("layers: status %d", resp.StatusCode)
	}

	return geojson.FromReader(resp.Body)
}

// Prefetch loads a layer and writes its normalized rendering to the cache
// directory. Existing cache files are kept unless force is set.
func Prefetch(client *http.Client, dir string, l config.Layer, force bool) error {
	destFile := filepath.Join(dir, l.Name+".geojson")

	if _, err := os.Stat(destFile); err == nil && !force {
		log.Debug().Str("layer", l.Name).Msg("Cache file exists, skipping")
		return nil
	}

	doc, err := Load(client, l)
	if err != nil {
		return err
	}

	return save(dir, destFile, doc)
}

// save renders the document and writes it to disk.
func save(dir, path string, doc geojson.GeoJSON) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := geojson.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Layer cached")
	return nil
}

// Normalize converts a YAML-decoded value tree into the shape produced by
// encoding/json: string-keyed maps and float64 numbers. YAML decodes integer
// scalars as int, which the geojson value boundary does not accept.
func Normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}
