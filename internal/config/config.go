// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Attribution string  `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	CacheDir    string  `yaml:"cache_dir,omitempty" json:"-"`
	Layers      []Layer `yaml:"layers" json:"layers"`
}

// Layer represents a single served GeoJSON layer. Exactly one of Inline,
// Path or URL supplies the document.
type Layer struct {
	Name string `yaml:"name" json:"name"`

	// Inline holds a GeoJSON document written directly in the configuration
	// file. It is decoded as a generic value tree and validated on load.
	Inline map[string]interface{} `yaml:"inline_geojson,omitempty" json:"-"`

	Path        string   `yaml:"path,omitempty" json:"-"`
	URL         string   `yaml:"url,omitempty" json:"-"`
	Attribution string   `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"-"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = "layers"
	}

	seen := make(map[string]bool, len(cfg.Layers))
	for _, l := range cfg.Layers {
		if l.Name == "" {
			return nil, fmt.Errorf("config: layer without a name")
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("config: duplicate layer name %q", l.Name)
		}
		seen[l.Name] = true
	}

	return &cfg, nil
}

// Source describes where a layer's document comes from, for logging.
func (l *Layer) Source() string {
	switch {
	case l.Inline != nil:
		return "inline"
	case l.Path != "":
		return l.Path
	case l.URL != "":
		return l.URL
	}
	return "none"
}
