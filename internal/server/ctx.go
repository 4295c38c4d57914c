package server

import (
	"net/http"
	"sort"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/layers"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config

	// NameResolver maps layer names and aliases to canonical names.
	NameResolver map[string]string

	// Documents holds the loaded, validated layer documents by canonical
	// name. Documents are immutable after startup, so handlers read them
	// without coordination.
	Documents map[string]geojson.GeoJSON

	// Rendered caches each document's JSON text encoding.
	Rendered map[string][]byte
}

// LayerInfo is the per-layer entry of the /api/layers index.
type LayerInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Features    int    `json:"features"`
	Attribution string `json:"attribution,omitempty"`
}

// NewServerContext loads every configured layer, dropping the ones that fail
// validation, and builds the name resolver.
func NewServerContext(cfg *config.Config, client *http.Client) *ServerContext {
	log.Info().Int("config_layers_count", len(cfg.Layers)).Msg("Initializing server context")

	ctx := &ServerContext{
		Config:       cfg,
		NameResolver: make(map[string]string),
		Documents:    make(map[string]geojson.GeoJSON),
		Rendered:     make(map[string][]byte),
	}

	validLayers := make([]config.Layer, 0, len(cfg.Layers))

	for i := range cfg.Layers {
		layer := &cfg.Layers[i]

		if layer.Attribution == "" {
			layer.Attribution = cfg.Attribution
		}

		doc, err := layers.Load(client, *layer)
		if err != nil {
			log.Warn().
				Err(err).
				Str("layer", layer.Name).
				Str("source", layer.Source()).
				Msg("Skipping layer: document failed to load")
			continue
		}

		data, err := geojson.Marshal(doc)
		if err != nil {
			log.Warn().Err(err).Str("layer", layer.Name).Msg("Skipping layer: render failed")
			continue
		}

		ctx.Documents[layer.Name] = doc
		ctx.Rendered[layer.Name] = data
		ctx.NameResolver[layer.Name] = layer.Name
		for _, alias := range layer.Aliases {
			ctx.NameResolver[alias] = layer.Name
		}

		log.Debug().
			Str("layer", layer.Name).
			Str("kind", doc.Kind()).
			Int("bytes", len(data)).
			Msg("Layer validated and added to context")

		validLayers = append(validLayers, *layer)
	}

	cfg.Layers = validLayers
	sort.Slice(cfg.Layers, func(i, j int) bool {
		return cfg.Layers[i].Name < cfg.Layers[j].Name
	})

	log.Info().
		Int("valid_layers_count", len(cfg.Layers)).
		Msg("Server context initialized successfully")

	return ctx
}

// Index builds the /api/layers response entries, in layer order.
func (s *ServerContext) Index() []LayerInfo {
	infos := make([]LayerInfo, 0, len(s.Config.Layers))

	for _, layer := range s.Config.Layers {
		doc := s.Documents[layer.Name]
		info := LayerInfo{
			Name:        layer.Name,
			Kind:        doc.Kind(),
			Attribution: layer.Attribution,
		}
		if fc, err := geojson.AsFeatureCollection(doc); err == nil {
			info.Features = len(fc.Features)
		}
		infos = append(infos, info)
	}

	return infos
}
