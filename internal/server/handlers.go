// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/woozymasta/geojson"
)

// HandleLayersList serves the JSON index of available layers.
func (s *ServerContext) HandleLayersList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Index())
}

// HandleLayer serves a single layer document.
//
// Path: /layers/{name}
func (s *ServerContext) HandleLayer(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}

	name, ok := s.NameResolver[parts[1]]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(s.Rendered[name])
}

// ValidationResult is the response body of the validate endpoint.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Kind      string `json:"kind,omitempty"`
	Features  int    `json:"features,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// HandleValidate parses a GeoJSON document from the request body and reports
// whether it is well formed and which kind it is.
func (s *ServerContext) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var result ValidationResult

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	doc, err := geojson.Unmarshal(body)
	if err != nil {
		result.Error = err.Error()
		result.ErrorKind = classify(err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(result)
		return
	}

	result.Valid = true
	result.Kind = doc.Kind()
	if fc, err := geojson.AsFeatureCollection(doc); err == nil {
		result.Features = len(fc.Features)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// classify names the error category for machine-readable responses.
func classify(err error) string {
	var (
		unknownType    *geojson.UnknownTypeError
		expectedObject *geojson.ExpectedObjectError
		objectValue    *geojson.ExpectedObjectValueError
		malformed      *geojson.MalformedJSONError
	)

	switch {
	case errors.Is(err, geojson.ErrUnrecognizedType):
		return "unrecognized_type"
	case errors.As(err, &unknownType):
		return "unknown_type"
	case errors.As(err, &expectedObject), errors.As(err, &objectValue):
		return "expected_object"
	case errors.As(err, &malformed):
		return "malformed_json"
	default:
		return "invalid_document"
	}
}
