package geojson

import "fmt"

// Position is a single coordinate position: longitude, latitude and an
// optional altitude, in that order.
type Position []float64

// Lng returns the longitude (first element).
func (p Position) Lng() float64 {
	return p[0]
}

// Lat returns the latitude (second element).
func (p Position) Lat() float64 {
	return p[1]
}

// Alt returns the altitude and whether one is present.
func (p Position) Alt() (float64, bool) {
	if len(p) < 3 {
		return 0, false
	}
	return p[2], true
}

// encodePosition converts a Position into the generic JSON value shape, so
// the value-entry point accepts what the destructors emit.
func encodePosition(p Position) []interface{} {
	out := make([]interface{}, len(p))
	for i, n := range p {
		out[i] = n
	}
	return out
}

func encodePositionSet(set []Position) []interface{} {
	out := make([]interface{}, len(set))
	for i, p := range set {
		out[i] = encodePosition(p)
	}
	return out
}

func encodeLineSet(set [][]Position) []interface{} {
	out := make([]interface{}, len(set))
	for i, line := range set {
		out[i] = encodePositionSet(line)
	}
	return out
}

func encodePolygonSet(set [][][]Position) []interface{} {
	out := make([]interface{}, len(set))
	for i, poly := range set {
		out[i] = encodeLineSet(poly)
	}
	return out
}

// decodePosition converts a decoded JSON value into a Position.
func decodePosition(v interface{}) (Position, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: position must be an array, got %T", v)
	}
	if len(arr) < 2 {
		return nil, fmt.Errorf("geojson: position needs at least 2 elements, got %d", len(arr))
	}

	pos := make(Position, len(arr))
	for i, e := range arr {
		n, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("geojson: position element %d is %T, expected number", i, e)
		}
		pos[i] = n
	}

	return pos, nil
}

// decodePositionSet converts a decoded JSON value into a slice of positions
// (MultiPoint and LineString coordinates).
func decodePositionSet(v interface{}) ([]Position, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: coordinates must be an array, got %T", v)
	}

	set := make([]Position, len(arr))
	for i, e := range arr {
		pos, err := decodePosition(e)
		if err != nil {
			return nil, err
		}
		set[i] = pos
	}

	return set, nil
}

// decodeLineSet converts a decoded JSON value into a slice of position sets
// (MultiLineString and Polygon coordinates).
func decodeLineSet(v interface{}) ([][]Position, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: coordinates must be an array, got %T", v)
	}

	set := make([][]Position, len(arr))
	for i, e := range arr {
		line, err := decodePositionSet(e)
		if err != nil {
			return nil, err
		}
		set[i] = line
	}

	return set, nil
}

// decodePolygonSet converts a decoded JSON value into MultiPolygon coordinates.
func decodePolygonSet(v interface{}) ([][][]Position, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: coordinates must be an array, got %T", v)
	}

	set := make([][][]Position, len(arr))
	for i, e := range arr {
		poly, err := decodeLineSet(e)
		if err != nil {
			return nil, err
		}
		set[i] = poly
	}

	return set, nil
}
