package geojson

import (
	"encoding/json"
	"fmt"
)

// Geometry is one of the seven GeoJSON geometry objects. Type selects which
// of the coordinate fields (or Geometries, for a GeometryCollection) is
// populated; the others stay zero.
type Geometry struct {
	Type            Type
	Point           Position
	MultiPoint      []Position
	LineString      []Position
	MultiLineString [][]Position
	Polygon         [][]Position
	MultiPolygon    [][][]Position
	Geometries      []*Geometry
	BoundingBox     []float64
	ForeignMembers  Object
}

// NewPointGeometry creates a Point geometry at the given position.
func NewPointGeometry(coordinate Position) *Geometry {
	return &Geometry{Type: TypePoint, Point: coordinate}
}

// NewMultiPointGeometry creates a MultiPoint geometry from the given positions.
func NewMultiPointGeometry(coordinates ...Position) *Geometry {
	return &Geometry{Type: TypeMultiPoint, MultiPoint: coordinates}
}

// NewLineStringGeometry creates a LineString geometry from the given positions.
func NewLineStringGeometry(coordinates []Position) *Geometry {
	return &Geometry{Type: TypeLineString, LineString: coordinates}
}

// NewMultiLineStringGeometry creates a MultiLineString geometry from the given lines.
func NewMultiLineStringGeometry(lines ...[]Position) *Geometry {
	return &Geometry{Type: TypeMultiLineString, MultiLineString: lines}
}

// NewPolygonGeometry creates a Polygon geometry from the given rings.
func NewPolygonGeometry(rings [][]Position) *Geometry {
	return &Geometry{Type: TypePolygon, Polygon: rings}
}

// NewMultiPolygonGeometry creates a MultiPolygon geometry from the given polygons.
func NewMultiPolygonGeometry(polygons ...[][]Position) *Geometry {
	return &Geometry{Type: TypeMultiPolygon, MultiPolygon: polygons}
}

// NewGeometryCollection creates a GeometryCollection from the given geometries.
func NewGeometryCollection(geometries ...*Geometry) *Geometry {
	return &Geometry{Type: TypeGeometryCollection, Geometries: geometries}
}

// NewGeometryFromObject converts a decoded JSON object into a Geometry. The
// object must carry one of the seven geometry type tags plus the matching
// "coordinates" (or "geometries") member.
func NewGeometryFromObject(obj Object) (*Geometry, error) {
	typ, err := ResolveType(obj)
	if err != nil {
		return nil, err
	}
	if typ == TypeFeature || typ == TypeFeatureCollection {
		return nil, fmt.Errorf("geojson: %s is not a geometry type", typ)
	}

	g := &Geometry{Type: typ}

	if g.BoundingBox, err = decodeBBox(obj); err != nil {
		return nil, err
	}

	if typ == TypeGeometryCollection {
		raw, ok := obj["geometries"]
		if !ok {
			return nil, fmt.Errorf("geojson: GeometryCollection is missing the \"geometries\" member")
		}
		arr, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("geojson: \"geometries\" must be an array, got %T", raw)
		}

		g.Geometries = make([]*Geometry, len(arr))
		for i, e := range arr {
			sub, ok := e.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("geojson: geometry %d is %T, expected an object", i, e)
			}
			if g.Geometries[i], err = NewGeometryFromObject(Object(sub)); err != nil {
				return nil, err
			}
		}

		g.ForeignMembers = foreignMembers(obj, "type", "geometries", "bbox")
		return g, nil
	}

	coords, ok := obj["coordinates"]
	if !ok {
		return nil, fmt.Errorf("geojson: %s is missing the \"coordinates\" member", typ)
	}

	switch typ {
	case TypePoint:
		g.Point, err = decodePosition(coords)
	case TypeMultiPoint:
		g.MultiPoint, err = decodePositionSet(coords)
	case TypeLineString:
		g.LineString, err = decodePositionSet(coords)
	case TypeMultiLineString:
		g.MultiLineString, err = decodeLineSet(coords)
	case TypePolygon:
		g.Polygon, err = decodeLineSet(coords)
	case TypeMultiPolygon:
		g.MultiPolygon, err = decodePolygonSet(coords)
	}
	if err != nil {
		return nil, err
	}

	g.ForeignMembers = foreignMembers(obj, "type", "coordinates", "bbox")
	return g, nil
}

// ToObject converts the geometry back into a JSON object. The conversion is
// total, and the members hold the generic decoded shapes so the result can be
// fed straight back into the constructors.
func (g *Geometry) ToObject() Object {
	obj := make(Object)
	obj["type"] = string(g.Type)

	switch g.Type {
	case TypePoint:
		obj["coordinates"] = encodePosition(g.Point)
	case TypeMultiPoint:
		obj["coordinates"] = encodePositionSet(g.MultiPoint)
	case TypeLineString:
		obj["coordinates"] = encodePositionSet(g.LineString)
	case TypeMultiLineString:
		obj["coordinates"] = encodeLineSet(g.MultiLineString)
	case TypePolygon:
		obj["coordinates"] = encodeLineSet(g.Polygon)
	case TypeMultiPolygon:
		obj["coordinates"] = encodePolygonSet(g.MultiPolygon)
	case TypeGeometryCollection:
		geoms := make([]interface{}, len(g.Geometries))
		for i, sub := range g.Geometries {
			geoms[i] = map[string]interface{}(sub.ToObject())
		}
		obj["geometries"] = geoms
	}

	if len(g.BoundingBox) > 0 {
		obj["bbox"] = encodeBBox(g.BoundingBox)
	}
	for k, v := range g.ForeignMembers {
		obj[k] = v
	}

	return obj
}

// Kind implements GeoJSON.
func (g *Geometry) Kind() string {
	return "Geometry"
}

// MarshalJSON converts the geometry into its JSON encoding.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToObject())
}

// UnmarshalJSON decodes JSON data into the geometry.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return &MalformedJSONError{Err: err}
	}

	parsed, err := NewGeometryFromObject(obj)
	if err != nil {
		return err
	}

	*g = *parsed
	return nil
}

// String renders the geometry as compact JSON text.
func (g *Geometry) String() string {
	data, err := g.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (g *Geometry) geoJSON() {}
