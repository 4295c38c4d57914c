package geojson

import "fmt"

// Object is a decoded JSON object: the universal exchange format at the
// library boundary. It is the shape produced by encoding/json when a JSON
// object is unmarshalled into an interface{}.
type Object map[string]interface{}

// decodeBBox reads the optional "bbox" member of obj as a flat number array.
// A missing member yields a nil slice and no error.
func decodeBBox(obj Object) ([]float64, error) {
	raw, ok := obj["bbox"]
	if !ok || raw == nil {
		return nil, nil
	}

	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("geojson: bbox must be an array, got %T", raw)
	}
	if len(arr) < 4 {
		return nil, fmt.Errorf("geojson: bbox needs at least 4 elements, got %d", len(arr))
	}

	bbox := make([]float64, len(arr))
	for i, e := range arr {
		n, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("geojson: bbox element %d is %T, expected number", i, e)
		}
		bbox[i] = n
	}

	return bbox, nil
}

// encodeBBox converts a bounding box into the generic JSON value shape.
func encodeBBox(bbox []float64) []interface{} {
	out := make([]interface{}, len(bbox))
	for i, n := range bbox {
		out[i] = n
	}
	return out
}

// foreignMembers collects the top-level members of obj whose keys are not in
// known. A nil map is returned when there are none, so empty and absent are
// not distinguishable after a round trip.
func foreignMembers(obj Object, known ...string) Object {
	var foreign Object

	for k, v := range obj {
		recognized := false
		for _, name := range known {
			if k == name {
				recognized = true
				break
			}
		}
		if recognized {
			continue
		}

		if foreign == nil {
			foreign = make(Object)
		}
		foreign[k] = v
	}

	return foreign
}
