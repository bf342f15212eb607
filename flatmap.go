package formdata

import (
	"sort"

	json "github.com/goccy/go-json"
)

// FlatMap maps dotted paths to leaf values. A key present with a nil value
// means "path exists but unset" — the closest Go rendering of undefined; the
// nullable sentinel is likewise nil. Insertion order carries no meaning:
// array reconstruction sorts numerically.
type FlatMap map[string]any

// Clone returns a shallow copy of m.
func (m FlatMap) Clone() FlatMap {
	out := make(FlatMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys in segment-wise order with numeric segments
// compared numerically.
func (m FlatMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return pathLess(keys[i], keys[j]) })
	return keys
}

// ErrorMap maps dotted paths to human-readable messages.
type ErrorMap map[string]string

// Clone returns a copy of e.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// merge overlays over onto e into a fresh map; over wins on collision.
func (e ErrorMap) merge(over ErrorMap) ErrorMap {
	out := e.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// File is a binary transport value, as produced by multipart submission.
// The coercion layer passes files through untouched.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// MarshalFlat renders a FlatMap as JSON.
func MarshalFlat(m FlatMap) ([]byte, error) { return json.Marshal(m) }

// UnmarshalFlat parses JSON produced by MarshalFlat (or any flat JSON object)
// back into a FlatMap.
func UnmarshalFlat(b []byte) (FlatMap, error) {
	var m FlatMap
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeValue parses an arbitrary JSON document into the nested value-tree
// representation (map[string]any / []any / scalars) the traversal algorithms
// operate on.
func DecodeValue(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeValue renders a nested value tree as JSON.
func EncodeValue(v any) ([]byte, error) { return json.Marshal(v) }
