package formdata

import (
	"strings"

	eng "github.com/Abyrd9/zod-form-data/internal/engine"
)

// Unflatten reconstructs a nested value tree from a flat path-to-value map
// using only path token shapes: a segment that parses as a non-negative
// integer forces an array level, anything else an object level. Array
// elements land at their literal numeric index and are finalized in ascending
// order with gaps collapsed, so entry iteration order never matters.
//
// No schema is consulted; record keys that look like integers therefore
// reconstruct as arrays (a documented limit of the path scheme).
func Unflatten(flat FlatMap) any {
	b := eng.NewBuilder()
	for _, k := range flat.SortedKeys() {
		b.Put(SplitPath(k), flat[k])
	}
	return b.Result()
}

// UnflattenAt projects the subtree under root out of flat and reconstructs
// it in isolation: only paths beginning with "root." are processed, and the
// result is the subtree itself rather than {root: subtree}.
func UnflattenAt(flat FlatMap, root string) any {
	prefix := root + PathDelim
	b := eng.NewBuilder()
	for _, k := range flat.SortedKeys() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		b.Put(SplitPath(strings.TrimPrefix(k, prefix)), flat[k])
	}
	return b.Result()
}
