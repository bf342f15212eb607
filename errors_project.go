package formdata

import (
	"strings"

	eng "github.com/Abyrd9/zod-form-data/internal/engine"
)

// FlattenErrors projects a nested error tree (string leaves, arrays of
// strings position-wise, nested maps recursively) onto a flat path-to-message
// map. Empty and absent entries are skipped rather than recorded as
// empty-string errors.
func FlattenErrors(tree any) ErrorMap {
	out := ErrorMap{}
	flattenErrorsInto(tree, "", out)
	return out
}

func flattenErrorsInto(v any, prefix string, out ErrorMap) {
	switch t := v.(type) {
	case nil:
	case string:
		if t != "" {
			out[prefix] = t
		}
	case map[string]string:
		for k, cv := range t {
			flattenErrorsInto(cv, joinPath(prefix, k), out)
		}
	case map[string]any:
		for k, cv := range t {
			flattenErrorsInto(cv, joinPath(prefix, k), out)
		}
	case []string:
		for i, cv := range t {
			flattenErrorsInto(cv, joinPath(prefix, itoa(i)), out)
		}
	case []any:
		for i, cv := range t {
			flattenErrorsInto(cv, joinPath(prefix, itoa(i)), out)
		}
	}
}

// UnflattenErrors reconstructs a nested error tree from a flat
// path-to-message map, with the same token rules and gap collapsing as
// Unflatten. An optional root scopes the projection to one subtree, mirroring
// UnflattenAt.
func UnflattenErrors(errs ErrorMap, root ...string) any {
	prefix := ""
	if len(root) > 0 && root[len(root)-1] != "" {
		prefix = root[len(root)-1] + PathDelim
	}
	b := eng.NewBuilder()
	for k, msg := range errs {
		if msg == "" {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(k, prefix) {
				continue
			}
			k = strings.TrimPrefix(k, prefix)
		}
		b.Put(SplitPath(k), msg)
	}
	return b.Result()
}
