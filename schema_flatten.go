package formdata

import "sort"

// lazyDepthCap bounds schema-only descent through self-referential lazy
// wrappers. With no value to bound recursion, the flattener stops registering
// paths past this depth per lazy node.
const lazyDepthCap = 3

// SchemaEntry is one flattened leaf position: the effective leaf schema at
// that path plus whether an optional/nullable wrapper was crossed reaching it.
type SchemaEntry struct {
	Schema   Node
	Optional bool
}

// FlatSchema maps schema-space paths (which may contain the "#" and "*"
// placeholders) to their leaf entries.
type FlatSchema map[string]SchemaEntry

// Lookup resolves a concrete value path against the flat schema: exact match
// first, then placeholder-wildcard matching per MatchPath.
func (fs FlatSchema) Lookup(path string) (SchemaEntry, bool) {
	if e, ok := fs[path]; ok {
		return e, true
	}
	for pattern, e := range fs {
		if MatchPath(path, pattern) {
			return e, true
		}
	}
	return SchemaEntry{}, false
}

// Paths returns every registered schema path in deterministic traversal
// order (segment-wise, numeric segments by value).
func (fs FlatSchema) Paths() []string {
	out := make([]string, 0, len(fs))
	for k := range fs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return pathLess(out[i], out[j]) })
	return out
}

// FlattenSchema walks the schema alone (no value) and returns the flat
// path-to-leaf-schema map. Containers without schema-fixed cardinality use
// placeholder segments: "#" for array/set elements, "*" for record values.
// Object fields and tuple positions are schema-fixed and use real names and
// literal indices. Discriminated unions emit the discriminator path and then
// every alternative's sibling fields into the same prefix (last alternative
// wins on collision); untagged unions register the union node itself as one
// combined leaf entry. Wrappers unwrap transparently, propagating an optional
// flag for optional/nullable without changing the effective type.
func FlattenSchema(n Node) FlatSchema {
	out := FlatSchema{}
	flattenSchemaInto(n, "", false, out, map[Node]int{})
	return out
}

func flattenSchemaInto(n Node, prefix string, optional bool, out FlatSchema, lazyDepth map[Node]int) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindWrapper:
		w, ok := n.(WrapperNode)
		if !ok {
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		switch w.WrapKind() {
		case WrapOptional, WrapNullable:
			flattenSchemaInto(w.Unwrap(), prefix, true, out, lazyDepth)
		case WrapLazy:
			d := lazyDepth[n]
			if d >= lazyDepthCap {
				return
			}
			lazyDepth[n] = d + 1
			flattenSchemaInto(w.Unwrap(), prefix, optional, out, lazyDepth)
			lazyDepth[n] = d
		default:
			flattenSchemaInto(w.Unwrap(), prefix, optional, out, lazyDepth)
		}
	case KindObject:
		obj, ok := n.(ObjectNode)
		if !ok {
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		for _, f := range obj.Fields() {
			flattenSchemaInto(f.Schema, joinPath(prefix, f.Name), optional, out, lazyDepth)
		}
	case KindTuple:
		tup, ok := n.(TupleNode)
		if !ok {
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		for i, it := range tup.Items() {
			flattenSchemaInto(it, joinPath(prefix, itoa(i)), optional, out, lazyDepth)
		}
	case KindArray, KindSet:
		flattenSchemaInto(containerElem(n), joinPath(prefix, PlaceholderIndex), optional, out, lazyDepth)
	case KindRecord:
		rec, ok := n.(RecordNode)
		if !ok {
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		flattenSchemaInto(rec.Value(), joinPath(prefix, PlaceholderKey), optional, out, lazyDepth)
	case KindUnion:
		u, ok := n.(UnionNode)
		if !ok {
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		disc := u.Discriminator()
		if disc == "" {
			// One combined entry; Coerce tries the alternatives in order.
			out[prefix] = SchemaEntry{Schema: n, Optional: optional}
			return
		}
		for _, opt := range u.Options() {
			obj, ok := Effective(opt).(ObjectNode)
			if !ok {
				continue
			}
			for _, f := range obj.Fields() {
				flattenSchemaInto(f.Schema, joinPath(prefix, f.Name), optional, out, lazyDepth)
			}
		}
	default:
		out[prefix] = SchemaEntry{Schema: n, Optional: optional}
	}
}
