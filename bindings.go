package formdata

import (
	"sort"
	"strings"
)

// Field is one leaf binding: the leaf's full dotted path, its current value
// in the flat map, a setter updating exactly that path, and the current error
// message for the path (empty when none).
type Field struct {
	Path     string
	Value    any
	SetValue func(v any)
	Error    string
}

// Setter receives single-path updates from Field.SetValue. State storage and
// change notification belong to the surrounding container, not the core.
type Setter func(path string, v any)

// Bindings projects the schema, the current flat value map and a flat error
// map into a nested tree whose leaves are Field records. Container levels
// mirror the shape Flatten produces, so the binding tree always lines up with
// Flatten/Unflatten. Unions expose the union of all alternatives' keys
// simultaneously; callers narrow by reading the discriminator field's value.
func Bindings(n Node, flat FlatMap, errs ErrorMap, set Setter) any {
	return bindNode(n, "", flat, errs, set)
}

func bindNode(n Node, prefix string, flat FlatMap, errs ErrorMap, set Setter) any {
	eff := Effective(n)
	if eff == nil {
		return bindLeaf(prefix, flat, errs, set)
	}
	switch eff.Kind() {
	case KindObject:
		obj, ok := eff.(ObjectNode)
		if !ok {
			return bindLeaf(prefix, flat, errs, set)
		}
		out := make(map[string]any, len(obj.Fields()))
		for _, f := range obj.Fields() {
			out[f.Name] = bindNode(f.Schema, joinPath(prefix, f.Name), flat, errs, set)
		}
		return out
	case KindTuple:
		tup, ok := eff.(TupleNode)
		if !ok {
			return bindLeaf(prefix, flat, errs, set)
		}
		out := make([]any, len(tup.Items()))
		for i, it := range tup.Items() {
			out[i] = bindNode(it, joinPath(prefix, itoa(i)), flat, errs, set)
		}
		return out
	case KindArray, KindSet:
		elem := containerElem(eff)
		idxs := arrayIndices(flat, prefix)
		if len(idxs) == 0 {
			// Match Flatten's guaranteed placeholder row.
			idxs = []int{0}
		}
		out := make([]any, 0, len(idxs))
		for _, i := range idxs {
			out = append(out, bindNode(elem, joinPath(prefix, itoa(i)), flat, errs, set))
		}
		return out
	case KindRecord:
		rec, ok := eff.(RecordNode)
		if !ok {
			return bindLeaf(prefix, flat, errs, set)
		}
		out := map[string]any{}
		for _, k := range recordKeys(flat, prefix) {
			out[k] = bindNode(rec.Value(), joinPath(prefix, k), flat, errs, set)
		}
		return out
	case KindUnion:
		u, ok := eff.(UnionNode)
		if !ok {
			return bindLeaf(prefix, flat, errs, set)
		}
		disc := u.Discriminator()
		if disc == "" {
			return bindLeaf(prefix, flat, errs, set)
		}
		out := map[string]any{disc: bindLeaf(joinPath(prefix, disc), flat, errs, set)}
		for _, opt := range u.Options() {
			obj, ok := Effective(opt).(ObjectNode)
			if !ok {
				continue
			}
			for _, f := range obj.Fields() {
				if f.Name == disc {
					continue
				}
				out[f.Name] = bindNode(f.Schema, joinPath(prefix, f.Name), flat, errs, set)
			}
		}
		return out
	default:
		return bindLeaf(prefix, flat, errs, set)
	}
}

func bindLeaf(path string, flat FlatMap, errs ErrorMap, set Setter) Field {
	return Field{
		Path:  path,
		Value: flat[path],
		SetValue: func(v any) {
			if set != nil {
				set(path, v)
			}
		},
		Error: errs[path],
	}
}

// arrayIndices collects the distinct numeric child segments under prefix, in
// ascending order.
func arrayIndices(flat FlatMap, prefix string) []int {
	seen := map[int]bool{}
	for k := range flat {
		if idx, _, ok := indexUnder(k, prefix); ok {
			seen[idx] = true
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// recordKeys collects the distinct non-numeric child segments under prefix,
// sorted for determinism.
func recordKeys(flat FlatMap, prefix string) []string {
	seen := map[string]bool{}
	for k := range flat {
		rel, ok := childOf(k, prefix)
		if !ok {
			continue
		}
		seg := rel
		if i := strings.Index(rel, PathDelim); i >= 0 {
			seg = rel[:i]
		}
		if !isIndexSegment(seg) {
			seen[seg] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func childOf(key, prefix string) (rel string, ok bool) {
	if prefix == "" {
		return key, key != ""
	}
	if !strings.HasPrefix(key, prefix+PathDelim) {
		return "", false
	}
	return key[len(prefix)+len(PathDelim):], true
}
