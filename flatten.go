package formdata

// Flatten walks schema and value in lock-step and returns the flat
// path-to-value map. The value may be partial at any depth: every declared
// object leaf path appears in the output even when unset (with a nil value),
// array positions with a missing or non-array value degrade to a single
// placeholder entry at index 0, and shape mismatches never abort the walk.
func Flatten(n Node, v any, opts ...FlattenOpt) FlatMap {
	opt := lastFlattenOpt(opts)
	out := FlatMap{}
	flattenInto(n, v, "", out, opt.Diag)
	return out
}

func flattenInto(n Node, v any, prefix string, out FlatMap, diag Diagnostics) {
	if n == nil {
		out[prefix] = v
		return
	}
	switch n.Kind() {
	case KindWrapper:
		w, ok := n.(WrapperNode)
		if !ok {
			out[prefix] = v
			return
		}
		switch w.WrapKind() {
		case WrapNullable:
			// A null at a nullable position stops here; the inner schema is
			// not consulted.
			if v == nil {
				out[prefix] = nil
				return
			}
			flattenInto(w.Unwrap(), v, prefix, out, diag)
		case WrapDefault:
			if v == nil {
				if d, ok := w.(DefaultNode); ok {
					v = d.DefaultValue()
				}
			}
			flattenInto(w.Unwrap(), v, prefix, out, diag)
		default:
			// optional/lazy/pipe/transform/catch are shape-transparent. Lazy
			// getters are invoked through Unwrap on every visit.
			flattenInto(w.Unwrap(), v, prefix, out, diag)
		}
	case KindObject:
		obj, ok := n.(ObjectNode)
		if !ok {
			out[prefix] = v
			return
		}
		m, isMap := v.(map[string]any)
		if v != nil && !isMap {
			diag.Warnf("formdata: object value expected at %q, got %T", prefix, v)
		}
		for _, f := range obj.Fields() {
			var cv any
			if isMap {
				cv = m[f.Name]
			}
			flattenInto(f.Schema, cv, joinPath(prefix, f.Name), out, diag)
		}
	case KindArray, KindSet:
		elem := containerElem(n)
		arr, isArr := v.([]any)
		if !isArr || len(arr) == 0 {
			// Guarantee at least one row so array-helper UIs have a target.
			out[joinPath(prefix, "0")] = nil
			return
		}
		for i, cv := range arr {
			flattenInto(elem, cv, joinPath(prefix, itoa(i)), out, diag)
		}
	case KindTuple:
		tup, ok := n.(TupleNode)
		if !ok {
			out[prefix] = v
			return
		}
		arr, _ := v.([]any)
		for i, it := range tup.Items() {
			var cv any
			if i < len(arr) {
				cv = arr[i]
			}
			flattenInto(it, cv, joinPath(prefix, itoa(i)), out, diag)
		}
	case KindRecord:
		rec, ok := n.(RecordNode)
		if !ok {
			out[prefix] = v
			return
		}
		// Record shape is data-driven: only present keys are emitted.
		if m, isMap := v.(map[string]any); isMap {
			for k, cv := range m {
				flattenInto(rec.Value(), cv, joinPath(prefix, k), out, diag)
			}
		}
	case KindUnion:
		u, ok := n.(UnionNode)
		if !ok {
			out[prefix] = v
			return
		}
		disc := u.Discriminator()
		if disc == "" {
			// Untagged unions flatten as one opaque leaf; the alternative
			// that matched is not recoverable at this path.
			out[prefix] = v
			return
		}
		m, _ := v.(map[string]any)
		var tag any
		if m != nil {
			tag = m[disc]
		}
		out[joinPath(prefix, disc)] = tag
		obj := optionForTag(u, tag)
		if obj == nil {
			return
		}
		// Sibling fields share the union's prefix; they are not nested under
		// the discriminator.
		for _, f := range obj.Fields() {
			if f.Name == disc {
				continue
			}
			flattenInto(f.Schema, m[f.Name], joinPath(prefix, f.Name), out, diag)
		}
	default:
		// Leaf or a construct this version was never taught about: record
		// verbatim for forward compatibility.
		out[prefix] = v
	}
}

// containerElem returns the element schema of an array or set node, nil when
// the node does not expose one.
func containerElem(n Node) Node {
	switch t := n.(type) {
	case ArrayNode:
		return t.Elem()
	case SetNode:
		return t.Elem()
	default:
		return nil
	}
}

func itoa(i int) string {
	if i >= 0 && i < 10 {
		return string([]byte{byte('0' + i)})
	}
	// rare path for wide arrays
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	var buf [20]byte
	bp := len(buf)
	for i > 0 {
		bp--
		buf[bp] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		bp--
		buf[bp] = '-'
	}
	return string(buf[bp:])
}
