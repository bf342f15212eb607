package formdata

// Defaults assembles the nested value implied by the schema's Default
// wrappers: default wrappers yield their declared value, objects recurse per
// field, variable-cardinality containers start empty, and plain leaves are
// nil. The result is the natural initial state for a form holding this
// schema.
func Defaults(n Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case KindWrapper:
		w, ok := n.(WrapperNode)
		if !ok {
			return nil
		}
		switch w.WrapKind() {
		case WrapDefault:
			if d, ok := w.(DefaultNode); ok {
				return d.DefaultValue()
			}
			return Defaults(w.Unwrap())
		case WrapOptional, WrapNullable:
			return nil
		default:
			return Defaults(w.Unwrap())
		}
	case KindObject:
		obj, ok := n.(ObjectNode)
		if !ok {
			return nil
		}
		out := make(map[string]any, len(obj.Fields()))
		for _, f := range obj.Fields() {
			out[f.Name] = Defaults(f.Schema)
		}
		return out
	case KindArray, KindSet:
		return []any{}
	case KindTuple:
		tup, ok := n.(TupleNode)
		if !ok {
			return nil
		}
		out := make([]any, len(tup.Items()))
		for i, it := range tup.Items() {
			out[i] = Defaults(it)
		}
		return out
	case KindRecord:
		return map[string]any{}
	case KindUnion:
		u, ok := n.(UnionNode)
		if !ok || len(u.Options()) == 0 || u.Discriminator() == "" {
			return nil
		}
		return Defaults(u.Options()[0])
	default:
		if lit, ok := n.(LiteralNode); ok {
			return lit.LiteralValue()
		}
		return nil
	}
}
