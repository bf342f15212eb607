package formdata

import "github.com/Abyrd9/zod-form-data/jsonschema"

// JSONSchemaOf exports the schema node as a minimal JSON Schema document.
// Wrappers fold into the child schema: optional drops the field from its
// parent's required list, default carries the declared value, nullable sets
// the nullable flag. Lazy schemas are expanded a bounded number of times and
// then cut off as empty schemas.
func JSONSchemaOf(n Node) *jsonschema.Schema {
	return exportSchema(n, map[Node]int{})
}

func exportSchema(n Node, lazySeen map[Node]int) *jsonschema.Schema {
	s, _, _ := exportWrapped(n, lazySeen)
	return s
}

// exportWrapped unwraps presence wrappers while collecting their effect on
// the exported schema. The optional flag is consumed by the enclosing object
// exporter.
func exportWrapped(n Node, lazySeen map[Node]int) (s *jsonschema.Schema, optional bool, ok bool) {
	var defaultValue any
	hasDefault := false
	nullable := false

	for n != nil && n.Kind() == KindWrapper {
		w, isWrapper := n.(WrapperNode)
		if !isWrapper {
			break
		}
		switch w.WrapKind() {
		case WrapOptional:
			optional = true
		case WrapNullable:
			nullable = true
		case WrapDefault:
			optional = true
			if d, isDefault := w.(DefaultNode); isDefault {
				defaultValue = d.DefaultValue()
				hasDefault = true
			}
		case WrapLazy:
			if lazySeen[n] >= lazyDepthCap {
				return &jsonschema.Schema{}, optional, true
			}
			lazySeen[n]++
			inner, innerOpt, innerOK := exportWrapped(w.Unwrap(), lazySeen)
			lazySeen[n]--
			if !innerOK {
				return &jsonschema.Schema{}, optional, true
			}
			applyWrapEffects(inner, nullable, hasDefault, defaultValue)
			return inner, optional || innerOpt, true
		}
		n = w.Unwrap()
	}
	if n == nil {
		return &jsonschema.Schema{}, optional, true
	}

	s = exportShape(n, lazySeen)
	applyWrapEffects(s, nullable, hasDefault, defaultValue)
	return s, optional, true
}

func applyWrapEffects(s *jsonschema.Schema, nullable, hasDefault bool, defaultValue any) {
	if nullable {
		s.Nullable = true
	}
	if hasDefault {
		s.Default = defaultValue
	}
}

func exportShape(n Node, lazySeen map[Node]int) *jsonschema.Schema {
	switch n.Kind() {
	case KindObject:
		obj, ok := n.(ObjectNode)
		if !ok {
			return &jsonschema.Schema{}
		}
		s := &jsonschema.Schema{
			Type:                 "object",
			Properties:           map[string]*jsonschema.Schema{},
			AdditionalProperties: false,
		}
		for _, f := range obj.Fields() {
			child, optional, ok := exportWrapped(f.Schema, lazySeen)
			if !ok {
				continue
			}
			s.Properties[f.Name] = child
			if !optional {
				s.Required = append(s.Required, f.Name)
			}
		}
		return s
	case KindArray:
		arr, ok := n.(ArrayNode)
		if !ok {
			return &jsonschema.Schema{Type: "array"}
		}
		return &jsonschema.Schema{Type: "array", Items: exportSchema(arr.Elem(), lazySeen)}
	case KindSet:
		set, ok := n.(SetNode)
		if !ok {
			return &jsonschema.Schema{Type: "array", UniqueItems: true}
		}
		return &jsonschema.Schema{Type: "array", UniqueItems: true, Items: exportSchema(set.Elem(), lazySeen)}
	case KindTuple:
		tup, ok := n.(TupleNode)
		if !ok {
			return &jsonschema.Schema{Type: "array"}
		}
		s := &jsonschema.Schema{Type: "array"}
		for _, it := range tup.Items() {
			s.PrefixItems = append(s.PrefixItems, exportSchema(it, lazySeen))
		}
		return s
	case KindRecord:
		rec, ok := n.(RecordNode)
		if !ok {
			return &jsonschema.Schema{Type: "object"}
		}
		return &jsonschema.Schema{Type: "object", AdditionalProperties: exportSchema(rec.Value(), lazySeen)}
	case KindUnion:
		u, ok := n.(UnionNode)
		if !ok {
			return &jsonschema.Schema{}
		}
		s := &jsonschema.Schema{}
		for _, opt := range u.Options() {
			s.OneOf = append(s.OneOf, exportSchema(opt, lazySeen))
		}
		if disc := u.Discriminator(); disc != "" {
			s.Discriminator = &jsonschema.Discriminator{PropertyName: disc}
		}
		return s
	default:
		return exportLeaf(n)
	}
}

func exportLeaf(n Node) *jsonschema.Schema {
	leaf, ok := n.(LeafNode)
	if !ok {
		return &jsonschema.Schema{}
	}
	switch leaf.LeafType() {
	case LeafString:
		return &jsonschema.Schema{Type: "string"}
	case LeafNumber:
		return &jsonschema.Schema{Type: "number"}
	case LeafInt:
		return &jsonschema.Schema{Type: "integer"}
	case LeafBool:
		return &jsonschema.Schema{Type: "boolean"}
	case LeafDate:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case LeafFile:
		return &jsonschema.Schema{Type: "string", Format: "binary"}
	case LeafLiteral:
		if lit, ok := n.(LiteralNode); ok {
			return &jsonschema.Schema{Const: lit.LiteralValue()}
		}
		return &jsonschema.Schema{}
	case LeafEnum:
		if e, ok := n.(EnumNode); ok {
			vals := make([]any, 0, len(e.EnumValues()))
			for _, v := range e.EnumValues() {
				vals = append(vals, v)
			}
			return &jsonschema.Schema{Type: "string", Enum: vals}
		}
		return &jsonschema.Schema{Type: "string"}
	default:
		return &jsonschema.Schema{}
	}
}
