// Package yamlschema loads schema definitions written as YAML documents and
// compiles them into formdata nodes. It exists so form shapes can live in
// config files next to the services that serve them instead of in Go source.
//
// The document format mirrors the node algebra directly:
//
//	type: object
//	fields:
//	  name: { type: string, min: 1 }
//	  tags: { type: array, elem: { type: string } }
//	  level: { type: integer, optional: true }
//
// Any entry may additionally carry optional, nullable, or default keys; they
// compile into the corresponding wrappers.
package yamlschema

import (
	"fmt"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/dsl"
	"gopkg.in/yaml.v3"
)

// Load compiles a single YAML schema document into a node.
func Load(data []byte) (formdata.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlschema: invalid YAML: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("yamlschema: empty document")
		}
		root = root.Content[0]
	}
	return compile(root)
}

func compile(n *yaml.Node) (formdata.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, posErr(n, "schema entry must be a mapping")
	}
	entries := mappingEntries(n)

	typ, ok := entries["type"]
	if !ok {
		return nil, posErr(n, "schema entry missing type")
	}
	var typeName string
	if err := typ.Decode(&typeName); err != nil {
		return nil, posErr(typ, "type must be a string")
	}

	node, err := compileShape(typeName, n, entries)
	if err != nil {
		return nil, err
	}
	return applyWrappers(node, entries)
}

func compileShape(typeName string, n *yaml.Node, entries map[string]*yaml.Node) (formdata.Node, error) {
	switch typeName {
	case "string":
		s := dsl.String()
		if v, ok := entries["min"]; ok {
			s = s.Min(mustInt(v))
		}
		if v, ok := entries["max"]; ok {
			s = s.Max(mustInt(v))
		}
		if v, ok := entries["pattern"]; ok {
			var expr string
			if err := v.Decode(&expr); err != nil {
				return nil, posErr(v, "pattern must be a string")
			}
			s = s.Pattern(expr)
		}
		return s, nil
	case "number":
		num := dsl.Number()
		if v, ok := entries["min"]; ok {
			num = num.Min(mustFloat(v))
		}
		if v, ok := entries["max"]; ok {
			num = num.Max(mustFloat(v))
		}
		return num, nil
	case "integer":
		i := dsl.Int()
		if v, ok := entries["min"]; ok {
			i = i.Min(mustInt(v))
		}
		if v, ok := entries["max"]; ok {
			i = i.Max(mustInt(v))
		}
		return i, nil
	case "boolean":
		return dsl.Bool(), nil
	case "date":
		return dsl.Date(), nil
	case "file":
		return dsl.FileNode(), nil
	case "any":
		return dsl.Any(), nil
	case "literal":
		v, ok := entries["value"]
		if !ok {
			return nil, posErr(n, "literal requires value")
		}
		var lit any
		if err := v.Decode(&lit); err != nil {
			return nil, posErr(v, "invalid literal value")
		}
		return dsl.Literal(lit), nil
	case "enum":
		v, ok := entries["values"]
		if !ok {
			return nil, posErr(n, "enum requires values")
		}
		var vals []string
		if err := v.Decode(&vals); err != nil {
			return nil, posErr(v, "enum values must be strings")
		}
		return dsl.Enum(vals...), nil
	case "object":
		fields, ok := entries["fields"]
		if !ok {
			return nil, posErr(n, "object requires fields")
		}
		if fields.Kind != yaml.MappingNode {
			return nil, posErr(fields, "fields must be a mapping")
		}
		b := dsl.Object()
		// Content alternates key, value; declaration order is preserved.
		for i := 0; i+1 < len(fields.Content); i += 2 {
			name := fields.Content[i].Value
			child, err := compile(fields.Content[i+1])
			if err != nil {
				return nil, err
			}
			b = b.Field(name, child)
		}
		return b.Build(), nil
	case "array":
		elem, err := requiredChild(n, entries, "elem")
		if err != nil {
			return nil, err
		}
		arr := dsl.Array(elem)
		if v, ok := entries["min"]; ok {
			arr = arr.Min(mustInt(v))
		}
		if v, ok := entries["max"]; ok {
			arr = arr.Max(mustInt(v))
		}
		return arr, nil
	case "set":
		elem, err := requiredChild(n, entries, "elem")
		if err != nil {
			return nil, err
		}
		return dsl.SetOf(elem), nil
	case "tuple":
		items, ok := entries["items"]
		if !ok || items.Kind != yaml.SequenceNode {
			return nil, posErr(n, "tuple requires an items sequence")
		}
		nodes := make([]formdata.Node, 0, len(items.Content))
		for _, it := range items.Content {
			child, err := compile(it)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, child)
		}
		return dsl.Tuple(nodes...), nil
	case "record":
		value, err := requiredChild(n, entries, "value")
		if err != nil {
			return nil, err
		}
		return dsl.Record(value), nil
	case "union":
		options, ok := entries["options"]
		if !ok || options.Kind != yaml.SequenceNode {
			return nil, posErr(n, "union requires an options sequence")
		}
		nodes := make([]formdata.Node, 0, len(options.Content))
		for _, opt := range options.Content {
			child, err := compile(opt)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, child)
		}
		if v, ok := entries["discriminator"]; ok {
			var disc string
			if err := v.Decode(&disc); err != nil {
				return nil, posErr(v, "discriminator must be a string")
			}
			return dsl.Discriminated(disc, nodes...), nil
		}
		return dsl.Union(nodes...), nil
	default:
		return nil, posErr(n, "unknown schema type %q", typeName)
	}
}

func applyWrappers(node formdata.Node, entries map[string]*yaml.Node) (formdata.Node, error) {
	if v, ok := entries["default"]; ok {
		var dv any
		if err := v.Decode(&dv); err != nil {
			return nil, posErr(v, "invalid default value")
		}
		node = dsl.Default(node, dv)
	}
	if v, ok := entries["nullable"]; ok && boolValue(v) {
		node = dsl.Nullable(node)
	}
	if v, ok := entries["optional"]; ok && boolValue(v) {
		node = dsl.Optional(node)
	}
	return node, nil
}

func requiredChild(n *yaml.Node, entries map[string]*yaml.Node, key string) (formdata.Node, error) {
	v, ok := entries[key]
	if !ok {
		return nil, posErr(n, "missing %s", key)
	}
	return compile(v)
}

func mappingEntries(n *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = n.Content[i+1]
	}
	return out
}

func mustInt(n *yaml.Node) int {
	var v int
	_ = n.Decode(&v)
	return v
}

func mustFloat(n *yaml.Node) float64 {
	var v float64
	_ = n.Decode(&v)
	return v
}

func boolValue(n *yaml.Node) bool {
	var v bool
	_ = n.Decode(&v)
	return v
}

func posErr(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("yamlschema: line %d: %s", n.Line, fmt.Sprintf(format, args...))
}
