package formdata

import "context"

// Kind classifies a schema node into one of the recognized shape categories.
// The traversal algorithms branch on Kind and then downcast to the matching
// accessor interface below.
type Kind int

const (
	KindLeaf Kind = iota
	KindObject
	KindArray
	KindTuple
	KindRecord
	KindSet
	KindUnion
	KindWrapper
)

// Node is the capability-set view of a schema node. The schema description
// language itself is external; the core only needs Kind plus the per-kind
// accessors. Unrecognized nodes (Kind values or missing accessors) are
// treated as opaque leaves, never as hard failures.
type Node interface {
	Kind() Kind
}

// ObjectField is one named child of an object node, in declaration order.
type ObjectField struct {
	Name   string
	Schema Node
}

// ObjectNode exposes the ordered field list of an object.
type ObjectNode interface {
	Node
	Fields() []ObjectField
}

// ArrayNode exposes the single element schema of an unbounded array.
type ArrayNode interface {
	Node
	Elem() Node
}

// TupleNode exposes the fixed, heterogeneous positional schemas of a tuple.
type TupleNode interface {
	Node
	Items() []Node
}

// RecordNode exposes the value schema of a dynamic string-keyed map.
type RecordNode interface {
	Node
	Value() Node
}

// SetNode exposes the element schema of an unordered, deduplicated set.
type SetNode interface {
	Node
	Elem() Node
}

// UnionNode exposes the ordered alternatives of a union. Discriminator
// returns the tag field name for discriminated unions and "" otherwise.
type UnionNode interface {
	Node
	Options() []Node
	Discriminator() string
}

// WrapKind identifies the transparent wrapper variants. Wrappers never change
// effective shape; they only affect presence/defaulting semantics.
type WrapKind int

const (
	WrapOptional WrapKind = iota
	WrapDefault
	WrapNullable
	WrapLazy
	WrapPipe
	WrapTransform
	WrapCatch
)

// WrapperNode is a transparent modifier around exactly one child. For lazy
// wrappers, Unwrap invokes the getter; callers must re-Unwrap per traversal
// step rather than caching across calls.
type WrapperNode interface {
	Node
	WrapKind() WrapKind
	Unwrap() Node
}

// DefaultNode is a default wrapper carrying its declared default value.
type DefaultNode interface {
	WrapperNode
	DefaultValue() any
}

// CatchNode is a fallback wrapper carrying its fallback value.
type CatchNode interface {
	WrapperNode
	FallbackValue() any
}

// LeafType tells the coercion layer how to convert a raw transport string.
type LeafType int

const (
	LeafAny LeafType = iota
	LeafString
	LeafNumber
	LeafInt
	LeafBool
	LeafDate
	LeafLiteral
	LeafEnum
	LeafFile
)

// LeafNode is a terminal schema position.
type LeafNode interface {
	Node
	LeafType() LeafType
}

// LiteralNode exposes the exact value of a literal leaf. Discriminated-union
// option matching reads the discriminator field's literal through this.
type LiteralNode interface {
	LeafNode
	LiteralValue() any
}

// EnumNode exposes the allowed values of an enum leaf.
type EnumNode interface {
	LeafNode
	EnumValues() []string
}

// Validator is the optional validation capability. Nodes implementing it are
// invoked by ValidateTree with the value at their position; returned issue
// paths are relative and get rebased onto the node's dotted path.
type Validator interface {
	ValidateValue(ctx context.Context, v any) Issues
}

// Effective returns the logical shape of n after transparently unwrapping all
// wrapper nodes (lazy getters are invoked). This is the "effective shape"
// query; callers that care about presence semantics must inspect Kind
// directly instead, so that optional/default/nullable wrappers stay visible.
func Effective(n Node) Node {
	for n != nil && n.Kind() == KindWrapper {
		w, ok := n.(WrapperNode)
		if !ok {
			return n
		}
		n = w.Unwrap()
	}
	return n
}

// optionForTag selects the discriminated-union alternative whose discriminator
// field is a literal equal to tag. Returns nil when no alternative matches.
func optionForTag(u UnionNode, tag any) ObjectNode {
	disc := u.Discriminator()
	for _, opt := range u.Options() {
		obj, ok := Effective(opt).(ObjectNode)
		if !ok {
			continue
		}
		for _, f := range obj.Fields() {
			if f.Name != disc {
				continue
			}
			if lit, ok := Effective(f.Schema).(LiteralNode); ok && lit.LiteralValue() == tag {
				return obj
			}
		}
	}
	return nil
}
