package dsl

import (
	"context"

	formdata "github.com/Abyrd9/zod-form-data"
)

// ObjectBuilder accumulates named fields in declaration order.
type ObjectBuilder struct {
	fields []formdata.ObjectField
}

// Object starts an object schema. Fields are registered with Field and the
// node is obtained with Build.
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field appends a named child schema. A repeated name replaces the earlier
// registration in place, keeping its declaration position.
func (b *ObjectBuilder) Field(name string, schema formdata.Node) *ObjectBuilder {
	for i, f := range b.fields {
		if f.Name == name {
			b.fields[i].Schema = schema
			return b
		}
	}
	b.fields = append(b.fields, formdata.ObjectField{Name: name, Schema: schema})
	return b
}

// Build finalizes the object node. The builder may keep accumulating fields
// afterwards without affecting already-built nodes.
func (b *ObjectBuilder) Build() formdata.Node {
	return &objectNode{fields: append([]formdata.ObjectField(nil), b.fields...)}
}

type objectNode struct {
	fields []formdata.ObjectField
}

func (*objectNode) Kind() formdata.Kind              { return formdata.KindObject }
func (o *objectNode) Fields() []formdata.ObjectField { return o.fields }

// ArrayBuilder is an unbounded array schema with optional element-count rules.
type ArrayBuilder struct {
	elem     formdata.Node
	min, max *int
}

// Array returns an array schema over elem.
func Array(elem formdata.Node) *ArrayBuilder { return &ArrayBuilder{elem: elem} }

func (a *ArrayBuilder) Min(n int) *ArrayBuilder { a.min = &n; return a }
func (a *ArrayBuilder) Max(n int) *ArrayBuilder { a.max = &n; return a }

func (*ArrayBuilder) Kind() formdata.Kind   { return formdata.KindArray }
func (a *ArrayBuilder) Elem() formdata.Node { return a.elem }

func (a *ArrayBuilder) ValidateValue(ctx context.Context, v any) formdata.Issues {
	arr, ok := v.([]any)
	if !ok {
		return invalidType()
	}
	var iss formdata.Issues
	if a.min != nil && len(arr) < *a.min {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooSmall, "min", *a.min))
	}
	if a.max != nil && len(arr) > *a.max {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooBig, "max", *a.max))
	}
	return iss
}

// SetSchema is an unordered, deduplicated collection schema.
type SetSchema struct {
	elem formdata.Node
}

// SetOf returns a set schema over elem. Transport-wise sets travel exactly
// like arrays; the distinction matters to consumers, not to flattening.
func SetOf(elem formdata.Node) *SetSchema { return &SetSchema{elem: elem} }

func (*SetSchema) Kind() formdata.Kind   { return formdata.KindSet }
func (s *SetSchema) Elem() formdata.Node { return s.elem }

// TupleSchema is a fixed-arity positional schema.
type TupleSchema struct {
	items []formdata.Node
}

// Tuple returns a tuple schema over the given positional items.
func Tuple(items ...formdata.Node) *TupleSchema {
	return &TupleSchema{items: items}
}

func (*TupleSchema) Kind() formdata.Kind      { return formdata.KindTuple }
func (t *TupleSchema) Items() []formdata.Node { return t.items }

// RecordSchema is a dynamic string-keyed map schema.
type RecordSchema struct {
	value formdata.Node
}

// Record returns a record schema whose every value conforms to value.
func Record(value formdata.Node) *RecordSchema { return &RecordSchema{value: value} }

func (*RecordSchema) Kind() formdata.Kind    { return formdata.KindRecord }
func (r *RecordSchema) Value() formdata.Node { return r.value }
