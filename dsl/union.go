package dsl

import formdata "github.com/Abyrd9/zod-form-data"

type unionSchema struct {
	options []formdata.Node
	disc    string
}

// Union returns an untagged union over the given alternatives. Untagged
// unions flatten as opaque leaves; coercion tries alternatives in order.
func Union(options ...formdata.Node) formdata.Node {
	return &unionSchema{options: options}
}

// Discriminated returns a tagged union. Every option must be an object schema
// carrying a literal leaf at the discriminator field; traversal selects the
// option whose literal equals the runtime tag.
func Discriminated(discriminator string, options ...formdata.Node) formdata.Node {
	return &unionSchema{options: options, disc: discriminator}
}

func (*unionSchema) Kind() formdata.Kind        { return formdata.KindUnion }
func (u *unionSchema) Options() []formdata.Node { return u.options }
func (u *unionSchema) Discriminator() string    { return u.disc }
