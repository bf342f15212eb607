// Package formdata converts between three representations of the same
// schema-shaped data:
//
//   - a nested value tree matching the schema (map[string]any / []any / scalars)
//   - a flat dotted-path map (FlatMap), the working state of form UIs
//   - a transport multimap (Values), as produced by form submission
//
// The four cooperating algorithms are Flatten, Unflatten, FlattenSchema and
// the error projectors (FlattenErrors/UnflattenErrors). FlattenSchema derives
// a per-path leaf schema used by Coerce to bridge string-only transport values
// to typed leaves, and by ParseForm to assemble a typed tree (or a structured
// ParseFailure) from a submission.
//
// Design policy:
//   - Keep only public APIs in the root package; tree assembly lives under internal/.
//   - Place schema constructors under dsl/, codecs under codec/, the CLI under cmd/formdata.
//   - Prefer black-box testing against public APIs.
//
// Path syntax: segments joined by ".", array/set/tuple elements use decimal
// indices, record keys appear verbatim. Schema-space paths use "#" for
// array/set element positions and "*" for record value positions. There is no
// escaping; names containing "." are unsupported. Record keys that look like
// non-negative integers are indistinguishable from array indices at the path
// level and will reconstruct as arrays; nested arrays-of-arrays are likewise
// outside the path scheme. Both are documented limits, not bugs to patch.
//
// Typical usage:
//
//	s := dsl.Object().
//		Field("name", dsl.String().Min(1)).
//		Field("tags", dsl.Array(dsl.String())).
//		Build()
//	flat := formdata.Flatten(s, value)
//	tree := formdata.Unflatten(flat)
//	out, fail := formdata.ParseForm(ctx, s, formdata.ValuesFromURL(r.Form))
package formdata
