// Package dsl provides constructors for the schema node algebra consumed by
// the formdata traversal core: primitive leaves with chainable rule builders,
// container builders (Object/Array/Tuple/Record/Set), unions, and the
// transparent wrappers (Optional/Default/Nullable/Lazy/Pipe/Transform/Catch).
//
// Optionality is expressed by wrapping: a field is required unless its schema
// is wrapped in Optional, Default or Nullable. Leaves carrying rules
// implement the formdata.Validator capability and are picked up by
// formdata.ValidateTree.
package dsl
