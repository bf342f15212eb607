package dsl

import formdata "github.com/Abyrd9/zod-form-data"

type wrapper struct {
	kind  formdata.WrapKind
	inner formdata.Node
}

func (*wrapper) Kind() formdata.Kind           { return formdata.KindWrapper }
func (w *wrapper) WrapKind() formdata.WrapKind { return w.kind }
func (w *wrapper) Unwrap() formdata.Node       { return w.inner }

// Optional marks inner as present-or-absent. Absent values flatten to nil and
// skip validation.
func Optional(inner formdata.Node) formdata.Node {
	return &wrapper{kind: formdata.WrapOptional, inner: inner}
}

// Nullable marks inner as accepting an explicit null.
func Nullable(inner formdata.Node) formdata.Node {
	return &wrapper{kind: formdata.WrapNullable, inner: inner}
}

type defaultWrapper struct {
	wrapper
	value any
}

// Default substitutes value wherever the input carries nothing at inner's
// position.
func Default(inner formdata.Node, value any) formdata.Node {
	return &defaultWrapper{wrapper: wrapper{kind: formdata.WrapDefault, inner: inner}, value: value}
}

func (d *defaultWrapper) DefaultValue() any { return d.value }

type catchWrapper struct {
	wrapper
	fallback any
}

// Catch substitutes fallback when inner's validation fails.
func Catch(inner formdata.Node, fallback any) formdata.Node {
	return &catchWrapper{wrapper: wrapper{kind: formdata.WrapCatch, inner: inner}, fallback: fallback}
}

func (c *catchWrapper) FallbackValue() any { return c.fallback }

type lazyWrapper struct {
	getter func() formdata.Node
}

// Lazy defers schema construction until traversal, enabling recursive
// schemas. The getter runs on every Unwrap; memoization is the caller's
// business.
func Lazy(getter func() formdata.Node) formdata.Node {
	return &lazyWrapper{getter: getter}
}

func (*lazyWrapper) Kind() formdata.Kind         { return formdata.KindWrapper }
func (*lazyWrapper) WrapKind() formdata.WrapKind { return formdata.WrapLazy }
func (l *lazyWrapper) Unwrap() formdata.Node     { return l.getter() }

// Pipe chains a downstream stage after inner. Shape-wise the pipe is
// transparent; the downstream stage matters to consumers running refinement.
func Pipe(inner formdata.Node) formdata.Node {
	return &wrapper{kind: formdata.WrapPipe, inner: inner}
}

// Transform marks inner as feeding a post-parse transformation. Transparent
// for flattening purposes.
func Transform(inner formdata.Node) formdata.Node {
	return &wrapper{kind: formdata.WrapTransform, inner: inner}
}
