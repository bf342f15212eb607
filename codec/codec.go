// Package codec converts between wire representations and domain values for
// leaf positions. Codecs sit outside the flat/nested traversal core: a
// consumer runs them after Unflatten (decode) or before Flatten (encode).
package codec

import "context"

// Codec converts between a wire type A and a domain type B. Decode may fail
// with formdata.Issues; Encode is expected to succeed for any value Decode
// can produce.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// Identity returns a Codec[T,T] passing values through unchanged. Useful as
// the neutral element when a pipeline slot requires a codec.
func Identity[T any]() Codec[T, T] { return identityCodec[T]{} }

type identityCodec[T any] struct{}

func (identityCodec[T]) Decode(ctx context.Context, a T) (T, error) { return a, nil }
func (identityCodec[T]) Encode(ctx context.Context, b T) (T, error) { return b, nil }
