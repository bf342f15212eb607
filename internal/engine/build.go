// Package engine holds the tree-assembly mechanics behind the public
// Unflatten APIs. It is internal and not part of the public contract.
package engine

import (
	"sort"
	"strconv"
)

// IsIndexSegment reports whether a path segment is a decimal non-negative
// integer, which forces its parent container to become an array.
func IsIndexSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// sparse accumulates array elements keyed by their literal numeric index.
// Finalize sorts by ascending index and collapses gaps, so insertion order
// never affects the result.
type sparse struct {
	slots map[int]any
}

// Builder assembles a nested value tree from (segments, value) entries using
// only path token shapes: numeric segments build arrays, everything else
// builds objects. No schema is consulted.
type Builder struct {
	root any
}

func NewBuilder() *Builder { return &Builder{} }

// Put assigns v at the position addressed by segs. Later entries overwrite
// earlier ones at the same position; a segment that disagrees with the
// established container shape replaces the container rather than erroring.
func (b *Builder) Put(segs []string, v any) {
	b.root = put(b.root, segs, v)
}

func put(cur any, segs []string, v any) any {
	if len(segs) == 0 {
		return v
	}
	seg := segs[0]
	if IsIndexSegment(seg) {
		arr, ok := cur.(*sparse)
		if !ok {
			arr = &sparse{slots: map[int]any{}}
		}
		idx, _ := strconv.Atoi(seg)
		arr.slots[idx] = put(arr.slots[idx], segs[1:], v)
		return arr
	}
	obj, ok := cur.(map[string]any)
	if !ok {
		obj = map[string]any{}
	}
	obj[seg] = put(obj[seg], segs[1:], v)
	return obj
}

// Result finalizes and returns the assembled tree. Sparse array levels become
// []any in ascending index order with absent slots dropped.
func (b *Builder) Result() any { return finalize(b.root) }

func finalize(v any) any {
	switch t := v.(type) {
	case *sparse:
		idxs := make([]int, 0, len(t.slots))
		for i := range t.slots {
			idxs = append(idxs, i)
		}
		sort.Ints(idxs)
		out := make([]any, 0, len(idxs))
		for _, i := range idxs {
			out = append(out, finalize(t.slots[i]))
		}
		return out
	case map[string]any:
		for k, cv := range t {
			t[k] = finalize(cv)
		}
		return t
	default:
		return v
	}
}
