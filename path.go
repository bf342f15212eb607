package formdata

import (
	"strings"

	eng "github.com/Abyrd9/zod-form-data/internal/engine"
)

// Path grammar constants. These are part of the persisted/transmitted
// contract and must not change.
const (
	// PathDelim separates path segments. There is no escaping mechanism;
	// field and record-key names containing the delimiter are unsupported.
	PathDelim = "."
	// PlaceholderIndex stands in for any array/set element position in
	// schema-space paths. It never appears in a real flat value map.
	PlaceholderIndex = "#"
	// PlaceholderKey stands in for any record value position in schema-space
	// paths. It never appears in a real flat value map.
	PlaceholderKey = "*"
)

// SplitPath splits a dotted path into its segments.
func SplitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, PathDelim)
}

// JoinPath joins segments into a dotted path.
func JoinPath(segs ...string) string { return strings.Join(segs, PathDelim) }

// joinPath appends one segment (or relative sub-path) to a prefix, tolerating
// an empty side on either end.
func joinPath(prefix, seg string) string {
	switch {
	case prefix == "":
		return seg
	case seg == "":
		return prefix
	default:
		return prefix + PathDelim + seg
	}
}

// isIndexSegment reports whether a segment addresses an array position.
func isIndexSegment(s string) bool { return eng.IsIndexSegment(s) }

// MatchPath reports whether a concrete value path matches a schema-space
// pattern. Matching requires exact segment-count equality; each pattern
// segment must equal the value segment, or be PlaceholderIndex against a
// numeric segment, or be PlaceholderKey against any segment.
func MatchPath(path, pattern string) bool {
	ps := SplitPath(path)
	ts := SplitPath(pattern)
	if len(ps) != len(ts) {
		return false
	}
	for i, t := range ts {
		switch t {
		case ps[i]:
		case PlaceholderIndex:
			if !isIndexSegment(ps[i]) {
				return false
			}
		case PlaceholderKey:
		default:
			return false
		}
	}
	return true
}

// pathLess orders paths segment-wise, comparing numeric segments numerically
// so array entries sort by index rather than lexically. Used for
// deterministic iteration, never for semantics.
func pathLess(a, b string) bool {
	as, bs := SplitPath(a), SplitPath(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := as[i], bs[i]
		if x == y {
			continue
		}
		if isIndexSegment(x) && isIndexSegment(y) {
			if len(x) != len(y) {
				return len(x) < len(y)
			}
		}
		return x < y
	}
	return len(as) < len(bs)
}
