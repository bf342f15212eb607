package formdata

import (
	"regexp"
	"strconv"
	"time"

	"github.com/Abyrd9/zod-form-data/i18n"
)

// Raw transport formats. These are bit-exact compatibility requirements, so
// they are spelled as patterns rather than delegated to a general parser.
var (
	reInteger = regexp.MustCompile(`^-?\d+$`)
	reNumeric = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const isoDateLayout = "2006-01-02"

// Coerce converts a single raw transport value (string or File) into the
// typed value a leaf entry expects. On failure it returns a non-nil Issue
// carrying a human-readable message; callers record the issue against path
// and retain the raw value so full-schema validation can still run.
func Coerce(path string, entry SchemaEntry, raw any) (any, *Issue) {
	s, isStr := raw.(string)
	if !isStr {
		// Files and already-typed values pass through untouched.
		return raw, nil
	}
	// Optional/nullable leaves map an empty string to the absent/null
	// sentinel before the inner coercion is consulted.
	if entry.Optional && s == "" {
		return nil, nil
	}
	return coerceNode(path, entry.Schema, s)
}

func coerceNode(path string, n Node, s string) (any, *Issue) {
	eff := Effective(n)
	if eff == nil {
		return s, nil
	}
	switch eff.Kind() {
	case KindUnion:
		u, ok := eff.(UnionNode)
		if !ok {
			return s, nil
		}
		// Attempt each alternative in declaration order; adopt the first
		// success, otherwise fall back to the raw string untouched.
		for _, opt := range u.Options() {
			if v, iss := coerceNode(path, opt, s); iss == nil {
				return v, nil
			}
		}
		return s, nil
	case KindArray, KindSet:
		// One transport value at an array position wraps into a
		// single-element list.
		v, iss := coerceNode(path, containerElem(eff), s)
		if iss != nil {
			return s, iss
		}
		return []any{v}, nil
	}
	leaf, ok := eff.(LeafNode)
	if !ok {
		// Unrecognized construct: opaque passthrough, deliberately lenient.
		return s, nil
	}
	switch leaf.LeafType() {
	case LeafInt:
		if !reInteger.MatchString(s) {
			return s, coerceIssue(path, CodeCoercionInteger, nil)
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return s, coerceIssue(path, CodeCoercionInteger, err)
		}
		return int(v), nil
	case LeafNumber:
		// Lenient parse first, strict numeric pattern as the fallback gate.
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		if reNumeric.MatchString(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, nil
			}
		}
		return s, coerceIssue(path, CodeCoercionNumber, nil)
	case LeafBool:
		// Exactly these tokens, case-sensitive; everything else is a
		// failure, never a silent default.
		switch s {
		case "true", "on":
			return true, nil
		case "false":
			return false, nil
		default:
			return s, coerceIssue(path, CodeCoercionBoolean, nil)
		}
	case LeafDate:
		if !reISODate.MatchString(s) {
			return s, coerceIssue(path, CodeCoercionDate, nil)
		}
		t, err := time.Parse(isoDateLayout, s)
		if err != nil {
			return s, coerceIssue(path, CodeCoercionDate, err)
		}
		return t, nil
	default:
		// string/literal/enum/file/any leaves keep the string as-is.
		return s, nil
	}
}

func coerceIssue(path, code string, cause error) *Issue {
	return &Issue{Path: path, Code: code, Message: i18n.T(code, nil), Cause: cause}
}
