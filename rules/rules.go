// Package rules provides cross-field validation over parsed value trees,
// addressed by the same dotted paths the flat representation uses. Rules plug
// into formdata.ParseOpt.Validate, alone or combined with the schema walk.
package rules

import (
	"context"
	"fmt"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/i18n"
)

// Rule examines a parsed value tree and reports issues at dotted paths.
type Rule func(ctx context.Context, v any) formdata.Issues

// Op is a comparison operator for If conditions.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Combine runs rules in order and concatenates their issues.
func Combine(rules ...Rule) Rule {
	return func(ctx context.Context, v any) formdata.Issues {
		var out formdata.Issues
		for _, r := range rules {
			if r == nil {
				continue
			}
			out = formdata.AppendIssues(out, r(ctx, v)...)
		}
		return out
	}
}

// WithSchema combines the schema's own validation walk with extra rules.
// The result is directly assignable to ParseOpt.Validate.
func WithSchema(n formdata.Node, extra ...Rule) func(ctx context.Context, v any) formdata.Issues {
	all := append([]Rule{func(ctx context.Context, v any) formdata.Issues {
		return formdata.ValidateTree(ctx, n, v)
	}}, extra...)
	return Rule(Combine(all...))
}

// Conditional gates rules on a comparison against the value at a path.
type Conditional struct {
	path string
	op   Op
	want any
	all  []Conditional
	any  []Conditional
}

// If builds a condition comparing the value at a dotted path against want.
func If(path string, op Op, want any) Conditional {
	return Conditional{path: path, op: op, want: want}
}

// IfAll requires every condition to hold.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny requires at least one condition to hold.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

// And combines the receiver with more conditions using logical AND.
func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

// Or combines the receiver with more conditions using logical OR.
func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Then returns a rule that runs the given rules only when the condition
// holds.
func (c Conditional) Then(rules ...Rule) Rule {
	inner := Combine(rules...)
	return func(ctx context.Context, v any) formdata.Issues {
		if !c.eval(v) {
			return nil
		}
		return inner(ctx, v)
	}
}

func (c Conditional) eval(v any) bool {
	if len(c.all) > 0 {
		for _, sub := range c.all {
			if !sub.eval(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, sub := range c.any {
			if sub.eval(v) {
				return true
			}
		}
		return false
	}
	got, ok := ValueAt(v, c.path)
	if !ok {
		return false
	}
	return compare(got, c.op, c.want)
}

// Required reports a required issue when the value at path is nil or absent.
func Required(path string) Rule {
	return func(ctx context.Context, v any) formdata.Issues {
		if got, ok := ValueAt(v, path); ok && got != nil {
			return nil
		}
		return formdata.Issues{{
			Path: path, Code: formdata.CodeRequired,
			Message: i18n.T(formdata.CodeRequired, nil),
		}}
	}
}

// AtLeastOne requires the collection at path to carry at least one element.
// Missing or non-collection values produce no issue; other rules own those.
func AtLeastOne(path string) Rule {
	return func(ctx context.Context, v any) formdata.Issues {
		got, ok := ValueAt(v, path)
		if !ok {
			return nil
		}
		if arr, isArr := got.([]any); isArr && len(arr) == 0 {
			return formdata.Issues{{
				Path: path, Code: formdata.CodeTooSmall,
				Message: "at least 1 item is required",
				Params:  map[string]any{"min": 1},
			}}
		}
		return nil
	}
}

// UniqueBy requires elements of the collection at path to be unique by the
// value at keyPath within each element. Keys are compared by their printed
// form, so mixed-type keys that print alike collide.
func UniqueBy(path, keyPath string) Rule {
	return func(ctx context.Context, v any) formdata.Issues {
		got, ok := ValueAt(v, path)
		if !ok {
			return nil
		}
		arr, isArr := got.([]any)
		if !isArr {
			return nil
		}
		seen := map[string]int{}
		var out formdata.Issues
		for i, elem := range arr {
			kv, ok := ValueAt(elem, keyPath)
			if !ok {
				continue
			}
			key := fmt.Sprint(kv)
			if first, dup := seen[key]; dup {
				out = formdata.AppendIssues(out, formdata.Issue{
					Path:    formdata.JoinPath(path, itoa(i), keyPath),
					Code:    formdata.CodeInvalidFormat,
					Message: "duplicate value",
					Params:  map[string]any{"first": first, "dup": i, "key": key},
				})
			} else {
				seen[key] = i
			}
		}
		return out
	}
}

// ValueAt resolves a dotted path against a nested value tree. Numeric
// segments index arrays; everything else keys maps.
func ValueAt(v any, path string) (any, bool) {
	cur := v
	for _, seg := range formdata.SplitPath(path) {
		switch t := cur.(type) {
		case map[string]any:
			child, ok := t[seg]
			if !ok {
				return nil, false
			}
			cur = child
		case []any:
			idx, ok := parseIndex(seg)
			if !ok || idx >= len(t) {
				return nil, false
			}
			cur = t[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
		n = n*10 + int(seg[i]-'0')
	}
	return n, true
}

func itoa(i int) string { return fmt.Sprintf("%d", i) }

func compare(got any, op Op, want any) bool {
	if gf, ok := toFloat(got); ok {
		if wf, ok := toFloat(want); ok {
			switch op {
			case Eq:
				return gf == wf
			case Ne:
				return gf != wf
			case Lt:
				return gf < wf
			case Le:
				return gf <= wf
			case Gt:
				return gf > wf
			case Ge:
				return gf >= wf
			}
		}
		return false
	}
	gs, ws := fmt.Sprint(got), fmt.Sprint(want)
	switch op {
	case Eq:
		return gs == ws
	case Ne:
		return gs != ws
	case Lt:
		return gs < ws
	case Le:
		return gs <= ws
	case Gt:
		return gs > ws
	case Ge:
		return gs >= ws
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
