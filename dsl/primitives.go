package dsl

import (
	"context"
	"regexp"
	"time"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/i18n"
)

// StringNode is a string leaf with optional length/pattern rules.
type StringNode struct {
	min, max *int
	pattern  *regexp.Regexp
}

// String returns a string leaf schema.
func String() *StringNode { return &StringNode{} }

func (s *StringNode) Min(n int) *StringNode { s.min = &n; return s }
func (s *StringNode) Max(n int) *StringNode { s.max = &n; return s }

// Pattern compiles expr and applies it as a full-match rule. Invalid
// expressions panic at schema-construction time, never during traversal.
func (s *StringNode) Pattern(expr string) *StringNode {
	s.pattern = regexp.MustCompile(expr)
	return s
}

func (s *StringNode) Kind() formdata.Kind         { return formdata.KindLeaf }
func (s *StringNode) LeafType() formdata.LeafType { return formdata.LeafString }

func (s *StringNode) ValidateValue(ctx context.Context, v any) formdata.Issues {
	str, ok := v.(string)
	if !ok {
		return invalidType()
	}
	var iss formdata.Issues
	if s.min != nil && len(str) < *s.min {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooShort, "min", *s.min))
	}
	if s.max != nil && len(str) > *s.max {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooLong, "max", *s.max))
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodePattern, "pattern", s.pattern.String()))
	}
	return iss
}

// NumberNode is a float leaf with optional range rules.
type NumberNode struct {
	min, max *float64
}

// Number returns a numeric leaf schema.
func Number() *NumberNode { return &NumberNode{} }

func (n *NumberNode) Min(v float64) *NumberNode { n.min = &v; return n }
func (n *NumberNode) Max(v float64) *NumberNode { n.max = &v; return n }

func (n *NumberNode) Kind() formdata.Kind         { return formdata.KindLeaf }
func (n *NumberNode) LeafType() formdata.LeafType { return formdata.LeafNumber }

func (n *NumberNode) ValidateValue(ctx context.Context, v any) formdata.Issues {
	f, ok := asFloat(v)
	if !ok {
		return invalidType()
	}
	var iss formdata.Issues
	if n.min != nil && f < *n.min {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooSmall, "min", *n.min))
	}
	if n.max != nil && f > *n.max {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooBig, "max", *n.max))
	}
	return iss
}

// IntNode is an integer leaf with optional range rules.
type IntNode struct {
	min, max *int
}

// Int returns an integer leaf schema.
func Int() *IntNode { return &IntNode{} }

func (n *IntNode) Min(v int) *IntNode { n.min = &v; return n }
func (n *IntNode) Max(v int) *IntNode { n.max = &v; return n }

func (n *IntNode) Kind() formdata.Kind         { return formdata.KindLeaf }
func (n *IntNode) LeafType() formdata.LeafType { return formdata.LeafInt }

func (n *IntNode) ValidateValue(ctx context.Context, v any) formdata.Issues {
	i, ok := asInt(v)
	if !ok {
		return invalidType()
	}
	var iss formdata.Issues
	if n.min != nil && i < *n.min {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooSmall, "min", *n.min))
	}
	if n.max != nil && i > *n.max {
		iss = formdata.AppendIssues(iss, ruleIssue(formdata.CodeTooBig, "max", *n.max))
	}
	return iss
}

// BoolNode is a boolean leaf.
type BoolNode struct{}

// Bool returns a boolean leaf schema.
func Bool() *BoolNode { return &BoolNode{} }

func (*BoolNode) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*BoolNode) LeafType() formdata.LeafType { return formdata.LeafBool }

func (*BoolNode) ValidateValue(ctx context.Context, v any) formdata.Issues {
	if _, ok := v.(bool); !ok {
		return invalidType()
	}
	return nil
}

// DateNode is a calendar-date leaf (time.Time after coercion).
type DateNode struct{}

// Date returns a date leaf schema.
func Date() *DateNode { return &DateNode{} }

func (*DateNode) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*DateNode) LeafType() formdata.LeafType { return formdata.LeafDate }

func (*DateNode) ValidateValue(ctx context.Context, v any) formdata.Issues {
	if _, ok := v.(time.Time); !ok {
		return invalidType()
	}
	return nil
}

// LiteralLeaf is a leaf matching exactly one value.
type LiteralLeaf struct {
	value any
}

// Literal returns a literal leaf schema for v.
func Literal(v any) *LiteralLeaf { return &LiteralLeaf{value: v} }

func (*LiteralLeaf) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*LiteralLeaf) LeafType() formdata.LeafType { return formdata.LeafLiteral }
func (l *LiteralLeaf) LiteralValue() any         { return l.value }

func (l *LiteralLeaf) ValidateValue(ctx context.Context, v any) formdata.Issues {
	if v != l.value {
		return formdata.Issues{{Code: formdata.CodeInvalidEnum, Message: i18n.T(formdata.CodeInvalidEnum, nil)}}
	}
	return nil
}

// EnumLeaf is a string leaf restricted to a fixed value set.
type EnumLeaf struct {
	values []string
}

// Enum returns an enum leaf schema over the given values.
func Enum(values ...string) *EnumLeaf { return &EnumLeaf{values: values} }

func (*EnumLeaf) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*EnumLeaf) LeafType() formdata.LeafType { return formdata.LeafEnum }
func (e *EnumLeaf) EnumValues() []string      { return append([]string(nil), e.values...) }

func (e *EnumLeaf) ValidateValue(ctx context.Context, v any) formdata.Issues {
	s, ok := v.(string)
	if ok {
		for _, allowed := range e.values {
			if s == allowed {
				return nil
			}
		}
	}
	return formdata.Issues{{Code: formdata.CodeInvalidEnum, Message: i18n.T(formdata.CodeInvalidEnum, nil)}}
}

// FileLeaf is a binary transport leaf.
type FileLeaf struct{}

// FileNode returns a file leaf schema.
func FileNode() *FileLeaf { return &FileLeaf{} }

func (*FileLeaf) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*FileLeaf) LeafType() formdata.LeafType { return formdata.LeafFile }

// AnyLeaf is an opaque leaf accepting any value.
type AnyLeaf struct{}

// Any returns an opaque leaf schema.
func Any() *AnyLeaf { return &AnyLeaf{} }

func (*AnyLeaf) Kind() formdata.Kind         { return formdata.KindLeaf }
func (*AnyLeaf) LeafType() formdata.LeafType { return formdata.LeafAny }

// ---- shared helpers ----

func invalidType() formdata.Issues {
	return formdata.Issues{{Code: formdata.CodeInvalidType, Message: i18n.T(formdata.CodeInvalidType, nil)}}
}

func ruleIssue(code string, param string, v any) formdata.Issue {
	return formdata.Issue{Code: code, Message: i18n.T(code, nil), Params: map[string]any{param: v}}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
		return 0, false
	default:
		return 0, false
	}
}
