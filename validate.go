package formdata

import (
	"context"

	"github.com/Abyrd9/zod-form-data/i18n"
)

// ValidateTree walks schema and value in lock-step and invokes the Validator
// capability wherever a node implements it, producing dotted-path issues.
// It is the default validation collaborator wired into ParseForm; callers
// with an external validator supply it via ParseOpt.Validate instead.
func ValidateTree(ctx context.Context, n Node, v any) Issues {
	var out Issues
	validateInto(ctx, n, v, "", false, &out)
	return out
}

func validateInto(ctx context.Context, n Node, v any, prefix string, optional bool, out *Issues) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindWrapper:
		w, ok := n.(WrapperNode)
		if !ok {
			return
		}
		switch w.WrapKind() {
		case WrapOptional, WrapNullable:
			if v == nil {
				return
			}
			validateInto(ctx, w.Unwrap(), v, prefix, true, out)
		case WrapDefault:
			if v == nil {
				if d, ok := w.(DefaultNode); ok {
					v = d.DefaultValue()
				}
			}
			validateInto(ctx, w.Unwrap(), v, prefix, optional, out)
		default:
			validateInto(ctx, w.Unwrap(), v, prefix, optional, out)
		}
	case KindObject:
		obj, ok := n.(ObjectNode)
		if !ok {
			return
		}
		m, _ := v.(map[string]any)
		for _, f := range obj.Fields() {
			var cv any
			if m != nil {
				cv = m[f.Name]
			}
			validateInto(ctx, f.Schema, cv, joinPath(prefix, f.Name), false, out)
		}
		runValidator(ctx, n, v, prefix, out)
	case KindArray, KindSet:
		if arr, ok := v.([]any); ok {
			elem := containerElem(n)
			for i, cv := range arr {
				validateInto(ctx, elem, cv, joinPath(prefix, itoa(i)), false, out)
			}
		}
		runValidator(ctx, n, v, prefix, out)
	case KindTuple:
		tup, ok := n.(TupleNode)
		if !ok {
			return
		}
		arr, _ := v.([]any)
		for i, it := range tup.Items() {
			var cv any
			if i < len(arr) {
				cv = arr[i]
			}
			validateInto(ctx, it, cv, joinPath(prefix, itoa(i)), false, out)
		}
		runValidator(ctx, n, v, prefix, out)
	case KindRecord:
		rec, ok := n.(RecordNode)
		if !ok {
			return
		}
		if m, isMap := v.(map[string]any); isMap {
			for k, cv := range m {
				validateInto(ctx, rec.Value(), cv, joinPath(prefix, k), false, out)
			}
		}
		runValidator(ctx, n, v, prefix, out)
	case KindUnion:
		u, ok := n.(UnionNode)
		if !ok {
			return
		}
		disc := u.Discriminator()
		if disc == "" {
			validateUntagged(ctx, u, v, prefix, out)
			return
		}
		m, _ := v.(map[string]any)
		var tag any
		if m != nil {
			tag = m[disc]
		}
		if tag == nil {
			if optional && v == nil {
				return
			}
			*out = AppendIssues(*out, Issue{
				Path: joinPath(prefix, disc), Code: CodeDiscriminatorMissing,
				Message: i18n.T(CodeDiscriminatorMissing, nil),
			})
			return
		}
		obj := optionForTag(u, tag)
		if obj == nil {
			*out = AppendIssues(*out, Issue{
				Path: joinPath(prefix, disc), Code: CodeDiscriminatorUnknown,
				Message: i18n.T(CodeDiscriminatorUnknown, nil),
			})
			return
		}
		for _, f := range obj.Fields() {
			if f.Name == disc {
				continue
			}
			validateInto(ctx, f.Schema, m[f.Name], joinPath(prefix, f.Name), false, out)
		}
	default:
		if v == nil {
			if !optional {
				*out = AppendIssues(*out, Issue{
					Path: prefix, Code: CodeRequired, Message: i18n.T(CodeRequired, nil),
				})
			}
			return
		}
		runValidator(ctx, n, v, prefix, out)
	}
}

// validateUntagged accepts the value when any alternative validates cleanly;
// otherwise it reports the first alternative's issues.
func validateUntagged(ctx context.Context, u UnionNode, v any, prefix string, out *Issues) {
	var first Issues
	for i, opt := range u.Options() {
		var sub Issues
		validateInto(ctx, opt, v, prefix, false, &sub)
		if len(sub) == 0 {
			return
		}
		if i == 0 {
			first = sub
		}
	}
	*out = AppendIssues(*out, first...)
}

func runValidator(ctx context.Context, n Node, v any, prefix string, out *Issues) {
	val, ok := n.(Validator)
	if !ok {
		return
	}
	*out = AppendIssues(*out, prefixIssues(prefix, val.ValidateValue(ctx, v))...)
}
