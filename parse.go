package formdata

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strings"

	"github.com/Abyrd9/zod-form-data/i18n"
)

// Values is the transport multimap produced by form submission: every element
// is either a plain string or a File.
type Values map[string][]any

// ValuesFromURL adapts url.Values (application/x-www-form-urlencoded).
func ValuesFromURL(v url.Values) Values {
	out := make(Values, len(v))
	for k, list := range v {
		vs := make([]any, len(list))
		for i, s := range list {
			vs[i] = s
		}
		out[k] = vs
	}
	return out
}

// ValuesFromMultipart adapts a parsed multipart form, reading file parts into
// File values.
func ValuesFromMultipart(f *multipart.Form) (Values, error) {
	out := Values{}
	for k, list := range f.Value {
		vs := make([]any, len(list))
		for i, s := range list {
			vs[i] = s
		}
		out[k] = vs
	}
	for k, headers := range f.File {
		for _, fh := range headers {
			r, err := fh.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(r)
			_ = r.Close()
			if err != nil {
				return nil, err
			}
			out[k] = append(out[k], File{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return out, nil
}

// ParseFailure is the structured result of a failed submission parse.
// CoercionErrors and ValidationErrors are kept separate; Errors merges them
// with validation taking precedence on path collision. FormMessage and
// GlobalMessage are out-of-band slots not tied to any schema path.
type ParseFailure struct {
	CoercionErrors   ErrorMap
	ValidationErrors ErrorMap
	FormMessage      string
	GlobalMessage    string
}

// Errors returns the merged flat error map; validation wins on collision.
func (f *ParseFailure) Errors() ErrorMap {
	if f == nil {
		return ErrorMap{}
	}
	return f.CoercionErrors.merge(f.ValidationErrors)
}

// ParseForm converts a transport multimap into a typed value tree per the
// schema, or a ParseFailure when coercion or validation fails. It never
// panics across the public boundary: internal panics are recovered into a
// best-effort failure result.
func ParseForm(ctx context.Context, n Node, vals Values, opts ...ParseOpt) (out any, fail *ParseFailure) {
	opt := lastParseOpt(opts)
	defer func() {
		if r := recover(); r != nil {
			opt.Diag.Warnf("formdata: parse recovered from panic: %v", r)
			out = nil
			fail = &ParseFailure{
				CoercionErrors:   ErrorMap{},
				ValidationErrors: ErrorMap{},
				GlobalMessage:    fmt.Sprintf("%s: %v", i18n.T(CodeParseError, nil), r),
			}
		}
	}()

	fs := FlattenSchema(n)
	flat := FlatMap{}
	coerceErrs := ErrorMap{}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		list := vals[key]
		if entry, ok := fs.Lookup(key); ok {
			raw := firstValue(list)
			v, iss := Coerce(key, entry, raw)
			if iss != nil {
				// Record the failure but retain the raw value so validation
				// can still produce a more specific error.
				coerceErrs[key] = iss.Message
				flat[key] = raw
			} else {
				flat[key] = v
			}
			continue
		}
		// A bare key submitted against an array position: the element entry
		// lives one placeholder segment below. A scalar wraps into a
		// single-element list; multiple values land index-wise.
		if entry, ok := fs.Lookup(joinPath(key, "0")); ok {
			for i, raw := range list {
				p := joinPath(key, itoa(i))
				v, iss := Coerce(p, entry, raw)
				if iss != nil {
					coerceErrs[p] = iss.Message
					flat[p] = raw
				} else {
					flat[p] = v
				}
			}
			continue
		}
		// Unknown key: opaque passthrough keeps the parse forward-compatible.
		opt.Diag.Debugf("formdata: no schema entry for key %q", key)
		flat[key] = firstValue(list)
	}

	fillAbsentArrays(fs, flat)

	nested := Unflatten(flat)

	validate := opt.Validate
	if validate == nil {
		validate = func(ctx context.Context, v any) Issues { return ValidateTree(ctx, n, v) }
	}
	valErrs := ErrorMap{}
	for _, it := range validate(ctx, nested) {
		if _, dup := valErrs[it.Path]; !dup {
			valErrs[it.Path] = it.Message
		}
	}

	if len(coerceErrs) > 0 || len(valErrs) > 0 {
		return nil, &ParseFailure{CoercionErrors: coerceErrs, ValidationErrors: valErrs}
	}
	return nested, nil
}

// fillAbsentArrays assigns an empty list at every schema-fixed array prefix
// that received no submission entries, so absent multi-selects decode to []
// rather than disappearing. Optional arrays and arrays nested under dynamic
// positions stay absent.
func fillAbsentArrays(fs FlatSchema, flat FlatMap) {
	seen := map[string]bool{}
	for pattern, entry := range fs {
		segs := SplitPath(pattern)
		at := -1
		for i, s := range segs {
			if s == PlaceholderKey {
				break
			}
			if s == PlaceholderIndex {
				at = i
				break
			}
		}
		if at < 0 || entry.Optional {
			continue
		}
		prefix := JoinPath(segs[:at]...)
		if seen[prefix] {
			continue
		}
		seen[prefix] = true
		if _, ok := flat[prefix]; ok {
			continue
		}
		populated := false
		for k := range flat {
			if strings.HasPrefix(k, prefix+PathDelim) {
				populated = true
				break
			}
		}
		if !populated {
			flat[prefix] = []any{}
		}
	}
}

func firstValue(list []any) any {
	if len(list) == 0 {
		return nil
	}
	return list[0]
}
