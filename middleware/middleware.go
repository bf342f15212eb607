// Package middleware wires form parsing into net/http handler chains. The
// wrapped handler receives the parsed value tree through the request context;
// failed submissions short-circuit with a JSON error payload.
package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	formdata "github.com/Abyrd9/zod-form-data"
)

type ctxKeyParsed struct{}

// ContextWithParsed attaches a parsed value tree to the context.
func ContextWithParsed(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyParsed{}, v)
}

// ParsedFromContext retrieves the parsed value tree stored by ParseForm.
func ParsedFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyParsed{})
	return v, v != nil
}

// ErrorPayload shapes a ParseFailure for JSON responses.
func ErrorPayload(fail *formdata.ParseFailure) map[string]any {
	out := map[string]any{"errors": fail.Errors()}
	if fail.FormMessage != "" {
		out["formMessage"] = fail.FormMessage
	}
	if fail.GlobalMessage != "" {
		out["globalMessage"] = fail.GlobalMessage
	}
	return out
}

// maxMultipartMemory bounds the in-memory portion of multipart bodies; the
// rest spills to temp files per net/http semantics.
const maxMultipartMemory = 10 << 20

// ParseForm returns middleware that parses the request body against schema
// before invoking next. Urlencoded and multipart submissions are both
// handled; a parse failure responds 422 with the flat error map and next is
// never called.
func ParseForm(schema formdata.Node, opts ...formdata.ParseOpt) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			vals, err := requestValues(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			tree, fail := formdata.ParseForm(r.Context(), schema, vals, opts...)
			if fail != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				_ = json.NewEncoder(w).Encode(ErrorPayload(fail))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithParsed(r.Context(), tree)))
		})
	}
}

func requestValues(r *http.Request) (formdata.Values, error) {
	ct := r.Header.Get("Content-Type")
	if len(ct) >= 19 && ct[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}
		return formdata.ValuesFromMultipart(r.MultipartForm)
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return formdata.ValuesFromURL(r.PostForm), nil
}
