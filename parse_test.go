package formdata_test

import (
	"context"
	"net/url"
	"testing"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/dsl"
	"github.com/google/go-cmp/cmp"
)

func signupSchema() formdata.Node {
	return dsl.Object().
		Field("username", dsl.String().Min(3)).
		Field("age", dsl.Int().Min(0)).
		Field("newsletter", dsl.Bool()).
		Field("tags", dsl.Array(dsl.String())).
		Build()
}

func TestParseFormSuccess(t *testing.T) {
	ctx := context.Background()
	vals := formdata.ValuesFromURL(url.Values{
		"username":   {"ada"},
		"age":        {"37"},
		"newsletter": {"on"},
		"tags":       {"math", "science"},
	})

	tree, fail := formdata.ParseForm(ctx, signupSchema(), vals)
	if fail != nil {
		t.Fatalf("ParseForm failed: %v", fail.Errors())
	}
	want := map[string]any{
		"username":   "ada",
		"age":        37,
		"newsletter": true,
		"tags":       []any{"math", "science"},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("ParseForm mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormCoercionFailure(t *testing.T) {
	ctx := context.Background()
	vals := formdata.ValuesFromURL(url.Values{
		"username":   {"ada"},
		"age":        {"not-a-number"},
		"newsletter": {"on"},
		"tags":       {"x"},
	})

	tree, fail := formdata.ParseForm(ctx, signupSchema(), vals)
	if fail == nil {
		t.Fatalf("want failure, got tree %v", tree)
	}
	if got := fail.CoercionErrors["age"]; got != "expected integer, received string" {
		t.Fatalf("coercion error = %q", got)
	}
}

func TestParseFormValidationWinsOnCollision(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("age", dsl.Int()).
		Build()
	vals := formdata.ValuesFromURL(url.Values{"age": {"zzz"}})

	_, fail := formdata.ParseForm(ctx, schema, vals)
	if fail == nil {
		t.Fatalf("want failure")
	}
	// Both layers report at the same path; the merged view keeps the
	// validation message, the split fields keep both.
	if fail.CoercionErrors["age"] == "" || fail.ValidationErrors["age"] == "" {
		t.Fatalf("expected both layers at age: %+v", fail)
	}
	if got := fail.Errors()["age"]; got != fail.ValidationErrors["age"] {
		t.Fatalf("merged error = %q, want validation message", got)
	}
}

func TestParseFormAbsentArrayDecodesEmpty(t *testing.T) {
	ctx := context.Background()
	vals := formdata.ValuesFromURL(url.Values{
		"username":   {"ada"},
		"age":        {"37"},
		"newsletter": {"true"},
	})

	tree, fail := formdata.ParseForm(ctx, signupSchema(), vals)
	if fail != nil {
		t.Fatalf("ParseForm failed: %v", fail.Errors())
	}
	m := tree.(map[string]any)
	arr, ok := m["tags"].([]any)
	if !ok || len(arr) != 0 {
		t.Fatalf("tags = %v, want []", m["tags"])
	}
}

func TestParseFormOptionalEmptyString(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("name", dsl.String()).
		Field("age", dsl.Optional(dsl.Int())).
		Build()
	vals := formdata.ValuesFromURL(url.Values{
		"name": {"ada"},
		"age":  {""},
	})

	tree, fail := formdata.ParseForm(ctx, schema, vals)
	if fail != nil {
		t.Fatalf("ParseForm failed: %v", fail.Errors())
	}
	m := tree.(map[string]any)
	if m["age"] != nil {
		t.Fatalf("age = %v, want nil", m["age"])
	}
}

func TestParseFormIndexedArrayKeys(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("items", dsl.Array(dsl.Object().
			Field("label", dsl.String()).
			Field("qty", dsl.Int()).
			Build())).
		Build()
	vals := formdata.ValuesFromURL(url.Values{
		"items.0.label": {"apples"},
		"items.0.qty":   {"3"},
		"items.1.label": {"pears"},
		"items.1.qty":   {"5"},
	})

	tree, fail := formdata.ParseForm(ctx, schema, vals)
	if fail != nil {
		t.Fatalf("ParseForm failed: %v", fail.Errors())
	}
	want := map[string]any{
		"items": []any{
			map[string]any{"label": "apples", "qty": 3},
			map[string]any{"label": "pears", "qty": 5},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("ParseForm mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormUnknownKeyPassthrough(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("name", dsl.String()).
		Build()
	vals := formdata.ValuesFromURL(url.Values{
		"name":   {"ada"},
		"_token": {"csrf123"},
	})

	tree, fail := formdata.ParseForm(ctx, schema, vals)
	if fail != nil {
		t.Fatalf("ParseForm failed: %v", fail.Errors())
	}
	m := tree.(map[string]any)
	if m["_token"] != "csrf123" {
		t.Fatalf("_token = %v", m["_token"])
	}
}

func TestParseFormCustomValidator(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("name", dsl.String()).
		Build()
	vals := formdata.ValuesFromURL(url.Values{"name": {"ada"}})

	_, fail := formdata.ParseForm(ctx, schema, vals, formdata.ParseOpt{
		Validate: func(ctx context.Context, v any) formdata.Issues {
			return formdata.Issues{{Path: "name", Code: formdata.CodeInvalidFormat, Message: "taken"}}
		},
	})
	if fail == nil {
		t.Fatalf("want failure from custom validator")
	}
	if got := fail.ValidationErrors["name"]; got != "taken" {
		t.Fatalf("validation error = %q", got)
	}
}

func TestParseFormRecoversFromPanic(t *testing.T) {
	ctx := context.Background()
	schema := dsl.Object().
		Field("name", dsl.String()).
		Build()
	vals := formdata.ValuesFromURL(url.Values{"name": {"ada"}})

	tree, fail := formdata.ParseForm(ctx, schema, vals, formdata.ParseOpt{
		Validate: func(ctx context.Context, v any) formdata.Issues {
			panic("validator exploded")
		},
	})
	if tree != nil || fail == nil {
		t.Fatalf("want recovered failure, got %v, %v", tree, fail)
	}
	if fail.GlobalMessage == "" {
		t.Fatalf("recovered failure should carry a global message")
	}
}

func TestValuesFromURL(t *testing.T) {
	vals := formdata.ValuesFromURL(url.Values{"a": {"1", "2"}})
	if len(vals["a"]) != 2 || vals["a"][0] != "1" {
		t.Fatalf("ValuesFromURL = %v", vals)
	}
}
