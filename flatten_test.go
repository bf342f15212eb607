package formdata_test

import (
	"testing"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/dsl"
	"github.com/google/go-cmp/cmp"
)

func contactSchema() formdata.Node {
	return dsl.Object().
		Field("name", dsl.String()).
		Field("email", dsl.String()).
		Field("address", dsl.Object().
			Field("city", dsl.String()).
			Field("zip", dsl.String()).
			Build()).
		Build()
}

func TestFlattenObject(t *testing.T) {
	v := map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"address": map[string]any{
			"city": "London",
			"zip":  "N1",
		},
	}
	got := formdata.Flatten(contactSchema(), v)
	want := formdata.FlatMap{
		"name":         "Ada",
		"email":        "ada@example.com",
		"address.city": "London",
		"address.zip":  "N1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenPartialValueEmitsDeclaredPaths(t *testing.T) {
	got := formdata.Flatten(contactSchema(), map[string]any{"name": "Ada"})
	want := formdata.FlatMap{
		"name":         "Ada",
		"email":        nil,
		"address.city": nil,
		"address.zip":  nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenNilValue(t *testing.T) {
	got := formdata.Flatten(contactSchema(), nil)
	if len(got) != 4 {
		t.Fatalf("expected all declared paths, got %v", got)
	}
	for k, v := range got {
		if v != nil {
			t.Fatalf("path %q = %v, want nil", k, v)
		}
	}
}

func TestFlattenArray(t *testing.T) {
	schema := dsl.Object().
		Field("items", dsl.Array(dsl.Object().
			Field("label", dsl.String()).
			Build())).
		Build()
	v := map[string]any{"items": []any{
		map[string]any{"label": "a"},
		map[string]any{"label": "b"},
	}}
	got := formdata.Flatten(schema, v)
	want := formdata.FlatMap{
		"items.0.label": "a",
		"items.1.label": "b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenEmptyArrayPlaceholderRow(t *testing.T) {
	schema := dsl.Object().Field("tags", dsl.Array(dsl.String())).Build()

	for _, v := range []any{
		map[string]any{"tags": []any{}},
		map[string]any{},
		map[string]any{"tags": "oops"},
	} {
		got := formdata.Flatten(schema, v)
		want := formdata.FlatMap{"tags.0": nil}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Flatten(%v) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestFlattenTuplePositional(t *testing.T) {
	schema := dsl.Object().
		Field("point", dsl.Tuple(dsl.Number(), dsl.Number())).
		Build()
	got := formdata.Flatten(schema, map[string]any{"point": []any{1.5}})
	want := formdata.FlatMap{
		"point.0": 1.5,
		"point.1": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenRecordDataDriven(t *testing.T) {
	schema := dsl.Object().
		Field("labels", dsl.Record(dsl.String())).
		Build()
	got := formdata.Flatten(schema, map[string]any{"labels": map[string]any{
		"env":  "prod",
		"team": "core",
	}})
	want := formdata.FlatMap{
		"labels.env":  "prod",
		"labels.team": "core",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}

	// Absent record emits nothing.
	got = formdata.Flatten(schema, map[string]any{})
	if len(got) != 0 {
		t.Fatalf("expected empty map for absent record, got %v", got)
	}
}

func TestFlattenNullable(t *testing.T) {
	schema := dsl.Object().
		Field("bio", dsl.Nullable(dsl.Object().
			Field("text", dsl.String()).
			Build())).
		Build()
	got := formdata.Flatten(schema, map[string]any{"bio": nil})
	want := formdata.FlatMap{"bio": nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}

	got = formdata.Flatten(schema, map[string]any{"bio": map[string]any{"text": "hi"}})
	want = formdata.FlatMap{"bio.text": "hi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenDefaultSubstitution(t *testing.T) {
	schema := dsl.Object().
		Field("theme", dsl.Default(dsl.String(), "light")).
		Build()
	got := formdata.Flatten(schema, map[string]any{})
	want := formdata.FlatMap{"theme": "light"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}

	got = formdata.Flatten(schema, map[string]any{"theme": "dark"})
	if got["theme"] != "dark" {
		t.Fatalf("present value must win over default, got %v", got["theme"])
	}
}

func memberSchema() formdata.Node {
	return dsl.Object().
		Field("status", dsl.Discriminated("type",
			dsl.Object().
				Field("type", dsl.Literal("guest")).
				Build(),
			dsl.Object().
				Field("type", dsl.Literal("member")).
				Field("level", dsl.Int()).
				Build(),
		)).
		Build()
}

func TestFlattenDiscriminatedUnion(t *testing.T) {
	v := map[string]any{"status": map[string]any{"type": "member", "level": 3}}
	got := formdata.Flatten(memberSchema(), v)
	want := formdata.FlatMap{
		"status.type":  "member",
		"status.level": 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}

	// Only the active alternative's fields appear.
	v = map[string]any{"status": map[string]any{"type": "guest"}}
	got = formdata.Flatten(memberSchema(), v)
	want = formdata.FlatMap{"status.type": "guest"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenDiscriminatedUnionUnknownTag(t *testing.T) {
	v := map[string]any{"status": map[string]any{"type": "alien", "level": 9}}
	got := formdata.Flatten(memberSchema(), v)
	want := formdata.FlatMap{"status.type": "alien"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenUntaggedUnionOpaque(t *testing.T) {
	schema := dsl.Object().
		Field("id", dsl.Union(dsl.Int(), dsl.String())).
		Build()
	got := formdata.Flatten(schema, map[string]any{"id": "abc"})
	want := formdata.FlatMap{"id": "abc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenShapeMismatchWarns(t *testing.T) {
	var warned bool
	diag := formdata.FuncDiagnostics(nil, func(string, ...any) { warned = true })

	got := formdata.Flatten(contactSchema(), "not a map", formdata.FlattenOpt{Diag: diag})
	if !warned {
		t.Fatalf("expected a shape-mismatch warning")
	}
	// Declared paths still appear.
	if _, ok := got["name"]; !ok {
		t.Fatalf("declared path missing after mismatch: %v", got)
	}
}
