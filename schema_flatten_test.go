package formdata_test

import (
	"testing"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/dsl"
	"github.com/google/go-cmp/cmp"
)

func TestFlattenSchemaPlaceholders(t *testing.T) {
	schema := dsl.Object().
		Field("title", dsl.String()).
		Field("items", dsl.Array(dsl.Object().
			Field("label", dsl.String()).
			Field("qty", dsl.Int()).
			Build())).
		Field("labels", dsl.Record(dsl.String())).
		Field("point", dsl.Tuple(dsl.Number(), dsl.Number())).
		Build()

	fs := formdata.FlattenSchema(schema)
	want := []string{
		"items.#.label",
		"items.#.qty",
		"labels.*",
		"point.0",
		"point.1",
		"title",
	}
	if diff := cmp.Diff(want, fs.Paths()); diff != "" {
		t.Fatalf("Paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenSchemaOptionalFlag(t *testing.T) {
	schema := dsl.Object().
		Field("name", dsl.String()).
		Field("nick", dsl.Optional(dsl.String())).
		Field("bio", dsl.Nullable(dsl.String())).
		Field("deep", dsl.Optional(dsl.Object().
			Field("inner", dsl.String()).
			Build())).
		Build()

	fs := formdata.FlattenSchema(schema)
	cases := map[string]bool{
		"name":       false,
		"nick":       true,
		"bio":        true,
		"deep.inner": true,
	}
	for path, optional := range cases {
		entry, ok := fs.Lookup(path)
		if !ok {
			t.Fatalf("path %q not registered", path)
		}
		if entry.Optional != optional {
			t.Errorf("path %q optional = %v, want %v", path, entry.Optional, optional)
		}
	}
}

func TestFlattenSchemaLookupWildcard(t *testing.T) {
	schema := dsl.Object().
		Field("items", dsl.Array(dsl.Object().
			Field("price", dsl.Number()).
			Build())).
		Build()
	fs := formdata.FlattenSchema(schema)

	entry, ok := fs.Lookup("items.42.price")
	if !ok {
		t.Fatalf("wildcard lookup failed")
	}
	leaf, ok := formdata.Effective(entry.Schema).(formdata.LeafNode)
	if !ok || leaf.LeafType() != formdata.LeafNumber {
		t.Fatalf("resolved wrong schema: %T", entry.Schema)
	}
	if _, ok := fs.Lookup("items.x.price"); ok {
		t.Fatalf("non-numeric segment must not match #")
	}
}

func TestFlattenSchemaDiscriminatedUnion(t *testing.T) {
	fs := formdata.FlattenSchema(memberSchema())

	if _, ok := fs.Lookup("status.type"); !ok {
		t.Fatalf("discriminator path missing")
	}
	// Fields of every alternative land in the shared prefix.
	if _, ok := fs.Lookup("status.level"); !ok {
		t.Fatalf("alternative field missing")
	}
}

func TestFlattenSchemaUntaggedUnionSingleEntry(t *testing.T) {
	schema := dsl.Object().
		Field("id", dsl.Union(dsl.Int(), dsl.String())).
		Build()
	fs := formdata.FlattenSchema(schema)

	entry, ok := fs.Lookup("id")
	if !ok {
		t.Fatalf("union path missing")
	}
	if _, ok := formdata.Effective(entry.Schema).(formdata.UnionNode); !ok {
		t.Fatalf("union entry should keep the union node, got %T", entry.Schema)
	}
}

func TestFlattenSchemaLazyBounded(t *testing.T) {
	// Recursive comment tree; with no value to bound recursion the flattener
	// must stop on its own.
	var comment formdata.Node
	comment = dsl.Object().
		Field("text", dsl.String()).
		Field("replies", dsl.Array(dsl.Lazy(func() formdata.Node { return comment }))).
		Build()

	fs := formdata.FlattenSchema(comment)
	if _, ok := fs.Lookup("text"); !ok {
		t.Fatalf("top-level path missing")
	}
	if _, ok := fs.Lookup("replies.#.text"); !ok {
		t.Fatalf("first recursion level missing")
	}
	// Bounded: registration terminates with a finite path set.
	if n := len(fs.Paths()); n == 0 || n > 64 {
		t.Fatalf("unexpected path count %d", n)
	}
}
