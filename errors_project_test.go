package formdata_test

import (
	"testing"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/google/go-cmp/cmp"
)

func TestFlattenErrors(t *testing.T) {
	tree := map[string]any{
		"name": "Required",
		"address": map[string]any{
			"zip": "Invalid zip",
		},
		"items": []any{
			"First item broken",
			nil,
			"Third item broken",
		},
		"ok": "",
	}
	got := formdata.FlattenErrors(tree)
	want := formdata.ErrorMap{
		"name":        "Required",
		"address.zip": "Invalid zip",
		"items.0":     "First item broken",
		"items.2":     "Third item broken",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FlattenErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenErrorsStringMaps(t *testing.T) {
	got := formdata.FlattenErrors(map[string]string{
		"a": "bad",
		"b": "",
	})
	want := formdata.ErrorMap{"a": "bad"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FlattenErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflattenErrors(t *testing.T) {
	errs := formdata.ErrorMap{
		"name":        "Required",
		"items.0":     "First error",
		"items.2":     "Third error",
		"address.zip": "Invalid zip",
	}
	got := formdata.UnflattenErrors(errs)
	want := map[string]any{
		"name": "Required",
		// Gaps collapse like value unflattening.
		"items": []any{"First error", "Third error"},
		"address": map[string]any{
			"zip": "Invalid zip",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("UnflattenErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflattenErrorsScopedRoot(t *testing.T) {
	errs := formdata.ErrorMap{
		"user.name":  "Required",
		"user.email": "Invalid",
		"other":      "Ignored",
	}
	got := formdata.UnflattenErrors(errs, "user")
	want := map[string]any{
		"name":  "Required",
		"email": "Invalid",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("UnflattenErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorProjectionRoundTrip(t *testing.T) {
	flat := formdata.ErrorMap{
		"a.b":   "x",
		"c.0":   "y",
		"c.1.d": "z",
	}
	got := formdata.FlattenErrors(formdata.UnflattenErrors(flat))
	if diff := cmp.Diff(flat, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
