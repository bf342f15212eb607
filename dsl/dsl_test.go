package dsl_test

import (
	"context"
	"testing"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/dsl"
)

func TestObjectFieldOrder(t *testing.T) {
	n := dsl.Object().
		Field("b", dsl.String()).
		Field("a", dsl.String()).
		Field("c", dsl.String()).
		Build()
	obj := n.(formdata.ObjectNode)

	var names []string
	for _, f := range obj.Fields() {
		names = append(names, f.Name)
	}
	if len(names) != 3 || names[0] != "b" || names[1] != "a" || names[2] != "c" {
		t.Fatalf("declaration order lost: %v", names)
	}
}

func TestObjectFieldReplacementKeepsPosition(t *testing.T) {
	n := dsl.Object().
		Field("a", dsl.String()).
		Field("b", dsl.String()).
		Field("a", dsl.Int()).
		Build()
	obj := n.(formdata.ObjectNode)

	if len(obj.Fields()) != 2 {
		t.Fatalf("fields = %d, want 2", len(obj.Fields()))
	}
	if obj.Fields()[0].Name != "a" {
		t.Fatalf("replaced field moved: %v", obj.Fields()[0].Name)
	}
	leaf := obj.Fields()[0].Schema.(formdata.LeafNode)
	if leaf.LeafType() != formdata.LeafInt {
		t.Fatalf("replacement schema not applied")
	}
}

func TestBuildSnapshotsFields(t *testing.T) {
	b := dsl.Object().Field("a", dsl.String())
	first := b.Build().(formdata.ObjectNode)
	b.Field("b", dsl.String())
	second := b.Build().(formdata.ObjectNode)

	if len(first.Fields()) != 1 {
		t.Fatalf("earlier build observed later fields")
	}
	if len(second.Fields()) != 2 {
		t.Fatalf("later build missing fields")
	}
}

func TestStringRules(t *testing.T) {
	ctx := context.Background()
	s := dsl.String().Min(2).Max(4).Pattern(`^[a-z]+$`)

	if iss := s.ValidateValue(ctx, "abc"); len(iss) != 0 {
		t.Fatalf("valid value rejected: %v", iss)
	}
	iss := s.ValidateValue(ctx, "a")
	if len(iss) != 1 || iss[0].Code != formdata.CodeTooShort {
		t.Fatalf("want too_short, got %v", iss)
	}
	iss = s.ValidateValue(ctx, "ABCDE")
	// Both the length and the pattern rule fire.
	if len(iss) != 2 {
		t.Fatalf("want two issues, got %v", iss)
	}
	iss = s.ValidateValue(ctx, 7)
	if len(iss) != 1 || iss[0].Code != formdata.CodeInvalidType {
		t.Fatalf("want invalid_type, got %v", iss)
	}
}

func TestNumberAcceptsIntegers(t *testing.T) {
	ctx := context.Background()
	n := dsl.Number().Min(0).Max(10)

	if iss := n.ValidateValue(ctx, 5); len(iss) != 0 {
		t.Fatalf("int against number leaf: %v", iss)
	}
	if iss := n.ValidateValue(ctx, 10.5); len(iss) != 1 || iss[0].Code != formdata.CodeTooBig {
		t.Fatalf("want too_big, got %v", iss)
	}
}

func TestIntRejectsFractions(t *testing.T) {
	ctx := context.Background()
	n := dsl.Int()

	if iss := n.ValidateValue(ctx, 3.0); len(iss) != 0 {
		t.Fatalf("whole float should pass: %v", iss)
	}
	if iss := n.ValidateValue(ctx, 3.5); len(iss) != 1 || iss[0].Code != formdata.CodeInvalidType {
		t.Fatalf("want invalid_type, got %v", iss)
	}
}

func TestEnum(t *testing.T) {
	ctx := context.Background()
	e := dsl.Enum("red", "green")

	if iss := e.ValidateValue(ctx, "red"); len(iss) != 0 {
		t.Fatalf("allowed value rejected: %v", iss)
	}
	if iss := e.ValidateValue(ctx, "blue"); len(iss) != 1 || iss[0].Code != formdata.CodeInvalidEnum {
		t.Fatalf("want invalid_enum, got %v", iss)
	}
	vals := e.EnumValues()
	vals[0] = "mutated"
	if e.EnumValues()[0] != "red" {
		t.Fatalf("EnumValues leaked internal slice")
	}
}

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	l := dsl.Literal("member")

	if l.LiteralValue() != "member" {
		t.Fatalf("LiteralValue = %v", l.LiteralValue())
	}
	if iss := l.ValidateValue(ctx, "guest"); len(iss) == 0 {
		t.Fatalf("wrong literal accepted")
	}
}

func TestLazyDefersConstruction(t *testing.T) {
	calls := 0
	n := dsl.Lazy(func() formdata.Node {
		calls++
		return dsl.String()
	})
	if calls != 0 {
		t.Fatalf("getter ran eagerly")
	}
	if eff := formdata.Effective(n); eff.Kind() != formdata.KindLeaf {
		t.Fatalf("Effective = %v", eff.Kind())
	}
	if calls != 1 {
		t.Fatalf("getter calls = %d", calls)
	}
}

func TestWrapperKinds(t *testing.T) {
	cases := map[formdata.WrapKind]formdata.Node{
		formdata.WrapOptional:  dsl.Optional(dsl.String()),
		formdata.WrapNullable:  dsl.Nullable(dsl.String()),
		formdata.WrapDefault:   dsl.Default(dsl.String(), "x"),
		formdata.WrapCatch:     dsl.Catch(dsl.String(), "y"),
		formdata.WrapPipe:      dsl.Pipe(dsl.String()),
		formdata.WrapTransform: dsl.Transform(dsl.String()),
	}
	for kind, n := range cases {
		w, ok := n.(formdata.WrapperNode)
		if !ok || w.WrapKind() != kind {
			t.Fatalf("wrap kind mismatch for %v: %T", kind, n)
		}
	}
	d := dsl.Default(dsl.String(), "x").(formdata.DefaultNode)
	if d.DefaultValue() != "x" {
		t.Fatalf("DefaultValue = %v", d.DefaultValue())
	}
	c := dsl.Catch(dsl.String(), "y").(formdata.CatchNode)
	if c.FallbackValue() != "y" {
		t.Fatalf("FallbackValue = %v", c.FallbackValue())
	}
}
