package typeforge_test

import (
	"context"
	"reflect"
	"testing"

	typeforge "github.com/typeforge/typeforge"
)

func TestForge_RegisterAndLookup(t *testing.T) {
	f := typeforge.NewForge()
	if err := f.RegisterType("Person", reflect.TypeOf(struct{ Name string }{})); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := f.TypeNamed("Person"); !ok {
		t.Fatalf("registered type must be retrievable")
	}
	if err := f.RegisterType("Person", reflect.TypeOf(0)); err == nil {
		t.Fatalf("duplicate registration must fail")
	}
	if err := f.RegisterType("", reflect.TypeOf(0)); err == nil {
		t.Fatalf("empty name must fail")
	}
	if err := f.RegisterType("Nil", nil); err == nil {
		t.Fatalf("nil type must fail")
	}
}

func TestForge_NewInstance(t *testing.T) {
	f := typeforge.NewForge()
	if err := f.RegisterType("Count", reflect.TypeOf(int(0))); err != nil {
		t.Fatalf("register: %v", err)
	}
	v, err := f.NewInstance("Count")
	if err != nil {
		t.Fatalf("new instance: %v", err)
	}
	if n, ok := v.(int); !ok || n != 0 {
		t.Fatalf("expected zero int, got %v (%T)", v, v)
	}
	if _, err := f.NewInstance("Missing"); err == nil {
		t.Fatalf("unregistered type must fail")
	}
}

func TestForge_IsInstance(t *testing.T) {
	f := typeforge.NewForge()
	if err := f.RegisterType("ID", reflect.TypeOf("")); err != nil {
		t.Fatalf("register: %v", err)
	}
	ok, err := f.IsInstance("x", "ID")
	if err != nil || !ok {
		t.Fatalf("string must be an instance of the registered string type: ok=%v err=%v", ok, err)
	}
	ok, err = f.IsInstance(userID("u"), "ID")
	if err != nil || !ok {
		t.Fatalf("defined subtype must count as an instance: ok=%v err=%v", ok, err)
	}
	ok, err = f.IsInstance(1, "ID")
	if err != nil || ok {
		t.Fatalf("int is not an instance of string: ok=%v err=%v", ok, err)
	}
	if _, err := f.IsInstance(1, "Missing"); err == nil {
		t.Fatalf("unregistered type must fail")
	}
}

func TestForge_CheckAndAssert(t *testing.T) {
	ctx := context.Background()
	f := typeforge.NewForge()
	schema := typeforge.MustObject(typeforge.F("a", typeforge.Of[int]()))

	if !f.CheckType(ctx, map[string]any{"a": 1}, schema) {
		t.Fatalf("conforming value must check")
	}
	if f.CheckType(ctx, map[string]any{}, schema) {
		t.Fatalf("missing key must fail the check")
	}

	if err := f.AssertType(ctx, map[string]any{"a": 1}, schema); err != nil {
		t.Fatalf("assert on conforming value: %v", err)
	}
	err := f.AssertType(ctx, map[string]any{}, schema)
	if err == nil {
		t.Fatalf("assert on nonconforming value must error")
	}
	if vs, ok := typeforge.AsViolations(err); !ok || vs[0].Kind != typeforge.KindMissingKey {
		t.Fatalf("assert error must carry the violations, got %v", err)
	}
}

func TestForge_Convert(t *testing.T) {
	f := typeforge.NewForge()
	out, ok := f.Convert("42", reflect.TypeOf(0))
	if !ok || out != 42 {
		t.Fatalf("convert = %v, %v", out, ok)
	}
	if got := f.SafeConvert("abc", reflect.TypeOf(0), -1); got != -1 {
		t.Fatalf("SafeConvert must fall back, got %v", got)
	}
	if got := f.SafeConvert("7", reflect.TypeOf(0), -1); got != 7 {
		t.Fatalf("SafeConvert = %v, want 7", got)
	}
}
