package coerce_test

import (
	"reflect"
	"testing"

	"github.com/typeforge/typeforge/coerce"
)

type port int

func TestRegistry_ConvertScalars(t *testing.T) {
	r := coerce.NewRegistry()

	out, ok := r.Convert("42", reflect.TypeOf(0))
	if !ok || out != 42 {
		t.Fatalf("string to int: %v, %v", out, ok)
	}
	out, ok = r.Convert(1, reflect.TypeOf(false))
	if !ok || out != true {
		t.Fatalf("int to bool: %v, %v", out, ok)
	}
	out, ok = r.Convert(7, reflect.TypeOf(""))
	if !ok || out != "7" {
		t.Fatalf("int to string: %v, %v", out, ok)
	}
	if _, ok := r.Convert("abc", reflect.TypeOf(0)); ok {
		t.Fatalf("unparseable string must not convert to int")
	}
	if _, ok := r.Convert(1, nil); ok {
		t.Fatalf("nil target must not convert")
	}
}

func TestRegistry_DefinedTypeTarget(t *testing.T) {
	r := coerce.NewRegistry()
	out, ok := r.Convert("8080", reflect.TypeOf(port(0)))
	if !ok {
		t.Fatalf("expected conversion to defined int type")
	}
	if p, isPort := out.(port); !isPort || p != 8080 {
		t.Fatalf("converted = %v (%T), want port(8080)", out, out)
	}
}

func TestRegistry_RejectsLossyRefit(t *testing.T) {
	r := coerce.NewRegistry()
	if _, ok := r.Convert(300, reflect.TypeOf(int8(0))); ok {
		t.Fatalf("overflowing an int8 target must not convert")
	}
}

func TestRegistry_ExactTypeOverride(t *testing.T) {
	r := coerce.NewRegistry()
	target := reflect.TypeOf(port(0))
	r.Register(target, func(v any) (any, bool) { return port(1), true })
	out, ok := r.Convert("anything", target)
	if !ok || out != port(1) {
		t.Fatalf("exact-type converter must win: %v, %v", out, ok)
	}
}

func TestRegistry_UnknownTargetKind(t *testing.T) {
	r := coerce.NewRegistry()
	if _, ok := r.Convert("x", reflect.TypeOf([]int{})); ok {
		t.Fatalf("no converter is wired for slice targets")
	}
}

func TestDefault_Shared(t *testing.T) {
	if coerce.Default() != coerce.Default() {
		t.Fatalf("Default must return the same registry")
	}
}
