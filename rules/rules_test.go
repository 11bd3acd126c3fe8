package rules_test

import (
	"testing"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/rules"
)

func TestAtoms(t *testing.T) {
	if !rules.Positive[int]()(1) || rules.Positive[int]()(0) || rules.Positive[int]()(-1) {
		t.Fatalf("Positive must accept strictly positive values only")
	}
	r := rules.InRange(1, 10)
	if !r(1) || !r(10) || r(0) || r(11) {
		t.Fatalf("InRange bounds must be inclusive")
	}
	if !rules.NotEmpty()("x") || rules.NotEmpty()("") {
		t.Fatalf("NotEmpty")
	}
	l := rules.Length(2, 4)
	if l("a") || !l("ab") || !l("abcd") || l("abcde") {
		t.Fatalf("Length bounds must be inclusive")
	}
	unbounded := rules.Length(1, -1)
	if !unbounded("very long string indeed") {
		t.Fatalf("negative max means no upper bound")
	}
	it := rules.Items[int](1, 2)
	if it(nil) || !it([]int{1}) || !it([]int{1, 2}) || it([]int{1, 2, 3}) {
		t.Fatalf("Items bounds must be inclusive")
	}
}

func TestAll_ShortCircuits(t *testing.T) {
	called := false
	probe := func(int) bool { called = true; return true }
	combined := rules.All[int](
		func(int) bool { return false },
		rules.Rule[int](probe),
	)
	if combined(5) {
		t.Fatalf("All must fail when any rule fails")
	}
	if called {
		t.Fatalf("All must short-circuit on the first failure")
	}
	if !rules.All[int]()(5) {
		t.Fatalf("All of nothing passes")
	}
}

func TestEvaluate_ReportsEveryFailure(t *testing.T) {
	path := typeforge.Path{typeforge.Field("age")}
	res := rules.Evaluate(-5, path,
		rules.Positive[int](),
		rules.InRange(0, 120),
		func(v int) bool { return true },
	)
	if res.Valid {
		t.Fatalf("expected failure")
	}
	if len(res.Violations) != 2 {
		t.Fatalf("every failing rule must report, got %v", res.Violations)
	}
	for i, v := range res.Violations {
		if v.Kind != typeforge.KindInvalidValue {
			t.Errorf("violation %d kind = %q, want invalid_value", i, v.Kind)
		}
		if v.Path != "$.age" {
			t.Errorf("violation %d path = %q, want $.age", i, v.Path)
		}
	}
	if res.Violations[0].Params["rule"] != 0 || res.Violations[1].Params["rule"] != 1 {
		t.Fatalf("violations must carry their rule index: %v", res.Violations)
	}
}

func TestEvaluate_ValidCarriesValue(t *testing.T) {
	res := rules.Evaluate(7, typeforge.Path{}, rules.Positive[int]())
	if !res.Valid || res.Converted != 7 {
		t.Fatalf("valid evaluation must carry the value: %+v", res)
	}
}
