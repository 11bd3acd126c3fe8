package typeforge_test

import (
	"reflect"
	"testing"

	typeforge "github.com/typeforge/typeforge"
)

func TestResult_MergeConcatenatesAndANDs(t *testing.T) {
	r1 := typeforge.Result{
		Valid:      false,
		Violations: typeforge.Violations{{Path: "$.a", Kind: typeforge.KindWrongType}},
		Converted:  "keep-me",
	}
	r2 := typeforge.Result{
		Valid:      false,
		Violations: typeforge.Violations{{Path: "$.b", Kind: typeforge.KindMissingKey}},
		Converted:  "drop-me",
	}

	merged := r1.Merge(r2)
	if merged.Valid {
		t.Fatalf("merge of two invalid results must be invalid")
	}
	want := typeforge.Violations{
		{Path: "$.a", Kind: typeforge.KindWrongType},
		{Path: "$.b", Kind: typeforge.KindMissingKey},
	}
	if !reflect.DeepEqual(merged.Violations, want) {
		t.Fatalf("violations must concatenate in order, got %+v", merged.Violations)
	}
	if merged.Converted != "keep-me" {
		t.Fatalf("merge must keep the receiver's converted value, got %v", merged.Converted)
	}
}

func TestResult_MergeValidityTable(t *testing.T) {
	cases := []struct {
		a, b, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, c := range cases {
		got := (typeforge.Result{Valid: c.a}).Merge(typeforge.Result{Valid: c.b}).Valid
		if got != c.want {
			t.Errorf("merge(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestResult_MergeDoesNotMutateReceiver(t *testing.T) {
	r1 := typeforge.Result{Valid: true}
	r2 := typeforge.Result{Valid: false, Violations: typeforge.Violations{{Path: "$", Kind: typeforge.KindWrongType}}}
	_ = r1.Merge(r2)
	if !r1.Valid || len(r1.Violations) != 0 {
		t.Fatalf("merge must not mutate the receiver: %+v", r1)
	}
}

func TestResult_WithConverted(t *testing.T) {
	r := typeforge.Result{Valid: true, Converted: 1}
	r2 := r.WithConverted(2)
	if r.Converted != 1 {
		t.Fatalf("WithConverted must not mutate the receiver")
	}
	if r2.Converted != 2 || r2.Valid != r.Valid {
		t.Fatalf("WithConverted must carry the new value with unchanged validity: %+v", r2)
	}
}

func TestResult_OKAndErr(t *testing.T) {
	ok := typeforge.Result{Valid: true}
	if !ok.OK() || ok.Err() != nil {
		t.Fatalf("valid result must be OK with nil Err")
	}
	bad := typeforge.Result{Valid: false, Violations: typeforge.Violations{{Path: "$", Kind: typeforge.KindWrongType}}}
	if bad.OK() {
		t.Fatalf("invalid result must not be OK")
	}
	if vs, okk := typeforge.AsViolations(bad.Err()); !okk || len(vs) != 1 {
		t.Fatalf("Err must expose the violations as error")
	}
}
