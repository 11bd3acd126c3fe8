// Package rules is the boolean composition layer over the matcher: small
// typed predicates combined with All for fast short-circuit checks, plus
// Evaluate for the complete, violation-reporting counterpart. Rules have no
// schema awareness; they run on already-typed scalar values after a
// successful type match.
package rules

import (
	"cmp"
	"fmt"

	typeforge "github.com/typeforge/typeforge"
)

// Rule is an atomic boolean predicate over a typed value.
type Rule[T any] func(T) bool

// Real covers the built-in numeric types usable with Positive.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive requires a value strictly greater than zero.
func Positive[T Real]() Rule[T] {
	return func(v T) bool { return v > 0 }
}

// InRange requires min <= v <= max.
func InRange[T cmp.Ordered](min, max T) Rule[T] {
	return func(v T) bool { return v >= min && v <= max }
}

// NotEmpty requires a non-empty string.
func NotEmpty() Rule[string] {
	return func(v string) bool { return v != "" }
}

// Length requires the string length to fall within [min, max]. A negative
// max means no upper bound.
func Length(min, max int) Rule[string] {
	return func(v string) bool {
		n := len(v)
		if n < min {
			return false
		}
		if max >= 0 && n > max {
			return false
		}
		return true
	}
}

// Items requires the slice length to fall within [min, max]. A negative max
// means no upper bound.
func Items[E any](min, max int) Rule[[]E] {
	return func(v []E) bool {
		n := len(v)
		if n < min {
			return false
		}
		if max >= 0 && n > max {
			return false
		}
		return true
	}
}

// All ANDs the rules, short-circuiting on the first failure. This is the
// fast boolean counterpart to Evaluate's complete pass.
func All[T any](rs ...Rule[T]) Rule[T] {
	return func(v T) bool {
		for _, r := range rs {
			if !r(v) {
				return false
			}
		}
		return true
	}
}

// Evaluate runs every rule (no short-circuit) and reports one invalid_value
// violation per failed rule, indexed via Params so a single call surfaces
// every failure.
func Evaluate[T any](v T, path typeforge.Path, rs ...Rule[T]) typeforge.Result {
	var vs typeforge.Violations
	for i, r := range rs {
		if r(v) {
			continue
		}
		vs = typeforge.AppendViolations(vs, typeforge.Violation{
			Path:     path.String(),
			Expected: fmt.Sprintf("value satisfying rule %d", i),
			Found:    fmt.Sprintf("%v", v),
			Kind:     typeforge.KindInvalidValue,
			Params:   map[string]any{"rule": i},
		})
	}
	if len(vs) > 0 {
		return typeforge.Result{Valid: false, Violations: vs}
	}
	res := typeforge.Result{Valid: true}
	return res.WithConverted(v)
}
