// Package typename renders reflect types and runtime values into short,
// human-readable descriptions for violation reporting. The validation core
// depends only on this string-producing capability.
package typename

import (
	"fmt"
	"reflect"
)

// Render returns a short display name for a type: defined types render by
// bare name ("Celsius"), everything else by reflect's syntax ("[]int",
// "map[string]any").
func Render(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// Describe names the dynamic type of a value, with "nil" for untyped nil.
func Describe(v any) string {
	if v == nil {
		return "nil"
	}
	return Render(reflect.TypeOf(v))
}

// DescribeValue renders the value with its type, for "found" descriptions
// where the content matters (e.g. conversion failures).
func DescribeValue(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%s(%v)", Render(reflect.TypeOf(v)), v)
}
