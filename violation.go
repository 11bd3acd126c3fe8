package typeforge

import (
	"errors"
	"fmt"
	"strings"
)

// Violation kinds (exported consts for IDE completion and type safety by convention)
const (
	KindWrongType       = "wrong_type"
	KindMissingKey      = "missing_key"
	KindInvalidValue    = "invalid_value"
	KindSchemaMismatch  = "schema_mismatch"
	KindConversionError = "conversion_error"
)

// Violation records a single nonconformance between a value and a schema.
// It is created by the matcher during a validation call and never mutated
// afterwards. It carries only textual descriptions, never the validated
// value itself.
type Violation struct {
	Path     string // Dotted/bracketed path from the root (for example: $.items[2].price).
	Expected string // Human-readable description of the expected shape.
	Found    string // Human-readable description of the actual value/type.
	Kind     string // One of the kinds listed above.
	Message  string
	// Params carries structured parameters (e.g., {"key":"age"}) for i18n
	// and observability.
	Params map[string]any
}

// Violations is a collection of validation violations that implements error.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(vs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		v := vs[i]
		// e.g. wrong_type at $.age
		fmt.Fprintf(b, "%s at %s", v.Kind, v.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	dst = append(dst, more...)
	return dst
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
