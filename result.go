package typeforge

// Result is the aggregate outcome of a validation call: a validity flag, the
// ordered list of violations found, and an optional converted value populated
// only when conversion was requested and succeeded for the node.
//
// Results are values. Merge and WithConverted return new Results instead of
// mutating in place, so a Result can be shared freely once returned.
type Result struct {
	Valid      bool
	Violations Violations
	Converted  any
}

// OK reports whether validation passed. Equivalent to Valid; provided so call
// sites read naturally in conditionals.
func (r Result) OK() bool { return r.Valid }

// Merge combines another result into this one: validity is ANDed and the
// other result's violations are appended in order. The receiver's Converted
// is kept, which lets auxiliary checks accumulate violations without
// discarding the primary conversion.
func (r Result) Merge(other Result) Result {
	out := Result{
		Valid:     r.Valid && other.Valid,
		Converted: r.Converted,
	}
	out.Violations = make(Violations, 0, len(r.Violations)+len(other.Violations))
	out.Violations = append(out.Violations, r.Violations...)
	out.Violations = append(out.Violations, other.Violations...)
	if len(out.Violations) == 0 {
		out.Violations = nil
	}
	return out
}

// WithConverted returns a copy of the result carrying a different converted
// value; validity and violations are unchanged.
func (r Result) WithConverted(v any) Result {
	vs := make(Violations, len(r.Violations))
	copy(vs, r.Violations)
	if len(vs) == 0 {
		vs = nil
	}
	return Result{Valid: r.Valid, Violations: vs, Converted: v}
}

// Err returns the violations as an error, or nil when the result is valid.
func (r Result) Err() error {
	if r.Valid || len(r.Violations) == 0 {
		return nil
	}
	return r.Violations
}

func pass() Result { return Result{Valid: true} }

func failWith(vs ...Violation) Result {
	return Result{Valid: false, Violations: Violations(vs)}
}
