package typeforge

import (
	"context"
	"errors"
	"reflect"
	"sort"

	"github.com/typeforge/typeforge/coerce"
	"github.com/typeforge/typeforge/i18n"
	"github.com/typeforge/typeforge/internal/typename"
	"github.com/typeforge/typeforge/relate"
)

// ErrSchemaTooDeep reports a schema whose nesting exceeds Options.MaxDepth.
// The depth guard runs before matching so a pathological schema fails fast
// instead of exhausting the call stack.
var ErrSchemaTooDeep = errors.New("typeforge: schema nesting exceeds depth limit")

// DefaultMaxDepth bounds schema nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// UnknownPolicy controls how object validation treats keys present in the
// value but absent from the schema.
type UnknownPolicy int

const (
	// UnknownStrict reports undeclared keys as schema_mismatch violations.
	UnknownStrict UnknownPolicy = iota
	// UnknownIgnore silently skips undeclared keys.
	UnknownIgnore
)

// Options configures a validation call. The zero value means: root path,
// structural match only (no conversion), every declared field required,
// undeclared keys are violations, default depth limit, default converter
// registry. When several Options are passed, the last one wins.
type Options struct {
	// Path is the starting path prefix for violation reporting.
	Path Path
	// Convert enables best-effort conversion via the relate distance metric.
	Convert bool
	// AllowMissing tolerates absent declared fields instead of reporting
	// missing_key; absent fields are simply omitted from converted output.
	AllowMissing bool
	// UnknownKeys selects the policy for undeclared keys in object values.
	UnknownKeys UnknownPolicy
	// MaxDepth bounds schema nesting; zero means DefaultMaxDepth.
	MaxDepth int
	// Converters overrides the conversion registry; nil means coerce.Default().
	Converters *coerce.Registry
}

// Validate recursively checks value against the schema and reports every
// violation found in a single pass. Data-shape problems never surface as the
// error return; they populate Result.Violations with precise paths. The
// error return is reserved for malformed input: a nil schema or one that
// trips the depth guard.
func Validate(ctx context.Context, value any, schema Node, opts ...Options) (Result, error) {
	if schema == nil {
		return Result{}, ErrNilSchema
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	if opt.Converters == nil {
		opt.Converters = coerce.Default()
	}
	if !depthWithin(schema, opt.MaxDepth) {
		return Result{}, ErrSchemaTooDeep
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	m := matcher{opt: opt}
	return m.match(value, schema, opt.Path), nil
}

// matcher is stateless apart from the per-call options; each call is a pure
// function of (value, schema, path), so schemas can be shared across
// concurrent validations.
type matcher struct {
	opt Options
}

func (m matcher) match(v any, n Node, path Path) Result {
	switch s := n.(type) {
	case scalarNode:
		return m.matchScalar(v, s, path)
	case unionNode:
		return m.matchUnion(v, s, path)
	case objectNode:
		return m.matchObject(v, s, path)
	case listNode:
		return m.matchList(v, s, path)
	}
	// Node is a closed sum; reaching here means a new variant was added
	// without extending the matcher.
	return failWith(m.violation(path, KindSchemaMismatch, "known schema node", typename.Describe(n)))
}

func (m matcher) violation(path Path, kind, expected, found string) Violation {
	return Violation{
		Path:     path.String(),
		Expected: expected,
		Found:    found,
		Kind:     kind,
		Message:  i18n.T(kind, nil),
	}
}

// directMatch applies the analyzer's capability query instead of ad hoc type
// checks: a value matches a scalar when its type is identical to the target,
// a defined subtype of it, or satisfies a target interface.
func directMatch(src, target reflect.Type) bool {
	if src == nil {
		return false
	}
	if target.Kind() == reflect.Interface && src.Implements(target) {
		return true
	}
	switch relate.Relationship(src, target) {
	case relate.Identical, relate.Subtype:
		return true
	}
	return false
}

func (m matcher) matchScalar(v any, s scalarNode, path Path) Result {
	src := reflect.TypeOf(v)
	if directMatch(src, s.t) {
		res := pass()
		if m.opt.Convert {
			res.Converted = v
		}
		return res
	}
	if !m.opt.Convert {
		return failWith(m.violation(path, KindWrongType, s.String(), typename.Describe(v)))
	}
	if src == nil || !relate.DistanceBetween(src, s.t).Finite() {
		return failWith(m.violation(path, KindWrongType, s.String(), typename.Describe(v)))
	}
	out, ok := m.opt.Converters.Convert(v, s.t)
	if !ok {
		return failWith(m.violation(path, KindConversionError, s.String(), typename.DescribeValue(v)))
	}
	return pass().WithConverted(out)
}

func (m matcher) matchUnion(v any, s unionNode, path Path) Result {
	// Declared order decides: the first alternative that validates wins and
	// its result (including any converted value) is returned as-is.
	for _, alt := range s.alts {
		if r := m.matchScalar(v, alt, path); r.Valid {
			return r
		}
	}
	return failWith(m.violation(path, KindWrongType, s.String(), typename.Describe(v)))
}

func (m matcher) matchObject(v any, s objectNode, path Path) Result {
	look, keys, ok := asMapping(v)
	if !ok {
		return failWith(m.violation(path, KindWrongType, s.String(), typename.Describe(v)))
	}

	res := pass()
	out := make(map[string]any, len(s.fields))
	// Every declared field is checked even after a failure so one call
	// surfaces all violations.
	for _, f := range s.fields {
		fv, present := look(f.Name)
		fpath := path.Child(Field(f.Name))
		if !present {
			if f.Optional || m.opt.AllowMissing {
				continue
			}
			res = res.Merge(failWith(m.violation(fpath, KindMissingKey, f.Schema.String(), "missing")))
			continue
		}
		sub := m.match(fv, f.Schema, fpath)
		res = res.Merge(sub)
		if sub.Valid && m.opt.Convert {
			out[f.Name] = sub.Converted
		}
	}

	if m.opt.UnknownKeys == UnknownStrict {
		declared := make(map[string]struct{}, len(s.fields))
		for _, f := range s.fields {
			declared[f.Name] = struct{}{}
		}
		var extra []string
		for _, k := range keys {
			if _, known := declared[k]; !known {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			res = res.Merge(failWith(m.violation(path.Child(Field(k)), KindSchemaMismatch, "declared field", "unexpected key")))
		}
	}

	if res.Valid && m.opt.Convert {
		res.Converted = out
	}
	return res
}

func (m matcher) matchList(v any, s listNode, path Path) Result {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return failWith(m.violation(path, KindWrongType, s.String(), typename.Describe(v)))
	}

	res := pass()
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		sub := m.match(elem, s.elem, path.Child(Index(i)))
		res = res.Merge(sub)
		if m.opt.Convert {
			if sub.Valid {
				out = append(out, sub.Converted)
			} else {
				out = append(out, elem)
			}
		}
	}
	if res.Valid && m.opt.Convert {
		res.Converted = out
	}
	return res
}

// asMapping adapts a value into field lookup plus the list of present keys.
// Supported shapes: map[string]any, any reflect map keyed by strings, and
// structs (exported fields by name).
func asMapping(v any) (func(string) (any, bool), []string, bool) {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		look := func(name string) (any, bool) {
			x, ok := m[name]
			return x, ok
		}
		return look, keys, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, nil, false
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		look := func(name string) (any, bool) {
			mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
			if !mv.IsValid() {
				return nil, false
			}
			return mv.Interface(), true
		}
		return look, keys, true
	case reflect.Struct:
		t := rv.Type()
		keys := make([]string, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				keys = append(keys, t.Field(i).Name)
			}
		}
		look := func(name string) (any, bool) {
			f, ok := t.FieldByName(name)
			if !ok || !f.IsExported() {
				return nil, false
			}
			return rv.FieldByIndex(f.Index).Interface(), true
		}
		return look, keys, true
	}
	return nil, nil, false
}
