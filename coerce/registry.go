package coerce

import (
	"reflect"
	"sync"
)

// Func converts an arbitrary value to a target representation. The ok result
// is false when the value is not convertible.
type Func func(v any) (any, bool)

// Registry maps target kinds and types to converter functions. Build it once
// at startup and treat it as read-only afterwards: Convert takes no locks,
// so registrations must not race with use.
type Registry struct {
	byKind map[reflect.Kind]Func
	byType map[reflect.Type]Func
}

// NewRegistry returns a registry pre-wired with the scalar primitives for
// bool, the integer kinds, the float kinds, and string.
func NewRegistry() *Registry {
	r := &Registry{
		byKind: make(map[reflect.Kind]Func),
		byType: make(map[reflect.Type]Func),
	}
	boolFn := func(v any) (any, bool) { return firstOK(ToBool(v)) }
	intFn := func(v any) (any, bool) { return firstOK(ToInt(v)) }
	floatFn := func(v any) (any, bool) { return firstOK(ToFloat(v)) }
	strFn := func(v any) (any, bool) { return firstOK(ToString(v)) }

	r.byKind[reflect.Bool] = boolFn
	for _, k := range []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64} {
		r.byKind[k] = intFn
	}
	r.byKind[reflect.Float32] = floatFn
	r.byKind[reflect.Float64] = floatFn
	r.byKind[reflect.String] = strFn
	return r
}

func firstOK[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

// Register installs a converter for an exact target type, taking precedence
// over the kind-level primitives. Call during setup only.
func (r *Registry) Register(target reflect.Type, fn Func) {
	r.byType[target] = fn
}

// Convert attempts to convert v to the target type. Exact-type converters
// win; otherwise the kind-level primitive runs and its result is re-fitted
// to the target type (so `type Port int` converts through the int primitive
// and comes back as a Port).
func (r *Registry) Convert(v any, target reflect.Type) (any, bool) {
	if target == nil {
		return nil, false
	}
	if fn, ok := r.byType[target]; ok {
		return fn(v)
	}
	fn, ok := r.byKind[target.Kind()]
	if !ok {
		return nil, false
	}
	raw, ok := fn(v)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Type() == target {
		return raw, true
	}
	if !rv.Type().ConvertibleTo(target) {
		return nil, false
	}
	out := rv.Convert(target)
	// Reject lossy numeric refits (e.g. int64 overflowing an int8 target).
	if back := out.Convert(rv.Type()); back.Interface() != rv.Interface() {
		return nil, false
	}
	return out.Interface(), true
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared default registry. It is built on first use and
// never mutated afterwards, so concurrent readers need no locking.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = NewRegistry() })
	return defaultReg
}
