package typeforge

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/typeforge/typeforge/coerce"
)

// Forge is a registry of named types with validation and conversion
// conveniences layered over Validate. Unlike the matcher, the forge is
// mutable state; registration and lookup are guarded by a lock so a forge
// can be shared after setup.
type Forge struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
	reg   *coerce.Registry
}

// NewForge returns an empty forge backed by the default converter registry.
func NewForge() *Forge {
	return &Forge{types: make(map[string]reflect.Type), reg: coerce.Default()}
}

// WithConverters replaces the forge's converter registry. Call during setup,
// before the forge is shared.
func (f *Forge) WithConverters(reg *coerce.Registry) *Forge {
	if reg != nil {
		f.reg = reg
	}
	return f
}

// RegisterType associates a name with a type. Duplicate registration is an
// error to keep the registry unambiguous.
func (f *Forge) RegisterType(name string, t reflect.Type) error {
	if name == "" {
		return fmt.Errorf("typeforge: type name must not be empty")
	}
	if t == nil {
		return fmt.Errorf("typeforge: nil type for %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.types[name]; dup {
		return fmt.Errorf("typeforge: type %q is already registered", name)
	}
	f.types[name] = t
	return nil
}

// TypeNamed looks up a registered type.
func (f *Forge) TypeNamed(name string) (reflect.Type, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.types[name]
	return t, ok
}

// NewInstance allocates a zero value of a registered type.
func (f *Forge) NewInstance(name string) (any, error) {
	t, ok := f.TypeNamed(name)
	if !ok {
		return nil, fmt.Errorf("typeforge: type %q is not registered", name)
	}
	return reflect.New(t).Elem().Interface(), nil
}

// IsInstance reports whether the value's dynamic type directly matches the
// registered type (identical, defined subtype, or interface satisfaction).
func (f *Forge) IsInstance(v any, name string) (bool, error) {
	t, ok := f.TypeNamed(name)
	if !ok {
		return false, fmt.Errorf("typeforge: type %q is not registered", name)
	}
	return directMatch(reflect.TypeOf(v), t), nil
}

// CheckType is the boolean convenience over Validate: no violation detail,
// no conversion.
func (f *Forge) CheckType(ctx context.Context, v any, schema Node) bool {
	res, err := Validate(ctx, v, schema)
	if err != nil {
		return false
	}
	return res.Valid
}

// AssertType validates and returns the violations as an error when the value
// does not conform.
func (f *Forge) AssertType(ctx context.Context, v any, schema Node) error {
	res, err := Validate(ctx, v, schema)
	if err != nil {
		return err
	}
	return res.Err()
}

// Convert attempts a best-effort conversion through the forge's registry.
func (f *Forge) Convert(v any, target reflect.Type) (any, bool) {
	return f.reg.Convert(v, target)
}

// SafeConvert converts or falls back to the given default.
func (f *Forge) SafeConvert(v any, target reflect.Type, fallback any) any {
	if out, ok := f.reg.Convert(v, target); ok {
		return out
	}
	return fallback
}
