// Package relate classifies the relationship between two Go types and
// assigns a numeric conversion distance. It is consulted by the matcher to
// decide whether (and how hard) a best-effort conversion would be.
//
// The analyzer is pure: every well-formed pair of types classifies down to
// Incompatible rather than erroring. Passing a nil type is a programmer
// error and panics.
package relate

import (
	"reflect"
	"sync"

	"github.com/typeforge/typeforge/coerce"
)

// Compatibility classifies how a source type relates to a target type.
type Compatibility int

const (
	// Identical types; no conversion needed.
	Identical Compatibility = iota
	// Subtype: source is a defined type over the target (Celsius -> float64).
	Subtype
	// Supertype: target is a defined type over the source (float64 -> Celsius).
	Supertype
	// ImplicitConvertible: known numeric widening (int -> float64, bool -> int).
	ImplicitConvertible
	// Convertible: an explicit, possibly lossy conversion is known to work.
	Convertible
	// ContainerCompatible: both types are containers of the same kind class.
	ContainerCompatible
	// StructurallyCompatible: both structs exposing the same exported fields.
	StructurallyCompatible
	// ProtocolCompatible: source satisfies the target interface.
	ProtocolCompatible
	// Incompatible: no conversion path exists.
	Incompatible
)

func (c Compatibility) String() string {
	switch c {
	case Identical:
		return "identical"
	case Subtype:
		return "subtype"
	case Supertype:
		return "supertype"
	case ImplicitConvertible:
		return "implicit_convertible"
	case Convertible:
		return "convertible"
	case ContainerCompatible:
		return "container_compatible"
	case StructurallyCompatible:
		return "structurally_compatible"
	case ProtocolCompatible:
		return "protocol_compatible"
	default:
		return "incompatible"
	}
}

// Distance quantifies conversion difficulty; lower is easier.
type Distance int

// Infinite marks an impossible conversion.
const Infinite Distance = 1 << 30

// Finite reports whether a conversion path exists at this distance.
func (d Distance) Finite() bool { return d < Infinite }

type typePair struct{ s, t reflect.Type }

// Relationship classification is pure and cheap to recompute, so the memo is
// populated idempotently without coordination.
var memo sync.Map // typePair -> Compatibility

// Relationship determines how source relates to target, first match wins:
// identical, subtype, supertype, implicit widening, explicit conversion,
// container kinship, structural match, protocol satisfaction, incompatible.
func Relationship(source, target reflect.Type) Compatibility {
	if source == nil || target == nil {
		panic("relate: nil type")
	}
	key := typePair{source, target}
	if c, ok := memo.Load(key); ok {
		return c.(Compatibility)
	}
	c := classify(source, target)
	memo.Store(key, c)
	return c
}

func classify(source, target reflect.Type) Compatibility {
	if source == target {
		return Identical
	}
	if base := predeclaredBase(source); base == target {
		return Subtype
	}
	if base := predeclaredBase(target); base == source {
		return Supertype
	}
	if implicitWidening(source.Kind(), target.Kind()) {
		return ImplicitConvertible
	}
	if explicitConvertible(source, target) {
		return Convertible
	}
	if containerClass(source.Kind()) != containerNone && containerClass(source.Kind()) == containerClass(target.Kind()) {
		return ContainerCompatible
	}
	if structurallyEqual(source, target) {
		return StructurallyCompatible
	}
	if target.Kind() == reflect.Interface && source.Implements(target) {
		return ProtocolCompatible
	}
	return Incompatible
}

// DistanceBetween maps the relationship onto the distance ladder
// 0 < 1 < 2 < 3 < 5 < 7 < 10 < 15 < Infinite.
func DistanceBetween(source, target reflect.Type) Distance {
	switch Relationship(source, target) {
	case Identical:
		return 0
	case Subtype:
		return 1
	case Supertype:
		return 2
	case ImplicitConvertible:
		return 3
	case Convertible:
		return 5
	case ContainerCompatible:
		return 7
	case StructurallyCompatible:
		return 10
	case ProtocolCompatible:
		return 15
	default:
		return Infinite
	}
}

// IsConvertible reports whether any conversion path exists from source to
// target.
func IsConvertible(source, target reflect.Type) bool {
	return Relationship(source, target) != Incompatible
}

// predeclaredBase returns the predeclared type underlying a defined type
// (Celsius -> float64), or nil when the type already is predeclared or has
// no scalar base.
func predeclaredBase(t reflect.Type) reflect.Type {
	base, ok := kindTypes[t.Kind()]
	if !ok || t == base {
		return nil
	}
	return base
}

var kindTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  reflect.TypeOf(""),
}

func intRank(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32:
		return 32
	case reflect.Int, reflect.Uint, reflect.Int64, reflect.Uint64:
		return 64
	}
	return 0
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isInteger(k reflect.Kind) bool { return isSigned(k) || isUnsigned(k) }

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// implicitWidening recognizes the safe numeric widenings: bool into any
// integer, integers into wider integers of the same signedness, any integer
// into a float, and float32 into float64.
func implicitWidening(s, t reflect.Kind) bool {
	if s == reflect.Bool && isInteger(t) {
		return true
	}
	if isInteger(s) && isInteger(t) {
		if isSigned(s) != isSigned(t) {
			return false
		}
		return intRank(s) < intRank(t)
	}
	if isInteger(s) && isFloat(t) {
		return true
	}
	if s == reflect.Float32 && t == reflect.Float64 {
		return true
	}
	return false
}

// explicitConvertible probes whether a representative sample of the source
// type converts to the target through the default registry. String targets
// go through the registry only; numeric<->string rune conversions that
// reflect would permit are deliberately excluded.
func explicitConvertible(source, target reflect.Type) bool {
	sample, ok := sampleOf(source)
	if ok {
		if _, ok := coerce.Default().Convert(sample, target); ok {
			return true
		}
	}
	if source.Kind() == reflect.String || target.Kind() == reflect.String {
		return false
	}
	if source.Kind() == reflect.Interface || target.Kind() == reflect.Interface {
		// Interface satisfaction is classified at the protocol tier.
		return false
	}
	if containerClass(source.Kind()) != containerNone || containerClass(target.Kind()) != containerNone {
		return false
	}
	return source.ConvertibleTo(target)
}

// sampleOf yields a representative non-zero value for scalar kinds; "0" for
// strings so that string->numeric probing reflects real content rather than
// the empty string.
func sampleOf(t reflect.Type) (any, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return true, true
	case reflect.String:
		return "0", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(int64(1)).Convert(t).Interface(), true
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(float64(1)).Convert(t).Interface(), true
	}
	return nil, false
}

type containerKind int

const (
	containerNone containerKind = iota
	containerSequence
	containerMapping
)

func containerClass(k reflect.Kind) containerKind {
	switch k {
	case reflect.Slice, reflect.Array:
		return containerSequence
	case reflect.Map:
		return containerMapping
	default:
		return containerNone
	}
}

// structurallyEqual reports whether two struct types expose the same set of
// exported field names (duck-typed shape match, inheritance not required).
func structurallyEqual(a, b reflect.Type) bool {
	if a.Kind() != reflect.Struct || b.Kind() != reflect.Struct {
		return false
	}
	fa := exportedFieldSet(a)
	fb := exportedFieldSet(b)
	if len(fa) == 0 || len(fa) != len(fb) {
		return false
	}
	for name := range fa {
		if _, ok := fb[name]; !ok {
			return false
		}
	}
	return true
}

func exportedFieldSet(t reflect.Type) map[string]struct{} {
	out := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			out[f.Name] = struct{}{}
		}
	}
	return out
}
