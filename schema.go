package typeforge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/typeforge/typeforge/internal/typename"
)

// Schema construction errors. Malformed schemas are programmer errors and
// surface from the constructors, never as violations.
var (
	ErrNilSchema     = errors.New("typeforge: nil schema")
	ErrEmptyUnion    = errors.New("typeforge: union needs at least one alternative")
	ErrUnionOfShapes = errors.New("typeforge: union alternatives must be scalar")
	ErrEmptyField    = errors.New("typeforge: object field name must not be empty")
	ErrDupField      = errors.New("typeforge: duplicate object field")
)

// Node is a schema node: a scalar type, an ordered union of scalars, an
// object of named sub-schemas, or a homogeneous list. The variant set is
// closed; nodes are immutable once constructed and the matcher switches
// over them exhaustively.
type Node interface {
	// String renders the expected-shape description used in violations.
	String() string

	node() // closed sum
}

type scalarNode struct {
	t reflect.Type
}

func (n scalarNode) node()          {}
func (n scalarNode) String() string { return typename.Render(n.t) }

type unionNode struct {
	alts []scalarNode
}

func (n unionNode) node() {}
func (n unionNode) String() string {
	parts := make([]string, len(n.alts))
	for i, a := range n.alts {
		parts[i] = a.String()
	}
	return strings.Join(parts, " or ")
}

// ObjField is one declared field of an object schema.
type ObjField struct {
	Name     string
	Schema   Node
	Optional bool
}

type objectNode struct {
	fields []ObjField
}

func (n objectNode) node()          {}
func (n objectNode) String() string { return "object" }

type listNode struct {
	elem Node
}

func (n listNode) node()          {}
func (n listNode) String() string { return "sequence of " + n.elem.String() }

// Of returns a scalar node for the compile-time type T.
func Of[T any]() Node {
	return scalarNode{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// Type returns a scalar node for a runtime type descriptor. A nil type is a
// programmer error and panics.
func Type(t reflect.Type) Node {
	if t == nil {
		panic(ErrNilSchema)
	}
	return scalarNode{t: t}
}

// Union builds an ordered union of scalar alternatives. Matching tries the
// alternatives in declared order and the first to validate wins.
func Union(alts ...Node) (Node, error) {
	if len(alts) == 0 {
		return nil, ErrEmptyUnion
	}
	scalars := make([]scalarNode, len(alts))
	for i, a := range alts {
		if a == nil {
			return nil, ErrNilSchema
		}
		s, ok := a.(scalarNode)
		if !ok {
			return nil, fmt.Errorf("%w: alternative %d is %s", ErrUnionOfShapes, i, a.String())
		}
		scalars[i] = s
	}
	return unionNode{alts: scalars}, nil
}

// MustUnion is like Union but panics on error.
func MustUnion(alts ...Node) Node {
	n, err := Union(alts...)
	if err != nil {
		panic(err)
	}
	return n
}

// F declares a required object field.
func F(name string, schema Node) ObjField {
	return ObjField{Name: name, Schema: schema}
}

// Opt declares an optional object field: absence is not a violation and the
// field is simply omitted from converted output.
func Opt(name string, schema Node) ObjField {
	return ObjField{Name: name, Schema: schema, Optional: true}
}

// Object builds an object schema from ordered field declarations. Field
// order is the declared order; it drives both validation order and the
// order of reported violations.
func Object(fields ...ObjField) (Node, error) {
	seen := make(map[string]struct{}, len(fields))
	own := make([]ObjField, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, ErrEmptyField
		}
		if f.Schema == nil {
			return nil, fmt.Errorf("%w: field %q", ErrNilSchema, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDupField, f.Name)
		}
		seen[f.Name] = struct{}{}
		own[i] = f
	}
	return objectNode{fields: own}, nil
}

// MustObject is like Object but panics on error.
func MustObject(fields ...ObjField) Node {
	n, err := Object(fields...)
	if err != nil {
		panic(err)
	}
	return n
}

// List builds a homogeneous sequence schema: every element must conform to
// elem.
func List(elem Node) (Node, error) {
	if elem == nil {
		return nil, ErrNilSchema
	}
	return listNode{elem: elem}, nil
}

// MustList is like List but panics on error.
func MustList(elem Node) Node {
	n, err := List(elem)
	if err != nil {
		panic(err)
	}
	return n
}

// depthWithin reports whether the schema's depth stays within limit. The
// walk itself is depth-bounded, so it terminates even on a cyclic schema
// smuggled in through aliasing.
func depthWithin(n Node, limit int) bool {
	if limit < 0 {
		return false
	}
	switch s := n.(type) {
	case objectNode:
		for _, f := range s.fields {
			if !depthWithin(f.Schema, limit-1) {
				return false
			}
		}
	case listNode:
		return depthWithin(s.elem, limit-1)
	}
	return true
}
