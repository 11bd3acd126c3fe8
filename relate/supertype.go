package relate

import (
	"errors"
	"reflect"
)

var (
	// ErrNoTypes is returned when CommonSupertype is called with no types.
	ErrNoTypes = errors.New("relate: no types given")
	// ErrNoCommonSupertype is returned when the only shared ancestor is the
	// universal any type, i.e. no meaningful common type exists.
	ErrNoCommonSupertype = errors.New("relate: no common supertype")
)

// ancestorChain lists a type's ancestors from most to least specific: the
// type itself, then its predeclared base when the type is defined over one.
// The universal any type is never part of a chain.
func ancestorChain(t reflect.Type) []reflect.Type {
	chain := []reflect.Type{t}
	if base := predeclaredBase(t); base != nil {
		chain = append(chain, base)
	}
	return chain
}

// CommonSupertype finds the most specific type shared by every ancestor
// chain. When chains diverge at equal specificity, the order of the first
// type's chain breaks the tie. The universal any base never counts as a
// meaningful answer.
func CommonSupertype(types ...reflect.Type) (reflect.Type, error) {
	if len(types) == 0 {
		return nil, ErrNoTypes
	}
	for _, t := range types {
		if t == nil {
			panic("relate: nil type")
		}
	}
	common := ancestorChain(types[0])
	for _, t := range types[1:] {
		other := ancestorChain(t)
		kept := common[:0]
		for _, c := range common {
			for _, o := range other {
				if c == o {
					kept = append(kept, c)
					break
				}
			}
		}
		common = kept
		if len(common) == 0 {
			return nil, ErrNoCommonSupertype
		}
	}
	return common[0], nil
}
