// Package visited records which object identities a single dump has already
// expanded. A Set is owned by one dump call and must not be shared.
package visited

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Key identifies an object by address and type. Two distinct values with
// equal contents never share a Key.
type Key struct {
	Type reflect.Type
	Ptr  uintptr
}

// KeyOf returns the identity of v. Pointers and funcs carry an
// identity; ok is false for everything else, including nil values.
func KeyOf(v reflect.Value) (Key, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return Key{}, false
		}
		return Key{Type: v.Type(), Ptr: v.Pointer()}, true
	case reflect.Func:
		if v.IsNil() {
			return Key{}, false
		}
		return Key{Type: v.Type(), Ptr: closureAddr(v)}, true
	default:
		return Key{}, false
	}
}

// closureAddr returns the address of the closure object behind a func value.
// Value.Pointer only yields the code pointer, which every closure created
// from the same literal shares.
func closureAddr(v reflect.Value) uintptr {
	holder := reflect.New(v.Type())
	holder.Elem().Set(v)
	return uintptr(*(*unsafe.Pointer)(holder.UnsafePointer()))
}

// Set is the per-dump record of expanded identities.
type Set struct {
	ids  map[Key]string
	seen map[Key]struct{}
	next int
}

// New returns an empty set.
func New() *Set {
	return &Set{
		ids:  make(map[Key]string),
		seen: make(map[Key]struct{}),
	}
}

// ID returns the anchor id of k, assigning a new one on first use.
// Assigning an id does not mark k as visited.
func (s *Set) ID(k Key) string {
	if id, ok := s.ids[k]; ok {
		return id
	}
	id := s.Fresh()
	s.ids[k] = id
	return id
}

// Fresh returns an anchor id not bound to any identity, for values such as
// plain structs that have none.
func (s *Set) Fresh() string {
	s.next++
	return fmt.Sprintf("vd-%d", s.next)
}

// Record marks k as expanded.
func (s *Set) Record(k Key) {
	s.seen[k] = struct{}{}
}

// Contains reports whether k was already expanded.
func (s *Set) Contains(k Key) bool {
	_, ok := s.seen[k]
	return ok
}

// Len returns the number of expanded identities.
func (s *Set) Len() int {
	return len(s.seen)
}
