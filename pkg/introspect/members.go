package introspect

import (
	"reflect"
	"unsafe"

	"github.com/arthur-debert/vardump/pkg/errors"
)

// Visibility is the access level shown next to a member.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// Member is one named member of an object-like value. Get reads the value
// lazily so that filtered members are never touched.
type Member struct {
	Name       string
	Visibility Visibility
	Get        func() reflect.Value
}

// Enumerator lists the members of an object-like value in declared order.
type Enumerator interface {
	Members(v reflect.Value) ([]Member, error)
}

// Inspectable values describe their own members instead of being walked
// field by field.
type Inspectable interface {
	InspectMembers() []Member
}

// StructEnumerator enumerates struct fields through reflection.
//
// Exported fields are public, unexported fields private. An unexported
// embedded field is protected: its own exported members are promoted to the
// outer type even though the field itself is hidden.
type StructEnumerator struct{}

var inspectableType = reflect.TypeOf((*Inspectable)(nil)).Elem()

// Members implements Enumerator. v must be a struct, a pointer to one or an
// Inspectable.
func (StructEnumerator) Members(v reflect.Value) ([]Member, error) {
	if v.IsValid() && v.Type().Implements(inspectableType) && v.CanInterface() {
		if v.Kind() != reflect.Pointer || !v.IsNil() {
			return v.Interface().(Inspectable).InspectMembers(), nil
		}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrIntrospection, "cannot enumerate members of %s", v.Kind()).
			WithDetail("type", v.Type().String())
	}

	v = Addressable(v)
	t := v.Type()
	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := i
		members = append(members, Member{
			Name:       field.Name,
			Visibility: visibilityOf(field),
			Get: func() reflect.Value {
				return Readable(v.Field(index))
			},
		})
	}
	return members, nil
}

func visibilityOf(field reflect.StructField) Visibility {
	switch {
	case field.IsExported():
		return Public
	case field.Anonymous:
		return Protected
	default:
		return Private
	}
}

// Addressable returns v itself when it is addressable, otherwise an
// addressable copy. The inspected value is never written to.
func Addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(Readable(v))
	return cp
}

// Readable makes a value obtained through unexported fields usable with
// Interface and as a Set source. Only the read-only flag is dropped: the
// result aliases the original memory and is never written to. Values that
// are neither exported nor addressable are returned as they are.
func Readable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
