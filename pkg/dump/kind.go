package dump

import (
	"reflect"
	"time"

	"github.com/arthur-debert/vardump/pkg/introspect"
)

// Kind is the closed classification of a value, decided once before dispatch.
type Kind int

const (
	KindNull Kind = iota
	KindOpaque
	KindBool
	KindNumber
	KindText
	KindContainer
	KindObject
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindOpaque:
		return "opaque"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindContainer:
		return "container"
	case KindObject:
		return "object"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// maxDeref bounds pointer chains such as a pointer pointing at itself.
const maxDeref = 32

var (
	callableType    = reflect.TypeOf((*introspect.Callable)(nil)).Elem()
	inspectableType = reflect.TypeOf((*introspect.Inspectable)(nil)).Elem()
	listerType      = reflect.TypeOf((*Lister)(nil)).Elem()
	timeType        = reflect.TypeOf(time.Time{})
)

// Classify maps every value to exactly one Kind. The returned value is the
// one to render: interfaces are unwrapped and pointers to scalars or
// containers are followed. Pointers to structs are kept for their identity.
func Classify(v reflect.Value) (Kind, reflect.Value) {
	for i := 0; i < maxDeref; i++ {
		if !v.IsValid() {
			return KindNull, v
		}

		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return KindNull, v
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			if v.IsNil() {
				return KindNull, v
			}
		}

		t := v.Type()
		switch {
		case t.Implements(callableType):
			return KindCallable, v
		case t.Implements(listerType):
			return KindContainer, v
		case t.Implements(inspectableType):
			return KindObject, v
		}

		switch v.Kind() {
		case reflect.Pointer:
			if t.Elem().Kind() == reflect.Struct {
				return KindObject, v
			}
			v = v.Elem()
			continue
		case reflect.Bool:
			return KindBool, v
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
			return KindNumber, v
		case reflect.String:
			return KindText, v
		case reflect.Slice, reflect.Array, reflect.Map:
			return KindContainer, v
		case reflect.Struct:
			return KindObject, v
		case reflect.Func:
			return KindCallable, v
		default:
			return KindOpaque, v
		}
	}
	return KindOpaque, v
}

// structType returns the type shown in an object's header.
func structType(v reflect.Value) reflect.Type {
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// qualifiedName is the import-path qualified name of t, empty for unnamed types.
func qualifiedName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// asTime reports whether v is a time.Time or a pointer to one.
func asTime(v reflect.Value) (time.Time, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return time.Time{}, false
		}
		v = v.Elem()
	}
	if v.Type() != timeType || !v.CanInterface() {
		return time.Time{}, false
	}
	return v.Interface().(time.Time), true
}

// lengthOf returns the item count of countable values, those with a Len() int method.
func lengthOf(v reflect.Value) (int, bool) {
	if !v.CanInterface() {
		return 0, false
	}
	counter, ok := v.Interface().(interface{ Len() int })
	if !ok {
		return 0, false
	}
	return counter.Len(), true
}
