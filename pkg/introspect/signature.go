// Package introspect is the reflection side of vardump: it enumerates the
// members of object-like values and describes functions.
package introspect

import (
	"fmt"
	"reflect"
)

// Param describes one parameter of a callable.
type Param struct {
	Name string
	// TypeName is set when the parameter has a container or class type.
	TypeName   string
	ByRef      bool
	Variadic   bool
	HasDefault bool
	Default    interface{}
}

// Signature is a callable's parameter list plus its body text when known.
type Signature struct {
	Params  []Param
	Body    string
	HasBody bool
}

// Callable values describe themselves as functions, for example closures of
// an embedded script engine. Their Signature may declare default values,
// which Go funcs cannot.
type Callable interface {
	DumpSignature() Signature
}

// Describe builds the signature of fn. src may be nil; without source the
// parameters are named by position and the body is left out.
func Describe(fn reflect.Value, src SourceProvider) Signature {
	t := fn.Type()

	var names []string
	sig := Signature{}
	if src != nil {
		if fs, ok := src.Source(fn); ok {
			names = fs.ParamNames
			sig.Body = fs.Body
			sig.HasBody = true
		}
	}
	if len(names) != t.NumIn() {
		names = nil
	}

	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		p := Param{Name: fmt.Sprintf("arg%d", i)}
		if names != nil && names[i] != "_" {
			p.Name = names[i]
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Variadic = true
			in = in.Elem()
		}
		if in.Kind() == reflect.Pointer {
			p.ByRef = true
			in = in.Elem()
		}
		p.TypeName = typeLabel(in)
		sig.Params = append(sig.Params, p)
	}
	return sig
}

// typeLabel names container and class types; scalars and the empty
// interface get no label.
func typeLabel(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "array"
	case reflect.Struct:
		return t.String()
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return ""
		}
		return t.String()
	default:
		return ""
	}
}
