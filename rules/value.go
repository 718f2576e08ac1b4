package rules

import (
	"fmt"
	"reflect"
)

// Value is a field value together with its dynamic type. Erased validators
// check the type before calling the typed predicate.
type Value struct {
	v   any
	typ reflect.Type
}

// ValueOf wraps x. ValueOf(nil) yields a Value that matches no typed rule.
func ValueOf(x any) Value {
	return Value{v: x, typ: reflect.TypeOf(x)}
}

// Interface returns the wrapped value
func (v Value) Interface() any {
	return v.v
}

// Type returns the dynamic type, nil for the zero Value
func (v Value) Type() reflect.Type {
	return v.typ
}

// IsNil reports whether the Value wraps nothing
func (v Value) IsNil() bool {
	return v.typ == nil
}

func (v Value) String() string {
	if v.typ == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (%s)", v.v, v.typ)
}

// As extracts the value as T. The dynamic type must be exactly T, or
// implement T when T is an interface type.
func As[T any](v Value) (T, bool) {
	var zero T
	if v.typ == nil {
		return zero, false
	}
	want := typeOf[T]()
	if v.typ != want && !(want.Kind() == reflect.Interface && v.typ.Implements(want)) {
		return zero, false
	}
	out, ok := v.v.(T)
	return out, ok
}

// typeOf captures the static type of T even when T is an interface.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
