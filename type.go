package typecast

import (
	"reflect"

	"github.com/oliverbestmann/typecast/internal/ident"
)

// Is reports whether the type parameters T and U denote exactly the same
// type. This is the bare identity check behind Ref, To and friends,
// exported for callers that want to gate something other than a value on
// it.
func Is[T, U any]() bool {
	return ident.Eq[T, U]()
}

func Type[T any]() TypeRef[T] {
	return TypeRef[T]{}
}

// TypeRef provides an easy workaround to the lack of proper support for
// type parameters in go reflection. Just embed an instance of the zero
// sized type TypeRef into your struct and parameterize it with the generic
// parameter you want to query later.
type TypeRef[S any] struct{}

func (TypeRef[S]) ReflectType() reflect.Type {
	return reflect.TypeFor[S]()
}

type HasType interface {
	ReflectType() reflect.Type
}
