// Package ident derives process-wide identity tokens from Go types. Two
// tokens compare equal exactly when they were derived from the same type,
// which makes them suitable for gating unchecked reinterpretation between
// two generic type parameters.
package ident

import (
	"reflect"
	"unsafe"
)

// Token uniquely identifies a type within the current process. Tokens carry
// no state and are comparable; equality on tokens is identity on types.
type Token unsafe.Pointer

// Of returns the identity token for the type parameter T.
func Of[T any]() Token {
	return tokenOf(reflect.TypeFor[T]())
}

type eface struct {
	typ, val unsafe.Pointer
}

// tokenOf extracts the runtime type descriptor backing a reflect.Type. A
// reflect.Type is backed by an *rtype, which holds the runtime's abi.Type
// as its first value, so the data pointer of the interface identifies the
// type itself. The runtime canonicalizes type descriptors, giving exactly
// one descriptor per type.
func tokenOf(t reflect.Type) Token {
	return Token((*eface)(unsafe.Pointer(&t)).val)
}

// Eq reports whether T and U are exactly the same type.
//
// The token comparison alone is exact, but it is cross-checked against
// size, alignment and the printed type to rule out a runtime that hands
// out more than one descriptor per type. The extra checks are cheap and
// sit behind the size check, so a mismatch of differently sized types
// costs a single integer compare.
func Eq[T, U any]() bool {
	tt := reflect.TypeFor[T]()
	tu := reflect.TypeFor[U]()

	return tt.Size() == tu.Size() &&
		tt.Align() == tu.Align() &&
		tokenOf(tt) == tokenOf(tu) &&
		tt.String() == tu.String()
}
