package typecast

import (
	"unsafe"

	"github.com/oliverbestmann/typecast/internal/ident"
)

// Ref reinterprets a *T as a *U when T and U are identical. The returned
// pointer aliases the argument, no copy is made. When the types differ it
// returns nil and false and the argument is untouched.
//
// Ref never allocates and never panics.
func Ref[U, T any](value *T) (*U, bool) {
	if !ident.Eq[T, U]() {
		return nil, false
	}

	return (*U)(unsafe.Pointer(value)), true
}

// Mut is Ref for call sites that intend to write through the result.
// Both names return the same aliasing pointer; Mut exists so intent to
// mutate is visible at the call site. Writes through the returned *U are
// writes to *value, so the caller must not hand both pointers to
// concurrently writing goroutines.
func Mut[U, T any](value *T) (*U, bool) {
	return Ref[U](value)
}

// To reinterprets a value of type T as a value of type U when the two
// types are identical. When they differ it returns the zero U and false;
// the argument is passed by value, so the caller's original is unchanged
// on either outcome.
//
// To never allocates and never panics.
func To[U, T any](value T) (U, bool) {
	if !ident.Eq[T, U]() {
		var zero U
		return zero, false
	}

	return *(*U)(unsafe.Pointer(&value)), true
}
