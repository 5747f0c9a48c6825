package typecast

import (
	"unsafe"

	"github.com/oliverbestmann/typecast/internal/ident"
)

// Slice reinterprets a []T as a []U when the element types are identical.
// The returned slice shares the backing array with the argument and keeps
// its length and capacity. When the element types differ it returns nil
// and false.
func Slice[U, T any](values []T) ([]U, bool) {
	if !ident.Eq[T, U]() {
		return nil, false
	}

	data := (*U)(unsafe.Pointer(unsafe.SliceData(values)))
	return unsafe.Slice(data, cap(values))[:len(values)], true
}
