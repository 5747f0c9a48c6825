// Package typecast lets generic code branch on the concrete type bound to
// a type parameter. Inside a function generic over T, it answers "is T
// exactly U?" and, on a match, reinterprets a value, pointer or slice of T
// as U with no conversion logic. On a mismatch the caller gets the usual
// comma-ok false and falls back to its generic path:
//
//	func fastString[T any](value T) string {
//		if s, ok := typecast.Ref[string](&value); ok {
//			return *s
//		}
//		return fmt.Sprint(value)
//	}
//
// The match is decided on whole-type identity, never on layout: two
// structurally identical types, or a named type and its underlying type,
// never match. Identity is what makes the reinterpretation sound, since
// identical types share size, alignment and layout by definition.
//
// This is not a replacement for type assertions on interface values. The
// target type is a compile-time type parameter, not something discovered
// at runtime, and no boxing takes place. Each call costs one pointer
// comparison and performs no allocation on either branch; the Go compiler
// shares generic code between types of the same shape, so the comparison
// is a real (if trivial) runtime check rather than one that is compiled
// away per instantiation.
package typecast
