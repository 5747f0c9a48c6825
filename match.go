package typecast

// Matcher dispatches a value of type T to the first case whose target type
// is identical to T. It is the expression form of a chain of To calls:
//
//	func toString[T any](value T) string {
//		m := typecast.Match[string](value)
//		m = typecast.When(m, func(s string) string { return s })
//		m = typecast.When(m, func(b []byte) string { return string(b) })
//		return m.Otherwise(func(v T) string { return fmt.Sprint(v) })
//	}
//
// A Matcher is a plain value; chaining does not allocate.
type Matcher[T, R any] struct {
	value   T
	result  R
	matched bool
}

// Match starts a type match over value, producing results of type R. R
// must be given explicitly, T is inferred from the argument.
func Match[R, T any](value T) Matcher[T, R] {
	return Matcher[T, R]{value: value}
}

// When applies fn when the matched value has exactly the type U and no
// earlier case has fired. Cases fire at most once, in the order they are
// applied.
//
// When is a free function rather than a method because Go methods can not
// introduce the extra type parameter U.
func When[U, T, R any](m Matcher[T, R], fn func(U) R) Matcher[T, R] {
	if !m.matched {
		if u, ok := To[U](m.value); ok {
			m.result = fn(u)
			m.matched = true
		}
	}

	return m
}

// Otherwise completes the match: it returns the result of the case that
// fired, or applies fn to the original value when none did.
func (m Matcher[T, R]) Otherwise(fn func(T) R) R {
	if m.matched {
		return m.result
	}

	return fn(m.value)
}

// Result returns the outcome of the fired case, if any.
func (m Matcher[T, R]) Result() (R, bool) {
	return m.result, m.matched
}
