package vap

// Ap applies wrapped, a Validation holding a function, to the value held by
// v. It is the combination primitive behind Combine and Apply2..Apply8.
//
// Three cases, checked in order:
//  1. v is valid: the wrapped function is mapped over v's value; an invalid
//     wrapped passes its errors through unchanged.
//  2. v is invalid, wrapped is valid: v's errors pass through unchanged.
//  3. both invalid: the merged error list holds wrapped's errors first, then
//     v's. Folded left to right by the Apply functions, this keeps
//     accumulated errors in input order.
func Ap[E, T, U any](v Validation[E, T], wrapped Validation[E, func(T) U]) Validation[E, U] {
	if v.valid {
		return Map(wrapped, func(f func(T) U) U {
			return f(v.value)
		})
	}
	if wrapped.valid {
		return Validation[E, U]{errs: v.errs}
	}
	merged := append(append([]E(nil), wrapped.errs...), v.errs...)
	return Validation[E, U]{errs: merged}
}
