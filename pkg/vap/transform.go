package vap

// Map transforms the value of a Valid with f. An Invalid passes through with
// its errors untouched.
func Map[E, T, U any](v Validation[E, T], f func(T) U) Validation[E, U] {
	if f == nil {
		panic("vap: f is nil")
	}
	if !v.valid {
		return Validation[E, U]{errs: v.errs}
	}
	return Valid[E](f(v.value))
}

// MapErrors transforms every error of an Invalid with f, preserving order.
// A Valid passes through with its value untouched.
func MapErrors[E, T, U any](v Validation[E, T], f func(E) U) Validation[U, T] {
	if f == nil {
		panic("vap: f is nil")
	}
	if v.valid {
		return Valid[U](v.value)
	}
	mapped := make([]U, len(v.errs))
	for i, e := range v.errs {
		mapped[i] = f(e)
	}
	return Validation[U, T]{errs: mapped}
}

// Bimap transforms exactly one side: the errors of an Invalid through fe, or
// the value of a Valid through ft.
func Bimap[E, T, E2, T2 any](v Validation[E, T], fe func(E) E2, ft func(T) T2) Validation[E2, T2] {
	if fe == nil {
		panic("vap: fe is nil")
	}
	if ft == nil {
		panic("vap: ft is nil")
	}
	if v.valid {
		return Valid[E2](ft(v.value))
	}
	mapped := make([]E2, len(v.errs))
	for i, e := range v.errs {
		mapped[i] = fe(e)
	}
	return Validation[E2, T2]{errs: mapped}
}

// FlatMap switches a Valid to whatever f returns, losing error accumulation
// for that step: an Invalid propagates its own errors and f is never called.
func FlatMap[E, T, U any](v Validation[E, T], f func(T) Validation[E, U]) Validation[E, U] {
	if f == nil {
		panic("vap: f is nil")
	}
	if !v.valid {
		return Validation[E, U]{errs: v.errs}
	}
	return f(v.value)
}

// FlatMapErrors expands every error of an Invalid through f, concatenating
// the results in order. One error may turn into zero or many. A Valid passes
// through with its value untouched.
func FlatMapErrors[E, T, U any](v Validation[E, T], f func(E) []U) Validation[U, T] {
	if f == nil {
		panic("vap: f is nil")
	}
	if v.valid {
		return Valid[U](v.value)
	}
	var expanded []U
	for _, e := range v.errs {
		expanded = append(expanded, f(e)...)
	}
	return Validation[U, T]{errs: expanded}
}

// Fold reduces a Validation to a single value by calling exactly one of the
// handlers.
func Fold[E, T, U any](v Validation[E, T], onInvalid func([]E) U, onValid func(T) U) U {
	if onInvalid == nil {
		panic("vap: onInvalid is nil")
	}
	if onValid == nil {
		panic("vap: onValid is nil")
	}
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.errs)
}

// Swap flips the sides: a Valid becomes an Invalid holding the value as its
// only error, an Invalid becomes a Valid of the whole error list. Swapping
// twice does not restore the original: Valid(1) swaps back to Valid([1]).
func Swap[E, T any](v Validation[E, T]) Validation[T, []E] {
	if v.valid {
		return Invalid[T, []E](v.value)
	}
	return Valid[T](v.errs)
}
