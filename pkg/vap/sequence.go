package vap

// Sequence reduces a slice of validations to one Validation of the collected
// values. The errors of every invalid element are accumulated in element
// order. No values are collected after the first error; an invalid result
// never exposes partially collected values. An empty or nil slice yields
// Valid of an empty slice.
func Sequence[E, T any](values []Validation[E, T]) Validation[E, []T] {
	var errs []E
	vals := make([]T, 0, len(values))
	for _, v := range values {
		if !v.valid {
			errs = append(errs, v.errs...)
		} else if len(errs) == 0 {
			vals = append(vals, v.value)
		}
	}
	if len(errs) > 0 {
		return Validation[E, []T]{errs: errs}
	}
	return Valid[E](vals)
}

// Traverse maps every element of values through mapper and sequences the
// results, accumulating the errors of every failing element in element
// order. It panics when mapper is nil.
func Traverse[E, T, U any](values []T, mapper func(T) Validation[E, U]) Validation[E, []U] {
	if mapper == nil {
		panic("vap: mapper is nil")
	}
	mapped := make([]Validation[E, U], len(values))
	for i, v := range values {
		mapped[i] = mapper(v)
	}
	return Sequence(mapped)
}
