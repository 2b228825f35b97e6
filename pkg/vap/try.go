package vap

import "errors"

// Try runs f and captures its outcome: a nil error becomes Valid of the
// returned value, a non-nil error becomes Invalid with that single error.
// It panics when f is nil.
func Try[T any](f func() (T, error)) Validation[error, T] {
	if f == nil {
		panic("vap: f is nil")
	}
	return FromError(f())
}

// FromError lifts a completed Go call into a Validation:
//
//	age := vap.FromError(strconv.Atoi(raw))
func FromError[T any](value T, err error) Validation[error, T] {
	if err != nil {
		return Invalid[error, T](err)
	}
	return Valid[error](value)
}

// Err collapses an error-typed Validation back to plain Go: nil on a Valid,
// otherwise the accumulated errors joined into one. An Invalid with no
// errors left (see Filter) also joins to nil.
func Err[T any](v Validation[error, T]) error {
	if v.valid {
		return nil
	}
	return errors.Join(v.errs...)
}
