package vap

// Either is a minimal two-branch result: Left carries the failure branch,
// Right the success branch. It exists for interop with Validation through
// FromEither and ToEither; unlike Validation it holds a single failure
// value, not a list.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding the left branch.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding the right branch.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsLeft returns true if this is a Left.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value and true on a Left, or the zero value and
// false on a Right.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// GetRight returns the right value and true on a Right, or the zero value
// and false on a Left.
func (e Either[L, R]) GetRight() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// FoldEither reduces an Either to a single value by calling exactly one of
// the handlers.
func FoldEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if onLeft == nil {
		panic("vap: onLeft is nil")
	}
	if onRight == nil {
		panic("vap: onRight is nil")
	}
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FromEither converts an Either to a Validation: a Right becomes Valid, a
// Left becomes Invalid with the left value as its only error. It panics
// when the left value is nil, exactly as Invalid does.
func FromEither[E, T any](e Either[E, T]) Validation[E, T] {
	if e.isRight {
		return Valid[E](e.right)
	}
	return Invalid[E, T](e.left)
}

// ToEither converts to an Either: a Valid becomes Right, an Invalid becomes
// Left holding the whole error list.
func (v Validation[E, T]) ToEither() Either[[]E, T] {
	if v.valid {
		return Right[[]E](v.value)
	}
	return Left[[]E, T](v.errs)
}
