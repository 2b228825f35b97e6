package vap

import (
	"fmt"
	"reflect"
)

// Validation is either Valid, holding a value of type T, or Invalid, holding
// an ordered list of errors of type E. The zero Validation is an Invalid with
// no errors.
type Validation[E, T any] struct {
	value T
	errs  []E
	valid bool
}

// Valid creates a valid Validation holding value.
func Valid[E, T any](value T) Validation[E, T] {
	return Validation[E, T]{value: value, valid: true}
}

// Invalid creates an invalid Validation holding err as its only error.
// It panics when err is nil.
func Invalid[E, T any](err E) Validation[E, T] {
	if isNil(err) {
		panic("vap: err is nil")
	}
	return Validation[E, T]{errs: []E{err}}
}

// InvalidAll creates an invalid Validation from the given errors, copied into
// an owned list. An empty call is legal (see Filter) but not recommended.
func InvalidAll[E, T any](errs ...E) Validation[E, T] {
	if len(errs) == 0 {
		return Validation[E, T]{}
	}
	owned := make([]E, len(errs))
	copy(owned, errs)
	return Validation[E, T]{errs: owned}
}

// IsValid returns true if this is a Valid.
func (v Validation[E, T]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if this is an Invalid.
func (v Validation[E, T]) IsInvalid() bool {
	return !v.valid
}

// Get returns the value of a Valid. It panics on an Invalid.
func (v Validation[E, T]) Get() T {
	if !v.valid {
		panic("vap: get of invalid Validation")
	}
	return v.value
}

// GetErrors returns the error list of an Invalid. It panics on a Valid,
// mirroring Get. The returned slice is the owned one; treat it as read-only.
func (v Validation[E, T]) GetErrors() []E {
	if v.valid {
		panic("vap: errors of valid Validation")
	}
	return v.errs
}

// GetOrElse returns the value of a Valid, or other on an Invalid.
func (v Validation[E, T]) GetOrElse(other T) T {
	if v.valid {
		return v.value
	}
	return other
}

// GetOrElseGet returns the value of a Valid, or a value computed from the
// errors on an Invalid.
func (v Validation[E, T]) GetOrElseGet(other func(errs []E) T) T {
	if other == nil {
		panic("vap: other is nil")
	}
	if v.valid {
		return v.value
	}
	return other(v.errs)
}

// OrElse returns this Validation if it is valid, otherwise other.
func (v Validation[E, T]) OrElse(other Validation[E, T]) Validation[E, T] {
	if v.valid {
		return v
	}
	return other
}

// OrElseGet returns this Validation if it is valid, otherwise the result of
// supplier, which is only evaluated on an Invalid.
func (v Validation[E, T]) OrElseGet(supplier func() Validation[E, T]) Validation[E, T] {
	if supplier == nil {
		panic("vap: supplier is nil")
	}
	if v.valid {
		return v
	}
	return supplier()
}

// Filter keeps a Valid whose value satisfies predicate. A Valid with a
// rejected value becomes an Invalid with no errors; use Ensure to attach an
// error value to the rejection. An Invalid passes through untouched.
func (v Validation[E, T]) Filter(predicate func(T) bool) Validation[E, T] {
	if predicate == nil {
		panic("vap: predicate is nil")
	}
	if !v.valid || predicate(v.value) {
		return v
	}
	return Validation[E, T]{}
}

// Ensure keeps a Valid whose value satisfies predicate and turns a rejected
// one into Invalid(err): Filter with a real error to report. An Invalid
// passes through untouched, so several Ensure checks of one value should be
// combined, not chained, when every failure must surface.
func (v Validation[E, T]) Ensure(predicate func(T) bool, err E) Validation[E, T] {
	if predicate == nil {
		panic("vap: predicate is nil")
	}
	if !v.valid || predicate(v.value) {
		return v
	}
	return Invalid[E, T](err)
}

// FilterErrors keeps only the errors satisfying predicate. The result may be
// an Invalid with no errors left. A Valid passes through untouched.
func (v Validation[E, T]) FilterErrors(predicate func(E) bool) Validation[E, T] {
	if predicate == nil {
		panic("vap: predicate is nil")
	}
	if v.valid {
		return v
	}
	var kept []E
	for _, e := range v.errs {
		if predicate(e) {
			kept = append(kept, e)
		}
	}
	return Validation[E, T]{errs: kept}
}

// Peek calls action with the value of a Valid and returns the receiver
// unchanged. An Invalid skips action.
func (v Validation[E, T]) Peek(action func(T)) Validation[E, T] {
	if action == nil {
		panic("vap: action is nil")
	}
	if v.valid {
		action(v.value)
	}
	return v
}

// PeekInvalid calls action with the errors of an Invalid and returns the
// receiver unchanged. A Valid skips action.
func (v Validation[E, T]) PeekInvalid(action func([]E)) Validation[E, T] {
	if action == nil {
		panic("vap: action is nil")
	}
	if !v.valid {
		action(v.errs)
	}
	return v
}

// Equal reports structural equality: two Valid are equal when their values
// are deeply equal, two Invalid when their error lists are deeply equal in
// the same order. An Invalid with no errors equals any other empty Invalid.
func (v Validation[E, T]) Equal(other Validation[E, T]) bool {
	if v.valid != other.valid {
		return false
	}
	if v.valid {
		return reflect.DeepEqual(v.value, other.value)
	}
	if len(v.errs) == 0 && len(other.errs) == 0 {
		return true
	}
	return reflect.DeepEqual(v.errs, other.errs)
}

func (v Validation[E, T]) String() string {
	if v.valid {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errs)
}

func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
