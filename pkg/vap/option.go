package vap

// Option is a value that may be absent. It backs ToOption and gives "valid
// of nothing" an explicit spelling: Validation[E, Option[T]].
type Option[T any] struct {
	value   T
	defined bool
}

// Some creates a defined Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, defined: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsDefined returns true if this Option holds a value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty returns true if this Option is absent.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the value of a defined Option. It panics on an empty one.
func (o Option[T]) Get() T {
	if !o.defined {
		panic("vap: get of empty Option")
	}
	return o.value
}

// GetOrElse returns the value of a defined Option, or other when empty.
func (o Option[T]) GetOrElse(other T) T {
	if o.defined {
		return o.value
	}
	return other
}

// MapOption transforms the value of a defined Option with f; an empty Option
// stays empty.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if f == nil {
		panic("vap: f is nil")
	}
	if !o.defined {
		return None[U]()
	}
	return Some(f(o.value))
}

// ToOption converts to an Option: a Valid becomes Some of its value, an
// Invalid becomes None. The errors are dropped.
func (v Validation[E, T]) ToOption() Option[T] {
	if v.valid {
		return Some(v.value)
	}
	return None[T]()
}
