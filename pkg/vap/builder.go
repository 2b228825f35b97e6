package vap

// Builder2 holds two independent validations pending combination.
type Builder2[E, T1, T2 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
}

// Builder3 holds three independent validations pending combination.
type Builder3[E, T1, T2, T3 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
}

// Builder4 holds four independent validations pending combination.
type Builder4[E, T1, T2, T3, T4 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
	v4 Validation[E, T4]
}

// Builder5 holds five independent validations pending combination.
type Builder5[E, T1, T2, T3, T4, T5 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
	v4 Validation[E, T4]
	v5 Validation[E, T5]
}

// Builder6 holds six independent validations pending combination.
type Builder6[E, T1, T2, T3, T4, T5, T6 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
	v4 Validation[E, T4]
	v5 Validation[E, T5]
	v6 Validation[E, T6]
}

// Builder7 holds seven independent validations pending combination.
type Builder7[E, T1, T2, T3, T4, T5, T6, T7 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
	v4 Validation[E, T4]
	v5 Validation[E, T5]
	v6 Validation[E, T6]
	v7 Validation[E, T7]
}

// Builder8 holds eight independent validations pending combination.
type Builder8[E, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	v1 Validation[E, T1]
	v2 Validation[E, T2]
	v3 Validation[E, T3]
	v4 Validation[E, T4]
	v5 Validation[E, T5]
	v6 Validation[E, T6]
	v7 Validation[E, T7]
	v8 Validation[E, T8]
}

// Combine starts a builder chain from two independent validations. Extend
// the chain with Combine3..Combine8 and finish it with the matching ApplyN.
// Combining evaluates nothing; all errors surface at apply time, in input
// order.
func Combine[E, T1, T2 any](v1 Validation[E, T1], v2 Validation[E, T2]) Builder2[E, T1, T2] {
	return Builder2[E, T1, T2]{v1: v1, v2: v2}
}

// Combine3 extends a two-input builder with a third validation.
func Combine3[E, T1, T2, T3 any](b Builder2[E, T1, T2], v3 Validation[E, T3]) Builder3[E, T1, T2, T3] {
	return Builder3[E, T1, T2, T3]{v1: b.v1, v2: b.v2, v3: v3}
}

// Combine4 extends a three-input builder with a fourth validation.
func Combine4[E, T1, T2, T3, T4 any](b Builder3[E, T1, T2, T3], v4 Validation[E, T4]) Builder4[E, T1, T2, T3, T4] {
	return Builder4[E, T1, T2, T3, T4]{v1: b.v1, v2: b.v2, v3: b.v3, v4: v4}
}

// Combine5 extends a four-input builder with a fifth validation.
func Combine5[E, T1, T2, T3, T4, T5 any](b Builder4[E, T1, T2, T3, T4], v5 Validation[E, T5]) Builder5[E, T1, T2, T3, T4, T5] {
	return Builder5[E, T1, T2, T3, T4, T5]{v1: b.v1, v2: b.v2, v3: b.v3, v4: b.v4, v5: v5}
}

// Combine6 extends a five-input builder with a sixth validation.
func Combine6[E, T1, T2, T3, T4, T5, T6 any](b Builder5[E, T1, T2, T3, T4, T5], v6 Validation[E, T6]) Builder6[E, T1, T2, T3, T4, T5, T6] {
	return Builder6[E, T1, T2, T3, T4, T5, T6]{v1: b.v1, v2: b.v2, v3: b.v3, v4: b.v4, v5: b.v5, v6: v6}
}

// Combine7 extends a six-input builder with a seventh validation.
func Combine7[E, T1, T2, T3, T4, T5, T6, T7 any](b Builder6[E, T1, T2, T3, T4, T5, T6], v7 Validation[E, T7]) Builder7[E, T1, T2, T3, T4, T5, T6, T7] {
	return Builder7[E, T1, T2, T3, T4, T5, T6, T7]{v1: b.v1, v2: b.v2, v3: b.v3, v4: b.v4, v5: b.v5, v6: b.v6, v7: v7}
}

// Combine8 extends a seven-input builder with an eighth validation. Eight
// inputs is the ceiling; validate a ninth against the combined result, or
// reach for Sequence.
func Combine8[E, T1, T2, T3, T4, T5, T6, T7, T8 any](b Builder7[E, T1, T2, T3, T4, T5, T6, T7], v8 Validation[E, T8]) Builder8[E, T1, T2, T3, T4, T5, T6, T7, T8] {
	return Builder8[E, T1, T2, T3, T4, T5, T6, T7, T8]{v1: b.v1, v2: b.v2, v3: b.v3, v4: b.v4, v5: b.v5, v6: b.v6, v7: b.v7, v8: v8}
}

// Apply2 applies f to both values when every input is valid. Otherwise the
// result is an Invalid holding the errors of every invalid input, in input
// order. It panics when f is nil.
func Apply2[E, T1, T2, R any](b Builder2[E, T1, T2], f func(T1, T2) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) R {
		return func(t2 T2) R {
			return f(t1, t2)
		}
	})
	return Ap(b.v2, Ap(b.v1, curried))
}

// Apply3 applies f to all three values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply3[E, T1, T2, T3, R any](b Builder3[E, T1, T2, T3], f func(T1, T2, T3) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) R {
		return func(t2 T2) func(T3) R {
			return func(t3 T3) R {
				return f(t1, t2, t3)
			}
		}
	})
	return Ap(b.v3, Ap(b.v2, Ap(b.v1, curried)))
}

// Apply4 applies f to all four values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply4[E, T1, T2, T3, T4, R any](b Builder4[E, T1, T2, T3, T4], f func(T1, T2, T3, T4) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) func(T4) R {
		return func(t2 T2) func(T3) func(T4) R {
			return func(t3 T3) func(T4) R {
				return func(t4 T4) R {
					return f(t1, t2, t3, t4)
				}
			}
		}
	})
	return Ap(b.v4, Ap(b.v3, Ap(b.v2, Ap(b.v1, curried))))
}

// Apply5 applies f to all five values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply5[E, T1, T2, T3, T4, T5, R any](b Builder5[E, T1, T2, T3, T4, T5], f func(T1, T2, T3, T4, T5) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) func(T4) func(T5) R {
		return func(t2 T2) func(T3) func(T4) func(T5) R {
			return func(t3 T3) func(T4) func(T5) R {
				return func(t4 T4) func(T5) R {
					return func(t5 T5) R {
						return f(t1, t2, t3, t4, t5)
					}
				}
			}
		}
	})
	return Ap(b.v5, Ap(b.v4, Ap(b.v3, Ap(b.v2, Ap(b.v1, curried)))))
}

// Apply6 applies f to all six values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply6[E, T1, T2, T3, T4, T5, T6, R any](b Builder6[E, T1, T2, T3, T4, T5, T6], f func(T1, T2, T3, T4, T5, T6) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) R {
		return func(t2 T2) func(T3) func(T4) func(T5) func(T6) R {
			return func(t3 T3) func(T4) func(T5) func(T6) R {
				return func(t4 T4) func(T5) func(T6) R {
					return func(t5 T5) func(T6) R {
						return func(t6 T6) R {
							return f(t1, t2, t3, t4, t5, t6)
						}
					}
				}
			}
		}
	})
	return Ap(b.v6, Ap(b.v5, Ap(b.v4, Ap(b.v3, Ap(b.v2, Ap(b.v1, curried))))))
}

// Apply7 applies f to all seven values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply7[E, T1, T2, T3, T4, T5, T6, T7, R any](b Builder7[E, T1, T2, T3, T4, T5, T6, T7], f func(T1, T2, T3, T4, T5, T6, T7) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) R {
		return func(t2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) R {
			return func(t3 T3) func(T4) func(T5) func(T6) func(T7) R {
				return func(t4 T4) func(T5) func(T6) func(T7) R {
					return func(t5 T5) func(T6) func(T7) R {
						return func(t6 T6) func(T7) R {
							return func(t7 T7) R {
								return f(t1, t2, t3, t4, t5, t6, t7)
							}
						}
					}
				}
			}
		}
	})
	return Ap(b.v7, Ap(b.v6, Ap(b.v5, Ap(b.v4, Ap(b.v3, Ap(b.v2, Ap(b.v1, curried)))))))
}

// Apply8 applies f to all eight values when every input is valid, otherwise
// accumulates the errors of every invalid input in input order.
func Apply8[E, T1, T2, T3, T4, T5, T6, T7, T8, R any](b Builder8[E, T1, T2, T3, T4, T5, T6, T7, T8], f func(T1, T2, T3, T4, T5, T6, T7, T8) R) Validation[E, R] {
	if f == nil {
		panic("vap: f is nil")
	}
	curried := Valid[E](func(t1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) R {
		return func(t2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) R {
			return func(t3 T3) func(T4) func(T5) func(T6) func(T7) func(T8) R {
				return func(t4 T4) func(T5) func(T6) func(T7) func(T8) R {
					return func(t5 T5) func(T6) func(T7) func(T8) R {
						return func(t6 T6) func(T7) func(T8) R {
							return func(t7 T7) func(T8) R {
								return func(t8 T8) R {
									return f(t1, t2, t3, t4, t5, t6, t7, t8)
								}
							}
						}
					}
				}
			}
		}
	})
	return Ap(b.v8, Ap(b.v7, Ap(b.v6, Ap(b.v5, Ap(b.v4, Ap(b.v3, Ap(b.v2, Ap(b.v1, curried))))))))
}
