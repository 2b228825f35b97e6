// Package vap provides an applicative Validation type for Go: a value that
// is either Valid, holding a result, or Invalid, holding an ordered list of
// errors. Where railway-style pipelines stop at the first failure, the
// combinators here check every independent input and accumulate every error,
// which is what validating a form or a config wants.
//
// Highlights:
// - Valid/Invalid/InvalidAll: construct Validation[E, T]
// - Combine/Combine3..8 + Apply2..8: combine up to eight independent
// validations and apply an n-ary function, collecting the errors of every
// failing input in input order
// - Ap: the single combination primitive behind the builders
// - Sequence/Traverse: reduce a slice of validations to one
// - Map/MapErrors/Bimap/FlatMap/FlatMapErrors/Fold/Swap: transforms over one
// or both sides
// - Ensure/Filter/FilterErrors/Peek/PeekInvalid/OrElse: checks, inspection
// and recovery
// - Either/Option/Try/FromError/Err: interop with two-branch results,
// optional values and plain (T, error) call sites
package vap
