// Package failz provides fallible counterparts to Go's plain function shapes,
// with a uniform protocol for adapting errors between the two worlds.
//
// # Overview
//
// Plenty of APIs only accept plain function values - func(T) R, func(T) bool,
// func() - while the operations you actually have return errors. failz closes
// that gap in both directions: every fallible shape carries combinators that
// map, recover, substitute, or discard its error to produce a plain function,
// and every plain function can be lifted back into a fallible shape, including
// recovery of an error smuggled across the boundary inside a panic.
//
// # Core Concepts
//
// The library defines one named func type per operation shape:
//
//	type Runnable func() error
//	type Supplier[R any] func() (R, error)
//	type Consumer[T any] func(T) error
//	type BiConsumer[A, B any] func(A, B) error
//	type Function[T, R any] func(T) (R, error)
//	type BiFunction[A, B, R any] func(A, B) (R, error)
//	type Predicate[T any] func(T) (bool, error)
//	type BiPredicate[A, B any] func(A, B) (bool, error)
//	type UnaryOperator[T any] func(T) (T, error)
//	type BinaryOperator[T any] func(T, T) (T, error)
//
// Each shape carries the same adaptation protocol, instantiated with
// shape-appropriate arguments:
//
//   - MapError: rewrite the error, stay fallible
//   - Recover / RecoverWith: hand the error to a handler that produces a result
//   - Fallback / Otherwise: rerun an alternate operation with the original
//     arguments, discarding the error
//   - OrReturn / OrIgnore: substitute a constant, or suppress entirely
//   - Must / MustMap: escape to a plain function that panics on error
//
// Conversions run the other way too:
//
//   - NewX pins a literal to the fallible shape
//   - LiftX widens a plain function into a fallible shape that never fails
//   - CatchingX recovers a *Panic raised by Must and returns its cause as an
//     ordinary error, when the cause matches the requested type
//
// # Quick Start
//
//	parse := failz.NewFunction(func(s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
//
//	// A plain func(string) int for an API that cannot fail.
//	lenient := parse.OrReturn(0)
//
//	// Or keep the error but substitute a second parser first.
//	parse = parse.Fallback(parseHex)
//
//	// Or cross a plain-function boundary and get the error back on the far side.
//	restored := failz.CatchingFunction[*strconv.NumError](parse.Must())
//
// # Error Semantics
//
// The error return is the only channel any combinator inspects. Panics are the
// undeclared channel: no combinator recovers them, so a panicking operation
// panics identically through MapError, Fallback, OrIgnore, and the rest. The
// single exception is CatchingX, which exists to recover a *Panic carrying a
// matching cause - anything else it re-panics unmodified.
//
// Fallback and Otherwise invoke the alternate operation with the original
// arguments; the error value is discarded. When the failure itself matters,
// use Recover or RecoverWith, whose handler receives it.
//
// Nil function arguments are programming errors and panic at construction
// time, before the base operation could ever run.
//
// # Observability
//
// The combinators themselves never log, count, or trace. Watch wraps a
// Function with metrics, spans, and event hooks at the call boundary without
// altering what the function returns.
package failz
