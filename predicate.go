package failz

import "errors"

// Predicate is a fallible single-argument boolean test.
type Predicate[T any] func(T) (bool, error)

// NewPredicate pins fn to the Predicate shape, rejecting nil eagerly.
func NewPredicate[T any](fn func(T) (bool, error)) Predicate[T] {
	if fn == nil {
		panic("failz: NewPredicate requires a non-nil function")
	}
	return fn
}

// LiftPredicate widens a plain predicate into a Predicate that never fails.
func LiftPredicate[T any](fn func(T) bool) Predicate[T] {
	if fn == nil {
		panic("failz: LiftPredicate requires a non-nil function")
	}
	return func(in T) (bool, error) {
		return fn(in), nil
	}
}

// CatchingPredicate adapts a plain predicate that may panic with a *Panic
// back into a fallible Predicate. A recovered *Panic whose cause matches E
// yields the cause as the returned error; any other panic value is
// re-panicked unmodified.
func CatchingPredicate[E error, T any](fn func(T) bool) Predicate[T] {
	if fn == nil {
		panic("failz: CatchingPredicate requires a non-nil function")
	}
	return func(in T) (ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if p, pok := r.(*Panic); pok {
					var target E
					if errors.As(p.Cause(), &target) {
						ok, err = false, target
						return
					}
				}
				panic(r)
			}
		}()
		return fn(in), nil
	}
}

// MapError rewrites the error through mapper, preserving test results.
func (p Predicate[T]) MapError(mapper func(error) error) Predicate[T] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil {
			return false, mapper(err)
		}
		return ok, nil
	}
}

// MustMap returns a plain predicate that panics with mapper(err) on failure.
func (p Predicate[T]) MustMap(mapper func(error) error) func(T) bool {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(in T) bool {
		ok, err := p(in)
		if err != nil {
			panic(mapper(err))
		}
		return ok
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (p Predicate[T]) Recover(handler func(error) (bool, error)) Predicate[T] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil {
			return handler(err)
		}
		return ok, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// predicate.
func (p Predicate[T]) RecoverWith(handler func(error) bool) func(T) bool {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(in T) bool {
		ok, err := p(in)
		if err != nil {
			return handler(err)
		}
		return ok
	}
}

// Fallback invokes alt with the original argument when p fails. The error is
// discarded.
func (p Predicate[T]) Fallback(alt Predicate[T]) Predicate[T] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil {
			return alt(in)
		}
		return ok, nil
	}
}

// Otherwise invokes the plain alt with the original argument when p fails,
// producing a plain predicate.
func (p Predicate[T]) Otherwise(alt func(T) bool) func(T) bool {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(in T) bool {
		ok, err := p(in)
		if err != nil {
			return alt(in)
		}
		return ok
	}
}

// OrReturn substitutes a constant verdict for any failure, producing a plain
// predicate.
func (p Predicate[T]) OrReturn(v bool) func(T) bool {
	return func(in T) bool {
		ok, err := p(in)
		if err != nil {
			return v
		}
		return ok
	}
}

// Must returns a plain predicate that panics with NewPanicNoTrace(err) on
// failure.
func (p Predicate[T]) Must() func(T) bool {
	return func(in T) bool {
		ok, err := p(in)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return ok
	}
}

// And short-circuits like &&: other runs only when p succeeds with true.
// An error from either side propagates unmodified.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	if other == nil {
		panic("failz: And requires a non-nil predicate")
	}
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil || !ok {
			return false, err
		}
		return other(in)
	}
}

// Or short-circuits like ||: other runs only when p succeeds with false.
// An error from either side propagates unmodified.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	if other == nil {
		panic("failz: Or requires a non-nil predicate")
	}
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil || ok {
			return ok, err
		}
		return other(in)
	}
}

// Negate inverts the verdict. Errors propagate unmodified.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(in T) (bool, error) {
		ok, err := p(in)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
