package failz

import "errors"

// BiPredicate is a fallible two-argument boolean test.
type BiPredicate[A, B any] func(A, B) (bool, error)

// NewBiPredicate pins fn to the BiPredicate shape, rejecting nil eagerly.
func NewBiPredicate[A, B any](fn func(A, B) (bool, error)) BiPredicate[A, B] {
	if fn == nil {
		panic("failz: NewBiPredicate requires a non-nil function")
	}
	return fn
}

// LiftBiPredicate widens a plain two-argument predicate into a BiPredicate
// that never fails.
func LiftBiPredicate[A, B any](fn func(A, B) bool) BiPredicate[A, B] {
	if fn == nil {
		panic("failz: LiftBiPredicate requires a non-nil function")
	}
	return func(a A, b B) (bool, error) {
		return fn(a, b), nil
	}
}

// CatchingBiPredicate adapts a plain two-argument predicate that may panic
// with a *Panic back into a fallible BiPredicate. A recovered *Panic whose
// cause matches E yields the cause as the returned error; any other panic
// value is re-panicked unmodified.
func CatchingBiPredicate[E error, A, B any](fn func(A, B) bool) BiPredicate[A, B] {
	if fn == nil {
		panic("failz: CatchingBiPredicate requires a non-nil function")
	}
	return func(a A, b B) (ok bool, err error) {
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
		return fn(a, b), nil
	}
}

// MapError rewrites the error through mapper, preserving test results.
func (p BiPredicate[A, B]) MapError(mapper func(error) error) BiPredicate[A, B] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return false, mapper(err)
		}
		return ok, nil
	}
}

// MustMap returns a plain predicate that panics with mapper(err) on failure.
func (p BiPredicate[A, B]) MustMap(mapper func(error) error) func(A, B) bool {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(a A, b B) bool {
		ok, err := p(a, b)
		if err != nil {
			panic(mapper(err))
		}
		return ok
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (p BiPredicate[A, B]) Recover(handler func(error) (bool, error)) BiPredicate[A, B] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return handler(err)
		}
		return ok, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// predicate.
func (p BiPredicate[A, B]) RecoverWith(handler func(error) bool) func(A, B) bool {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(a A, b B) bool {
		ok, err := p(a, b)
		if err != nil {
			return handler(err)
		}
		return ok
	}
}

// Fallback invokes alt with the original arguments when p fails. The error is
// discarded.
func (p BiPredicate[A, B]) Fallback(alt BiPredicate[A, B]) BiPredicate[A, B] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return alt(a, b)
		}
		return ok, nil
	}
}

// Otherwise invokes the plain alt with the original arguments when p fails,
// producing a plain predicate.
func (p BiPredicate[A, B]) Otherwise(alt func(A, B) bool) func(A, B) bool {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(a A, b B) bool {
		ok, err := p(a, b)
		if err != nil {
			return alt(a, b)
		}
		return ok
	}
}

// OrReturn substitutes a constant verdict for any failure, producing a plain
// predicate.
func (p BiPredicate[A, B]) OrReturn(v bool) func(A, B) bool {
	return func(a A, b B) bool {
		ok, err := p(a, b)
		if err != nil {
			return v
		}
		return ok
	}
}

// Must returns a plain predicate that panics with NewPanicNoTrace(err) on
// failure.
func (p BiPredicate[A, B]) Must() func(A, B) bool {
	return func(a A, b B) bool {
		ok, err := p(a, b)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return ok
	}
}

// And short-circuits like &&: other runs only when p succeeds with true.
func (p BiPredicate[A, B]) And(other BiPredicate[A, B]) BiPredicate[A, B] {
	if other == nil {
		panic("failz: And requires a non-nil predicate")
	}
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil || !ok {
			return false, err
		}
		return other(a, b)
	}
}

// Or short-circuits like ||: other runs only when p succeeds with false.
func (p BiPredicate[A, B]) Or(other BiPredicate[A, B]) BiPredicate[A, B] {
	if other == nil {
		panic("failz: Or requires a non-nil predicate")
	}
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil || ok {
			return ok, err
		}
		return other(a, b)
	}
}

// Negate inverts the verdict. Errors propagate unmodified.
func (p BiPredicate[A, B]) Negate() BiPredicate[A, B] {
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
