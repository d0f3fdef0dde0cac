package failz

import "errors"

// BiFunction is a fallible two-argument operation producing a value.
type BiFunction[A, B, R any] func(A, B) (R, error)

// NewBiFunction pins fn to the BiFunction shape, rejecting nil eagerly.
func NewBiFunction[A, B, R any](fn func(A, B) (R, error)) BiFunction[A, B, R] {
	if fn == nil {
		panic("failz: NewBiFunction requires a non-nil function")
	}
	return fn
}

// LiftBiFunction widens a plain two-argument function into a BiFunction that
// never fails.
func LiftBiFunction[A, B, R any](fn func(A, B) R) BiFunction[A, B, R] {
	if fn == nil {
		panic("failz: LiftBiFunction requires a non-nil function")
	}
	return func(a A, b B) (R, error) {
		return fn(a, b), nil
	}
}

// CatchingBiFunction adapts a plain two-argument function that may panic with
// a *Panic back into a fallible BiFunction. A recovered *Panic whose cause
// matches E yields the cause as the returned error; any other panic value is
// re-panicked unmodified.
func CatchingBiFunction[E error, A, B, R any](fn func(A, B) R) BiFunction[A, B, R] {
	if fn == nil {
		panic("failz: CatchingBiFunction requires a non-nil function")
	}
	return func(a A, b B) (out R, err error) {
		defer func() {
			if r := recover(); r != nil {
				if p, ok := r.(*Panic); ok {
					var target E
					if errors.As(p.Cause(), &target) {
						var zero R
						out, err = zero, target
						return
					}
				}
				panic(r)
			}
		}()
		return fn(a, b), nil
	}
}

// MapError rewrites the error through mapper, preserving success results.
func (f BiFunction[A, B, R]) MapError(mapper func(error) error) BiFunction[A, B, R] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err != nil {
			var zero R
			return zero, mapper(err)
		}
		return out, nil
	}
}

// MustMap returns a plain function that panics with mapper(err) on failure.
func (f BiFunction[A, B, R]) MustMap(mapper func(error) error) func(A, B) R {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(a A, b B) R {
		out, err := f(a, b)
		if err != nil {
			panic(mapper(err))
		}
		return out
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (f BiFunction[A, B, R]) Recover(handler func(error) (R, error)) BiFunction[A, B, R] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err != nil {
			return handler(err)
		}
		return out, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// function.
func (f BiFunction[A, B, R]) RecoverWith(handler func(error) R) func(A, B) R {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(a A, b B) R {
		out, err := f(a, b)
		if err != nil {
			return handler(err)
		}
		return out
	}
}

// Fallback invokes alt with the original arguments when f fails. The error is
// discarded.
func (f BiFunction[A, B, R]) Fallback(alt BiFunction[A, B, R]) BiFunction[A, B, R] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(a A, b B) (R, error) {
		out, err := f(a, b)
		if err != nil {
			return alt(a, b)
		}
		return out, nil
	}
}

// Otherwise invokes the plain alt with the original arguments when f fails,
// producing a plain function.
func (f BiFunction[A, B, R]) Otherwise(alt func(A, B) R) func(A, B) R {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(a A, b B) R {
		out, err := f(a, b)
		if err != nil {
			return alt(a, b)
		}
		return out
	}
}

// OrReturn substitutes a constant for any failure, producing a plain function.
func (f BiFunction[A, B, R]) OrReturn(v R) func(A, B) R {
	return func(a A, b B) R {
		out, err := f(a, b)
		if err != nil {
			return v
		}
		return out
	}
}

// Must returns a plain function that panics with NewPanicNoTrace(err) on
// failure.
func (f BiFunction[A, B, R]) Must() func(A, B) R {
	return func(a A, b B) R {
		out, err := f(a, b)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return out
	}
}
