package failz

import "errors"

// Supplier is a fallible zero-argument operation producing a value.
type Supplier[R any] func() (R, error)

// NewSupplier pins fn to the Supplier shape, rejecting nil eagerly.
func NewSupplier[R any](fn func() (R, error)) Supplier[R] {
	if fn == nil {
		panic("failz: NewSupplier requires a non-nil function")
	}
	return fn
}

// LiftSupplier widens a plain supplier into a Supplier that never fails.
func LiftSupplier[R any](fn func() R) Supplier[R] {
	if fn == nil {
		panic("failz: LiftSupplier requires a non-nil function")
	}
	return func() (R, error) {
		return fn(), nil
	}
}

// CatchingSupplier adapts a plain supplier that may panic with a *Panic back
// into a fallible Supplier. A recovered *Panic whose cause matches E yields
// the cause as the returned error; any other panic value is re-panicked
// unmodified.
func CatchingSupplier[E error, R any](fn func() R) Supplier[R] {
	if fn == nil {
		panic("failz: CatchingSupplier requires a non-nil function")
	}
	return func() (out R, err error) {
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
		return fn(), nil
	}
}

// MapError rewrites the error through mapper, preserving success results.
func (s Supplier[R]) MapError(mapper func(error) error) Supplier[R] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func() (R, error) {
		out, err := s()
		if err != nil {
			var zero R
			return zero, mapper(err)
		}
		return out, nil
	}
}

// MustMap returns a plain supplier that panics with mapper(err) on failure.
func (s Supplier[R]) MustMap(mapper func(error) error) func() R {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func() R {
		out, err := s()
		if err != nil {
			panic(mapper(err))
		}
		return out
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (s Supplier[R]) Recover(handler func(error) (R, error)) Supplier[R] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func() (R, error) {
		out, err := s()
		if err != nil {
			return handler(err)
		}
		return out, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// supplier.
func (s Supplier[R]) RecoverWith(handler func(error) R) func() R {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func() R {
		out, err := s()
		if err != nil {
			return handler(err)
		}
		return out
	}
}

// Fallback invokes alt when s fails. The error is discarded.
func (s Supplier[R]) Fallback(alt Supplier[R]) Supplier[R] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func() (R, error) {
		out, err := s()
		if err != nil {
			return alt()
		}
		return out, nil
	}
}

// Otherwise invokes the plain alt when s fails, producing a plain supplier.
func (s Supplier[R]) Otherwise(alt func() R) func() R {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func() R {
		out, err := s()
		if err != nil {
			return alt()
		}
		return out
	}
}

// OrReturn substitutes a constant for any failure, producing a plain supplier.
func (s Supplier[R]) OrReturn(v R) func() R {
	return func() R {
		out, err := s()
		if err != nil {
			return v
		}
		return out
	}
}

// Must returns a plain supplier that panics with NewPanicNoTrace(err) on
// failure.
func (s Supplier[R]) Must() func() R {
	return func() R {
		out, err := s()
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return out
	}
}
