package failz

import "errors"

// Function is a fallible single-argument operation. It is the workhorse shape:
// anything of the form "take a value, produce a value or fail" fits here,
// including every primitive-specialized variant (a Function[int, float64] is
// an int-to-double function).
//
// Example:
//
//	parse := failz.NewFunction(func(s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
type Function[T, R any] func(T) (R, error)

// NewFunction pins fn to the Function shape. This is an identity conversion
// whose only job is giving a lambda a home type and rejecting nil eagerly.
func NewFunction[T, R any](fn func(T) (R, error)) Function[T, R] {
	if fn == nil {
		panic("failz: NewFunction requires a non-nil function")
	}
	return fn
}

// LiftFunction widens a plain function into a Function that never fails.
func LiftFunction[T, R any](fn func(T) R) Function[T, R] {
	if fn == nil {
		panic("failz: LiftFunction requires a non-nil function")
	}
	return func(in T) (R, error) {
		return fn(in), nil
	}
}

// CatchingFunction adapts a plain function that may panic with a *Panic back
// into a fallible Function. A recovered *Panic whose cause matches E yields
// the cause as the returned error; any other panic value - a *Panic with a
// non-matching cause included - is re-panicked unmodified.
//
// This is the inverse of Must:
//
//	var f failz.Function[string, int] = parse
//	g := failz.CatchingFunction[*ParseError](f.Must())
//	// g now fails with the original *ParseError, unwrapped.
func CatchingFunction[E error, T, R any](fn func(T) R) Function[T, R] {
	if fn == nil {
		panic("failz: CatchingFunction requires a non-nil function")
	}
	return func(in T) (out R, err error) {
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
		return fn(in), nil
	}
}

// MapError rewrites the error through mapper, preserving success results.
func (f Function[T, R]) MapError(mapper func(error) error) Function[T, R] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(in T) (R, error) {
		out, err := f(in)
		if err != nil {
			var zero R
			return zero, mapper(err)
		}
		return out, nil
	}
}

// MustMap returns a plain function that panics with mapper(err) on failure.
// Unlike Must, the panic value is the mapped error itself, not a *Panic.
func (f Function[T, R]) MustMap(mapper func(error) error) func(T) R {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			panic(mapper(err))
		}
		return out
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail; its error becomes the derived Function's error.
func (f Function[T, R]) Recover(handler func(error) (R, error)) Function[T, R] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(in T) (R, error) {
		out, err := f(in)
		if err != nil {
			return handler(err)
		}
		return out, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// function.
func (f Function[T, R]) RecoverWith(handler func(error) R) func(T) R {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			return handler(err)
		}
		return out
	}
}

// Fallback invokes alt with the original argument when f fails. The error is
// discarded; alt's error channel becomes the derived Function's.
func (f Function[T, R]) Fallback(alt Function[T, R]) Function[T, R] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(in T) (R, error) {
		out, err := f(in)
		if err != nil {
			return alt(in)
		}
		return out, nil
	}
}

// Otherwise invokes the plain alt with the original argument when f fails,
// producing a plain function. The error is discarded.
func (f Function[T, R]) Otherwise(alt func(T) R) func(T) R {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			return alt(in)
		}
		return out
	}
}

// OrReturn substitutes a constant for any failure, producing a plain function.
// Argument and error are both discarded.
func (f Function[T, R]) OrReturn(v R) func(T) R {
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			return v
		}
		return out
	}
}

// Must returns a plain function that panics with NewPanicNoTrace(err) on
// failure. The cause's own identity is preserved for recovery via
// CatchingFunction or CauseAs.
func (f Function[T, R]) Must() func(T) R {
	return func(in T) R {
		out, err := f(in)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return out
	}
}
