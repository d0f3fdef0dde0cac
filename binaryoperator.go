package failz

import "errors"

// BinaryOperator is a fallible two-argument operation whose result has the
// arguments' type.
type BinaryOperator[T any] func(T, T) (T, error)

// NewBinaryOperator pins fn to the BinaryOperator shape, rejecting nil
// eagerly.
func NewBinaryOperator[T any](fn func(T, T) (T, error)) BinaryOperator[T] {
	if fn == nil {
		panic("failz: NewBinaryOperator requires a non-nil function")
	}
	return fn
}

// LiftBinaryOperator widens a plain operator into a BinaryOperator that never
// fails.
func LiftBinaryOperator[T any](fn func(T, T) T) BinaryOperator[T] {
	if fn == nil {
		panic("failz: LiftBinaryOperator requires a non-nil function")
	}
	return func(a, b T) (T, error) {
		return fn(a, b), nil
	}
}

// CatchingBinaryOperator adapts a plain operator that may panic with a *Panic
// back into a fallible BinaryOperator. A recovered *Panic whose cause matches
// E yields the cause as the returned error; any other panic value is
// re-panicked unmodified.
func CatchingBinaryOperator[E error, T any](fn func(T, T) T) BinaryOperator[T] {
	if fn == nil {
		panic("failz: CatchingBinaryOperator requires a non-nil function")
	}
	return func(a, b T) (out T, err error) {
		defer func() {
			if r := recover(); r != nil {
				if p, ok := r.(*Panic); ok {
					var target E
					if errors.As(p.Cause(), &target) {
						var zero T
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
func (o BinaryOperator[T]) MapError(mapper func(error) error) BinaryOperator[T] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(a, b T) (T, error) {
		out, err := o(a, b)
		if err != nil {
			var zero T
			return zero, mapper(err)
		}
		return out, nil
	}
}

// MustMap returns a plain operator that panics with mapper(err) on failure.
func (o BinaryOperator[T]) MustMap(mapper func(error) error) func(T, T) T {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(a, b T) T {
		out, err := o(a, b)
		if err != nil {
			panic(mapper(err))
		}
		return out
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (o BinaryOperator[T]) Recover(handler func(error) (T, error)) BinaryOperator[T] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(a, b T) (T, error) {
		out, err := o(a, b)
		if err != nil {
			return handler(err)
		}
		return out, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// operator.
func (o BinaryOperator[T]) RecoverWith(handler func(error) T) func(T, T) T {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(a, b T) T {
		out, err := o(a, b)
		if err != nil {
			return handler(err)
		}
		return out
	}
}

// Fallback invokes alt with the original arguments when o fails. The error is
// discarded.
func (o BinaryOperator[T]) Fallback(alt BinaryOperator[T]) BinaryOperator[T] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(a, b T) (T, error) {
		out, err := o(a, b)
		if err != nil {
			return alt(a, b)
		}
		return out, nil
	}
}

// Otherwise invokes the plain alt with the original arguments when o fails,
// producing a plain operator.
func (o BinaryOperator[T]) Otherwise(alt func(T, T) T) func(T, T) T {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(a, b T) T {
		out, err := o(a, b)
		if err != nil {
			return alt(a, b)
		}
		return out
	}
}

// OrReturn substitutes a constant for any failure, producing a plain operator.
func (o BinaryOperator[T]) OrReturn(v T) func(T, T) T {
	return func(a, b T) T {
		out, err := o(a, b)
		if err != nil {
			return v
		}
		return out
	}
}

// Must returns a plain operator that panics with NewPanicNoTrace(err) on
// failure.
func (o BinaryOperator[T]) Must() func(T, T) T {
	return func(a, b T) T {
		out, err := o(a, b)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return out
	}
}

// AndThen feeds o's result into after. The first failure stops the chain and
// propagates unmodified.
func (o BinaryOperator[T]) AndThen(after UnaryOperator[T]) BinaryOperator[T] {
	if after == nil {
		panic("failz: AndThen requires a non-nil operator")
	}
	return func(a, b T) (T, error) {
		mid, err := o(a, b)
		if err != nil {
			var zero T
			return zero, err
		}
		return after(mid)
	}
}
