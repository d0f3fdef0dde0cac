package failz

import "errors"

// UnaryOperator is a fallible single-argument operation whose result has the
// argument's type. It carries the same protocol as Function plus same-type
// composition, which only the operator shapes can offer as methods.
type UnaryOperator[T any] func(T) (T, error)

// NewUnaryOperator pins fn to the UnaryOperator shape, rejecting nil eagerly.
func NewUnaryOperator[T any](fn func(T) (T, error)) UnaryOperator[T] {
	if fn == nil {
		panic("failz: NewUnaryOperator requires a non-nil function")
	}
	return fn
}

// LiftUnaryOperator widens a plain operator into a UnaryOperator that never
// fails.
func LiftUnaryOperator[T any](fn func(T) T) UnaryOperator[T] {
	if fn == nil {
		panic("failz: LiftUnaryOperator requires a non-nil function")
	}
	return func(in T) (T, error) {
		return fn(in), nil
	}
}

// CatchingUnaryOperator adapts a plain operator that may panic with a *Panic
// back into a fallible UnaryOperator. A recovered *Panic whose cause matches
// E yields the cause as the returned error; any other panic value is
// re-panicked unmodified.
func CatchingUnaryOperator[E error, T any](fn func(T) T) UnaryOperator[T] {
	if fn == nil {
		panic("failz: CatchingUnaryOperator requires a non-nil function")
	}
	return func(in T) (out T, err error) {
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
		return fn(in), nil
	}
}

// Identity returns the operator that yields its argument unchanged.
func Identity[T any]() UnaryOperator[T] {
	return func(in T) (T, error) {
		return in, nil
	}
}

// MapError rewrites the error through mapper, preserving success results.
func (o UnaryOperator[T]) MapError(mapper func(error) error) UnaryOperator[T] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(in T) (T, error) {
		out, err := o(in)
		if err != nil {
			var zero T
			return zero, mapper(err)
		}
		return out, nil
	}
}

// MustMap returns a plain operator that panics with mapper(err) on failure.
func (o UnaryOperator[T]) MustMap(mapper func(error) error) func(T) T {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(in T) T {
		out, err := o(in)
		if err != nil {
			panic(mapper(err))
		}
		return out
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (o UnaryOperator[T]) Recover(handler func(error) (T, error)) UnaryOperator[T] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(in T) (T, error) {
		out, err := o(in)
		if err != nil {
			return handler(err)
		}
		return out, nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// operator.
func (o UnaryOperator[T]) RecoverWith(handler func(error) T) func(T) T {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(in T) T {
		out, err := o(in)
		if err != nil {
			return handler(err)
		}
		return out
	}
}

// Fallback invokes alt with the original argument when o fails. The error is
// discarded.
func (o UnaryOperator[T]) Fallback(alt UnaryOperator[T]) UnaryOperator[T] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(in T) (T, error) {
		out, err := o(in)
		if err != nil {
			return alt(in)
		}
		return out, nil
	}
}

// Otherwise invokes the plain alt with the original argument when o fails,
// producing a plain operator.
func (o UnaryOperator[T]) Otherwise(alt func(T) T) func(T) T {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(in T) T {
		out, err := o(in)
		if err != nil {
			return alt(in)
		}
		return out
	}
}

// OrReturn substitutes a constant for any failure, producing a plain operator.
func (o UnaryOperator[T]) OrReturn(v T) func(T) T {
	return func(in T) T {
		out, err := o(in)
		if err != nil {
			return v
		}
		return out
	}
}

// Must returns a plain operator that panics with NewPanicNoTrace(err) on
// failure.
func (o UnaryOperator[T]) Must() func(T) T {
	return func(in T) T {
		out, err := o(in)
		if err != nil {
			panic(NewPanicNoTrace(err))
		}
		return out
	}
}

// AndThen feeds o's result into next. The first failure stops the chain and
// propagates unmodified.
func (o UnaryOperator[T]) AndThen(next UnaryOperator[T]) UnaryOperator[T] {
	if next == nil {
		panic("failz: AndThen requires a non-nil operator")
	}
	return func(in T) (T, error) {
		mid, err := o(in)
		if err != nil {
			var zero T
			return zero, err
		}
		return next(mid)
	}
}

// ComposeWith feeds prev's result into o; the mirror of AndThen.
func (o UnaryOperator[T]) ComposeWith(prev UnaryOperator[T]) UnaryOperator[T] {
	if prev == nil {
		panic("failz: ComposeWith requires a non-nil operator")
	}
	return prev.AndThen(o)
}
