package failz

import "errors"

// Consumer is a fallible single-argument operation with no result.
type Consumer[T any] func(T) error

// NewConsumer pins fn to the Consumer shape, rejecting nil eagerly.
func NewConsumer[T any](fn func(T) error) Consumer[T] {
	if fn == nil {
		panic("failz: NewConsumer requires a non-nil function")
	}
	return fn
}

// LiftConsumer widens a plain consumer into a Consumer that never fails.
func LiftConsumer[T any](fn func(T)) Consumer[T] {
	if fn == nil {
		panic("failz: LiftConsumer requires a non-nil function")
	}
	return func(in T) error {
		fn(in)
		return nil
	}
}

// CatchingConsumer adapts a plain consumer that may panic with a *Panic back
// into a fallible Consumer. A recovered *Panic whose cause matches E yields
// the cause as the returned error; any other panic value is re-panicked
// unmodified.
func CatchingConsumer[E error, T any](fn func(T)) Consumer[T] {
	if fn == nil {
		panic("failz: CatchingConsumer requires a non-nil function")
	}
	return func(in T) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if p, ok := r.(*Panic); ok {
					var target E
					if errors.As(p.Cause(), &target) {
						err = target
						return
					}
				}
				panic(r)
			}
		}()
		fn(in)
		return nil
	}
}

// MapError rewrites the error through mapper.
func (c Consumer[T]) MapError(mapper func(error) error) Consumer[T] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(in T) error {
		if err := c(in); err != nil {
			return mapper(err)
		}
		return nil
	}
}

// MustMap returns a plain consumer that panics with mapper(err) on failure.
func (c Consumer[T]) MustMap(mapper func(error) error) func(T) {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(in T) {
		if err := c(in); err != nil {
			panic(mapper(err))
		}
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (c Consumer[T]) Recover(handler func(error) error) Consumer[T] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(in T) error {
		if err := c(in); err != nil {
			return handler(err)
		}
		return nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// consumer.
func (c Consumer[T]) RecoverWith(handler func(error)) func(T) {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(in T) {
		if err := c(in); err != nil {
			handler(err)
		}
	}
}

// Fallback invokes alt with the original argument when c fails. The error is
// discarded.
func (c Consumer[T]) Fallback(alt Consumer[T]) Consumer[T] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(in T) error {
		if err := c(in); err != nil {
			return alt(in)
		}
		return nil
	}
}

// Otherwise invokes the plain alt with the original argument when c fails,
// producing a plain consumer.
func (c Consumer[T]) Otherwise(alt func(T)) func(T) {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(in T) {
		if err := c(in); err != nil {
			alt(in)
		}
	}
}

// OrIgnore suppresses any failure, producing a plain consumer.
func (c Consumer[T]) OrIgnore() func(T) {
	return func(in T) {
		_ = c(in)
	}
}

// Must returns a plain consumer that panics with NewPanicNoTrace(err) on
// failure.
func (c Consumer[T]) Must() func(T) {
	return func(in T) {
		if err := c(in); err != nil {
			panic(NewPanicNoTrace(err))
		}
	}
}

// AndThen runs c, then next, on the same argument. The first failure stops
// the chain and propagates unmodified.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	if next == nil {
		panic("failz: AndThen requires a non-nil consumer")
	}
	return func(in T) error {
		if err := c(in); err != nil {
			return err
		}
		return next(in)
	}
}
