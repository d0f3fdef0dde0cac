package failz

import "errors"

// BiConsumer is a fallible two-argument operation with no result.
type BiConsumer[A, B any] func(A, B) error

// NewBiConsumer pins fn to the BiConsumer shape, rejecting nil eagerly.
func NewBiConsumer[A, B any](fn func(A, B) error) BiConsumer[A, B] {
	if fn == nil {
		panic("failz: NewBiConsumer requires a non-nil function")
	}
	return fn
}

// LiftBiConsumer widens a plain two-argument consumer into a BiConsumer that
// never fails.
func LiftBiConsumer[A, B any](fn func(A, B)) BiConsumer[A, B] {
	if fn == nil {
		panic("failz: LiftBiConsumer requires a non-nil function")
	}
	return func(a A, b B) error {
		fn(a, b)
		return nil
	}
}

// CatchingBiConsumer adapts a plain two-argument consumer that may panic with
// a *Panic back into a fallible BiConsumer. A recovered *Panic whose cause
// matches E yields the cause as the returned error; any other panic value is
// re-panicked unmodified.
func CatchingBiConsumer[E error, A, B any](fn func(A, B)) BiConsumer[A, B] {
	if fn == nil {
		panic("failz: CatchingBiConsumer requires a non-nil function")
	}
	return func(a A, b B) (err error) {
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
		fn(a, b)
		return nil
	}
}

// MapError rewrites the error through mapper.
func (c BiConsumer[A, B]) MapError(mapper func(error) error) BiConsumer[A, B] {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return mapper(err)
		}
		return nil
	}
}

// MustMap returns a plain consumer that panics with mapper(err) on failure.
func (c BiConsumer[A, B]) MustMap(mapper func(error) error) func(A, B) {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func(a A, b B) {
		if err := c(a, b); err != nil {
			panic(mapper(err))
		}
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (c BiConsumer[A, B]) Recover(handler func(error) error) BiConsumer[A, B] {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return handler(err)
		}
		return nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// consumer.
func (c BiConsumer[A, B]) RecoverWith(handler func(error)) func(A, B) {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func(a A, b B) {
		if err := c(a, b); err != nil {
			handler(err)
		}
	}
}

// Fallback invokes alt with the original arguments when c fails. The error is
// discarded.
func (c BiConsumer[A, B]) Fallback(alt BiConsumer[A, B]) BiConsumer[A, B] {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return alt(a, b)
		}
		return nil
	}
}

// Otherwise invokes the plain alt with the original arguments when c fails,
// producing a plain consumer.
func (c BiConsumer[A, B]) Otherwise(alt func(A, B)) func(A, B) {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func(a A, b B) {
		if err := c(a, b); err != nil {
			alt(a, b)
		}
	}
}

// OrIgnore suppresses any failure, producing a plain consumer.
func (c BiConsumer[A, B]) OrIgnore() func(A, B) {
	return func(a A, b B) {
		_ = c(a, b)
	}
}

// Must returns a plain consumer that panics with NewPanicNoTrace(err) on
// failure.
func (c BiConsumer[A, B]) Must() func(A, B) {
	return func(a A, b B) {
		if err := c(a, b); err != nil {
			panic(NewPanicNoTrace(err))
		}
	}
}

// AndThen runs c, then next, on the same arguments. The first failure stops
// the chain and propagates unmodified.
func (c BiConsumer[A, B]) AndThen(next BiConsumer[A, B]) BiConsumer[A, B] {
	if next == nil {
		panic("failz: AndThen requires a non-nil consumer")
	}
	return func(a A, b B) error {
		if err := c(a, b); err != nil {
			return err
		}
		return next(a, b)
	}
}
