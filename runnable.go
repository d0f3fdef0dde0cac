package failz

import "errors"

// Runnable is a fallible zero-argument operation with no result.
type Runnable func() error

// NewRunnable pins fn to the Runnable shape, rejecting nil eagerly.
func NewRunnable(fn func() error) Runnable {
	if fn == nil {
		panic("failz: NewRunnable requires a non-nil function")
	}
	return fn
}

// LiftRunnable widens a plain function into a Runnable that never fails.
func LiftRunnable(fn func()) Runnable {
	if fn == nil {
		panic("failz: LiftRunnable requires a non-nil function")
	}
	return func() error {
		fn()
		return nil
	}
}

// CatchingRunnable adapts a plain function that may panic with a *Panic back
// into a fallible Runnable. A recovered *Panic whose cause matches E yields
// the cause as the returned error; any other panic value is re-panicked
// unmodified.
func CatchingRunnable[E error](fn func()) Runnable {
	if fn == nil {
		panic("failz: CatchingRunnable requires a non-nil function")
	}
	return func() (err error) {
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
		fn()
		return nil
	}
}

// MapError rewrites the error through mapper.
func (r Runnable) MapError(mapper func(error) error) Runnable {
	if mapper == nil {
		panic("failz: MapError requires a non-nil mapper")
	}
	return func() error {
		if err := r(); err != nil {
			return mapper(err)
		}
		return nil
	}
}

// MustMap returns a plain function that panics with mapper(err) on failure.
func (r Runnable) MustMap(mapper func(error) error) func() {
	if mapper == nil {
		panic("failz: MustMap requires a non-nil mapper")
	}
	return func() {
		if err := r(); err != nil {
			panic(mapper(err))
		}
	}
}

// Recover delegates failures to handler, which receives the error and may
// itself fail.
func (r Runnable) Recover(handler func(error) error) Runnable {
	if handler == nil {
		panic("failz: Recover requires a non-nil handler")
	}
	return func() error {
		if err := r(); err != nil {
			return handler(err)
		}
		return nil
	}
}

// RecoverWith delegates failures to an infallible handler, producing a plain
// function.
func (r Runnable) RecoverWith(handler func(error)) func() {
	if handler == nil {
		panic("failz: RecoverWith requires a non-nil handler")
	}
	return func() {
		if err := r(); err != nil {
			handler(err)
		}
	}
}

// Fallback invokes alt when r fails. The error is discarded.
func (r Runnable) Fallback(alt Runnable) Runnable {
	if alt == nil {
		panic("failz: Fallback requires a non-nil alternate")
	}
	return func() error {
		if err := r(); err != nil {
			return alt()
		}
		return nil
	}
}

// Otherwise invokes the plain alt when r fails, producing a plain function.
func (r Runnable) Otherwise(alt func()) func() {
	if alt == nil {
		panic("failz: Otherwise requires a non-nil alternate")
	}
	return func() {
		if err := r(); err != nil {
			alt()
		}
	}
}

// OrIgnore suppresses any failure, producing a plain function.
func (r Runnable) OrIgnore() func() {
	return func() {
		_ = r()
	}
}

// Must returns a plain function that panics with NewPanicNoTrace(err) on
// failure.
func (r Runnable) Must() func() {
	return func() {
		if err := r(); err != nil {
			panic(NewPanicNoTrace(err))
		}
	}
}

// AndThen runs r, then next. The first failure stops the chain and propagates
// unmodified; no catching occurs here.
func (r Runnable) AndThen(next Runnable) Runnable {
	if next == nil {
		panic("failz: AndThen requires a non-nil runnable")
	}
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}
