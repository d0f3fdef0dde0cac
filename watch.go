package failz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Watch wrapper.
const (
	// Metrics.
	WatchCallsTotal  = metricz.Key("watch.calls.total")
	WatchErrorsTotal = metricz.Key("watch.errors.total")

	// Spans.
	WatchCallSpan = tracez.Key("watch.call")

	// Tags.
	WatchTagError = tracez.Tag("watch.error")

	// Hook event keys.
	WatchEventSuccess = hookz.Key("watch.success")
	WatchEventError   = hookz.Key("watch.error")
)

// WatchEvent describes one observed call. It is emitted via hookz on both
// outcomes, letting external systems track error rates and latency without
// the protocol combinators ever logging anything themselves.
type WatchEvent struct {
	Name      string        // Watch instance name
	Err       error         // nil on success
	Input     interface{}   // The input of the observed call
	Duration  time.Duration // How long the inner function ran
	Timestamp time.Time     // When the call completed
}

// Watch wraps a Function with metrics, tracing, and event hooks at the call
// boundary. The inner function's result and error are relayed unchanged -
// Watch observes, it never adapts. Combine it with the protocol combinators
// by wrapping the already-adapted Function.
//
// Example:
//
//	fetch := failz.NewFunction(fetchUser).Fallback(fetchUserReplica)
//	watched := failz.NewWatch("fetch-user", fetch)
//
//	_ = watched.OnError(func(_ context.Context, ev failz.WatchEvent) error {
//	    log.Printf("fetch-user failed on %v: %v", ev.Input, ev.Err)
//	    return nil
//	})
//
//	user, err := watched.Call(ctx, id)
type Watch[T, R any] struct {
	fn      Function[T, R]
	name    string
	mu      sync.RWMutex
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[WatchEvent]
}

// NewWatch creates a Watch around fn. Panics if fn is nil.
func NewWatch[T, R any](name string, fn Function[T, R]) *Watch[T, R] {
	if fn == nil {
		panic("failz: NewWatch requires a non-nil function")
	}

	metrics := metricz.New()
	metrics.Counter(WatchCallsTotal)
	metrics.Counter(WatchErrorsTotal)

	return &Watch[T, R]{
		name:    name,
		fn:      fn,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[WatchEvent](),
	}
}

// Call invokes the wrapped function, recording metrics, a span, and an event.
// The result and error are relayed exactly as the inner function produced
// them; panics from the inner function propagate untouched.
func (w *Watch[T, R]) Call(ctx context.Context, in T) (out R, err error) {
	w.metrics.Counter(WatchCallsTotal).Inc()

	ctx, span := w.tracer.StartSpan(ctx, WatchCallSpan)
	defer span.Finish()

	w.mu.RLock()
	fn := w.fn
	w.mu.RUnlock()

	start := currentClock().Now()
	out, err = fn(in)
	elapsed := currentClock().Now().Sub(start)

	event := WatchEvent{
		Name:      w.name,
		Err:       err,
		Input:     in,
		Duration:  elapsed,
		Timestamp: currentClock().Now(),
	}

	if err != nil {
		w.metrics.Counter(WatchErrorsTotal).Inc()
		span.SetTag(WatchTagError, err.Error())
		_ = w.hooks.Emit(ctx, WatchEventError, event) //nolint:errcheck
		return out, err
	}

	_ = w.hooks.Emit(ctx, WatchEventSuccess, event) //nolint:errcheck
	return out, nil
}

// SetFunction swaps the wrapped function.
func (w *Watch[T, R]) SetFunction(fn Function[T, R]) *Watch[T, R] {
	if fn == nil {
		panic("failz: SetFunction requires a non-nil function")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fn = fn
	return w
}

// Function returns the currently wrapped function.
func (w *Watch[T, R]) Function() Function[T, R] {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fn
}

// Name returns the name of this watch.
func (w *Watch[T, R]) Name() string {
	return w.name
}

// Metrics returns the metrics registry for this watch.
func (w *Watch[T, R]) Metrics() *metricz.Registry {
	return w.metrics
}

// Tracer returns the tracer for this watch.
func (w *Watch[T, R]) Tracer() *tracez.Tracer {
	return w.tracer
}

// OnSuccess registers a handler called asynchronously after each successful
// call.
func (w *Watch[T, R]) OnSuccess(handler func(context.Context, WatchEvent) error) error {
	_, err := w.hooks.Hook(WatchEventSuccess, handler)
	return err
}

// OnError registers a handler called asynchronously after each failed call.
func (w *Watch[T, R]) OnError(handler func(context.Context, WatchEvent) error) error {
	_, err := w.hooks.Hook(WatchEventError, handler)
	return err
}

// Close gracefully shuts down observability components.
func (w *Watch[T, R]) Close() error {
	if w.tracer != nil {
		w.tracer.Close()
	}
	w.hooks.Close()
	return nil
}
