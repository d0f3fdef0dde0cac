package failz

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

var (
	clockMu sync.RWMutex
	clock   clockz.Clock = clockz.RealClock
)

// WithClock replaces the clock used to timestamp Panic values.
// Primarily useful with clockz.NewFakeClock() in tests.
func WithClock(c clockz.Clock) {
	if c == nil {
		panic("failz: WithClock requires a non-nil clock")
	}
	clockMu.Lock()
	clock = c
	clockMu.Unlock()
}

func currentClock() clockz.Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock
}

// Panic carries an ordinary error across a boundary that only accepts plain
// functions. Must raises one; CatchingX and CauseAs recover the cause on the
// far side.
//
// A Panic is immutable after construction. The cause is always non-nil. The
// stack is captured at the wrap site by NewPanic and suppressed by
// NewPanicNoTrace - the cause usually identifies the failure well enough that
// paying for a second stack on every wrap is wasted work, which is why Must
// uses the NoTrace form.
type Panic struct {
	cause     error
	message   string
	stack     []byte
	timestamp time.Time
}

// NewPanic wraps cause, capturing the stack at the wrap site.
// The message defaults to the cause's own. Panics if cause is nil.
func NewPanic(cause error) *Panic {
	return newPanic(cause, "", true)
}

// NewPanicMsg wraps cause with an explicit message, capturing the stack.
func NewPanicMsg(cause error, message string) *Panic {
	return newPanic(cause, message, true)
}

// NewPanicNoTrace wraps cause without capturing a stack. This is the
// near-zero-overhead form used by the Must conversions.
func NewPanicNoTrace(cause error) *Panic {
	return newPanic(cause, "", false)
}

// NewPanicNoTraceMsg wraps cause with an explicit message, no stack capture.
func NewPanicNoTraceMsg(cause error, message string) *Panic {
	return newPanic(cause, message, false)
}

func newPanic(cause error, message string, capture bool) *Panic {
	if cause == nil {
		panic("failz: Panic requires a non-nil cause")
	}
	if message == "" {
		message = cause.Error()
	}
	p := &Panic{
		cause:     cause,
		message:   message,
		timestamp: currentClock().Now(),
	}
	if capture {
		p.stack = debug.Stack()
	}
	return p
}

// Error implements the error interface.
func (p *Panic) Error() string {
	return p.message
}

// Unwrap returns the cause, supporting errors.Is and errors.As.
func (p *Panic) Unwrap() error {
	return p.cause
}

// Cause returns the wrapped error.
func (p *Panic) Cause() error {
	return p.cause
}

// Stack returns the stack captured at the wrap site, or nil for the
// NoTrace constructors.
func (p *Panic) Stack() []byte {
	return p.stack
}

// Timestamp returns when the Panic was constructed.
func (p *Panic) Timestamp() time.Time {
	return p.timestamp
}

// CauseAs returns p's cause as E. If the cause does not match E, CauseAs
// panics: asking for a cause you did not anticipate is a programming error,
// not a recoverable condition.
//
// Typical use is re-raising the cause on a fallible path:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if p, ok := r.(*failz.Panic); ok {
//	            err = failz.CauseAs[*ParseError](p)
//	            return
//	        }
//	        panic(r)
//	    }
//	}()
func CauseAs[E error](p *Panic) E {
	var target E
	if errors.As(p.cause, &target) {
		return target
	}
	panic(fmt.Sprintf("failz: unexpected cause %T: %v", p.cause, p.cause))
}

// CauseAs2 returns p's cause as an error when it matches either candidate
// kind, checked in order. No match panics, as with CauseAs.
func CauseAs2[E1, E2 error](p *Panic) error {
	var e1 E1
	if errors.As(p.cause, &e1) {
		return e1
	}
	var e2 E2
	if errors.As(p.cause, &e2) {
		return e2
	}
	panic(fmt.Sprintf("failz: unexpected cause %T: %v", p.cause, p.cause))
}

// CauseAs3 returns p's cause as an error when it matches one of three
// candidate kinds, checked in order. No match panics, as with CauseAs.
func CauseAs3[E1, E2, E3 error](p *Panic) error {
	var e1 E1
	if errors.As(p.cause, &e1) {
		return e1
	}
	var e2 E2
	if errors.As(p.cause, &e2) {
		return e2
	}
	var e3 E3
	if errors.As(p.cause, &e3) {
		return e3
	}
	panic(fmt.Sprintf("failz: unexpected cause %T: %v", p.cause, p.cause))
}
