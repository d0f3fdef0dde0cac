package failz

import (
	"errors"
	"testing"
)

func TestSupplier(t *testing.T) {
	boom := errors.New("boom")

	attempts := 0
	flaky := NewSupplier(func() (string, error) {
		attempts++
		if attempts == 1 {
			return "", boom
		}
		return "value", nil
	})

	t.Run("Fallback Supplies From The Alternate", func(t *testing.T) {
		attempts = 0
		backup := NewSupplier(func() (string, error) { return "backup", nil })

		out, err := flaky.Fallback(backup)()
		if err != nil || out != "backup" {
			t.Errorf("expected the alternate's value, got (%q, %v)", out, err)
		}

		out, err = flaky.Fallback(backup)()
		if err != nil || out != "value" {
			t.Errorf("expected the base value on success, got (%q, %v)", out, err)
		}
	})

	t.Run("OrReturn And Otherwise", func(t *testing.T) {
		attempts = 0
		if flaky.OrReturn("default")() != "default" {
			t.Error("expected the constant on failure")
		}

		attempts = 0
		if flaky.Otherwise(func() string { return "computed" })() != "computed" {
			t.Error("expected the alternate on failure")
		}
	})

	t.Run("Must And Catching Round Trip", func(t *testing.T) {
		cause := &causeError{msg: "no value"}
		s := NewSupplier(func() (int, error) { return 0, cause })

		restored := CatchingSupplier[*causeError](s.Must())
		_, err := restored()
		var got *causeError
		if !errors.As(err, &got) || got != cause {
			t.Errorf("expected the original cause, got %v", err)
		}
	})

	t.Run("MapError Preserves Success", func(t *testing.T) {
		attempts = 1 // next call succeeds
		mapped := flaky.MapError(func(error) error { return errors.New("never") })
		out, err := mapped()
		if err != nil || out != "value" {
			t.Errorf("expected (\"value\", nil), got (%q, %v)", out, err)
		}
	})

	t.Run("Lift", func(t *testing.T) {
		lifted := LiftSupplier(func() int { return 7 })
		out, err := lifted()
		if err != nil || out != 7 {
			t.Errorf("expected (7, nil), got (%d, %v)", out, err)
		}
	})
}

func TestRunnable(t *testing.T) {
	boom := errors.New("boom")

	runs := 0
	failing := NewRunnable(func() error {
		runs++
		return boom
	})

	t.Run("OrIgnore Suppresses The Declared Error Only", func(t *testing.T) {
		runs = 0
		failing.OrIgnore()()
		if runs != 1 {
			t.Error("base must still run")
		}

		panicky := NewRunnable(func() error { panic("fatal") })
		if capturePanic(func() { panicky.OrIgnore()() }) == nil {
			t.Error("panics must cross OrIgnore untouched")
		}
	})

	t.Run("Otherwise Runs The Alternate", func(t *testing.T) {
		altRan := false
		failing.Otherwise(func() { altRan = true })()
		if !altRan {
			t.Error("expected the alternate to run on failure")
		}

		altRan = false
		LiftRunnable(func() {}).Otherwise(func() { altRan = true })()
		if altRan {
			t.Error("alternate must not run on success")
		}
	})

	t.Run("AndThen Propagates The First Failure", func(t *testing.T) {
		secondRan := false
		err := failing.AndThen(NewRunnable(func() error {
			secondRan = true
			return nil
		}))()
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
		if secondRan {
			t.Error("second runnable must not run after a failure")
		}
	})

	t.Run("Must And Catching Round Trip", func(t *testing.T) {
		cause := &causeError{msg: "task failed"}
		r := NewRunnable(func() error { return cause })

		err := CatchingRunnable[*causeError](r.Must())()
		var got *causeError
		if !errors.As(err, &got) || got != cause {
			t.Errorf("expected the original cause, got %v", err)
		}
	})

	t.Run("Recover And MapError", func(t *testing.T) {
		handled := failing.Recover(func(err error) error {
			if !errors.Is(err, boom) {
				t.Errorf("handler received unexpected error: %v", err)
			}
			return nil
		})
		if err := handled(); err != nil {
			t.Errorf("expected nil after recovery, got %v", err)
		}

		wrapped := errors.New("wrapped")
		if err := failing.MapError(func(error) error { return wrapped })(); err != wrapped {
			t.Errorf("expected the mapped error, got %v", err)
		}
	})
}
