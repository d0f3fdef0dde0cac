package failz

import (
	"errors"
	"testing"
)

func TestPredicate(t *testing.T) {
	boom := errors.New("boom")

	positive := NewPredicate(func(n int) (bool, error) {
		if n == 0 {
			return false, boom
		}
		return n > 0, nil
	})

	t.Run("And Short-Circuits On False", func(t *testing.T) {
		rightRan := false
		right := NewPredicate(func(n int) (bool, error) {
			rightRan = true
			return true, nil
		})

		ok, err := positive.And(right)(-5)
		if err != nil || ok {
			t.Errorf("expected (false, nil), got (%v, %v)", ok, err)
		}
		if rightRan {
			t.Error("right side must not run when the left decides")
		}

		ok, err = positive.And(right)(5)
		if err != nil || !ok || !rightRan {
			t.Error("expected right side to run and agree")
		}
	})

	t.Run("And Left Error Short-Circuits", func(t *testing.T) {
		rightRan := false
		right := NewPredicate(func(int) (bool, error) {
			rightRan = true
			return true, nil
		})

		_, err := positive.And(right)(0)
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
		if rightRan {
			t.Error("right side must not run after a left error")
		}
	})

	t.Run("Or Short-Circuits On True", func(t *testing.T) {
		rightRan := false
		right := NewPredicate(func(int) (bool, error) {
			rightRan = true
			return false, nil
		})

		ok, err := positive.Or(right)(5)
		if err != nil || !ok {
			t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
		}
		if rightRan {
			t.Error("right side must not run when the left passes")
		}

		ok, _ = positive.Or(right)(-5)
		if !rightRan {
			t.Error("right side must run when the left fails the test")
		}
		if ok {
			t.Error("expected combined verdict false")
		}
	})

	t.Run("Negate Inverts Only The Verdict", func(t *testing.T) {
		ok, err := positive.Negate()(5)
		if err != nil || ok {
			t.Errorf("expected (false, nil), got (%v, %v)", ok, err)
		}
		_, err = positive.Negate()(0)
		if !errors.Is(err, boom) {
			t.Errorf("errors must propagate unmodified, got %v", err)
		}
	})

	t.Run("OrReturn Substitutes The Verdict", func(t *testing.T) {
		plain := positive.OrReturn(true)
		if !plain(0) {
			t.Error("expected the substituted verdict on failure")
		}
		if plain(-2) {
			t.Error("expected the base verdict on success")
		}
	})

	t.Run("Must And Catching Round Trip", func(t *testing.T) {
		cause := &causeError{msg: "test failed"}
		p := NewPredicate(func(string) (bool, error) { return false, cause })

		restored := CatchingPredicate[*causeError](p.Must())
		_, err := restored("x")
		var got *causeError
		if !errors.As(err, &got) || got != cause {
			t.Errorf("expected the original cause, got %v", err)
		}
	})

	t.Run("Lift And Fallback", func(t *testing.T) {
		even := LiftPredicate(func(n int) bool { return n%2 == 0 })
		ok, err := positive.Fallback(even)(0)
		if err != nil || !ok {
			t.Errorf("expected the alternate's verdict on the original argument, got (%v, %v)", ok, err)
		}
	})

	t.Run("Nil Arguments Panic", func(t *testing.T) {
		if capturePanic(func() { positive.And(nil) }) == nil {
			t.Error("expected panic for nil predicate")
		}
		if capturePanic(func() { positive.Or(nil) }) == nil {
			t.Error("expected panic for nil predicate")
		}
		if capturePanic(func() { LiftPredicate[int](nil) }) == nil {
			t.Error("expected panic for nil function")
		}
	})
}

func TestBiPredicate(t *testing.T) {
	boom := errors.New("boom")

	ordered := NewBiPredicate(func(a, b int) (bool, error) {
		if a == b {
			return false, boom
		}
		return a < b, nil
	})

	t.Run("Protocol Applies Identically To Two Arguments", func(t *testing.T) {
		ok, err := ordered(1, 2)
		if err != nil || !ok {
			t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
		}

		plain := ordered.OrReturn(false)
		if plain(3, 3) {
			t.Error("expected the substituted verdict on failure")
		}

		var gotA, gotB int
		alt := ordered.Otherwise(func(a, b int) bool {
			gotA, gotB = a, b
			return true
		})
		if !alt(4, 4) {
			t.Error("expected the alternate verdict")
		}
		if gotA != 4 || gotB != 4 {
			t.Error("alternate must see the original arguments")
		}
	})

	t.Run("Negate And And Compose", func(t *testing.T) {
		notLess := ordered.Negate()
		ok, err := notLess(2, 1)
		if err != nil || !ok {
			t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
		}

		bothSmall := ordered.And(NewBiPredicate(func(a, b int) (bool, error) {
			return b < 10, nil
		}))
		ok, err = bothSmall(1, 2)
		if err != nil || !ok {
			t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
		}
	})
}
