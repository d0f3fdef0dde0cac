package failz

import (
	"errors"
	"strconv"
	"testing"
)

func TestCompose(t *testing.T) {
	atoi := NewFunction(strconv.Atoi)

	t.Run("Then Feeds Results Forward", func(t *testing.T) {
		double := LiftFunction(func(n int) int { return n * 2 })
		parseDouble := Then(atoi, double)

		out, err := parseDouble("21")
		if err != nil || out != 42 {
			t.Errorf("expected (42, nil), got (%d, %v)", out, err)
		}
	})

	t.Run("Then Propagates The First Failure Without Catching", func(t *testing.T) {
		secondRan := false
		second := NewFunction(func(n int) (int, error) {
			secondRan = true
			return n, nil
		})

		_, err := Then(atoi, second)("not a number")
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("expected the parse error unmodified, got %v", err)
		}
		if secondRan {
			t.Error("second function must not run after a failure")
		}
	})

	t.Run("ThenBi", func(t *testing.T) {
		concat := LiftBiFunction(func(a, b string) string { return a + b })
		parsed := ThenBi(concat, atoi)

		out, err := parsed("4", "2")
		if err != nil || out != 42 {
			t.Errorf("expected (42, nil), got (%d, %v)", out, err)
		}
	})

	t.Run("ThenConsume", func(t *testing.T) {
		var seen []int
		collect := NewConsumer(func(n int) error {
			seen = append(seen, n)
			return nil
		})

		if err := ThenConsume(atoi, collect)("7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seen) != 1 || seen[0] != 7 {
			t.Errorf("expected the parsed value consumed, got %v", seen)
		}

		if err := ThenConsume(atoi, collect)("x"); err == nil {
			t.Error("expected the parse error to propagate")
		}
		if len(seen) != 1 {
			t.Error("consumer must not run after a failure")
		}
	})

	t.Run("ThenTest", func(t *testing.T) {
		even := LiftPredicate(func(n int) bool { return n%2 == 0 })
		isEven := ThenTest(atoi, even)

		ok, err := isEven("4")
		if err != nil || !ok {
			t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
		}
		_, err = isEven("x")
		if err == nil {
			t.Error("expected the parse error to propagate")
		}
	})

	t.Run("Nil Arguments Panic", func(t *testing.T) {
		if capturePanic(func() { Then[string, int, int](atoi, nil) }) == nil {
			t.Error("expected panic for nil function")
		}
		if capturePanic(func() { Then[string, int, int](nil, nil) }) == nil {
			t.Error("expected panic for nil function")
		}
	})
}

func TestBiFunction(t *testing.T) {
	boom := errors.New("boom")

	safeDiv := NewBiFunction(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, boom
		}
		return a / b, nil
	})

	t.Run("Recover Produces A Replacement Value", func(t *testing.T) {
		out, err := safeDiv.Recover(func(error) (float64, error) { return 0, nil })(1, 0)
		if err != nil || out != 0 {
			t.Errorf("expected (0, nil), got (%v, %v)", out, err)
		}
	})

	t.Run("MustMap Panics With The Mapped Error", func(t *testing.T) {
		mapped := errors.New("mapped divide error")
		recovered := capturePanic(func() {
			safeDiv.MustMap(func(error) error { return mapped })(1, 0)
		})
		if recovered != error(mapped) {
			t.Errorf("expected the mapped error as the panic value, got %v", recovered)
		}
	})

	t.Run("Must And Catching Round Trip", func(t *testing.T) {
		cause := &causeError{msg: "pair rejected"}
		f := NewBiFunction(func(a, b int) (int, error) { return 0, cause })

		_, err := CatchingBiFunction[*causeError](f.Must())(1, 2)
		var got *causeError
		if !errors.As(err, &got) || got != cause {
			t.Errorf("expected the original cause, got %v", err)
		}
	})

	t.Run("Otherwise Sees Original Arguments", func(t *testing.T) {
		var gotA, gotB float64
		plain := safeDiv.Otherwise(func(a, b float64) float64 {
			gotA, gotB = a, b
			return -1
		})
		if plain(3, 0) != -1 {
			t.Error("expected the alternate result")
		}
		if gotA != 3 || gotB != 0 {
			t.Errorf("expected (3, 0), got (%v, %v)", gotA, gotB)
		}
	})
}
