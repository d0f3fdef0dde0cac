package failz

// Cross-type composition lives at package level: Go methods cannot introduce
// type parameters, so a Function cannot offer AndThen to a differently-typed
// successor the way UnaryOperator can.

// Then feeds first's result into next, producing a Function from A to C.
// The first failure stops the chain and propagates unmodified; no catching
// occurs in composition.
//
// Example:
//
//	atoi := failz.NewFunction(strconv.Atoi)
//	half := failz.LiftFunction(func(n int) float64 { return float64(n) / 2 })
//	parseHalf := failz.Then(atoi, half)
func Then[A, B, C any](first Function[A, B], next Function[B, C]) Function[A, C] {
	if first == nil {
		panic("failz: Then requires a non-nil function")
	}
	if next == nil {
		panic("failz: Then requires a non-nil function")
	}
	return func(in A) (C, error) {
		mid, err := first(in)
		if err != nil {
			var zero C
			return zero, err
		}
		return next(mid)
	}
}

// ThenBi feeds first's result into next, producing a BiFunction from (A, B)
// to D. Failure semantics match Then.
func ThenBi[A, B, C, D any](first BiFunction[A, B, C], next Function[C, D]) BiFunction[A, B, D] {
	if first == nil {
		panic("failz: ThenBi requires a non-nil function")
	}
	if next == nil {
		panic("failz: ThenBi requires a non-nil function")
	}
	return func(a A, b B) (D, error) {
		mid, err := first(a, b)
		if err != nil {
			var zero D
			return zero, err
		}
		return next(mid)
	}
}

// ThenConsume feeds first's result into a Consumer, producing a Consumer of A.
func ThenConsume[A, B any](first Function[A, B], next Consumer[B]) Consumer[A] {
	if first == nil {
		panic("failz: ThenConsume requires a non-nil function")
	}
	if next == nil {
		panic("failz: ThenConsume requires a non-nil consumer")
	}
	return func(in A) error {
		mid, err := first(in)
		if err != nil {
			return err
		}
		return next(mid)
	}
}

// ThenTest feeds first's result into a Predicate, producing a Predicate of A.
func ThenTest[A, B any](first Function[A, B], next Predicate[B]) Predicate[A] {
	if first == nil {
		panic("failz: ThenTest requires a non-nil function")
	}
	if next == nil {
		panic("failz: ThenTest requires a non-nil predicate")
	}
	return func(in A) (bool, error) {
		mid, err := first(in)
		if err != nil {
			return false, err
		}
		return next(mid)
	}
}
