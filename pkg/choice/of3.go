package choice

// Of3 holds exactly one of three alternatives.
type Of3[T1, T2, T3 any] struct {
	slot  uint8
	value any
}

// Choice1Of3 returns a union occupying slot 1.
func Choice1Of3[T1, T2, T3 any](v T1) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{slot: 0, value: v}
}

func Choice2Of3[T1, T2, T3 any](v T2) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{slot: 1, value: v}
}

func Choice3Of3[T1, T2, T3 any](v T3) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{slot: 2, value: v}
}

func (c Of3[T1, T2, T3]) Slot() int {
	return int(c.slot) + 1
}

func (Of3[T1, T2, T3]) Arity() int {
	return 3
}

// MatchOf3 calls the handler for the active slot with its value and
// returns the result. The other handlers are never called.
func MatchOf3[T1, T2, T3, R any](c Of3[T1, T2, T3],
	first func(T1) R, second func(T2) R, third func(T3) R) R {
	Require("MatchOf3", "first", first)
	Require("MatchOf3", "second", second)
	Require("MatchOf3", "third", third)

	switch c.slot {
	case 1:
		return second(as[T2](c.value))
	case 2:
		return third(as[T3](c.value))
	default:
		return first(as[T1](c.value))
	}
}

// Switch is the statement form of MatchOf3.
func (c Of3[T1, T2, T3]) Switch(first func(T1), second func(T2), third func(T3)) {
	Require("Of3.Switch", "first", first)
	Require("Of3.Switch", "second", second)
	Require("Of3.Switch", "third", third)

	switch c.slot {
	case 1:
		second(as[T2](c.value))
	case 2:
		third(as[T3](c.value))
	default:
		first(as[T1](c.value))
	}
}

// Equal reports whether both unions occupy the same slot with equal values.
func (c Of3[T1, T2, T3]) Equal(other Of3[T1, T2, T3]) bool {
	if c.slot != other.slot {
		return false
	}
	switch c.slot {
	case 1:
		return valueEqual(as[T2](c.value), as[T2](other.value))
	case 2:
		return valueEqual(as[T3](c.value), as[T3](other.value))
	default:
		return valueEqual(as[T1](c.value), as[T1](other.value))
	}
}

// Equals is Equal for an untyped argument; it is false for nil and for
// any other type.
func (c Of3[T1, T2, T3]) Equals(other any) bool {
	switch o := other.(type) {
	case Of3[T1, T2, T3]:
		return c.Equal(o)
	case *Of3[T1, T2, T3]:
		return o != nil && c.Equal(*o)
	}
	return false
}

func (c Of3[T1, T2, T3]) Hash() uint64 {
	return hashOf(3, c.slot, c.payload())
}

func (c Of3[T1, T2, T3]) String() string {
	return stringOf(c.payload())
}

func (c Of3[T1, T2, T3]) payload() any {
	if c.slot == 0 {
		return orZero[T1](c.value)
	}
	return c.value
}
