package choice

// Of4 holds exactly one of four alternatives.
type Of4[T1, T2, T3, T4 any] struct {
	slot  uint8
	value any
}

// Choice1Of4 returns a union occupying slot 1.
func Choice1Of4[T1, T2, T3, T4 any](v T1) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{slot: 0, value: v}
}

func Choice2Of4[T1, T2, T3, T4 any](v T2) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{slot: 1, value: v}
}

func Choice3Of4[T1, T2, T3, T4 any](v T3) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{slot: 2, value: v}
}

func Choice4Of4[T1, T2, T3, T4 any](v T4) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{slot: 3, value: v}
}

func (c Of4[T1, T2, T3, T4]) Slot() int {
	return int(c.slot) + 1
}

func (Of4[T1, T2, T3, T4]) Arity() int {
	return 4
}

// MatchOf4 calls the handler for the active slot with its value and
// returns the result. The other handlers are never called.
func MatchOf4[T1, T2, T3, T4, R any](c Of4[T1, T2, T3, T4],
	first func(T1) R, second func(T2) R, third func(T3) R, fourth func(T4) R) R {
	Require("MatchOf4", "first", first)
	Require("MatchOf4", "second", second)
	Require("MatchOf4", "third", third)
	Require("MatchOf4", "fourth", fourth)

	switch c.slot {
	case 1:
		return second(as[T2](c.value))
	case 2:
		return third(as[T3](c.value))
	case 3:
		return fourth(as[T4](c.value))
	default:
		return first(as[T1](c.value))
	}
}

// Switch is the statement form of MatchOf4.
func (c Of4[T1, T2, T3, T4]) Switch(first func(T1), second func(T2), third func(T3), fourth func(T4)) {
	Require("Of4.Switch", "first", first)
	Require("Of4.Switch", "second", second)
	Require("Of4.Switch", "third", third)
	Require("Of4.Switch", "fourth", fourth)

	switch c.slot {
	case 1:
		second(as[T2](c.value))
	case 2:
		third(as[T3](c.value))
	case 3:
		fourth(as[T4](c.value))
	default:
		first(as[T1](c.value))
	}
}

// Equal reports whether both unions occupy the same slot with equal values.
func (c Of4[T1, T2, T3, T4]) Equal(other Of4[T1, T2, T3, T4]) bool {
	if c.slot != other.slot {
		return false
	}
	switch c.slot {
	case 1:
		return valueEqual(as[T2](c.value), as[T2](other.value))
	case 2:
		return valueEqual(as[T3](c.value), as[T3](other.value))
	case 3:
		return valueEqual(as[T4](c.value), as[T4](other.value))
	default:
		return valueEqual(as[T1](c.value), as[T1](other.value))
	}
}

// Equals is Equal for an untyped argument; it is false for nil and for
// any other type.
func (c Of4[T1, T2, T3, T4]) Equals(other any) bool {
	switch o := other.(type) {
	case Of4[T1, T2, T3, T4]:
		return c.Equal(o)
	case *Of4[T1, T2, T3, T4]:
		return o != nil && c.Equal(*o)
	}
	return false
}

func (c Of4[T1, T2, T3, T4]) Hash() uint64 {
	return hashOf(4, c.slot, c.payload())
}

func (c Of4[T1, T2, T3, T4]) String() string {
	return stringOf(c.payload())
}

func (c Of4[T1, T2, T3, T4]) payload() any {
	if c.slot == 0 {
		return orZero[T1](c.value)
	}
	return c.value
}
