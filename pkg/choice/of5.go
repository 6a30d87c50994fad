package choice

// Of5 holds exactly one of five alternatives.
type Of5[T1, T2, T3, T4, T5 any] struct {
	slot  uint8
	value any
}

// Choice1Of5 returns a union occupying slot 1.
func Choice1Of5[T1, T2, T3, T4, T5 any](v T1) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: 0, value: v}
}

func Choice2Of5[T1, T2, T3, T4, T5 any](v T2) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: 1, value: v}
}

func Choice3Of5[T1, T2, T3, T4, T5 any](v T3) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: 2, value: v}
}

func Choice4Of5[T1, T2, T3, T4, T5 any](v T4) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: 3, value: v}
}

func Choice5Of5[T1, T2, T3, T4, T5 any](v T5) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: 4, value: v}
}

func (c Of5[T1, T2, T3, T4, T5]) Slot() int {
	return int(c.slot) + 1
}

func (Of5[T1, T2, T3, T4, T5]) Arity() int {
	return 5
}

// MatchOf5 calls the handler for the active slot with its value and
// returns the result. The other handlers are never called.
func MatchOf5[T1, T2, T3, T4, T5, R any](c Of5[T1, T2, T3, T4, T5],
	first func(T1) R, second func(T2) R, third func(T3) R, fourth func(T4) R, fifth func(T5) R) R {
	Require("MatchOf5", "first", first)
	Require("MatchOf5", "second", second)
	Require("MatchOf5", "third", third)
	Require("MatchOf5", "fourth", fourth)
	Require("MatchOf5", "fifth", fifth)

	switch c.slot {
	case 1:
		return second(as[T2](c.value))
	case 2:
		return third(as[T3](c.value))
	case 3:
		return fourth(as[T4](c.value))
	case 4:
		return fifth(as[T5](c.value))
	default:
		return first(as[T1](c.value))
	}
}

// Switch is the statement form of MatchOf5.
func (c Of5[T1, T2, T3, T4, T5]) Switch(first func(T1), second func(T2), third func(T3), fourth func(T4), fifth func(T5)) {
	Require("Of5.Switch", "first", first)
	Require("Of5.Switch", "second", second)
	Require("Of5.Switch", "third", third)
	Require("Of5.Switch", "fourth", fourth)
	Require("Of5.Switch", "fifth", fifth)

	switch c.slot {
	case 1:
		second(as[T2](c.value))
	case 2:
		third(as[T3](c.value))
	case 3:
		fourth(as[T4](c.value))
	case 4:
		fifth(as[T5](c.value))
	default:
		first(as[T1](c.value))
	}
}

// Equal reports whether both unions occupy the same slot with equal values.
func (c Of5[T1, T2, T3, T4, T5]) Equal(other Of5[T1, T2, T3, T4, T5]) bool {
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
	case 4:
		return valueEqual(as[T5](c.value), as[T5](other.value))
	default:
		return valueEqual(as[T1](c.value), as[T1](other.value))
	}
}

// Equals is Equal for an untyped argument; it is false for nil and for
// any other type.
func (c Of5[T1, T2, T3, T4, T5]) Equals(other any) bool {
	switch o := other.(type) {
	case Of5[T1, T2, T3, T4, T5]:
		return c.Equal(o)
	case *Of5[T1, T2, T3, T4, T5]:
		return o != nil && c.Equal(*o)
	}
	return false
}

func (c Of5[T1, T2, T3, T4, T5]) Hash() uint64 {
	return hashOf(5, c.slot, c.payload())
}

func (c Of5[T1, T2, T3, T4, T5]) String() string {
	return stringOf(c.payload())
}

func (c Of5[T1, T2, T3, T4, T5]) payload() any {
	if c.slot == 0 {
		return orZero[T1](c.value)
	}
	return c.value
}
