package choice

// Of2 holds exactly one of two alternatives.
type Of2[T1, T2 any] struct {
	slot  uint8
	value any
}

// Choice1Of2 returns a union occupying slot 1.
func Choice1Of2[T1, T2 any](v T1) Of2[T1, T2] {
	return Of2[T1, T2]{slot: 0, value: v}
}

func Choice2Of2[T1, T2 any](v T2) Of2[T1, T2] {
	return Of2[T1, T2]{slot: 1, value: v}
}

func (c Of2[T1, T2]) Slot() int {
	return int(c.slot) + 1
}

func (Of2[T1, T2]) Arity() int {
	return 2
}

// MatchOf2 calls the handler for the active slot with its value and
// returns the result. The other handlers are never called.
func MatchOf2[T1, T2, R any](c Of2[T1, T2], first func(T1) R, second func(T2) R) R {
	Require("MatchOf2", "first", first)
	Require("MatchOf2", "second", second)

	switch c.slot {
	case 1:
		return second(as[T2](c.value))
	default:
		return first(as[T1](c.value))
	}
}

// Switch is the statement form of MatchOf2.
func (c Of2[T1, T2]) Switch(first func(T1), second func(T2)) {
	Require("Of2.Switch", "first", first)
	Require("Of2.Switch", "second", second)

	switch c.slot {
	case 1:
		second(as[T2](c.value))
	default:
		first(as[T1](c.value))
	}
}

// Equal reports whether both unions occupy the same slot with equal values.
func (c Of2[T1, T2]) Equal(other Of2[T1, T2]) bool {
	if c.slot != other.slot {
		return false
	}
	switch c.slot {
	case 1:
		return valueEqual(as[T2](c.value), as[T2](other.value))
	default:
		return valueEqual(as[T1](c.value), as[T1](other.value))
	}
}

// Equals is Equal for an untyped argument; it is false for nil and for
// any other type.
func (c Of2[T1, T2]) Equals(other any) bool {
	switch o := other.(type) {
	case Of2[T1, T2]:
		return c.Equal(o)
	case *Of2[T1, T2]:
		return o != nil && c.Equal(*o)
	}
	return false
}

func (c Of2[T1, T2]) Hash() uint64 {
	return hashOf(2, c.slot, c.payload())
}

func (c Of2[T1, T2]) String() string {
	return stringOf(c.payload())
}

func (c Of2[T1, T2]) payload() any {
	if c.slot == 0 {
		return orZero[T1](c.value)
	}
	return c.value
}
