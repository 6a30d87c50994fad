package choice

// Of1 is the degenerate union with a single alternative. It exists so that
// narrowing an Of2 and matching slot by slot with When1 have a target type.
type Of1[T any] struct {
	value T
}

func Choice1Of1[T any](v T) Of1[T] {
	return Of1[T]{value: v}
}

func (Of1[T]) Slot() int {
	return 1
}

func (Of1[T]) Arity() int {
	return 1
}

func MatchOf1[T, R any](c Of1[T], first func(T) R) R {
	Require("MatchOf1", "first", first)
	return first(c.value)
}

func (c Of1[T]) Switch(first func(T)) {
	Require("Of1.Switch", "first", first)
	first(c.value)
}

func (c Of1[T]) Equal(other Of1[T]) bool {
	return valueEqual(c.value, other.value)
}

func (c Of1[T]) Equals(other any) bool {
	switch o := other.(type) {
	case Of1[T]:
		return c.Equal(o)
	case *Of1[T]:
		return o != nil && c.Equal(*o)
	}
	return false
}

func (c Of1[T]) Hash() uint64 {
	return hashOf(1, 0, c.value)
}

func (c Of1[T]) String() string {
	return stringOf(c.value)
}
