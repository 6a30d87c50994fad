package choice

// ToChoicesOf1 .. ToChoicesOf5 spread a tuple over the slots of a union: the
// i-th value is returned as a union occupying slot i.

func ToChoicesOf1[T any](v T) []Of1[T] {
	return []Of1[T]{Choice1Of1(v)}
}

func ToChoicesOf2[T1, T2 any](v1 T1, v2 T2) []Of2[T1, T2] {
	return []Of2[T1, T2]{
		Choice1Of2[T1, T2](v1),
		Choice2Of2[T1, T2](v2),
	}
}

func ToChoicesOf3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) []Of3[T1, T2, T3] {
	return []Of3[T1, T2, T3]{
		Choice1Of3[T1, T2, T3](v1),
		Choice2Of3[T1, T2, T3](v2),
		Choice3Of3[T1, T2, T3](v3),
	}
}

func ToChoicesOf4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) []Of4[T1, T2, T3, T4] {
	return []Of4[T1, T2, T3, T4]{
		Choice1Of4[T1, T2, T3, T4](v1),
		Choice2Of4[T1, T2, T3, T4](v2),
		Choice3Of4[T1, T2, T3, T4](v3),
		Choice4Of4[T1, T2, T3, T4](v4),
	}
}

func ToChoicesOf5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) []Of5[T1, T2, T3, T4, T5] {
	return []Of5[T1, T2, T3, T4, T5]{
		Choice1Of5[T1, T2, T3, T4, T5](v1),
		Choice2Of5[T1, T2, T3, T4, T5](v2),
		Choice3Of5[T1, T2, T3, T4, T5](v3),
		Choice4Of5[T1, T2, T3, T4, T5](v4),
		Choice5Of5[T1, T2, T3, T4, T5](v5),
	}
}
