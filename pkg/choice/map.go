package choice

// MapOf1 transforms the value of a single-slot union.
func MapOf1[T, U any](c Of1[T], f func(T) U) Of1[U] {
	Require("MapOf1", "f", f)
	return Of1[U]{value: f(c.value)}
}

// Map1Of2 applies f to the value in slot 1. Unions in any other slot are
// returned unchanged under the new type and f is not called.
func Map1Of2[T1, T2, U any](c Of2[T1, T2], f func(T1) U) Of2[U, T2] {
	Require("Map1Of2", "f", f)
	if c.slot == 0 {
		return Choice1Of2[U, T2](f(as[T1](c.value)))
	}
	return Of2[U, T2]{slot: c.slot, value: c.value}
}

func Map2Of2[T1, T2, U any](c Of2[T1, T2], f func(T2) U) Of2[T1, U] {
	Require("Map2Of2", "f", f)
	if c.slot == 1 {
		return Choice2Of2[T1, U](f(as[T2](c.value)))
	}
	return Of2[T1, U]{slot: c.slot, value: c.value}
}

// MapOf2 applies the transform matching the active slot, changing the type of
// every slot at once.
func MapOf2[T1, T2, U1, U2 any](c Of2[T1, T2], f1 func(T1) U1, f2 func(T2) U2) Of2[U1, U2] {
	Require("MapOf2", "f1", f1)
	Require("MapOf2", "f2", f2)

	switch c.slot {
	case 1:
		return Choice2Of2[U1, U2](f2(as[T2](c.value)))
	default:
		return Choice1Of2[U1, U2](f1(as[T1](c.value)))
	}
}

// Map1Of3 applies f to the value in slot 1. Unions in any other slot are
// returned unchanged under the new type and f is not called.
func Map1Of3[T1, T2, T3, U any](c Of3[T1, T2, T3], f func(T1) U) Of3[U, T2, T3] {
	Require("Map1Of3", "f", f)
	if c.slot == 0 {
		return Choice1Of3[U, T2, T3](f(as[T1](c.value)))
	}
	return Of3[U, T2, T3]{slot: c.slot, value: c.value}
}

func Map2Of3[T1, T2, T3, U any](c Of3[T1, T2, T3], f func(T2) U) Of3[T1, U, T3] {
	Require("Map2Of3", "f", f)
	if c.slot == 1 {
		return Choice2Of3[T1, U, T3](f(as[T2](c.value)))
	}
	return Of3[T1, U, T3]{slot: c.slot, value: c.value}
}

func Map3Of3[T1, T2, T3, U any](c Of3[T1, T2, T3], f func(T3) U) Of3[T1, T2, U] {
	Require("Map3Of3", "f", f)
	if c.slot == 2 {
		return Choice3Of3[T1, T2, U](f(as[T3](c.value)))
	}
	return Of3[T1, T2, U]{slot: c.slot, value: c.value}
}

// MapOf3 applies the transform matching the active slot, changing the type of
// every slot at once.
func MapOf3[T1, T2, T3, U1, U2, U3 any](c Of3[T1, T2, T3],
	f1 func(T1) U1, f2 func(T2) U2, f3 func(T3) U3) Of3[U1, U2, U3] {
	Require("MapOf3", "f1", f1)
	Require("MapOf3", "f2", f2)
	Require("MapOf3", "f3", f3)

	switch c.slot {
	case 1:
		return Choice2Of3[U1, U2, U3](f2(as[T2](c.value)))
	case 2:
		return Choice3Of3[U1, U2, U3](f3(as[T3](c.value)))
	default:
		return Choice1Of3[U1, U2, U3](f1(as[T1](c.value)))
	}
}

// Map1Of4 applies f to the value in slot 1. Unions in any other slot are
// returned unchanged under the new type and f is not called.
func Map1Of4[T1, T2, T3, T4, U any](c Of4[T1, T2, T3, T4], f func(T1) U) Of4[U, T2, T3, T4] {
	Require("Map1Of4", "f", f)
	if c.slot == 0 {
		return Choice1Of4[U, T2, T3, T4](f(as[T1](c.value)))
	}
	return Of4[U, T2, T3, T4]{slot: c.slot, value: c.value}
}

func Map2Of4[T1, T2, T3, T4, U any](c Of4[T1, T2, T3, T4], f func(T2) U) Of4[T1, U, T3, T4] {
	Require("Map2Of4", "f", f)
	if c.slot == 1 {
		return Choice2Of4[T1, U, T3, T4](f(as[T2](c.value)))
	}
	return Of4[T1, U, T3, T4]{slot: c.slot, value: c.value}
}

func Map3Of4[T1, T2, T3, T4, U any](c Of4[T1, T2, T3, T4], f func(T3) U) Of4[T1, T2, U, T4] {
	Require("Map3Of4", "f", f)
	if c.slot == 2 {
		return Choice3Of4[T1, T2, U, T4](f(as[T3](c.value)))
	}
	return Of4[T1, T2, U, T4]{slot: c.slot, value: c.value}
}

func Map4Of4[T1, T2, T3, T4, U any](c Of4[T1, T2, T3, T4], f func(T4) U) Of4[T1, T2, T3, U] {
	Require("Map4Of4", "f", f)
	if c.slot == 3 {
		return Choice4Of4[T1, T2, T3, U](f(as[T4](c.value)))
	}
	return Of4[T1, T2, T3, U]{slot: c.slot, value: c.value}
}

// MapOf4 applies the transform matching the active slot, changing the type of
// every slot at once.
func MapOf4[T1, T2, T3, T4, U1, U2, U3, U4 any](c Of4[T1, T2, T3, T4],
	f1 func(T1) U1, f2 func(T2) U2, f3 func(T3) U3, f4 func(T4) U4) Of4[U1, U2, U3, U4] {
	Require("MapOf4", "f1", f1)
	Require("MapOf4", "f2", f2)
	Require("MapOf4", "f3", f3)
	Require("MapOf4", "f4", f4)

	switch c.slot {
	case 1:
		return Choice2Of4[U1, U2, U3, U4](f2(as[T2](c.value)))
	case 2:
		return Choice3Of4[U1, U2, U3, U4](f3(as[T3](c.value)))
	case 3:
		return Choice4Of4[U1, U2, U3, U4](f4(as[T4](c.value)))
	default:
		return Choice1Of4[U1, U2, U3, U4](f1(as[T1](c.value)))
	}
}

// Map1Of5 applies f to the value in slot 1. Unions in any other slot are
// returned unchanged under the new type and f is not called.
func Map1Of5[T1, T2, T3, T4, T5, U any](c Of5[T1, T2, T3, T4, T5], f func(T1) U) Of5[U, T2, T3, T4, T5] {
	Require("Map1Of5", "f", f)
	if c.slot == 0 {
		return Choice1Of5[U, T2, T3, T4, T5](f(as[T1](c.value)))
	}
	return Of5[U, T2, T3, T4, T5]{slot: c.slot, value: c.value}
}

func Map2Of5[T1, T2, T3, T4, T5, U any](c Of5[T1, T2, T3, T4, T5], f func(T2) U) Of5[T1, U, T3, T4, T5] {
	Require("Map2Of5", "f", f)
	if c.slot == 1 {
		return Choice2Of5[T1, U, T3, T4, T5](f(as[T2](c.value)))
	}
	return Of5[T1, U, T3, T4, T5]{slot: c.slot, value: c.value}
}

func Map3Of5[T1, T2, T3, T4, T5, U any](c Of5[T1, T2, T3, T4, T5], f func(T3) U) Of5[T1, T2, U, T4, T5] {
	Require("Map3Of5", "f", f)
	if c.slot == 2 {
		return Choice3Of5[T1, T2, U, T4, T5](f(as[T3](c.value)))
	}
	return Of5[T1, T2, U, T4, T5]{slot: c.slot, value: c.value}
}

func Map4Of5[T1, T2, T3, T4, T5, U any](c Of5[T1, T2, T3, T4, T5], f func(T4) U) Of5[T1, T2, T3, U, T5] {
	Require("Map4Of5", "f", f)
	if c.slot == 3 {
		return Choice4Of5[T1, T2, T3, U, T5](f(as[T4](c.value)))
	}
	return Of5[T1, T2, T3, U, T5]{slot: c.slot, value: c.value}
}

func Map5Of5[T1, T2, T3, T4, T5, U any](c Of5[T1, T2, T3, T4, T5], f func(T5) U) Of5[T1, T2, T3, T4, U] {
	Require("Map5Of5", "f", f)
	if c.slot == 4 {
		return Choice5Of5[T1, T2, T3, T4, U](f(as[T5](c.value)))
	}
	return Of5[T1, T2, T3, T4, U]{slot: c.slot, value: c.value}
}

// MapOf5 applies the transform matching the active slot, changing the type of
// every slot at once.
func MapOf5[T1, T2, T3, T4, T5, U1, U2, U3, U4, U5 any](c Of5[T1, T2, T3, T4, T5],
	f1 func(T1) U1, f2 func(T2) U2, f3 func(T3) U3, f4 func(T4) U4, f5 func(T5) U5) Of5[U1, U2, U3, U4, U5] {
	Require("MapOf5", "f1", f1)
	Require("MapOf5", "f2", f2)
	Require("MapOf5", "f3", f3)
	Require("MapOf5", "f4", f4)
	Require("MapOf5", "f5", f5)

	switch c.slot {
	case 1:
		return Choice2Of5[U1, U2, U3, U4, U5](f2(as[T2](c.value)))
	case 2:
		return Choice3Of5[U1, U2, U3, U4, U5](f3(as[T3](c.value)))
	case 3:
		return Choice4Of5[U1, U2, U3, U4, U5](f4(as[T4](c.value)))
	case 4:
		return Choice5Of5[U1, U2, U3, U4, U5](f5(as[T5](c.value)))
	default:
		return Choice1Of5[U1, U2, U3, U4, U5](f1(as[T1](c.value)))
	}
}
