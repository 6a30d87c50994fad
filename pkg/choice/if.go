package choice

// IfOf2 evaluates then when flag is true and places its result in slot 1,
// otherwise it evaluates otherwise and places the result in slot 2. The thunk
// not taken is never called.
func IfOf2[T1, T2 any](flag bool, then func() T1, otherwise func() T2) Of2[T1, T2] {
	Require("IfOf2", "then", then)
	Require("IfOf2", "otherwise", otherwise)

	if flag {
		return Choice1Of2[T1, T2](then())
	}
	return Choice2Of2[T1, T2](otherwise())
}

// IfOf3 is IfOf2 where the otherwise branch produces an Of2 that is moved to
// slots 2 and 3. Nesting IfOf2 inside otherwise gives a three-way conditional.
func IfOf3[T1, T2, T3 any](flag bool, then func() T1, otherwise func() Of2[T2, T3]) Of3[T1, T2, T3] {
	Require("IfOf3", "then", then)
	Require("IfOf3", "otherwise", otherwise)

	if flag {
		return Choice1Of3[T1, T2, T3](then())
	}
	c := otherwise()
	return Of3[T1, T2, T3]{slot: c.slot + 1, value: c.value}
}

func IfOf4[T1, T2, T3, T4 any](flag bool, then func() T1,
	otherwise func() Of3[T2, T3, T4]) Of4[T1, T2, T3, T4] {
	Require("IfOf4", "then", then)
	Require("IfOf4", "otherwise", otherwise)

	if flag {
		return Choice1Of4[T1, T2, T3, T4](then())
	}
	c := otherwise()
	return Of4[T1, T2, T3, T4]{slot: c.slot + 1, value: c.value}
}

func IfOf5[T1, T2, T3, T4, T5 any](flag bool, then func() T1,
	otherwise func() Of4[T2, T3, T4, T5]) Of5[T1, T2, T3, T4, T5] {
	Require("IfOf5", "then", then)
	Require("IfOf5", "otherwise", otherwise)

	if flag {
		return Choice1Of5[T1, T2, T3, T4, T5](then())
	}
	c := otherwise()
	return Of5[T1, T2, T3, T4, T5]{slot: c.slot + 1, value: c.value}
}

// Widen1To2 embeds c as slot 1 of a two-slot union; the new slot is never active.
func Widen1To2[T1, T2 any](c Of1[T1]) Of2[T1, T2] {
	return Choice1Of2[T1, T2](c.value)
}

// Widen2To3 embeds c as slots 1 and 2 of a three-slot union.
func Widen2To3[T1, T2, T3 any](c Of2[T1, T2]) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{slot: c.slot, value: c.value}
}

func Widen3To4[T1, T2, T3, T4 any](c Of3[T1, T2, T3]) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{slot: c.slot, value: c.value}
}

func Widen4To5[T1, T2, T3, T4, T5 any](c Of4[T1, T2, T3, T4]) Of5[T1, T2, T3, T4, T5] {
	return Of5[T1, T2, T3, T4, T5]{slot: c.slot, value: c.value}
}
