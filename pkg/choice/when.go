package choice

// When1 starts a matcher built one slot at a time:
//
//	describe := When3(When2(When1(fmtInt), strLen), timeUnix)
//
// Each WhenK adds the handler for slot K and delegates the lower slots to the
// matcher it extends.
func When1[T, R any](selector func(T) R) func(Of1[T]) R {
	Require("When1", "selector", selector)
	return func(c Of1[T]) R {
		return selector(c.value)
	}
}

func When2[T1, T2, R any](otherwise func(Of1[T1]) R, selector func(T2) R) func(Of2[T1, T2]) R {
	Require("When2", "otherwise", otherwise)
	Require("When2", "selector", selector)
	return func(c Of2[T1, T2]) R {
		if c.slot == 1 {
			return selector(as[T2](c.value))
		}
		return otherwise(Of1[T1]{value: as[T1](c.value)})
	}
}

func When3[T1, T2, T3, R any](otherwise func(Of2[T1, T2]) R, selector func(T3) R) func(Of3[T1, T2, T3]) R {
	Require("When3", "otherwise", otherwise)
	Require("When3", "selector", selector)
	return func(c Of3[T1, T2, T3]) R {
		if c.slot == 2 {
			return selector(as[T3](c.value))
		}
		return otherwise(Of2[T1, T2]{slot: c.slot, value: c.value})
	}
}

func When4[T1, T2, T3, T4, R any](otherwise func(Of3[T1, T2, T3]) R,
	selector func(T4) R) func(Of4[T1, T2, T3, T4]) R {
	Require("When4", "otherwise", otherwise)
	Require("When4", "selector", selector)
	return func(c Of4[T1, T2, T3, T4]) R {
		if c.slot == 3 {
			return selector(as[T4](c.value))
		}
		return otherwise(Of3[T1, T2, T3]{slot: c.slot, value: c.value})
	}
}

func When5[T1, T2, T3, T4, T5, R any](otherwise func(Of4[T1, T2, T3, T4]) R,
	selector func(T5) R) func(Of5[T1, T2, T3, T4, T5]) R {
	Require("When5", "otherwise", otherwise)
	Require("When5", "selector", selector)
	return func(c Of5[T1, T2, T3, T4, T5]) R {
		if c.slot == 4 {
			return selector(as[T5](c.value))
		}
		return otherwise(Of4[T1, T2, T3, T4]{slot: c.slot, value: c.value})
	}
}
