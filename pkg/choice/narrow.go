package choice

// without maps a 0-based slot to its index once slot removed is taken out.
func without(slot, removed uint8) uint8 {
	if slot > removed {
		return slot - 1
	}
	return slot
}

// Forbid1Of2 returns the union over the remaining slot. It is for call sites
// where slot 1 has already been handled; if slot 1 is active it panics with a
// *UsageError of kind ErrInvalidOperation.
func Forbid1Of2[T1, T2 any](c Of2[T1, T2]) Of1[T2] {
	forbid("Forbid1Of2", c.slot, 0)
	return Of1[T2]{value: as[T2](c.value)}
}

func Forbid2Of2[T1, T2 any](c Of2[T1, T2]) Of1[T1] {
	forbid("Forbid2Of2", c.slot, 1)
	return Of1[T1]{value: as[T1](c.value)}
}

// Forbid1Of3 drops slot 1 and renumbers the slots after it, panicking with
// ErrInvalidOperation if slot 1 is active.
func Forbid1Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T2, T3] {
	forbid("Forbid1Of3", c.slot, 0)
	return Of2[T2, T3]{slot: without(c.slot, 0), value: c.value}
}

func Forbid2Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T1, T3] {
	forbid("Forbid2Of3", c.slot, 1)
	return Of2[T1, T3]{slot: without(c.slot, 1), value: c.value}
}

func Forbid3Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T1, T2] {
	forbid("Forbid3Of3", c.slot, 2)
	return Of2[T1, T2]{slot: without(c.slot, 2), value: c.value}
}

// Left1Of3 splits slot 1 from the rest without asserting anything: slot 1
// becomes the left alternative and the other slots, renumbered, the right one.
func Left1Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T1, Of2[T2, T3]] {
	if c.slot == 0 {
		return Choice1Of2[T1, Of2[T2, T3]](as[T1](c.value))
	}
	return Choice2Of2[T1, Of2[T2, T3]](Of2[T2, T3]{slot: without(c.slot, 0), value: c.value})
}

func Left2Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T2, Of2[T1, T3]] {
	if c.slot == 1 {
		return Choice1Of2[T2, Of2[T1, T3]](as[T2](c.value))
	}
	return Choice2Of2[T2, Of2[T1, T3]](Of2[T1, T3]{slot: without(c.slot, 1), value: c.value})
}

func Left3Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[T3, Of2[T1, T2]] {
	if c.slot == 2 {
		return Choice1Of2[T3, Of2[T1, T2]](as[T3](c.value))
	}
	return Choice2Of2[T3, Of2[T1, T2]](Of2[T1, T2]{slot: without(c.slot, 2), value: c.value})
}

// Right1Of3 is the mirror of Left1Of3: slot 1 becomes the right alternative.
func Right1Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[Of2[T2, T3], T1] {
	if c.slot == 0 {
		return Choice2Of2[Of2[T2, T3], T1](as[T1](c.value))
	}
	return Choice1Of2[Of2[T2, T3], T1](Of2[T2, T3]{slot: without(c.slot, 0), value: c.value})
}

func Right2Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[Of2[T1, T3], T2] {
	if c.slot == 1 {
		return Choice2Of2[Of2[T1, T3], T2](as[T2](c.value))
	}
	return Choice1Of2[Of2[T1, T3], T2](Of2[T1, T3]{slot: without(c.slot, 1), value: c.value})
}

func Right3Of3[T1, T2, T3 any](c Of3[T1, T2, T3]) Of2[Of2[T1, T2], T3] {
	if c.slot == 2 {
		return Choice2Of2[Of2[T1, T2], T3](as[T3](c.value))
	}
	return Choice1Of2[Of2[T1, T2], T3](Of2[T1, T2]{slot: without(c.slot, 2), value: c.value})
}

// Forbid1Of4 drops slot 1 and renumbers the slots after it, panicking with
// ErrInvalidOperation if slot 1 is active.
func Forbid1Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of3[T2, T3, T4] {
	forbid("Forbid1Of4", c.slot, 0)
	return Of3[T2, T3, T4]{slot: without(c.slot, 0), value: c.value}
}

func Forbid2Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of3[T1, T3, T4] {
	forbid("Forbid2Of4", c.slot, 1)
	return Of3[T1, T3, T4]{slot: without(c.slot, 1), value: c.value}
}

func Forbid3Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of3[T1, T2, T4] {
	forbid("Forbid3Of4", c.slot, 2)
	return Of3[T1, T2, T4]{slot: without(c.slot, 2), value: c.value}
}

func Forbid4Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of3[T1, T2, T3] {
	forbid("Forbid4Of4", c.slot, 3)
	return Of3[T1, T2, T3]{slot: without(c.slot, 3), value: c.value}
}

// Left1Of4 splits slot 1 from the rest without asserting anything: slot 1
// becomes the left alternative and the other slots, renumbered, the right one.
func Left1Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[T1, Of3[T2, T3, T4]] {
	if c.slot == 0 {
		return Choice1Of2[T1, Of3[T2, T3, T4]](as[T1](c.value))
	}
	return Choice2Of2[T1, Of3[T2, T3, T4]](Of3[T2, T3, T4]{slot: without(c.slot, 0), value: c.value})
}

func Left2Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[T2, Of3[T1, T3, T4]] {
	if c.slot == 1 {
		return Choice1Of2[T2, Of3[T1, T3, T4]](as[T2](c.value))
	}
	return Choice2Of2[T2, Of3[T1, T3, T4]](Of3[T1, T3, T4]{slot: without(c.slot, 1), value: c.value})
}

func Left3Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[T3, Of3[T1, T2, T4]] {
	if c.slot == 2 {
		return Choice1Of2[T3, Of3[T1, T2, T4]](as[T3](c.value))
	}
	return Choice2Of2[T3, Of3[T1, T2, T4]](Of3[T1, T2, T4]{slot: without(c.slot, 2), value: c.value})
}

func Left4Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[T4, Of3[T1, T2, T3]] {
	if c.slot == 3 {
		return Choice1Of2[T4, Of3[T1, T2, T3]](as[T4](c.value))
	}
	return Choice2Of2[T4, Of3[T1, T2, T3]](Of3[T1, T2, T3]{slot: without(c.slot, 3), value: c.value})
}

// Right1Of4 is the mirror of Left1Of4: slot 1 becomes the right alternative.
func Right1Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[Of3[T2, T3, T4], T1] {
	if c.slot == 0 {
		return Choice2Of2[Of3[T2, T3, T4], T1](as[T1](c.value))
	}
	return Choice1Of2[Of3[T2, T3, T4], T1](Of3[T2, T3, T4]{slot: without(c.slot, 0), value: c.value})
}

func Right2Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[Of3[T1, T3, T4], T2] {
	if c.slot == 1 {
		return Choice2Of2[Of3[T1, T3, T4], T2](as[T2](c.value))
	}
	return Choice1Of2[Of3[T1, T3, T4], T2](Of3[T1, T3, T4]{slot: without(c.slot, 1), value: c.value})
}

func Right3Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[Of3[T1, T2, T4], T3] {
	if c.slot == 2 {
		return Choice2Of2[Of3[T1, T2, T4], T3](as[T3](c.value))
	}
	return Choice1Of2[Of3[T1, T2, T4], T3](Of3[T1, T2, T4]{slot: without(c.slot, 2), value: c.value})
}

func Right4Of4[T1, T2, T3, T4 any](c Of4[T1, T2, T3, T4]) Of2[Of3[T1, T2, T3], T4] {
	if c.slot == 3 {
		return Choice2Of2[Of3[T1, T2, T3], T4](as[T4](c.value))
	}
	return Choice1Of2[Of3[T1, T2, T3], T4](Of3[T1, T2, T3]{slot: without(c.slot, 3), value: c.value})
}

// Forbid1Of5 drops slot 1 and renumbers the slots after it, panicking with
// ErrInvalidOperation if slot 1 is active.
func Forbid1Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of4[T2, T3, T4, T5] {
	forbid("Forbid1Of5", c.slot, 0)
	return Of4[T2, T3, T4, T5]{slot: without(c.slot, 0), value: c.value}
}

func Forbid2Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of4[T1, T3, T4, T5] {
	forbid("Forbid2Of5", c.slot, 1)
	return Of4[T1, T3, T4, T5]{slot: without(c.slot, 1), value: c.value}
}

func Forbid3Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of4[T1, T2, T4, T5] {
	forbid("Forbid3Of5", c.slot, 2)
	return Of4[T1, T2, T4, T5]{slot: without(c.slot, 2), value: c.value}
}

func Forbid4Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of4[T1, T2, T3, T5] {
	forbid("Forbid4Of5", c.slot, 3)
	return Of4[T1, T2, T3, T5]{slot: without(c.slot, 3), value: c.value}
}

func Forbid5Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of4[T1, T2, T3, T4] {
	forbid("Forbid5Of5", c.slot, 4)
	return Of4[T1, T2, T3, T4]{slot: without(c.slot, 4), value: c.value}
}

// Left1Of5 splits slot 1 from the rest without asserting anything: slot 1
// becomes the left alternative and the other slots, renumbered, the right one.
func Left1Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[T1, Of4[T2, T3, T4, T5]] {
	if c.slot == 0 {
		return Choice1Of2[T1, Of4[T2, T3, T4, T5]](as[T1](c.value))
	}
	return Choice2Of2[T1, Of4[T2, T3, T4, T5]](Of4[T2, T3, T4, T5]{slot: without(c.slot, 0), value: c.value})
}

func Left2Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[T2, Of4[T1, T3, T4, T5]] {
	if c.slot == 1 {
		return Choice1Of2[T2, Of4[T1, T3, T4, T5]](as[T2](c.value))
	}
	return Choice2Of2[T2, Of4[T1, T3, T4, T5]](Of4[T1, T3, T4, T5]{slot: without(c.slot, 1), value: c.value})
}

func Left3Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[T3, Of4[T1, T2, T4, T5]] {
	if c.slot == 2 {
		return Choice1Of2[T3, Of4[T1, T2, T4, T5]](as[T3](c.value))
	}
	return Choice2Of2[T3, Of4[T1, T2, T4, T5]](Of4[T1, T2, T4, T5]{slot: without(c.slot, 2), value: c.value})
}

func Left4Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[T4, Of4[T1, T2, T3, T5]] {
	if c.slot == 3 {
		return Choice1Of2[T4, Of4[T1, T2, T3, T5]](as[T4](c.value))
	}
	return Choice2Of2[T4, Of4[T1, T2, T3, T5]](Of4[T1, T2, T3, T5]{slot: without(c.slot, 3), value: c.value})
}

func Left5Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[T5, Of4[T1, T2, T3, T4]] {
	if c.slot == 4 {
		return Choice1Of2[T5, Of4[T1, T2, T3, T4]](as[T5](c.value))
	}
	return Choice2Of2[T5, Of4[T1, T2, T3, T4]](Of4[T1, T2, T3, T4]{slot: without(c.slot, 4), value: c.value})
}

// Right1Of5 is the mirror of Left1Of5: slot 1 becomes the right alternative.
func Right1Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[Of4[T2, T3, T4, T5], T1] {
	if c.slot == 0 {
		return Choice2Of2[Of4[T2, T3, T4, T5], T1](as[T1](c.value))
	}
	return Choice1Of2[Of4[T2, T3, T4, T5], T1](Of4[T2, T3, T4, T5]{slot: without(c.slot, 0), value: c.value})
}

func Right2Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[Of4[T1, T3, T4, T5], T2] {
	if c.slot == 1 {
		return Choice2Of2[Of4[T1, T3, T4, T5], T2](as[T2](c.value))
	}
	return Choice1Of2[Of4[T1, T3, T4, T5], T2](Of4[T1, T3, T4, T5]{slot: without(c.slot, 1), value: c.value})
}

func Right3Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[Of4[T1, T2, T4, T5], T3] {
	if c.slot == 2 {
		return Choice2Of2[Of4[T1, T2, T4, T5], T3](as[T3](c.value))
	}
	return Choice1Of2[Of4[T1, T2, T4, T5], T3](Of4[T1, T2, T4, T5]{slot: without(c.slot, 2), value: c.value})
}

func Right4Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[Of4[T1, T2, T3, T5], T4] {
	if c.slot == 3 {
		return Choice2Of2[Of4[T1, T2, T3, T5], T4](as[T4](c.value))
	}
	return Choice1Of2[Of4[T1, T2, T3, T5], T4](Of4[T1, T2, T3, T5]{slot: without(c.slot, 3), value: c.value})
}

func Right5Of5[T1, T2, T3, T4, T5 any](c Of5[T1, T2, T3, T4, T5]) Of2[Of4[T1, T2, T3, T4], T5] {
	if c.slot == 4 {
		return Choice2Of2[Of4[T1, T2, T3, T4], T5](as[T5](c.value))
	}
	return Choice1Of2[Of4[T1, T2, T3, T4], T5](Of4[T1, T2, T3, T4]{slot: without(c.slot, 4), value: c.value})
}
