package left

import "github.com/ib-77/choices/pkg/choice"

// Return lifts v into the success slot.
func Return[L, R any](v L) choice.Of2[L, R] {
	return choice.Choice1Of2[L, R](v)
}

// Fail places r in the fault slot.
func Fail[L, R any](r R) choice.Of2[L, R] {
	return choice.Choice2Of2[L, R](r)
}

// Bind passes a success value to f and returns its result. A fault is
// returned unchanged under the new type and f is not called.
func Bind[L, R, L2 any](input choice.Of2[L, R], f func(L) choice.Of2[L2, R]) choice.Of2[L2, R] {
	choice.Require("left.Bind", "f", f)
	return choice.MatchOf2(input, f, Fail[L2, R])
}

func Select[L, R, L2 any](input choice.Of2[L, R], f func(L) L2) choice.Of2[L2, R] {
	choice.Require("left.Select", "f", f)
	return Bind(input, func(l L) choice.Of2[L2, R] {
		return Return[L2, R](f(l))
	})
}

func SelectMany[L, R, L2 any](input choice.Of2[L, R], f func(L) choice.Of2[L2, R]) choice.Of2[L2, R] {
	return Bind(input, f)
}

// SelectManyWith runs next with the success value of input and, when that
// succeeds too, combines both values.
func SelectManyWith[L, R, L2, L3 any](input choice.Of2[L, R],
	next func(L) choice.Of2[L2, R],
	combine func(L, L2) L3) choice.Of2[L3, R] {
	choice.Require("left.SelectManyWith", "next", next)
	choice.Require("left.SelectManyWith", "combine", combine)

	return Bind(input, func(l L) choice.Of2[L3, R] {
		return Select(next(l), func(l2 L2) L3 {
			return combine(l, l2)
		})
	})
}

func Validate[L, R any](input choice.Of2[L, R], check func(L) (valid bool, fault R)) choice.Of2[L, R] {
	choice.Require("left.Validate", "check", check)
	return Bind(input, func(l L) choice.Of2[L, R] {
		if valid, fault := check(l); !valid {
			return Fail[L, R](fault)
		}
		return input
	})
}

func Tee[L, R any](input choice.Of2[L, R], onSuccess func(L)) choice.Of2[L, R] {
	choice.Require("left.Tee", "onSuccess", onSuccess)
	input.Switch(onSuccess, func(R) {})
	return input
}

// TeeIf calls onSuccess only for a success that satisfies condition.
func TeeIf[L, R any](input choice.Of2[L, R], condition func(L) bool, onSuccess func(L)) choice.Of2[L, R] {
	choice.Require("left.TeeIf", "condition", condition)
	choice.Require("left.TeeIf", "onSuccess", onSuccess)
	input.Switch(func(l L) {
		if condition(l) {
			onSuccess(l)
		}
	}, func(R) {})
	return input
}

func DoubleTee[L, R any](input choice.Of2[L, R], onSuccess func(L), onFault func(R)) choice.Of2[L, R] {
	input.Switch(onSuccess, onFault)
	return input
}

// MapFault transforms a fault and leaves a success untouched.
func MapFault[L, R, R2 any](input choice.Of2[L, R], f func(R) R2) choice.Of2[L, R2] {
	return choice.Map2Of2(input, f)
}

func Finally[L, R, T any](input choice.Of2[L, R], onSuccess func(L) T, onFault func(R) T) T {
	return choice.MatchOf2(input, onSuccess, onFault)
}

// Collect returns the success values of items in order, or the first fault.
func Collect[L, R any](items []choice.Of2[L, R]) choice.Of2[[]L, R] {
	values := make([]L, 0, len(items))
	for _, item := range items {
		var (
			fault  R
			failed bool
		)
		item.Switch(
			func(l L) { values = append(values, l) },
			func(r R) { fault, failed = r, true })
		if failed {
			return Fail[[]L, R](fault)
		}
	}
	return Return[[]L, R](values)
}
