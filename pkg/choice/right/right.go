package right

import "github.com/ib-77/choices/pkg/choice"

// Return lifts v into the success slot.
func Return[L, R any](v R) choice.Of2[L, R] {
	return choice.Choice2Of2[L, R](v)
}

// Fail places l in the fault slot.
func Fail[L, R any](l L) choice.Of2[L, R] {
	return choice.Choice1Of2[L, R](l)
}

// Bind passes a success value to f and returns its result. A fault is
// returned unchanged under the new type and f is not called.
func Bind[L, R, R2 any](input choice.Of2[L, R], f func(R) choice.Of2[L, R2]) choice.Of2[L, R2] {
	choice.Require("right.Bind", "f", f)
	return choice.MatchOf2(input, Fail[L, R2], f)
}

// Select maps the success value with f.
func Select[L, R, R2 any](input choice.Of2[L, R], f func(R) R2) choice.Of2[L, R2] {
	choice.Require("right.Select", "f", f)
	return Bind(input, func(r R) choice.Of2[L, R2] {
		return Return[L](f(r))
	})
}

// SelectMany is Bind under its query-comprehension name.
func SelectMany[L, R, R2 any](input choice.Of2[L, R], f func(R) choice.Of2[L, R2]) choice.Of2[L, R2] {
	return Bind(input, f)
}

// SelectManyWith runs next with the success value of input and, when that
// succeeds too, combines both values. combine runs only if both steps succeed.
func SelectManyWith[L, R, R2, R3 any](input choice.Of2[L, R],
	next func(R) choice.Of2[L, R2],
	combine func(R, R2) R3) choice.Of2[L, R3] {
	choice.Require("right.SelectManyWith", "next", next)
	choice.Require("right.SelectManyWith", "combine", combine)

	return Bind(input, func(r R) choice.Of2[L, R3] {
		return Select(next(r), func(r2 R2) R3 {
			return combine(r, r2)
		})
	})
}

// Validate turns a success into a fault when check rejects it.
func Validate[L, R any](input choice.Of2[L, R], check func(R) (valid bool, fault L)) choice.Of2[L, R] {
	choice.Require("right.Validate", "check", check)
	return Bind(input, func(r R) choice.Of2[L, R] {
		if valid, fault := check(r); !valid {
			return Fail[L, R](fault)
		}
		return input
	})
}

// Tee calls onSuccess for its side effect and returns input.
func Tee[L, R any](input choice.Of2[L, R], onSuccess func(R)) choice.Of2[L, R] {
	choice.Require("right.Tee", "onSuccess", onSuccess)
	input.Switch(func(L) {}, onSuccess)
	return input
}

// TeeIf calls onSuccess only for a success that satisfies condition.
func TeeIf[L, R any](input choice.Of2[L, R], condition func(R) bool, onSuccess func(R)) choice.Of2[L, R] {
	choice.Require("right.TeeIf", "condition", condition)
	choice.Require("right.TeeIf", "onSuccess", onSuccess)
	input.Switch(func(L) {}, func(r R) {
		if condition(r) {
			onSuccess(r)
		}
	})
	return input
}

// DoubleTee calls the side effect matching the outcome and returns input.
func DoubleTee[L, R any](input choice.Of2[L, R], onFault func(L), onSuccess func(R)) choice.Of2[L, R] {
	input.Switch(onFault, onSuccess)
	return input
}

// MapFault transforms a fault and leaves a success untouched.
func MapFault[L, R, L2 any](input choice.Of2[L, R], f func(L) L2) choice.Of2[L2, R] {
	return choice.Map1Of2(input, f)
}

// Finally reduces input to a single value.
func Finally[L, R, T any](input choice.Of2[L, R], onFault func(L) T, onSuccess func(R) T) T {
	return choice.MatchOf2(input, onFault, onSuccess)
}

// Collect returns the success values of items in order, or the first fault.
// Items after the first fault are not inspected.
func Collect[L, R any](items []choice.Of2[L, R]) choice.Of2[L, []R] {
	values := make([]R, 0, len(items))
	for _, item := range items {
		var (
			fault  L
			failed bool
		)
		item.Switch(
			func(l L) { fault, failed = l, true },
			func(r R) { values = append(values, r) })
		if failed {
			return Fail[L, []R](fault)
		}
	}
	return Return[L](values)
}
