package left

import (
	"errors"
	"fmt"

	"github.com/ib-77/choices/pkg/choice"
)

func FromError[L any](v L, err error) choice.Of2[L, error] {
	if err != nil {
		return Fail[L, error](err)
	}
	return Return[L, error](v)
}

// Unwrap converts a result back into a Go (value, error) pair. A fault
// holding a nil error yields choice.ErrNilFault.
func Unwrap[L any](input choice.Of2[L, error]) (L, error) {
	var (
		v   L
		err error
	)
	input.Switch(
		func(l L) { v = l },
		func(e error) {
			err = e
			if err == nil {
				err = choice.ErrNilFault
			}
		})
	return v, err
}

// Try calls f with the success value and turns a non-nil error into a fault.
func Try[L, L2 any](input choice.Of2[L, error], f func(L) (L2, error)) choice.Of2[L2, error] {
	choice.Require("left.Try", "f", f)
	return Bind(input, func(l L) choice.Of2[L2, error] {
		v, err := f(l)
		return FromError(v, err)
	})
}

// ValidateAll runs every check against a success value and fails with the
// joined errors of those that reject it. With breakOnError it stops at the
// first rejection.
func ValidateAll[L any](input choice.Of2[L, error], breakOnError bool, checks ...func(L) error) choice.Of2[L, error] {
	for i, check := range checks {
		choice.Require("left.ValidateAll", fmt.Sprintf("check %d", i), check)
	}
	return Bind(input, func(l L) choice.Of2[L, error] {
		var errs []error
		for _, check := range checks {
			if err := check(l); err != nil {
				errs = append(errs, err)
				if breakOnError {
					break
				}
			}
		}
		if len(errs) > 0 {
			return Fail[L](errors.Join(errs...))
		}
		return input
	})
}
