package right

import (
	"errors"
	"fmt"

	"github.com/ib-77/choices/pkg/choice"
)

// FromError converts a Go (value, error) pair into a result.
func FromError[R any](v R, err error) choice.Of2[error, R] {
	if err != nil {
		return Fail[error, R](err)
	}
	return Return[error](v)
}

// Unwrap converts a result back into a Go (value, error) pair. A fault
// holding a nil error, as in the zero result, yields choice.ErrNilFault.
func Unwrap[R any](input choice.Of2[error, R]) (R, error) {
	var (
		v   R
		err error
	)
	input.Switch(
		func(e error) { err = faultOrSentinel(e) },
		func(r R) { v = r })
	return v, err
}

func faultOrSentinel(err error) error {
	if err == nil {
		return choice.ErrNilFault
	}
	return err
}

// Try calls f with the success value and turns a non-nil error into a fault.
func Try[R, R2 any](input choice.Of2[error, R], f func(R) (R2, error)) choice.Of2[error, R2] {
	choice.Require("right.Try", "f", f)
	return Bind(input, func(r R) choice.Of2[error, R2] {
		v, err := f(r)
		return FromError(v, err)
	})
}

// ValidateAll runs every check against a success value and fails with the
// joined errors of those that reject it. With breakOnError it stops at the
// first rejection.
func ValidateAll[R any](input choice.Of2[error, R], breakOnError bool, checks ...func(R) error) choice.Of2[error, R] {
	for i, check := range checks {
		choice.Require("right.ValidateAll", fmt.Sprintf("check %d", i), check)
	}
	return Bind(input, func(r R) choice.Of2[error, R] {
		var errs []error
		for _, check := range checks {
			if err := check(r); err != nil {
				errs = append(errs, err)
				if breakOnError {
					break
				}
			}
		}
		if len(errs) > 0 {
			return Fail[error, R](errors.Join(errs...))
		}
		return input
	})
}
