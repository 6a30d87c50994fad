package choice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a required function argument that was nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation marks an operation applied to a union in a slot it
	// does not accept.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNilFault stands in for a nil error found in the fault slot when a
	// result is converted back into a (value, error) pair.
	ErrNilFault = errors.New("nil fault")
)

// UsageError is the panic value for calls that break a precondition.
//
// Kind is ErrInvalidArgument or ErrInvalidOperation and is returned by Unwrap,
// so a recovered value can be tested with errors.Is.
type UsageError struct {
	Op     string
	Detail string
	Kind   error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("choice: %s: %s: %v", e.Op, e.Detail, e.Kind)
}

func (e *UsageError) Unwrap() error {
	return e.Kind
}

// Require panics with a *UsageError of kind ErrInvalidArgument when f is nil.
// Packages composing unions use it to check their function arguments.
func Require(op, name string, f any) {
	if isNil(f) {
		panic(&UsageError{Op: op, Detail: "nil " + name, Kind: ErrInvalidArgument})
	}
}

func forbid(op string, active, forbidden uint8) {
	if active == forbidden {
		panic(&UsageError{
			Op:     op,
			Detail: fmt.Sprintf("slot %d is active", forbidden+1),
			Kind:   ErrInvalidOperation,
		})
	}
}
