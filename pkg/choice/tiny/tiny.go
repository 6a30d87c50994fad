package tiny

import (
	"github.com/ib-77/choices/pkg/choice"
	"github.com/ib-77/choices/pkg/choice/right"
)

type Chain[T any] struct {
	res choice.Of2[error, T]
}

func Start[T any](r choice.Of2[error, T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(right.Return[error](v))
}

func FromError[T any](err error) Chain[T] {
	return Start(right.Fail[error, T](err))
}

func (c Chain[T]) Result() choice.Of2[error, T] {
	return c.res
}

func (c Chain[T]) Unwrap() (T, error) {
	return right.Unwrap(c.res)
}

func (c Chain[T]) failed() bool {
	return c.res.Slot() == 1
}

// Then composes functions that already return a result
func (c Chain[T]) Then(onSuccess func(t T) choice.Of2[error, T]) Chain[T] {
	return Chain[T]{res: right.Bind(c.res, onSuccess)}
}

// To switches the chain to another value type
func To[T, U any](c Chain[T], onSuccess func(t T) choice.Of2[error, U]) Chain[U] {
	return Chain[U]{res: right.Bind(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{res: right.Try(c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: right.Select(c.res, onSuccess)}
}

func (c Chain[T]) Validate(check func(t T) error) Chain[T] {
	choice.Require("Chain.Validate", "check", check)
	return Chain[T]{res: right.Validate(c.res, func(t T) (bool, error) {
		err := check(t)
		return err == nil, err
	})}
}

func (c Chain[T]) RepeatUntil(onSuccess func(t T) choice.Of2[error, T],
	until func(t T) bool) Chain[T] {
	choice.Require("Chain.RepeatUntil", "until", until)

	if c.failed() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.failed() || !until(c.value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(t T) choice.Of2[error, T],
	while func(t T) bool) Chain[T] {
	choice.Require("Chain.While", "while", while)

	for !c.failed() && while(c.value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or c itself when all have failed.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if !c.failed() {
		return c
	}
	for _, alt := range alternatives {
		if !alt.failed() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.failed() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if onSuccess == nil {
		onSuccess = func(T) {}
	}
	if onFailure == nil {
		onFailure = func(error) {}
	}
	right.DoubleTee(c.res, onFailure, onSuccess)
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return right.Finally(c.res, onFailure, onSuccess)
}

// value is only meaningful on a chain that has not failed.
func (c Chain[T]) value() T {
	v, _ := c.Unwrap()
	return v
}
