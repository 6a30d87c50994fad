// Package right treats choice.Of2[L, R] as an either-style result whose slot 2
// carries the success value and slot 1 the fault. Every combinator
// short-circuits on a fault: the fault is copied into the new result type and
// the supplied function is not called.
//
// Key operations:
// - Return/Fail: start a chain from a success or a fault
// - Bind/SelectMany: continue with a function returning a new result
// - Select: transform the success value
// - SelectManyWith: run two dependent steps and combine their values
// - Validate/ValidateAll: reject a success with a fault
// - Tee/TeeIf/DoubleTee: side effects that leave the result unchanged
// - MapFault: transform the fault, leaving successes alone
// - Collect: gather many results, stopping at the first fault
// - Try/FromError/Unwrap: bridge to (value, error) returning Go functions
// - Finally: reduce to a plain value with one handler per outcome
//
// Package left provides the same operations with the slots swapped.
package right
