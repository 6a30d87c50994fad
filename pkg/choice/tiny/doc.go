// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of choice.Of2[error, T] results, slot 2 being the success.
//
// Operations:
// - Start/FromValue/FromError: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/To: transform the value, or switch to a chain of another type
// - Validate: reject a success with an error
// - Or/And: pick among alternative or required chains
// - While/RepeatUntil: loop a step over the success value
// - Ensure: trigger side effects without changing the result
// - Finally/Unwrap: reduce to a concrete value
//
// A failed chain skips every later step and keeps its first error.
package tiny
