// Package choice provides immutable tagged unions holding exactly one value out
// of N typed alternatives, for N from 1 to 5.
//
// A value of type Of3[A, B, C] occupies one slot: it holds an A, a B or a C,
// never more than one. The slot is fixed at construction and never changes.
// The zero value of every OfN is Choice1OfN of the zero value of T1.
//
// Key operations:
// - Choice1Of2 .. Choice5Of5: construct a union occupying a given slot
// - MatchOf1 .. MatchOf5: exhaustive dispatch, one handler per slot
// - Map1Of2 .. Map5Of5: transform one slot, pass the others through
// - MapOf1 .. MapOf5: transform every slot at once
// - IfOf2 .. IfOf5: build a union from a flag, evaluating only the taken branch
// - Widen1To2 .. Widen4To5: embed a union as the leading slots of a wider one
// - Forbid1Of2 .. Forbid5Of5: drop a slot known not to be active
// - Left1Of3 .. Right5Of5: split one slot off the rest
// - When1 .. When5: build matchers slot by slot
// - ToChoicesOf1 .. ToChoicesOf5: place each value of a tuple in its own slot
// - Distinct, NewSet: hash-keyed collections of unions
// - Dump: YAML rendering as chosen slot and value
//
// Unions compare equal when they occupy the same slot and hold equal values.
// Hash mixes a per-slot identity into the value hash, so Choice1Of2(42) and
// Choice2Of2(42) are unequal and hash differently.
//
// Passing a nil handler or transform is a programming error and panics with a
// *UsageError. Faults that are part of a computation belong in a slot instead;
// see the right and left packages for either-style composition.
package choice
