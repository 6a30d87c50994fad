// Package left is the mirror of package right: choice.Of2[L, R] carries the
// success value in slot 1 and the fault in slot 2. The operations and their
// short-circuit rules are the same, applied to the opposite slot.
package left
