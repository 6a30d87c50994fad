package choice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/choices/pkg/choice"
)

// ==== Test Helpers: Boxes ====

// Distinct wrapper types let a union carry the same payload in every slot
// while keeping the slot types apart.
type (
	int1 struct{ V int }
	int2 struct{ V int }
	int3 struct{ V int }
	int4 struct{ V int }
	int5 struct{ V int }
)

func (b int1) String() string { return fmt.Sprint(b.V) }
func (b int2) String() string { return fmt.Sprint(b.V) }
func (b int3) String() string { return fmt.Sprint(b.V) }
func (b int4) String() string { return fmt.Sprint(b.V) }
func (b int5) String() string { return fmt.Sprint(b.V) }

// ==== Test Helpers: Handlers ====

// notCalled returns a handler failing the test when invoked.
func notCalled[T, R any](t *testing.T) func(T) R {
	t.Helper()
	return func(T) R {
		t.Helper()
		t.Fatalf("unexpected call")
		var zero R
		return zero
	}
}

// recorder returns a handler that notes its slot and passes the value through.
func recorder(calls *[]int, slot int) func(int) int {
	return func(v int) int {
		*calls = append(*calls, slot)
		return v
	}
}

// ==== Test Helpers: Panics ====

func requireUsagePanic(t *testing.T, kind error, f func()) *choice.UsageError {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")
	ue, ok := recovered.(*choice.UsageError)
	require.Truef(t, ok, "panic value %T is not *choice.UsageError", recovered)
	require.ErrorIs(t, ue, kind)
	return ue
}
