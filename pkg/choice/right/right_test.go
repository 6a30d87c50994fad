package right

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/choices/pkg/choice"
)

func parseInt(s string) choice.Of2[string, int] {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Fail[string, int](fmt.Sprintf("%q is not a valid signed integer.", s))
	}
	return Return[string](n)
}

func sum(a, b string) choice.Of2[string, int] {
	return SelectManyWith(parseInt(a),
		func(int) choice.Of2[string, int] { return parseInt(b) },
		func(x, y int) int { return x + y })
}

func TestSelectManyWith_ParseAndSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      string
		wantSlot  int
		wantValue string
	}{
		{"both valid", "40", "2", 2, "42"},
		{"second invalid", "40", "two", 1, `"two" is not a valid signed integer.`},
		{"first invalid", "forty", "2", 1, `"forty" is not a valid signed integer.`},
		{"both invalid", "forty", "two", 1, `"forty" is not a valid signed integer.`},
		{"negative", "-5", " 3 ", 2, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sum(tt.a, tt.b)
			assert.Equal(t, tt.wantSlot, got.Slot())
			assert.Equal(t, tt.wantValue, got.String())
		})
	}
}

func TestSelectManyWith_CombineOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	nextCalls, combineCalls := 0, 0
	next := func(int) choice.Of2[string, int] { nextCalls++; return parseInt("two") }
	combine := func(x, y int) int { combineCalls++; return x + y }

	got := SelectManyWith(parseInt("40"), next, combine)
	assert.Equal(t, 1, nextCalls)
	assert.Equal(t, 0, combineCalls)
	assert.True(t, got.Equal(Fail[string, int](`"two" is not a valid signed integer.`)))

	got = SelectManyWith(parseInt("x"), next, combine)
	assert.Equal(t, 1, nextCalls, "next must not run after a fault")
	assert.Equal(t, 1, got.Slot())
}

func TestBind_ShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	f := func(v int) choice.Of2[string, string] {
		called = true
		return Return[string](strconv.Itoa(v))
	}

	fault := Bind(Fail[string, int]("boom"), f)
	assert.False(t, called)
	assert.True(t, fault.Equal(Fail[string, string]("boom")))

	ok := Bind(Return[string](5), f)
	assert.True(t, called)
	assert.True(t, ok.Equal(Return[string]("5")))
	assert.True(t, SelectMany(Return[string](5), f).Equal(ok))
}

func TestBind_MonadLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) choice.Of2[string, int] { return Return[string](v * 2) }
	g := func(v int) choice.Of2[string, int] {
		if v > 10 {
			return Fail[string, int]("too big")
		}
		return Return[string](v + 1)
	}

	for _, a := range []int{-3, 0, 4, 8} {
		m := Return[string](a)
		assert.True(t, Bind(m, f).Equal(f(a)), "left identity")
		assert.True(t, Bind(m, Return[string, int]).Equal(m), "right identity")
		assert.True(t, Bind(Bind(m, f), g).Equal(
			Bind(m, func(x int) choice.Of2[string, int] { return Bind(f(x), g) })), "associativity")
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	assert.True(t, Select(Return[string](3), strconv.Itoa).Equal(Return[string]("3")))
	assert.True(t, Select(Fail[string, int]("e"), strconv.Itoa).Equal(Fail[string, string]("e")))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(v int) (bool, string) { return v > 0, "not positive" }
	assert.True(t, Validate(Return[string](1), positive).Equal(Return[string](1)))
	assert.True(t, Validate(Return[string](-1), positive).Equal(Fail[string, int]("not positive")))
	assert.True(t, Validate(Fail[string, int]("earlier"), positive).Equal(Fail[string, int]("earlier")))
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()

	var seen []string
	Tee(Return[string](1), func(v int) { seen = append(seen, "tee "+strconv.Itoa(v)) })
	Tee(Fail[string, int]("x"), func(int) { t.Fatalf("unexpected call") })

	in := Fail[string, int]("bad")
	out := DoubleTee(in,
		func(l string) { seen = append(seen, "fault "+l) },
		func(int) { t.Fatalf("unexpected call") })
	assert.True(t, out.Equal(in))
	assert.Equal(t, []string{"tee 1", "fault bad"}, seen)
}

func TestMapFaultAndFinally(t *testing.T) {
	t.Parallel()

	mapped := MapFault(Fail[string, int]("bad"), errors.New)
	require.Equal(t, 1, mapped.Slot())
	assert.Equal(t, "bad", mapped.String())
	assert.True(t, MapFault(Return[string](1), errors.New).Equal(Return[error](1)))

	describe := func(c choice.Of2[string, int]) string {
		return Finally(c,
			func(l string) string { return "fault: " + l },
			func(r int) string { return "value: " + strconv.Itoa(r) })
	}
	assert.Equal(t, "fault: x", describe(Fail[string, int]("x")))
	assert.Equal(t, "value: 2", describe(Return[string](2)))
}

func TestCollect(t *testing.T) {
	t.Parallel()

	all := Collect([]choice.Of2[string, int]{Return[string](1), Return[string](2), Return[string](3)})
	assert.Equal(t, []int{1, 2, 3}, Finally(all, notCalled[string, []int](t), identity[[]int]))

	first := Collect([]choice.Of2[string, int]{Return[string](1), Fail[string, int]("a"), Fail[string, int]("b")})
	assert.True(t, first.Equal(Fail[string, []int]("a")))

	empty := Collect[string, int](nil)
	assert.Equal(t, 2, empty.Slot())
}

func TestTryFromErrorUnwrap(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	v, err := Unwrap(FromError(3, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Unwrap(FromError(0, boom))
	assert.ErrorIs(t, err, boom)

	parsed := Try(Return[error]("12"), strconv.Atoi)
	v, err = Unwrap(parsed)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = Unwrap(Try(Return[error]("x"), strconv.Atoi))
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)

	_, err = Unwrap(Try(Fail[error, string](boom), func(string) (int, error) {
		t.Fatalf("unexpected call")
		return 0, nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestNilFunctionsPanic(t *testing.T) {
	t.Parallel()

	checks := map[string]func(){
		"Bind":   func() { Bind[string, int, int](Return[string](1), nil) },
		"Select": func() { Select[string, int, int](Fail[string, int]("x"), nil) },
		"SelectManyWith": func() {
			SelectManyWith[string, int, int, int](Return[string](1),
				func(int) choice.Of2[string, int] { return Return[string](1) }, nil)
		},
		"Validate": func() { Validate[string, int](Return[string](1), nil) },
		"Tee":      func() { Tee[string, int](Return[string](1), nil) },
		"Try":      func() { Try[int, int](Return[error](1), nil) },
	}
	for name, f := range checks {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				require.True(t, ok, "expected a usage panic, got %v", r)
				assert.ErrorIs(t, err, choice.ErrInvalidArgument)
				assert.Contains(t, err.Error(), "right."+name)
			}()
			f()
		})
	}
}

func notCalled[T, R any](t *testing.T) func(T) R {
	t.Helper()
	return func(T) R {
		t.Fatalf("unexpected call")
		var zero R
		return zero
	}
}

func identity[T any](v T) T { return v }

func TestTeeIf(t *testing.T) {
	t.Parallel()

	var seen []int
	big := func(v int) bool { return v > 10 }
	record := func(v int) { seen = append(seen, v) }

	TeeIf(Return[string](5), big, record)
	TeeIf(Return[string](50), big, record)
	TeeIf(Fail[string, int]("x"), big, record)
	assert.Equal(t, []int{50}, seen)
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	errNeg := errors.New("negative")
	errOdd := errors.New("odd")
	checks := []func(int) error{
		func(v int) error {
			if v < 0 {
				return errNeg
			}
			return nil
		},
		func(v int) error {
			if v%2 != 0 {
				return errOdd
			}
			return nil
		},
	}

	_, err := Unwrap(ValidateAll(Return[error](4), false, checks...))
	assert.NoError(t, err)

	_, err = Unwrap(ValidateAll(Return[error](-3), false, checks...))
	assert.ErrorIs(t, err, errNeg)
	assert.ErrorIs(t, err, errOdd)

	_, err = Unwrap(ValidateAll(Return[error](-3), true, checks...))
	assert.ErrorIs(t, err, errNeg)
	assert.NotErrorIs(t, err, errOdd)

	earlier := errors.New("earlier")
	_, err = Unwrap(ValidateAll(Fail[error, int](earlier), false, checks...))
	assert.Equal(t, earlier, err)
}

func TestUnwrap_NilFault(t *testing.T) {
	t.Parallel()

	_, err := Unwrap(Fail[error, int](nil))
	assert.ErrorIs(t, err, choice.ErrNilFault)

	var zero choice.Of2[error, int]
	_, err = Unwrap(zero)
	assert.ErrorIs(t, err, choice.ErrNilFault)

	_, err = Unwrap(FromError(1, nil))
	assert.NoError(t, err)
}
