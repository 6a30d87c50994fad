package choice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/choices/pkg/choice"
)

func TestMapKOfN_TransformsActiveSlot(t *testing.T) {
	t.Parallel()

	c := choice.Choice2Of3[int, string, bool]("foobar")
	got := choice.Map2Of3(c, func(s string) int { return len(s) })
	assert.True(t, got.Equal(choice.Choice2Of3[int, int, bool](6)))

	five := choice.Choice5Of5[int, int, int, int, int](20)
	assert.True(t, choice.Map5Of5(five, strconv.Itoa).Equal(
		choice.Choice5Of5[int, int, int, int, string]("20")))

	assert.True(t, choice.MapOf1(choice.Choice1Of1(2), func(v int) int { return v * 3 }).
		Equal(choice.Choice1Of1(6)))
}

func TestMapKOfN_PassesOtherSlotsThrough(t *testing.T) {
	t.Parallel()

	c := choice.Choice3Of3[int, string, bool](true)
	got := choice.Map1Of3(c, notCalled[int, float64](t))
	assert.Equal(t, 3, got.Slot())
	assert.True(t, got.Equal(choice.Choice3Of3[float64, string, bool](true)))

	d := choice.Choice1Of4[int, int, int, int](9)
	for _, m := range []choice.Of4[int, int, int, int]{
		choice.Map2Of4(d, notCalled[int, int](t)),
		choice.Map3Of4(d, notCalled[int, int](t)),
		choice.Map4Of4(d, notCalled[int, int](t)),
	} {
		assert.True(t, m.Equal(d))
	}

	e := choice.Choice4Of5[int, int, int, string, int]("x")
	assert.True(t, choice.Map2Of5(e, notCalled[int, bool](t)).
		Equal(choice.Choice4Of5[int, bool, int, string, int]("x")))
}

func TestMapKOfN_Composition(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v + 1 }
	g := func(v int) string { return strconv.Itoa(v * 2) }

	for _, c := range choice.ToChoicesOf3(10, 20, 30) {
		composed := choice.Map2Of3(c, func(v int) string { return g(f(v)) })
		chained := choice.Map2Of3(choice.Map2Of3(c, f), g)
		assert.True(t, composed.Equal(chained), "slot %d", c.Slot())
	}
}

func TestMapOfN_MapAll(t *testing.T) {
	t.Parallel()

	var calls []int
	c := choice.Choice2Of2[int, string]("abc")
	got := choice.MapOf2(c,
		func(int) bool { calls = append(calls, 1); return false },
		func(s string) int { calls = append(calls, 2); return len(s) })
	assert.True(t, got.Equal(choice.Choice2Of2[bool, int](3)))
	assert.Equal(t, []int{2}, calls)

	three := choice.MapOf3(choice.Choice1Of3[int, int, int](4),
		strconv.Itoa, notCalled[int, string](t), notCalled[int, string](t))
	assert.True(t, three.Equal(choice.Choice1Of3[string, string, string]("4")))

	four := choice.MapOf4(choice.Choice4Of4[int, int, int, int](4),
		notCalled[int, int](t), notCalled[int, int](t), notCalled[int, int](t),
		func(v int) int { return -v })
	assert.True(t, four.Equal(choice.Choice4Of4[int, int, int, int](-4)))

	five := choice.MapOf5(choice.Choice3Of5[int, int, int, int, int](1),
		notCalled[int, int](t), notCalled[int, int](t),
		func(v int) int { return v * 100 },
		notCalled[int, int](t), notCalled[int, int](t))
	assert.Equal(t, 3, five.Slot())
	assert.Equal(t, "100", five.String())
}

func TestMap_NilTransformPanics(t *testing.T) {
	t.Parallel()

	requireUsagePanic(t, choice.ErrInvalidArgument, func() {
		choice.Map2Of2[int, int, int](choice.Choice1Of2[int, int](1), nil)
	})
	requireUsagePanic(t, choice.ErrInvalidArgument, func() {
		choice.MapOf2[int, int, int, int](choice.Choice1Of2[int, int](1), func(int) int { return 0 }, nil)
	})
	requireUsagePanic(t, choice.ErrInvalidArgument, func() {
		choice.MapOf1[int, int](choice.Choice1Of1(1), nil)
	})
}
