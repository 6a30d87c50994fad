package choice

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hashed struct{ id uint64 }

func (h hashed) Hash() uint64 { return h.id }

func TestVariantKeys(t *testing.T) {
	t.Parallel()

	seen := map[uint64]bool{}
	for arity := 1; arity <= maxArity; arity++ {
		for slot := 1; slot <= arity; slot++ {
			k := variantKeys[arity][slot]
			require.NotZero(t, k)
			require.False(t, seen[k], "duplicate key for %d of %d", slot, arity)
			seen[k] = true
		}
	}
	assert.Len(t, seen, 15)
}

func TestHashValue(t *testing.T) {
	t.Parallel()

	assert.Zero(t, hashValue(nil))
	assert.Zero(t, hashValue((*int)(nil)))
	assert.Equal(t, uint64(99), hashValue(hashed{99}))
	assert.Equal(t, hashValue("abc"), hashValue("abc"))
	assert.Equal(t, hashValue([]int{1, 2}), hashValue([]int{1, 2}))
	assert.NotEqual(t, hashValue([]int{1, 2}), hashValue([]int{2, 1}))
	assert.Equal(t, hashValue(math.NaN()), hashValue(math.NaN()))
	assert.Equal(t, hashValue(0.0), hashValue(math.Copysign(0, -1)))
	assert.Equal(t, hashValue(map[string]int{"a": 1, "b": 2}), hashValue(map[string]int{"b": 2, "a": 1}))

	// comparable struct holding an unhashable interface value
	type boxed struct{ V any }
	assert.Equal(t, hashValue(boxed{[]int{1}}), hashValue(boxed{[]int{1}}))
}

func TestAnyEqual(t *testing.T) {
	t.Parallel()

	type boxed struct{ V any }
	assert.True(t, anyEqual(nil, nil))
	assert.False(t, anyEqual(nil, 0))
	assert.False(t, anyEqual(int32(1), int64(1)))
	assert.True(t, anyEqual(boxed{[]int{1}}, boxed{[]int{1}}))
	assert.True(t, anyEqual([]string{"a"}, []string{"a"}))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var f func()
	var ch chan int
	var err error
	assert.True(t, isNil(nil))
	assert.True(t, isNil(f))
	assert.True(t, isNil(ch))
	assert.True(t, isNil(err))
	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil(func() {}))
}

func TestWithout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(0), without(0, 1))
	assert.Equal(t, uint8(1), without(2, 1))
	assert.Equal(t, uint8(3), without(4, 0))
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		ue, ok := r.(*UsageError)
		require.True(t, ok)
		assert.Equal(t, "choice: Forbid2Of3: slot 2 is active: invalid operation", ue.Error())
	}()
	forbid("Forbid2Of3", 1, 1)
}

type pointerBag struct {
	Name  string
	Items []*int
}

func TestHashValue_FollowsPointers(t *testing.T) {
	t.Parallel()

	x, y, z := 7, 7, 8

	a, b := []*int{&x, nil}, []*int{&y, nil}
	require.True(t, anyEqual(a, b))
	assert.Equal(t, hashValue(a), hashValue(b))
	assert.False(t, anyEqual(a, []*int{&z, nil}))

	p := pointerBag{Name: "bag", Items: []*int{&x}}
	q := pointerBag{Name: "bag", Items: []*int{&y}}
	require.True(t, anyEqual(p, q))
	assert.Equal(t, hashValue(p), hashValue(q))
	assert.Equal(t, hashValue(&p), hashValue(&q))
}

type node struct {
	V    int
	Next *node
}

func TestDeepWalk_Cycles(t *testing.T) {
	t.Parallel()

	a := &node{V: 1}
	a.Next = a
	b := &node{V: 1}
	b.Next = &node{V: 1, Next: b}

	require.True(t, anyEqual(a, b))
	assert.Equal(t, hashValue(a), hashValue(b))
}

func TestPlain(t *testing.T) {
	t.Parallel()

	type flat struct {
		A int
		B [2]string
	}
	type withPtr struct{ P *int }

	assert.True(t, plain(reflect.TypeOf(flat{})))
	assert.False(t, plain(reflect.TypeOf(withPtr{})))
	assert.False(t, plain(reflect.TypeOf(1.5)))
	assert.False(t, plain(reflect.TypeOf([]int{})))
}
