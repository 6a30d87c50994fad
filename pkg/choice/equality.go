package choice

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/google/uuid"
)

const maxArity = 5

// variantNamespace scopes the name-based UUIDs identifying each slot of each arity.
var variantNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ib-77/choices"))

// variantKeys[arity][slot] plays the part of a runtime type identity in Hash.
var variantKeys = func() (keys [maxArity + 1][maxArity + 1]uint64) {
	for arity := 1; arity <= maxArity; arity++ {
		for slot := 1; slot <= arity; slot++ {
			id := uuid.NewSHA1(variantNamespace, fmt.Appendf(nil, "Choice%dOf%d", slot, arity))
			keys[arity][slot] = binary.BigEndian.Uint64(id[:8])
		}
	}
	return keys
}()

var hashSeed = maphash.MakeSeed()

// hashOf combines the identity of a variant with the hash of its value.
// slot is 0-based.
func hashOf(arity int, slot uint8, v any) uint64 {
	return variantKeys[arity][int(slot)+1]*397 ^ hashValue(v)
}

// hashValue prefers a Hash() uint64 method, then the runtime hash of plain
// values, then a structural hash that agrees with deepEqual.
func hashValue(v any) uint64 {
	if isNil(v) {
		return 0
	}
	if hv, ok := v.(interface{ Hash() uint64 }); ok {
		return hv.Hash()
	}
	if plain(reflect.TypeOf(v)) {
		return maphash.Comparable(hashSeed, v)
	}
	return deepHash(reflect.ValueOf(v))
}

// valueEqual uses an Equal(T) bool method when T has one, and falls back to
// == for plain values and deepEqual otherwise.
func valueEqual[T any](a, b T) bool {
	if !isNil(any(a)) {
		if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
			return eq.Equal(b)
		}
	}
	return anyEqual(any(a), any(b))
}

func anyEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if plain(t) {
		return a == b
	}
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b), map[visit]struct{}{})
}

// stringOf renders absent values as the empty string.
func stringOf(v any) string {
	if isNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// orZero stands in the zero T for the unset value of a zero union.
func orZero[T any](v any) any {
	if v == nil {
		var zero T
		return zero
	}
	return v
}

// as recovers a slot value; a nil payload yields the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
