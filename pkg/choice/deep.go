package choice

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"
	"sync"
)

// deepEqual and deepHash walk values the same way, so equal values always
// hash alike. They follow reflect.DeepEqual except that NaN equals NaN.
// Funcs, chans and unsafe pointers compare by identity.

// maxHashDepth bounds the walk; cyclic values stop contributing past it.
const maxHashDepth = 32

var plainTypes sync.Map // reflect.Type -> bool

// plain reports whether t is compared exactly by == with no floats,
// pointers or interfaces inside, so the runtime hash can be used.
func plain(t reflect.Type) bool {
	if p, ok := plainTypes.Load(t); ok {
		return p.(bool)
	}
	p := isPlain(t)
	plainTypes.Store(t, p)
	return p
}

func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Array:
		return isPlain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

type visit struct {
	a, b uintptr
	typ  reflect.Type
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func deepEqual(a, b reflect.Value, seen map[visit]struct{}) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if a.IsNil() != b.IsNil() {
			return false
		}
		if a.Pointer() == b.Pointer() && (a.Kind() != reflect.Slice || a.Len() == b.Len()) {
			return true
		}
		v := visit{a.Pointer(), b.Pointer(), a.Type()}
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return floatEqual(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return floatEqual(real(x), real(y)) && floatEqual(imag(x), imag(y))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Array:
		for i := range a.Len() {
			if !deepEqual(a.Index(i), b.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := range a.Len() {
			if !deepEqual(a.Index(i), b.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !deepEqual(iter.Value(), other, seen) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		return deepEqual(a.Elem(), b.Elem(), seen)
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return deepEqual(a.Elem(), b.Elem(), seen)
	case reflect.Struct:
		for i := range a.NumField() {
			if !deepEqual(a.Field(i), b.Field(i), seen) {
				return false
			}
		}
		return true
	default:
		// Func, Chan, UnsafePointer
		return a.Pointer() == b.Pointer()
	}
}

func deepHash(v reflect.Value) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeValue(&h, v, maxHashDepth)
	return h.Sum64()
}

func writeUint64(h *maphash.Hash, x uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	_, _ = h.Write(b[:])
}

func writeFloat(h *maphash.Hash, f float64) {
	switch {
	case math.IsNaN(f):
		f = math.NaN()
	case f == 0:
		f = 0
	}
	writeUint64(h, math.Float64bits(f))
}

func writeValue(h *maphash.Hash, v reflect.Value, depth int) {
	if depth == 0 {
		return
	}

	switch v.Kind() {
	case reflect.Invalid:
		_ = h.WriteByte(0)
	case reflect.Bool:
		if v.Bool() {
			_ = h.WriteByte(1)
		} else {
			_ = h.WriteByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(h, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(h, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(h, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(h, real(c))
		writeFloat(h, imag(c))
	case reflect.String:
		_, _ = h.WriteString(v.String())
	case reflect.Array, reflect.Slice:
		writeUint64(h, uint64(v.Len()))
		for i := range v.Len() {
			writeValue(h, v.Index(i), depth-1)
		}
	case reflect.Map:
		// entries are summed so iteration order does not matter
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			var entry maphash.Hash
			entry.SetSeed(hashSeed)
			writeValue(&entry, iter.Key(), depth-1)
			writeValue(&entry, iter.Value(), depth-1)
			sum += entry.Sum64()
		}
		writeUint64(h, uint64(v.Len()))
		writeUint64(h, sum)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			_ = h.WriteByte(0)
			return
		}
		_ = h.WriteByte(1)
		if v.Kind() == reflect.Interface {
			_, _ = h.WriteString(v.Elem().Type().String())
		}
		writeValue(h, v.Elem(), depth-1)
	case reflect.Struct:
		for i := range v.NumField() {
			writeValue(h, v.Field(i), depth-1)
		}
	default:
		writeUint64(h, uint64(v.Pointer()))
	}
}
