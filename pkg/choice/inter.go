package choice

// Choice is implemented by every union type in this package.
type Choice interface {
	// Slot returns the 1-based index of the active slot
	Slot() int
	// Arity returns the number of slots
	Arity() int
	// Hash returns a hash derived from the active slot and its value
	Hash() uint64
	// Equals reports whether other is a union of the same type, slot and value
	Equals(other any) bool
	// String returns the string form of the active value
	String() string
}

var (
	_ Choice = Of1[int]{}
	_ Choice = Of2[int, int]{}
	_ Choice = Of3[int, int, int]{}
	_ Choice = Of4[int, int, int, int]{}
	_ Choice = Of5[int, int, int, int, int]{}
)
