package choice

import "github.com/hashicorp/go-set/v3"

// NewSet returns a hash set of unions keyed by their Hash.
func NewSet[C set.Hasher[uint64]](items ...C) *set.HashSet[C, uint64] {
	return set.HashSetFrom[C, uint64](items)
}

// Distinct drops repeated unions from items, keeping the first occurrence of
// each in its original position.
func Distinct[C set.Hasher[uint64]](items []C) []C {
	seen := set.NewHashSet[C, uint64](len(items))
	out := make([]C, 0, len(items))
	for _, item := range items {
		if seen.Insert(item) {
			out = append(out, item)
		}
	}
	return out
}
