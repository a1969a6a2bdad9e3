package travel

// Index builds a one-time id→position lookup table for a response-scoped
// collection. Linking resolves every foreign key through such a table
// rather than scanning the collection per reference.
//
// Matching is strictly typed: an int key never matches a string key of the
// same textual value, which the type parameter enforces at compile time.
// Duplicate keys keep the first occurrence, matching first-match search
// semantics.
func Index[T any, K comparable](items []T, key func(T) K) map[K]int {
	idx := make(map[K]int, len(items))
	for i, item := range items {
		k := key(item)
		if _, exists := idx[k]; !exists {
			idx[k] = i
		}
	}
	return idx
}
