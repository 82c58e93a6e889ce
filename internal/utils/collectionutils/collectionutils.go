package collectionutils

// Values collects the values of a map into a slice. Iteration order is
// unspecified; callers that need a stable order must sort the result.
func Values[K comparable, V any](m map[K]V) []V {
	result := make([]V, 0, len(m))
	for _, v := range m {
		result = append(result, v)
	}

	return result
}

// Filter returns the items for which keep returns true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}

	return result
}

// GroupBy groups a slice of items into a map based on a key selector function.
// The key selector function extracts a key from each item, and the resulting map contains slices of items for each unique key.
func GroupBy[T any, K comparable](items []T, keySelector func(T) K) map[K][]T {
	m := make(map[K][]T)
	for _, item := range items {
		k := keySelector(item)
		m[k] = append(m[k], item)
	}

	return m
}
