// Package render implements the procedural pattern generators and the
// caption overlay. Every random decision is drawn from an explicitly
// supplied Source so that callers can make output reproducible.
package render

// Source is the random source used by all generators. *math/rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// between returns a uniformly distributed integer in [lo, hi].
func between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// pick returns a uniformly chosen element of items, which must not be empty.
func pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
