package question

import "math/rand/v2"

// Sample returns n questions drawn uniformly at random without
// replacement from pool, using the supplied rand source. When n meets
// or exceeds the pool size the whole pool is returned (shuffled).
// The pool itself is never mutated.
func Sample(r *rand.Rand, pool []Question, n int) []Question {
	idx := r.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]Question, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}

// Shuffle returns a shuffled copy of qs using the supplied rand source.
func Shuffle(r *rand.Rand, qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	r.Shuffle(len(out), func(a, b int) {
		out[a], out[b] = out[b], out[a]
	})
	return out
}
