package amplifiers

import (
	"iter"
	"slices"

	"github.com/reusee/intcode/intcode"
)

// Permutations yields every ordering of values.
// The yielded slice is reused between iterations.
func Permutations(values []int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		perm := slices.Clone(values)
		// Heap's algorithm, iterative
		counters := make([]int, len(perm))
		if !yield(perm) {
			return
		}
		for i := 1; i < len(perm); {
			if counters[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
				}
				if !yield(perm) {
					return
				}
				counters[i]++
				i = 1
			} else {
				counters[i] = 0
				i++
			}
		}
	}
}

// Best scores every permutation of phases and returns the highest signal with its setting.
// Impossible settings are skipped; ok is false when every setting is impossible.
func Best(m *intcode.Machine, phases []int64, score Score) (best int64, setting []int64, ok bool, err error) {
	for perm := range Permutations(phases) {
		signal, possible, err := score(m, perm)
		if err != nil {
			return 0, nil, false, err
		}
		if !possible {
			continue
		}
		if !ok || signal > best {
			best = signal
			setting = slices.Clone(perm)
			ok = true
		}
	}
	return
}
