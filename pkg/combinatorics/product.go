// Package combinatorics provides generic products over finite sequences.
package combinatorics

import "iter"

// CartesianProduct returns every ordered pair (a, b) with a taken from first
// and b from second. The index into first varies slowest, so the pair at
// i*len(second)+j is (first[i], second[j]).
//
// An empty input on either side yields an empty, non-nil slice. Neither
// input is modified.
func CartesianProduct[A, B any](first []A, second []B) []Pair[A, B] {
	result := make([]Pair[A, B], 0, len(first)*len(second))
	for _, a := range first {
		for _, b := range second {
			result = append(result, Pair[A, B]{First: a, Second: b})
		}
	}
	return result
}

// ProductSeq yields the same pairs as CartesianProduct, in the same order,
// without materializing them.
func ProductSeq[A, B any](first []A, second []B) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, a := range first {
			for _, b := range second {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}
