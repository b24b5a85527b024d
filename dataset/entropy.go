package dataset

import (
	"math"
	"sort"
)

/*
Entropy takes a map of values to their number of occurrences and returns
the Shannon entropy in bits of the distribution they describe. Values with
no occurrences are ignored and an empty distribution has an entropy of 0.
Terms are summed in ascending order of count, so the result depends only
on the counts: distributions that differ just in their value names have
bit-identical entropies.
*/
func Entropy(counts map[string]int) float64 {
	var total int
	positive := make([]int, 0, len(counts))
	for _, c := range counts {
		if c > 0 {
			total += c
			positive = append(positive, c)
		}
	}
	if total == 0 {
		return 0.0
	}
	sort.Ints(positive)
	var result float64
	for _, c := range positive {
		p := float64(c) / float64(total)
		result -= p * math.Log2(p)
	}
	return result
}
