// Package skew locates candidate replication origins from the running
// difference between guanine and cytosine counts along a genome.
package skew

import "DNA-Sequence-Analysis/dna_analyzer/common"

// Array returns the skew of every prefix of genome: element i is the number
// of G minus the number of C in genome[:i]. Symbols other than G and C,
// including ones outside {A, C, G, T}, leave the skew unchanged.
func Array(genome string) common.SkewArray {
	skew := make(common.SkewArray, len(genome)+1)
	for i := 0; i < len(genome); i++ {
		skew[i+1] = skew[i] + step(genome[i])
	}
	return skew
}

// Minimum returns, in ascending order, every index of Array(genome) that holds
// its minimum value. The result is never empty.
func Minimum(genome string) []int {
	return extremes(Array(genome), func(v, best int) bool { return v < best })
}

// Maximum returns, in ascending order, every index of Array(genome) that holds
// its maximum value.
func Maximum(genome string) []int {
	return extremes(Array(genome), func(v, best int) bool { return v > best })
}

func step(base byte) int {
	switch base {
	case 'G':
		return 1
	case 'C':
		return -1
	}
	return 0
}

// extremes collects the positions of the best value in skew, where better
// reports whether v strictly beats the current best.
func extremes(skew common.SkewArray, better func(v, best int) bool) []int {
	best := skew[0]
	positions := []int{0}
	for i := 1; i < len(skew); i++ {
		switch {
		case better(skew[i], best):
			best = skew[i]
			positions = positions[:0]
			positions = append(positions, i)
		case skew[i] == best:
			positions = append(positions, i)
		}
	}
	return positions
}
