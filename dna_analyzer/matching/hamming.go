package matching

import (
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"fmt"
)

// HammingDistance counts the positions at which p and q differ.
// It returns an error wrapping common.ErrInvalidLength if the lengths differ.
func HammingDistance(p, q string) (int, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("hamming distance: lengths %d and %d differ: %w", len(p), len(q), common.ErrInvalidLength)
	}
	return mismatches(p, q), nil
}

// ApproximatePatternMatching returns, in ascending order, every start index i
// such that text[i:i+len(pattern)] is within Hamming distance d of pattern.
func ApproximatePatternMatching(text, pattern string, d int) []int {
	k := len(pattern)
	positions := []int{}
	if k == 0 || k > len(text) || d < 0 {
		return positions
	}
	for i := 0; i <= len(text)-k; i++ {
		if mismatches(text[i:i+k], pattern) <= d {
			positions = append(positions, i)
		}
	}
	return positions
}

// ApproximatePatternCount returns how many windows of text are within Hamming
// distance d of pattern.
func ApproximatePatternCount(pattern, text string, d int) int {
	return len(ApproximatePatternMatching(text, pattern, d))
}

// mismatches assumes len(a) == len(b).
func mismatches(a, b string) int {
	count := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}
