// Package nucleotide computes per-position symbol counts over a sliding
// window that wraps around the end of a circular genome.
//
// For a text of length n the window holds n/2 symbols, so the window that
// starts at i covers ExtendedGenome(text)[i : i+n/2].
package nucleotide

import (
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"DNA-Sequence-Analysis/dna_analyzer/config"
	"DNA-Sequence-Analysis/dna_analyzer/matching"
)

// Algorithm selects how a nucleotide array is computed.
type Algorithm int

const (
	// Naive recounts every window from scratch.
	Naive Algorithm = iota
	// Incremental updates the previous window's count in constant time.
	Incremental
)

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Incremental:
		return "incremental"
	}
	return "unknown"
}

// windowLength returns the half-genome window length used for text.
func windowLength(text string) int {
	return len(text) / config.WindowDivisor
}

// ExtendedGenome appends the first len(text)/2 symbols of text to its end so
// that every window of a circular genome is a plain substring.
func ExtendedGenome(text string) string {
	return text + text[:windowLength(text)]
}

// NaiveArray counts symbol in every window independently. O(n^2).
func NaiveArray(symbol byte, text string) common.NucleotideArray {
	n := len(text)
	w := windowLength(text)
	extended := ExtendedGenome(text)
	pattern := string(symbol)

	array := make(common.NucleotideArray, n)
	for i := 0; i < n; i++ {
		array[i] = matching.PatternCount(extended[i:i+w], pattern)
	}
	return array
}

// IncrementalArray produces the same array as NaiveArray in O(n): each
// window's count is the previous count minus the symbol that left the window
// plus the symbol that entered it.
func IncrementalArray(symbol byte, text string) common.NucleotideArray {
	n := len(text)
	if n == 0 {
		return common.NucleotideArray{}
	}
	w := windowLength(text)
	extended := ExtendedGenome(text)

	array := make(common.NucleotideArray, n)
	count := 0
	for j := 0; j < w; j++ {
		if text[j] == symbol {
			count++
		}
	}
	array[0] = count

	for i := 1; i < n; i++ {
		if extended[i-1] == symbol {
			count--
		}
		if extended[i+w-1] == symbol {
			count++
		}
		array[i] = count
	}
	return array
}

// Compute dispatches to the array implementation selected by alg.
func Compute(alg Algorithm, symbol byte, text string) common.NucleotideArray {
	if alg == Naive {
		return NaiveArray(symbol, text)
	}
	return IncrementalArray(symbol, text)
}
