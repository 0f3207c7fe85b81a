// Package analysis bundles a text, a pattern and an optional k-mer length
// into one immutable value whose methods delegate to the matching,
// nucleotide and skew packages.
package analysis

import (
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"DNA-Sequence-Analysis/dna_analyzer/matching"
	"DNA-Sequence-Analysis/dna_analyzer/nucleotide"
	"DNA-Sequence-Analysis/dna_analyzer/sequence"
	"DNA-Sequence-Analysis/dna_analyzer/skew"
	"fmt"
	"log"
)

// Context is safe to copy and to share between goroutines. To analyse a
// different text or pattern, build a new Context.
type Context struct {
	text    string
	pattern string
	k       int
	trace   *log.Logger
}

// Option configures a Context built by New.
type Option func(*Context)

// WithK sets the k-mer length used by FrequencyMap and MostFrequent.
func WithK(k int) Option {
	return func(c *Context) {
		c.k = k
	}
}

// WithTrace sends one line per scanned window of PatternCount to trace.
func WithTrace(trace *log.Logger) Option {
	return func(c *Context) {
		c.trace = trace
	}
}

// New binds text and pattern. The pattern's first symbol is also the symbol
// counted by the nucleotide arrays.
func New(text, pattern string, opts ...Option) Context {
	c := Context{text: text, pattern: pattern}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Context) Text() string    { return c.text }
func (c Context) Pattern() string { return c.pattern }

// K returns the k-mer length, or 0 if none was set.
func (c Context) K() int { return c.k }

// PatternCount counts the exact occurrences of the pattern in the text.
func (c Context) PatternCount() int {
	return matching.TracedPatternCount(c.text, c.pattern, c.trace)
}

// PatternMatching returns the start of every exact occurrence of the pattern.
func (c Context) PatternMatching() []int {
	return matching.PatternMatching(c.text, c.pattern)
}

// FrequencyMap counts the k-mers of the text.
func (c Context) FrequencyMap() (common.FrequencyTable, error) {
	if c.k <= 0 {
		return nil, fmt.Errorf("analysis: k-mer length not set: %w", common.ErrMissingParameter)
	}
	return matching.FrequencyMap(c.text, c.k)
}

// MostFrequent returns the most frequent k-mers of the text with their count.
func (c Context) MostFrequent() ([]common.KmerCount, error) {
	freq, err := c.FrequencyMap()
	if err != nil {
		return nil, err
	}
	return matching.MostFrequent(freq)
}

// ExtendedGenome returns the text with its first half appended.
func (c Context) ExtendedGenome() string {
	return nucleotide.ExtendedGenome(c.text)
}

// NucleotideArray counts the pattern's first symbol in every circular window
// of the text, recounting each window.
func (c Context) NucleotideArray() (common.NucleotideArray, error) {
	return c.nucleotideArray(nucleotide.Naive)
}

// FasterNucleotideArray returns the same array as NucleotideArray using
// constant-time window updates.
func (c Context) FasterNucleotideArray() (common.NucleotideArray, error) {
	return c.nucleotideArray(nucleotide.Incremental)
}

func (c Context) nucleotideArray(alg nucleotide.Algorithm) (common.NucleotideArray, error) {
	if len(c.pattern) == 0 {
		return nil, fmt.Errorf("analysis: no symbol to count: %w", common.ErrMissingParameter)
	}
	return nucleotide.Compute(alg, c.pattern[0], c.text), nil
}

// GCContent returns the fraction of the text made of G and C.
func (c Context) GCContent() float64 {
	return sequence.CalculateGCContent(c.text)
}

// Skew returns the G-C skew array of the text.
func (c Context) Skew() common.SkewArray {
	return skew.Array(c.text)
}

// MinimumSkew returns the positions where the text's skew is lowest.
func (c Context) MinimumSkew() []int {
	return skew.Minimum(c.text)
}

// ApproximatePatternMatching returns where the pattern occurs with at most d mismatches.
func (c Context) ApproximatePatternMatching(d int) []int {
	return matching.ApproximatePatternMatching(c.text, c.pattern, d)
}

// ApproximatePatternCount counts the pattern's occurrences with at most d mismatches.
func (c Context) ApproximatePatternCount(d int) int {
	return matching.ApproximatePatternCount(c.pattern, c.text, d)
}
