package main

import (
	"DNA-Sequence-Analysis/dna_analyzer/analysis"
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"DNA-Sequence-Analysis/dna_analyzer/config"
	"DNA-Sequence-Analysis/dna_analyzer/io"
	"DNA-Sequence-Analysis/dna_analyzer/matching"
	"DNA-Sequence-Analysis/dna_analyzer/nucleotide"
	"DNA-Sequence-Analysis/dna_analyzer/sequence"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

func formatKmerCounts(words []common.KmerCount) string {
	var parts []string
	for _, w := range words {
		parts = append(parts, fmt.Sprintf("(%s, %d)", w.Kmer, w.Count))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func main() {
	text := pflag.StringP("text", "t", config.DemoText, "DNA sequence to analyse")
	file := pflag.StringP("file", "f", "", "read the DNA sequence from a plain-text or FASTA file instead")
	pattern := pflag.StringP("pattern", "p", config.DemoPattern, "pattern to search for")
	k := pflag.IntP("kmer", "k", config.DefaultK, "k-mer length")
	d := pflag.IntP("mismatches", "d", config.DefaultMaxMismatches, "maximum Hamming distance for approximate matches")
	symbols := pflag.StringP("symbols", "s", config.DefaultSymbols, "symbols to build nucleotide arrays for")
	verbose := pflag.BoolP("verbose", "v", false, "trace every window scanned by the pattern counter")
	pflag.Parse()

	seq := strings.ToUpper(*text)
	if *file != "" {
		var err error
		seq, err = io.ReadSequence(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading sequence file '%s': %v\n", *file, err)
			os.Exit(1)
		}
	}

	var opts []analysis.Option
	opts = append(opts, analysis.WithK(*k))
	if *verbose {
		opts = append(opts, analysis.WithTrace(log.New(os.Stderr, "trace: ", 0)))
	}
	c := analysis.New(seq, strings.ToUpper(*pattern), opts...)

	startTime := time.Now()

	fmt.Printf("Sequence length: %d, GC content: %.4f\n", len(c.Text()), c.GCContent())
	fmt.Printf("pattern count: %d\n", c.PatternCount())
	fmt.Printf("pattern positions: %v\n", c.PatternMatching())

	freq, err := c.FrequencyMap()
	if err != nil {
		fmt.Printf("Error building frequency map: %v\n", err)
	} else {
		fmt.Printf("patterns found: %d distinct %d-mers\n", len(freq), c.K())
		words, err := matching.MostFrequent(freq)
		if err != nil {
			fmt.Printf("Error finding most frequent words: %v\n", err)
		} else {
			fmt.Printf("most frequent: %s\n", formatKmerCounts(words))
		}
	}

	arrays, err := nucleotide.Arrays(context.Background(), c.Text(), []byte(strings.ToUpper(*symbols)), nucleotide.Incremental)
	if err != nil {
		fmt.Printf("Error computing nucleotide arrays: %v\n", err)
	} else {
		for _, s := range []byte(strings.ToUpper(*symbols)) {
			fmt.Printf("nucleotide array %c: %v\n", s, arrays[s])
		}
	}

	fmt.Printf("minimum skew positions: %v\n", c.MinimumSkew())
	fmt.Printf("approximate matches (d=%d): %v (count %d)\n", *d, c.ApproximatePatternMatching(*d), c.ApproximatePatternCount(*d))
	fmt.Printf("reverse complement of pattern: %s\n", sequence.ReverseComplement(c.Pattern()))

	duration := time.Since(startTime)
	fmt.Printf("Time taken: %.6f seconds\n", duration.Seconds())
}
