package config

// K-mer counting parameters
const (
	DefaultK = 5
	// 4^10 counters (8 MiB) is the largest dense frequency array we allocate.
	MaxFrequencyArrayK = 10
)

// Approximate matching parameters
const (
	DefaultMaxMismatches = 1
)

// Nucleotide array parameters
const (
	// The sliding window covers len(text)/WindowDivisor symbols.
	WindowDivisor  = 2
	DefaultSymbols = "ACGT"
)

// Demonstration inputs
const (
	DemoText    = "ACAACTATGCATACTATCGGGAACTATCCT"
	DemoPattern = "ACTAT"
)

// FastaExtensions lists the file suffixes ReadSequence parses as FASTA.
var FastaExtensions = []string{".fa", ".fasta", ".fna", ".faa"}
