package common

// FrequencyTable maps every k-mer seen in a text to its number of occurrences.
type FrequencyTable map[string]int

// KmerCount pairs a k-mer with its occurrence count.
type KmerCount struct {
	Kmer  string
	Count int
}

// NucleotideArray holds, for each window start i, the number of times a symbol
// occurs in the circular window of length len(text)/2 starting at i.
type NucleotideArray []int

// SkewArray is the running G-C difference over a genome.
// Element 0 is always 0 and len(SkewArray) == len(genome)+1.
type SkewArray []int

// Equal reports whether two nucleotide arrays agree at every index.
func (a NucleotideArray) Equal(b NucleotideArray) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
