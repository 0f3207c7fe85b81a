package sequence

import "strings"

var complement = map[byte]byte{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
}

// Reverse returns seq with its symbols in reverse order.
func Reverse(seq string) string {
	n := len(seq)
	var sb strings.Builder
	sb.Grow(n)
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(seq[i])
	}
	return sb.String()
}

// Complement maps each base to its Watson-Crick partner (A<->T, C<->G).
// Any other symbol becomes 'N'.
func Complement(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		if compBase, ok := complement[seq[i]]; ok {
			sb.WriteByte(compBase)
		} else {
			sb.WriteByte('N') // Default for unknown bases
		}
	}
	return sb.String()
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func ReverseComplement(seq string) string {
	return Complement(Reverse(seq))
}

// CalculateGCContent returns the fraction of seq's symbols that are G or C,
// in either case. An empty sequence has GC content 0.
func CalculateGCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
