package matching

import (
	"DNA-Sequence-Analysis/dna_analyzer/common"
	"DNA-Sequence-Analysis/dna_analyzer/config"
	"fmt"
	"math"
	"sort"

	"github.com/shenwei356/kmers"
)

// FrequencyMap slides a window of length k over text and counts every k-mer.
// k must be positive; a k longer than text yields an empty table.
func FrequencyMap(text string, k int) (common.FrequencyTable, error) {
	if k <= 0 {
		return nil, fmt.Errorf("frequency map: k must be positive, got %d: %w", k, common.ErrMissingParameter)
	}

	freq := make(common.FrequencyTable)
	for i := 0; i <= len(text)-k; i++ {
		freq[text[i:i+k]]++
	}
	return freq, nil
}

// MostFrequent returns every k-mer of table whose count equals the table's
// maximum, sorted by k-mer. Ties are all kept.
func MostFrequent(table common.FrequencyTable) ([]common.KmerCount, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("most frequent: %w", common.ErrEmptyInput)
	}

	maxCount := math.MinInt
	for _, count := range table {
		maxCount = max(maxCount, count)
	}

	var words []common.KmerCount
	for kmer, count := range table {
		if count == maxCount {
			words = append(words, common.KmerCount{Kmer: kmer, Count: count})
		}
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Kmer < words[j].Kmer
	})
	return words, nil
}

// FrequencyArray counts k-mers into a dense slice of length 4^k indexed by the
// lexicographic 2-bit code of each k-mer (A=0, C=1, G=2, T=3).
// Windows containing a symbol other than A, C, G or T are skipped.
// The slice always holds 4^k ints regardless of len(text), so k is capped at
// config.MaxFrequencyArrayK.
func FrequencyArray(text string, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("frequency array: k must be positive, got %d: %w", k, common.ErrMissingParameter)
	}
	if k > config.MaxFrequencyArrayK {
		return nil, fmt.Errorf("frequency array: k=%d exceeds %d: %w", k, config.MaxFrequencyArrayK, common.ErrInvalidLength)
	}

	counts := make([]int, 1<<(2*k))
	runStart := 0 // first index of the current run of valid bases
	for end := 0; end < len(text); end++ {
		if !isBase(text[end]) {
			runStart = end + 1
			continue
		}
		if end-runStart+1 < k {
			continue
		}
		code, err := kmers.Encode([]byte(text[end-k+1 : end+1]))
		if err != nil {
			return nil, fmt.Errorf("frequency array: encode %q: %w", text[end-k+1:end+1], err)
		}
		counts[code]++
	}
	return counts, nil
}

// KmerFromCode decodes a FrequencyArray index back into its k-mer.
func KmerFromCode(code uint64, k int) string {
	return string(kmers.MustDecode(code, k))
}

func isBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
