package matching_test

import (
	"bytes"
	"log"
	"math/rand"
	"strings"
	"testing"

	"DNA-Sequence-Analysis/dna_analyzer/matching"

	"github.com/stretchr/testify/assert"
)

const demoText = "ACAACTATGCATACTATCGGGAACTATCCT"

func TestPatternCount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
	}{
		{"demo", demoText, "ACTAT", 3},
		{"overlapping", "GCGCG", "GCG", 2},
		{"single symbol", "AAAA", "A", 4},
		{"whole text", "ACGT", "ACGT", 1},
		{"absent", "ACGT", "TT", 0},
		{"pattern longer than text", "AC", "ACG", 0},
		{"empty pattern", "ACGT", "", 0},
		{"empty text", "", "A", 0},
		{"unrecognized symbols never match", "AXAX", "AA", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matching.PatternCount(tc.text, tc.pattern))
		})
	}
}

func TestPatternCount_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		text := randomString(rng, rng.Intn(50), "ACGT")
		pattern := randomString(rng, 1+rng.Intn(4), "ACGT")

		want := 0
		for j := 0; j+len(pattern) <= len(text); j++ {
			if strings.HasPrefix(text[j:], pattern) {
				want++
			}
		}
		assert.Equal(t, want, matching.PatternCount(text, pattern), "text %s pattern %s", text, pattern)
		assert.Len(t, matching.PatternMatching(text, pattern), want)
	}
}

func TestTracedPatternCount_LogsEveryWindow(t *testing.T) {
	var buf bytes.Buffer
	trace := log.New(&buf, "", 0)

	count := matching.TracedPatternCount("ACGTA", "GT", trace)

	assert.Equal(t, 1, count)
	assert.Equal(t, "window 0: AC\nwindow 1: CG\nwindow 2: GT\nwindow 3: TA\n", buf.String())
}

func TestPatternMatching(t *testing.T) {
	assert.Equal(t, []int{3, 12, 22}, matching.PatternMatching(demoText, "ACTAT"))
	assert.Equal(t, []int{1, 3, 9}, matching.PatternMatching("GATATATGCATATACTT", "ATAT"))
	assert.Empty(t, matching.PatternMatching("ACGT", "ACGTA"))
	assert.Empty(t, matching.PatternMatching("ACGT", ""))
}
