package matching

import "log"

// PatternCount returns the number of (possibly overlapping) exact occurrences
// of pattern in text. A pattern longer than text, or an empty pattern, occurs 0 times.
func PatternCount(text, pattern string) int {
	return TracedPatternCount(text, pattern, nil)
}

// TracedPatternCount is PatternCount with an optional trace logger that
// receives one line per candidate window. A nil trace disables tracing.
func TracedPatternCount(text, pattern string, trace *log.Logger) int {
	k := len(pattern)
	if k == 0 || k > len(text) {
		return 0
	}

	count := 0
	for i := 0; i <= len(text)-k; i++ {
		window := text[i : i+k]
		if trace != nil {
			trace.Printf("window %d: %s", i, window)
		}
		if window == pattern {
			count++
		}
	}
	return count
}

// PatternMatching returns the start index of every exact occurrence of pattern in text.
func PatternMatching(text, pattern string) []int {
	k := len(pattern)
	positions := []int{}
	if k == 0 || k > len(text) {
		return positions
	}
	for i := 0; i <= len(text)-k; i++ {
		if text[i:i+k] == pattern {
			positions = append(positions, i)
		}
	}
	return positions
}
