package fuzzy

// Similarity compares a typed answer against the expected answer and
// returns a match score in [0, 1], where 1.0 means the two strings are
// identical after normalization.
//
// Both strings are normalized first. An expected answer that normalizes to
// the empty string scores 0 regardless of input, guarding against
// malformed card content. Otherwise the score is derived from the
// Levenshtein distance between the normalized strings:
//
//	score = (maxLen - distance) / maxLen
//
// floored at 0, where maxLen is the longer of the two normalized lengths.
// The function is deterministic and symmetric for non-degenerate inputs.
func Similarity(input, expected string) float64 {
	normInput := Normalize(input)
	normExpected := Normalize(expected)

	if len(normExpected) == 0 {
		return 0
	}
	if normInput == normExpected {
		return 1.0
	}

	a := []rune(normInput)
	b := []rune(normExpected)

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	score := float64(maxLen-levenshtein(a, b)) / float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// levenshtein computes the classic edit distance between two rune slices,
// counting single-character insertions, deletions and substitutions at
// unit cost. It keeps a single rolling row instead of the full matrix.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j-1]+cost, // substitution
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
