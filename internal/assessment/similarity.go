package assessment

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases, strips punctuation and collapses whitespace so
// that listening answers compare on words alone.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// SimilarityRatio is the Ratcliff/Obershelp ratio between two normalized
// strings: 2*M/(len(a)+len(b)) where M sums the recursively matched blocks.
// Identical inputs yield 1.0, disjoint inputs 0.0.
func SimilarityRatio(a, b string) float64 {
	ra := []rune(NormalizeText(a))
	rb := []rune(NormalizeText(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	m := matchingChars(ra, rb)
	return 2.0 * float64(m) / float64(total)
}

// matchingChars finds the longest common substring, then recurses on the
// pieces to its left and right, summing matched lengths.
func matchingChars(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	bestLen, bestA, bestB := 0, 0, 0
	// lengths[j] = longest common suffix of a[:i+1] and b[:j+1]
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > bestLen {
					bestLen = cur[j+1]
					bestA = i + 1 - bestLen
					bestB = j + 1 - bestLen
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}
	if bestLen == 0 {
		return 0
	}
	return bestLen +
		matchingChars(a[:bestA], b[:bestB]) +
		matchingChars(a[bestA+bestLen:], b[bestB+bestLen:])
}

// WordOverlap returns |expected ∩ actual| / |expected| over normalized word
// sets. An empty expected sentence counts as full overlap.
func WordOverlap(expected, actual string) float64 {
	expWords := strings.Fields(NormalizeText(expected))
	if len(expWords) == 0 {
		return 1.0
	}
	actSet := make(map[string]bool)
	for _, w := range strings.Fields(NormalizeText(actual)) {
		actSet[w] = true
	}
	expSet := make(map[string]bool)
	hit := 0
	for _, w := range expWords {
		if expSet[w] {
			continue
		}
		expSet[w] = true
		if actSet[w] {
			hit++
		}
	}
	return float64(hit) / float64(len(expSet))
}

// ListeningLevel bands a repetition attempt. The thresholds are on the
// similarity ratio, with word overlap as a secondary signal for the middle
// bands.
func ListeningLevel(similarity, overlap float64) Level {
	switch {
	case similarity >= 0.9:
		return LevelC1
	case similarity >= 0.75:
		return LevelB2
	case similarity >= 0.5 || overlap >= 0.6:
		return LevelB1
	case similarity >= 0.3 || overlap >= 0.3:
		return LevelA2
	default:
		return LevelA1
	}
}
