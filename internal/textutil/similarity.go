package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultSimilarityThreshold is the ratio above which two diagnostic
// messages are treated as duplicates of each other.
const DefaultSimilarityThreshold = 0.7

// SimilarToAny reports whether candidate is materially the same as one of
// the existing messages. Both sides are normalized before scoring, so case
// and whitespace differences never defeat deduplication.
func SimilarToAny(candidate string, existing []string, threshold float64) bool {
	normalized := NormalizeMessage(candidate)
	for _, message := range existing {
		if SimilarityRatio(normalized, NormalizeMessage(message)) >= threshold {
			return true
		}
	}
	return false
}

// NormalizeMessage lowercases a message, collapses runs of whitespace to
// single spaces, and applies NFC normalization so equivalent unicode
// sequences compare equal.
func NormalizeMessage(message string) string {
	return norm.NFC.String(strings.Join(strings.Fields(strings.ToLower(message)), " "))
}

// SimilarityRatio computes a sequence similarity ratio in [0,1] between two
// strings: 2*M/(lenA+lenB) where M is the length of their longest common
// subsequence of runes. Two empty strings are fully similar.
func SimilarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Single-row LCS table; diagnostic lines are short so quadratic time
	// is fine.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	matched := prev[len(rb)]
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}
