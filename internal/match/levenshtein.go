package match

import (
	"sort"

	"timetable-merge/internal/model"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Ensure ra is the shorter string for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(runes(a), runes(b))).
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// NameScore compares two names after NormalizeName.
func NameScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeName(a), NormalizeName(b))
}

// DefaultSuggestionScore is the minimum similarity for a suggestion.
const DefaultSuggestionScore = 0.5

// Nearest returns up to n labels most similar to the subject/teacher pair,
// best first, skipping those scoring below minScore.
func Nearest(subject, teacher string, labels []model.Label, n int, minScore float64) []model.Label {
	type scored struct {
		label model.Label
		score float64
	}

	target := model.MakeLabel(subject, teacher)

	var hits []scored
	for _, l := range labels {
		ls, lt := l.Split()
		// Weights: subject 70%, teacher 30%.
		score := 0.7*NameScore(ls, subject) + 0.3*NameScore(lt, teacher)
		if score >= minScore {
			hits = append(hits, scored{label: l, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return Levenshtein(string(hits[i].label), string(target)) < Levenshtein(string(hits[j].label), string(target))
	})

	out := make([]model.Label, 0, min(n, len(hits)))
	for i := 0; i < len(hits) && i < n; i++ {
		out = append(out, hits[i].label)
	}

	return out
}
