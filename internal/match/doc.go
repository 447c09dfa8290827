// Package match provides the label-level primitives of correlation: exact
// subject/teacher matching, the display order of candidate labels, and
// Levenshtein-based suggestions for lessons nothing matched.
//
// Key functions:
//   - ExactMatch: case-insensitive subject, exact teacher comparison
//   - RankCandidates: orders labels by subject, teacher and group digit
//   - NormalizeName: folds names for fuzzy comparison
//   - Levenshtein: computes edit distance between strings (rune-wise)
//   - Nearest: the closest labels to a lesson, for diagnostics
package match
