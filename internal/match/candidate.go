package match

import (
	"sort"
	"strings"

	"timetable-merge/internal/model"
)

// Candidate is a grid label offered to the reviewer for one NS lesson, with
// the components of its display sort key.
type Candidate struct {
	Label model.Label

	// Sort key components
	Subject string // lowercased subject portion
	Teacher string // lowercased teacher portion without its trailing group digit
	Group   int    // trailing digit of the teacher portion, 0 if none
}

// NewCandidate splits l into its sort key.
func NewCandidate(l model.Label) Candidate {
	subject, teacher := l.Split()
	base, group := TrailingGroup(teacher)

	return Candidate{
		Label:   l,
		Subject: strings.ToLower(subject),
		Teacher: strings.ToLower(base),
		Group:   group,
	}
}

// TrailingGroup splits a trailing decimal digit off teacher. Teachers that
// only differ by that digit are the same person teaching numbered groups.
func TrailingGroup(teacher string) (string, int) {
	runes := []rune(teacher)
	if len(runes) == 0 {
		return teacher, 0
	}

	last := runes[len(runes)-1]
	if last < '0' || last > '9' {
		return teacher, 0
	}

	return string(runes[:len(runes)-1]), int(last - '0')
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates orders labels for display: by subject ignoring case, then by
// teacher, then by group digit, then by the raw label for determinism.
func RankCandidates(labels []model.Label) CandidateList {
	candidates := make(CandidateList, 0, len(labels))
	for _, l := range labels {
		candidates = append(candidates, NewCandidate(l))
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Subject != c[j].Subject {
		return c[i].Subject < c[j].Subject
	}
	if c[i].Teacher != c[j].Teacher {
		return c[i].Teacher < c[j].Teacher
	}
	if c[i].Group != c[j].Group {
		return c[i].Group < c[j].Group
	}
	// Tie-breaker: raw label
	return c[i].Label < c[j].Label
}

// Labels returns the labels in list order.
func (c CandidateList) Labels() []model.Label {
	out := make([]model.Label, len(c))
	for i := range c {
		out[i] = c[i].Label
	}
	return out
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// ExactMatch reports whether l names subject (ignoring case) taught by exactly
// teacher.
func ExactMatch(l model.Label, subject, teacher string) bool {
	ls, lt := l.Split()
	return strings.ToLower(ls) == strings.ToLower(subject) && lt == teacher
}
