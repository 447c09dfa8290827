package model

import (
	"sort"
	"strings"
)

// LabelSeparator joins the subject and teacher portions of a label.
const LabelSeparator = " — "

// Label is "{subject} — {rawTeacher}".
type Label string

// MakeLabel builds the label of a subject/teacher pair.
func MakeLabel(subject, rawTeacher string) Label {
	return Label(subject + LabelSeparator + rawTeacher)
}

// Split returns the subject and teacher portions. A label without separator
// is all subject.
func (l Label) Split() (subject, teacher string) {
	subject, teacher, _ = strings.Cut(string(l), LabelSeparator)
	return subject, teacher
}

func (l Label) String() string { return string(l) }

// LabelSet is a set of labels. Iteration order is undefined; use Sorted.
type LabelSet map[Label]struct{}

// NewLabelSet returns a set holding labels.
func NewLabelSet(labels ...Label) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add inserts l.
func (s LabelSet) Add(l Label) { s[l] = struct{}{} }

// Has reports whether l is in the set.
func (s LabelSet) Has(l Label) bool {
	_, ok := s[l]
	return ok
}

// Len returns the number of labels.
func (s LabelSet) Len() int { return len(s) }

// Sorted returns the labels in lexicographic order.
func (s LabelSet) Sorted() []Label {
	out := make([]Label, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
