package assemble

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/model"
)

// Stats counts what Build placed and skipped.
type Stats struct {
	Placed  int
	Skipped int
	// SkippedByClass counts skipped grid lessons per class name.
	SkippedByClass map[string]int
}

// Diagnostics reports one warning per class with skipped grid lessons, in
// class name order.
func (s Stats) Diagnostics() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	for _, class := range slices.Sorted(maps.Keys(s.SkippedByClass)) {
		diags.AddWarning(diagnostic.CodeSkippedLesson,
			fmt.Sprintf("%d grid lessons left out of the week", s.SkippedByClass[class]), class, "")
	}
	return diags
}

// Invert turns a lesson -> label mapping into label -> lesson. When several
// lessons share a label the one with the smallest id wins (see idLess).
func Invert(mapping map[*model.NSLesson]model.Label) map[model.Label]*model.NSLesson {
	out := make(map[model.Label]*model.NSLesson, len(mapping))

	for lesson, label := range mapping {
		if label == "" {
			continue
		}

		if prev, ok := out[label]; ok && !idLess(lesson.ID, prev.ID) {
			continue
		}

		out[label] = lesson
	}

	return out
}

// idLess orders integer ids numerically and before any other id.
func idLess(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil && x != y:
		return x < y
	case errA == nil && errB != nil:
		return true
	case errA != nil && errB == nil:
		return false
	}

	return a < b
}

// Build buckets the grid lessons of every pair by day and slot. A grid
// lesson whose label is not bound, or whose position falls outside the
// matrix, is skipped.
func Build(pairs []*correlate.Correlation, days, slots int) (*Matrix, Stats) {
	m := NewMatrix(days, slots)
	stats := Stats{SkippedByClass: make(map[string]int)}

	for _, pair := range pairs {
		inverted := Invert(pair.Mapping())

		for _, gl := range pair.Grid.Lessons {
			ns, ok := inverted[gl.Label()]
			if ok && m.Add(gl.Day.Index, gl.Slot, ns.ID) {
				stats.Placed++
				continue
			}

			stats.Skipped++
			stats.SkippedByClass[pair.Name()]++
		}
	}

	return m, stats
}
