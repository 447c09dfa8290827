package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timetable-merge/internal/model"
)

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates([]model.Label{"math — smith", "math — jones2", "art — lee"})

	assert.Equal(t,
		[]model.Label{"art — lee", "math — jones2", "math — smith"},
		candidates.Labels())
}

func TestRankCandidates_GroupDigitSortsAfterPlainTeacher(t *testing.T) {
	candidates := RankCandidates([]model.Label{
		"Информатика — Петров И. С.2",
		"Информатика — Петров И. С.",
		"информатика — Петров И. С.1",
		"Английский — Smith J. K.",
	})

	assert.Equal(t, []model.Label{
		"Английский — Smith J. K.",
		"Информатика — Петров И. С.",
		"информатика — Петров И. С.1",
		"Информатика — Петров И. С.2",
	}, candidates.Labels())
}

func TestRankCandidates_Deterministic(t *testing.T) {
	labels := []model.Label{"Math — Smith", "math — Smith", "MATH — smith"}

	first := RankCandidates(labels).Labels()
	for range 5 {
		reversed := []model.Label{labels[2], labels[1], labels[0]}
		assert.Equal(t, first, RankCandidates(reversed).Labels())
	}
}

func TestNewCandidate(t *testing.T) {
	c := NewCandidate("Англ. яз — Лебедева А. П.2")

	assert.Equal(t, "англ. яз", c.Subject)
	assert.Equal(t, "лебедева а. п.", c.Teacher)
	assert.Equal(t, 2, c.Group)

	c = NewCandidate("Классный час — ")
	assert.Equal(t, "", c.Teacher)
	assert.Equal(t, 0, c.Group)
}

func TestTrailingGroup(t *testing.T) {
	tests := []struct {
		input string
		base  string
		group int
	}{
		{"jones2", "jones", 2},
		{"smith", "smith", 0},
		{"", "", 0},
		{"Петров И. С.9", "Петров И. С.", 9},
		{"1:Петров", "1:Петров", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			base, group := TrailingGroup(tt.input)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.group, group)
		})
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := RankCandidates([]model.Label{"A — x", "B — y", "C — z"})

	top2 := candidates.Top(2)
	if len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	top10 := candidates.Top(10)
	if len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}
}

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name     string
		label    model.Label
		subject  string
		teacher  string
		expected bool
	}{
		{"identical", "Math — Smith", "Math", "Smith", true},
		{"subject case ignored", "MATH — Smith", "math", "Smith", true},
		{"cyrillic case ignored", "МАТЕМАТИКА — Петров И. С.", "Математика", "Петров И. С.", true},
		{"teacher case matters", "Math — smith", "Math", "Smith", false},
		{"group prefix is part of teacher", "Math — 1:Smith", "Math", "Smith", false},
		{"different subject", "Art — Smith", "Math", "Smith", false},
		{"empty teacher", "Math — ", "Math", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExactMatch(tt.label, tt.subject, tt.teacher))
		})
	}
}
