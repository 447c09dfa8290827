package mapping

import (
	"strings"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/model"
)

// DecisionsFile represents the root of a YAML decisions file.
type DecisionsFile struct {
	// Version of the decisions schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Classes lists the decisions of each class.
	Classes []ClassDecisions `yaml:"classes" validate:"dive"`
}

// ClassDecisions holds the decisions of one class.
type ClassDecisions struct {
	// Class name as printed in either document.
	Class string `yaml:"class" validate:"required"`

	Correlations []Decision `yaml:"correlations,omitempty" validate:"dive"`
}

// Decision binds one NS lesson to a grid label.
type Decision struct {
	// Lesson is the NS lesson id.
	Lesson string `yaml:"lesson" validate:"required"`

	// Subject and Teacher describe the lesson for the reviewer.
	Subject string `yaml:"subject,omitempty"`
	Teacher string `yaml:"teacher,omitempty"`

	// Label is the chosen grid label; empty means none.
	Label model.Label `yaml:"label"`

	// Source is one of auto, persisted, manual.
	Source string `yaml:"source,omitempty" validate:"omitempty,oneof=auto persisted manual"`

	// Candidates lists the labels a reviewer may pick from.
	Candidates LabelList `yaml:"candidates,omitempty"`
}

// IsManual reports whether the entry is a reviewer decision.
func (d Decision) IsManual() bool {
	return d.Source == correlate.SourceManual.String()
}

// Class returns the decisions of the class named name, ignoring case.
func (df *DecisionsFile) Class(name string) (*ClassDecisions, bool) {
	for i := range df.Classes {
		if strings.EqualFold(strings.TrimSpace(df.Classes[i].Class), strings.TrimSpace(name)) {
			return &df.Classes[i], true
		}
	}

	return nil, false
}

// Prior collects the stored labels of every non-manual entry.
func (df *DecisionsFile) Prior() correlate.Prior {
	prior := correlate.Prior{}

	for _, cd := range df.Classes {
		for _, d := range cd.Correlations {
			if d.IsManual() || d.Label == "" {
				continue
			}

			prior.Set(cd.Class, d.Lesson, d.Label)
		}
	}

	return prior
}

// Len returns the number of entries over all classes.
func (df *DecisionsFile) Len() int {
	n := 0
	for _, cd := range df.Classes {
		n += len(cd.Correlations)
	}

	return n
}
