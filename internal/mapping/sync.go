package mapping

import (
	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
)

// Export records the current state of c. Unbound lessons carry their
// candidate list so a reviewer can fill the label in.
func Export(c *correlate.Correlator) *DecisionsFile {
	df := &DecisionsFile{Version: CurrentVersion}

	for _, pair := range c.Classes() {
		cd := ClassDecisions{Class: pair.Name()}

		for _, lesson := range pair.NS.Plan {
			d := Decision{
				Lesson:  lesson.ID,
				Subject: lesson.SubjectName(),
				Teacher: lesson.TeacherName(),
			}

			if b, ok := pair.Binding(lesson); ok {
				d.Label = b.Label
				d.Source = b.Source.String()
			} else {
				for _, l := range pair.Candidates(lesson) {
					if l != "" {
						d.Candidates = append(d.Candidates, l)
					}
				}
			}

			cd.Correlations = append(cd.Correlations, d)
		}

		df.Classes = append(df.Classes, cd)
	}

	return df
}

// Apply runs the automatic pass of c with the stored labels of df as prior,
// then replays the manual entries of df. Manual entries that no longer apply
// are reported, not fatal.
func Apply(df *DecisionsFile, c *correlate.Correlator) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	c.AutoMatch(df.Prior())

	for _, cd := range df.Classes {
		for _, d := range cd.Correlations {
			if !d.IsManual() {
				continue
			}

			if err := c.Decide(cd.Class, d.Lesson, d.Label); err != nil {
				diags.AddWarning(diagnostic.CodeStaleDecision, err.Error(), cd.Class, d.Lesson)
			}
		}
	}

	return diags
}
