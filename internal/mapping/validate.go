package mapping

import (
	"errors"
	"fmt"
	"strings"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/validator"
)

// Validate checks a decisions file. Structural problems (missing lesson ids,
// unknown sources, duplicate entries) are errors. When c is not nil, entries
// naming classes or lessons the documents no longer have are warnings.
func Validate(df *DecisionsFile, c *correlate.Correlator) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("decisions_is_nil", "decisions file is nil", "", "")
		return res
	}

	if err := validator.Struct(df); err != nil {
		var verr *validator.Error
		if !errors.As(err, &verr) {
			res.AddError("invalid_decisions", err.Error(), "", "")
			return res
		}

		for field, msg := range verr.Fields {
			res.AddError("invalid_field", msg, "", field)
		}
	}

	seenClasses := map[string]struct{}{}

	for _, cd := range df.Classes {
		key := strings.ToUpper(strings.TrimSpace(cd.Class))
		if _, ok := seenClasses[key]; ok {
			res.AddError("duplicate_class", fmt.Sprintf("duplicate class %q", cd.Class), cd.Class, "")
			continue
		}

		seenClasses[key] = struct{}{}

		seenLessons := map[string]struct{}{}
		for _, d := range cd.Correlations {
			if _, ok := seenLessons[d.Lesson]; ok {
				res.AddError("duplicate_lesson", fmt.Sprintf("duplicate lesson %q", d.Lesson), cd.Class, d.Lesson)
				continue
			}

			seenLessons[d.Lesson] = struct{}{}
		}

		if c != nil {
			checkAgainst(res, cd, c)
		}
	}

	return res
}

func checkAgainst(res *diagnostic.Diagnostics, cd ClassDecisions, c *correlate.Correlator) {
	pair, ok := c.Class(cd.Class)
	if !ok {
		res.AddWarning(diagnostic.CodeStaleDecision, "class is not present in both documents", cd.Class, "")
		return
	}

	for _, d := range cd.Correlations {
		if _, ok := pair.Lesson(d.Lesson); !ok {
			res.AddWarning(diagnostic.CodeStaleDecision, "lesson is not in the class plan", cd.Class, d.Lesson)
			continue
		}

		if d.Label != "" && !pair.Grid.Labels.Has(d.Label) {
			res.AddWarning(diagnostic.CodeStaleDecision,
				fmt.Sprintf("label %q is not offered by the grid", d.Label), cd.Class, d.Lesson)
		}
	}
}
