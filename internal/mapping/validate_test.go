package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/model"
)

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil, nil)
	require.False(t, res.IsValid())
	assert.Equal(t, "decisions_is_nil", res.Errors[0].Code)
}

func TestValidate_Structure(t *testing.T) {
	tests := []struct {
		name  string
		df    *DecisionsFile
		codes []string
	}{
		{
			name: "valid",
			df: &DecisionsFile{Classes: []ClassDecisions{{
				Class:        "10A",
				Correlations: []Decision{{Lesson: "1", Label: "Math — Smith", Source: "auto"}},
			}}},
		},
		{
			name: "missing lesson id",
			df: &DecisionsFile{Classes: []ClassDecisions{{
				Class:        "10A",
				Correlations: []Decision{{Label: "Math — Smith"}},
			}}},
			codes: []string{"invalid_field"},
		},
		{
			name: "unknown source",
			df: &DecisionsFile{Classes: []ClassDecisions{{
				Class:        "10A",
				Correlations: []Decision{{Lesson: "1", Source: "guess"}},
			}}},
			codes: []string{"invalid_field"},
		},
		{
			name:  "missing class name",
			df:    &DecisionsFile{Classes: []ClassDecisions{{}}},
			codes: []string{"invalid_field"},
		},
		{
			name: "duplicate class",
			df: &DecisionsFile{Classes: []ClassDecisions{
				{Class: "10A"},
				{Class: "10a"},
			}},
			codes: []string{"duplicate_class"},
		},
		{
			name: "duplicate lesson",
			df: &DecisionsFile{Classes: []ClassDecisions{{
				Class: "10A",
				Correlations: []Decision{
					{Lesson: "1", Label: "Math — Smith"},
					{Lesson: "1", Label: "Art — Lee"},
				},
			}}},
			codes: []string{"duplicate_lesson"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.df, nil)

			var codes []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
			}

			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestValidate_AgainstDocuments(t *testing.T) {
	ns, err := model.NewNSClass("1", "10A", 0, 0)
	require.NoError(t, err)
	ns.AddLesson(&model.NSLesson{ID: "1", Name: "Math", Teacher: &model.Teacher{Name: "Smith"}})

	grid := model.NewGridClass("10A")
	grid.AddLesson(model.NewGridLesson("Math", "Smith", "", model.Days[0], 0))
	grid.DeriveLabels()

	c := correlate.New([]*model.NSClass{ns}, []*model.GridClass{grid})

	df := &DecisionsFile{Classes: []ClassDecisions{
		{Class: "10A", Correlations: []Decision{
			{Lesson: "1", Label: "Math — Smith"},
			{Lesson: "2", Label: "Math — Smith"},
			{Lesson: "1", Label: "Math — Jones"},
		}},
		{Class: "11B"},
	}}

	res := Validate(df, c)

	assert.Len(t, res.ByCode("duplicate_lesson"), 1)
	assert.Len(t, res.ByCode(diagnostic.CodeStaleDecision), 3)
}
