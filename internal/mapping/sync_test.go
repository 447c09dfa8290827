package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/model"
)

func sampleCorrelator(t *testing.T) *correlate.Correlator {
	t.Helper()

	ns, err := model.NewNSClass("1", "10A", 12, 13)
	require.NoError(t, err)

	teacher := model.NewTeacher("7", "Иван", "Петров", "Сергеевич")
	ns.AddLesson(&model.NSLesson{ID: "1001", Name: "Информатика", Teacher: teacher})
	ns.AddLesson(&model.NSLesson{ID: "1002", Name: "Физика", Teacher: model.NewTeacher("8", "Павел", "Иванов", "Павлович")})
	ns.AddLesson(&model.NSLesson{ID: "1003", Name: "ОБЖ"})

	grid := model.NewGridClass("10A")
	grid.AddLesson(model.NewGridLesson("Информатика", "1:Петров И. С.", "12", model.Days[0], 0))
	grid.AddLesson(model.NewGridLesson("Информатика", "2:Петров И. С.", "14", model.Days[0], 0))
	grid.AddLesson(model.NewGridLesson("Физика", "Иванов П. П.", "21", model.Days[1], 2))
	grid.DeriveLabels()

	return correlate.New([]*model.NSClass{ns}, []*model.GridClass{grid})
}

func TestExport(t *testing.T) {
	c := sampleCorrelator(t)
	c.AutoMatch(nil)

	df := Export(c)
	assert.Equal(t, CurrentVersion, df.Version)
	require.Len(t, df.Classes, 1)

	cd := df.Classes[0]
	assert.Equal(t, "10A", cd.Class)
	require.Len(t, cd.Correlations, 3)

	info := cd.Correlations[0]
	assert.Equal(t, "1001", info.Lesson)
	assert.Equal(t, "Петров И. С.", info.Teacher)
	assert.Empty(t, info.Label)
	assert.Empty(t, info.Source)
	assert.Equal(t, LabelList{"Информатика — 1:Петров И. С.", "Информатика — 2:Петров И. С."}, info.Candidates)

	phys := cd.Correlations[1]
	assert.Equal(t, model.Label("Физика — Иванов П. П."), phys.Label)
	assert.Equal(t, "auto", phys.Source)
	assert.Empty(t, phys.Candidates)

	assert.Empty(t, cd.Correlations[2].Teacher)
}

func TestApply(t *testing.T) {
	c := sampleCorrelator(t)

	df := &DecisionsFile{Classes: []ClassDecisions{{
		Class: "10a",
		Correlations: []Decision{
			{Lesson: "1001", Label: "Информатика — 1:Петров И. С.", Source: "persisted"},
			{Lesson: "1002", Label: "Информатика — 2:Петров И. С.", Source: "manual"},
			{Lesson: "1003", Label: "ОБЖ — Зайцев Л. М.", Source: "manual"},
			{Lesson: "1009", Label: "", Source: "manual"},
		},
	}}}

	diags := Apply(df, c)

	pair, ok := c.Class("10A")
	require.True(t, ok)

	b, ok := pair.Binding(pair.NS.Plan[0])
	require.True(t, ok)
	assert.Equal(t, correlate.SourcePersisted, b.Source)

	b, ok = pair.Binding(pair.NS.Plan[1])
	require.True(t, ok)
	assert.Equal(t, model.Label("Информатика — 2:Петров И. С."), b.Label)
	assert.Equal(t, correlate.SourceManual, b.Source)

	_, ok = pair.Binding(pair.NS.Plan[2])
	assert.False(t, ok)

	assert.Len(t, diags.ByCode(diagnostic.CodeStaleDecision), 2)
	assert.Equal(t, 2, pair.Len())
	assert.False(t, pair.Complete())
}

func TestExportApply_RoundTrip(t *testing.T) {
	c := sampleCorrelator(t)
	c.AutoMatch(nil)
	require.NoError(t, c.Decide("10A", "1001", "Информатика — 2:Петров И. С."))

	data, err := Marshal(Export(c))
	require.NoError(t, err)

	df, err := Parse(data)
	require.NoError(t, err)

	fresh := sampleCorrelator(t)
	diags := Apply(df, fresh)
	assert.Empty(t, diags.All())

	want, _ := c.Class("10A")
	got, _ := fresh.Class("10A")
	for i := range want.NS.Plan {
		wb, wok := want.Binding(want.NS.Plan[i])
		gb, gok := got.Binding(got.NS.Plan[i])

		assert.Equal(t, wok, gok)
		assert.Equal(t, wb, gb)
	}
}
