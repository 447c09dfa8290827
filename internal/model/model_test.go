package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		first, last, middle string
		expected            string
	}{
		{"Иван", "Петров", "Сергеевич", "Петров И. С."},
		{"John", "Smith", "Kevin", "Smith J. K."},
		{"", "Smith", "Kevin", "Smith K."},
		{"John", "Smith", "", "Smith J."},
		{"", "Smith", " ", "Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortName(tt.first, tt.last, tt.middle))
		})
	}

	teacher := NewTeacher("7", "Анна", "Лебедева", "Павловна")
	assert.Equal(t, "Лебедева А. П.", teacher.Name)
	assert.Equal(t, "Лебедева А. П.", teacher.String())
}

func TestSplitClassName(t *testing.T) {
	tests := []struct {
		name    string
		grade   int
		letter  string
		wantErr bool
	}{
		{"10A", 10, "A", false},
		{"5Б", 5, "Б", false},
		{"11В", 11, "В", false},
		{"A", 0, "", true},
		{"10", 0, "", true},
		{"AB", 0, "", true},
		{"+1A", 0, "", true},
		{"", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, letter, err := SplitClassName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.grade, grade)
			assert.Equal(t, tt.letter, letter)
		})
	}
}

func TestNewNSClass_DerivationIsIdempotent(t *testing.T) {
	for _, name := range []string{"10a", "5б", " 11В ", "1z"} {
		c, err := NewNSClass("1", name, 12, 13)
		require.NoError(t, err)

		assert.Equal(t, 25, c.Students)

		runes := []rune(c.Name)
		assert.Equal(t, string(runes[len(runes)-1]), c.Letter)

		grade, letter, err := SplitClassName(c.Name)
		require.NoError(t, err)
		assert.Equal(t, c.Grade, grade)
		assert.Equal(t, c.Letter, letter)

		again, err := NewNSClass(c.ID, c.Name, c.Boys, c.Girls)
		require.NoError(t, err)
		assert.Equal(t, c.Name, again.Name)
		assert.Equal(t, c.Grade, again.Grade)
		assert.Equal(t, c.Letter, again.Letter)
	}

	_, err := NewNSClass("2", "x", 0, 0)
	assert.Error(t, err)
}

func TestNSClass_LessonByID(t *testing.T) {
	c, err := NewNSClass("1", "7A", 0, 0)
	require.NoError(t, err)

	c.AddLesson(&NSLesson{ID: "11", Name: "Math"})
	c.AddLesson(&NSLesson{ID: "12", Name: "Art"})

	l, ok := c.LessonByID("12")
	require.True(t, ok)
	assert.Equal(t, "Art", l.Name)
	assert.Equal(t, "", l.TeacherName())

	_, ok = c.LessonByID("13")
	assert.False(t, ok)
}

func TestNSLesson_SubjectName(t *testing.T) {
	subject := &Subject{ID: "5", Name: "Алгебра"}

	assert.Equal(t, "Алгебра", (&NSLesson{Subject: subject}).SubjectName())
	assert.Equal(t, "Алгебра (углубл.)", (&NSLesson{Name: "Алгебра (углубл.)", Subject: subject}).SubjectName())
	assert.Equal(t, "", (&NSLesson{}).SubjectName())
}

func TestSubject_AddTeacher(t *testing.T) {
	s := &Subject{ID: "1", Name: "Math"}
	a := NewTeacher("1", "A", "Alpha", "B")
	b := NewTeacher("2", "C", "Beta", "D")

	s.AddTeacher(a)
	s.AddTeacher(b)
	s.AddTeacher(a)
	s.AddTeacher(nil)

	assert.Equal(t, []*Teacher{a, b}, s.Teachers)
}

func TestNewGridLesson(t *testing.T) {
	l := NewGridLesson("Информатика", "1:Петров И. С.", "Каб. 12", Days[2], 3)

	assert.True(t, l.HasGroup)
	assert.Equal(t, "1", l.Group)
	assert.Equal(t, "Петров И. С.", l.Teacher)
	assert.Equal(t, "1:Петров И. С.", l.RawTeacher)
	assert.Equal(t, "каб. 12", l.Room)
	assert.Equal(t, Label("Информатика — 1:Петров И. С."), l.Label())
	assert.Equal(t, "среда", l.Day.Name)

	plain := NewGridLesson("Math", "Smith", "", Days[0], 0)
	assert.False(t, plain.HasGroup)
	assert.Equal(t, "Smith", plain.Teacher)
	assert.Equal(t, "", plain.Group)

	// Only the first colon separates the group.
	odd := NewGridLesson("Math", "2:Smith:Jr", "", Days[0], 0)
	assert.Equal(t, "2", odd.Group)
	assert.Equal(t, "Smith:Jr", odd.Teacher)
}

func TestGridClass_DeriveLabels(t *testing.T) {
	c := NewGridClass(" 10A ")
	assert.Equal(t, "10A", c.Name)

	c.AddLesson(NewGridLesson("Math", "Smith", "1", Days[0], 0))
	c.AddLesson(NewGridLesson("Math", "Smith", "2", Days[1], 4))
	c.AddLesson(NewGridLesson("math", "Smith", "2", Days[1], 5))
	c.AddLesson(NewGridLesson("Art", "Lee", "3", Days[2], 1))
	c.DeriveLabels()

	assert.Equal(t, 3, c.Labels.Len())
	assert.Equal(t, []Label{"Art — Lee", "Math — Smith", "math — Smith"}, c.Labels.Sorted())
}

func TestLabel_Split(t *testing.T) {
	subject, teacher := MakeLabel("Math", "1:Smith").Split()
	assert.Equal(t, "Math", subject)
	assert.Equal(t, "1:Smith", teacher)

	subject, teacher = Label("NoSeparator").Split()
	assert.Equal(t, "NoSeparator", subject)
	assert.Equal(t, "", teacher)
}

func TestLabelSet(t *testing.T) {
	s := NewLabelSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []Label{"a", "b"}, s.Sorted())
}

func TestDayByIndex(t *testing.T) {
	d, ok := DayByIndex(5)
	require.True(t, ok)
	assert.Equal(t, "суббота", d.String())

	_, ok = DayByIndex(6)
	assert.False(t, ok)
	_, ok = DayByIndex(-1)
	assert.False(t, ok)
}
