package model

import "strings"

// GridLesson is one lesson occurrence of the grid export.
type GridLesson struct {
	Subject string
	// RawTeacher is the teacher cell as printed, possibly "group:teacher".
	RawTeacher string
	Teacher    string
	Group      string
	HasGroup   bool
	Room       string
	Day        Day
	Slot       int
}

// NewGridLesson splits the group prefix off rawTeacher and lowercases room.
func NewGridLesson(subject, rawTeacher, room string, day Day, slot int) GridLesson {
	l := GridLesson{
		Subject:    subject,
		RawTeacher: rawTeacher,
		Teacher:    rawTeacher,
		Room:       strings.ToLower(room),
		Day:        day,
		Slot:       slot,
	}

	if group, teacher, ok := strings.Cut(rawTeacher, ":"); ok {
		l.Group = strings.TrimSpace(group)
		l.Teacher = strings.TrimSpace(teacher)
		l.HasGroup = true
	}

	return l
}

// Label is the correlation key of the lesson.
func (l GridLesson) Label() Label {
	return MakeLabel(l.Subject, l.RawTeacher)
}

// GridClass is a column of the grid export.
type GridClass struct {
	Name    string
	Lessons []GridLesson
	Labels  LabelSet
}

// NewGridClass creates an empty class column.
func NewGridClass(name string) *GridClass {
	return &GridClass{Name: strings.TrimSpace(name)}
}

func (c *GridClass) String() string { return c.Name }

// AddLesson appends l.
func (c *GridClass) AddLesson(l GridLesson) {
	c.Lessons = append(c.Lessons, l)
}

// DeriveLabels computes the label set over all lessons.
func (c *GridClass) DeriveLabels() {
	set := NewLabelSet()
	for _, l := range c.Lessons {
		set.Add(l.Label())
	}
	c.Labels = set
}
