package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NSLesson is one entry of a class lesson plan. Teacher and Subject stay nil
// when the document references an unknown id.
type NSLesson struct {
	ID      string
	Name    string
	Teacher *Teacher
	Subject *Subject
}

func (l *NSLesson) String() string { return l.Name }

// TeacherName returns the teacher display name or "" when unresolved.
func (l *NSLesson) TeacherName() string {
	if l.Teacher == nil {
		return ""
	}
	return l.Teacher.Name
}

// SubjectName is the name the lesson is matched on: its own name, or the
// resolved subject name when the plan entry carries none.
func (l *NSLesson) SubjectName() string {
	if l.Name != "" || l.Subject == nil {
		return l.Name
	}
	return l.Subject.Name
}

// NSClass is a class of the NS plan section.
type NSClass struct {
	ID       string
	Name     string
	Grade    int
	Letter   string
	Boys     int
	Girls    int
	Students int
	Plan     []*NSLesson
}

// NewNSClass uppercases name and derives grade and letter from it.
func NewNSClass(id, name string, boys, girls int) (*NSClass, error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	grade, letter, err := SplitClassName(name)
	if err != nil {
		return nil, err
	}

	return &NSClass{
		ID:       id,
		Name:     name,
		Grade:    grade,
		Letter:   letter,
		Boys:     boys,
		Girls:    girls,
		Students: boys + girls,
	}, nil
}

func (c *NSClass) String() string { return c.Name }

// AddLesson appends l to the plan.
func (c *NSClass) AddLesson(l *NSLesson) {
	c.Plan = append(c.Plan, l)
}

// LessonByID returns the plan entry with the given id.
func (c *NSClass) LessonByID(id string) (*NSLesson, bool) {
	for _, l := range c.Plan {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// SplitClassName splits "10A" into grade 10 and letter "A". The name must have
// at least two runes, end with a letter and start with a decimal number.
func SplitClassName(name string) (int, string, error) {
	runes := []rune(name)
	if len(runes) < 2 {
		return 0, "", fmt.Errorf("class name %q is shorter than two characters", name)
	}

	last := runes[len(runes)-1]
	if !unicode.IsLetter(last) {
		return 0, "", fmt.Errorf("class name %q does not end with a letter", name)
	}

	digits := runes[:len(runes)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, "", fmt.Errorf("class name %q has no numeric grade", name)
		}
	}

	grade, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, "", fmt.Errorf("class name %q: %w", name, err)
	}

	return grade, string(last), nil
}
