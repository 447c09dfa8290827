// Package nsdoc reads the NS exchange document into the canonical model.
package nsdoc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"

	"timetable-merge/internal/codepage"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/docerr"
	"timetable-merge/internal/model"
)

// Required top-level sections.
const (
	SectionRooms    = "rooms"
	SectionTeachers = "teachers"
	SectionSubjects = "subjects"
	SectionPlan     = "plan"
)

// Document is the parsed NS document.
type Document struct {
	Rooms    []*model.Room
	Teachers []*model.Teacher
	Subjects []*model.Subject
	Classes  []*model.NSClass

	// Diagnostics collects unresolved teacher and subject references.
	Diagnostics diagnostic.Diagnostics
}

// ClassByName returns the class whose name matches, ignoring case.
func (d *Document) ClassByName(name string) (*model.NSClass, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range d.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ParseFile reads and parses the document at path.
func ParseFile(path string, enc encoding.Encoding) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read NS document %s: %w", path, err)
	}

	return Parse(data, enc)
}

// Parse decodes data from enc and builds the NS side of the model. Missing
// sections and malformed classes are fatal; unknown teacher or subject ids are
// only recorded in Diagnostics.
func Parse(data []byte, enc encoding.Encoding) (*Document, error) {
	text, err := codepage.Decode(data, enc)
	if err != nil {
		return nil, docerr.NS("encoding", err, "")
	}

	root, err := buildTree(text)
	if err != nil {
		return nil, docerr.NS("markup", docerr.ErrMalformed, err.Error())
	}

	sections := make(map[string]*element, 4)
	for _, s := range []struct {
		name string
		err  error
	}{
		{SectionRooms, docerr.ErrMissingRooms},
		{SectionTeachers, docerr.ErrMissingTeachers},
		{SectionSubjects, docerr.ErrMissingSubjects},
		{SectionPlan, docerr.ErrMissingPlan},
	} {
		sec, ok := root.child(s.name)
		if !ok {
			return nil, docerr.NS(s.name, s.err, "")
		}
		sections[s.name] = sec
	}

	doc := &Document{
		Rooms:    parseRooms(sections[SectionRooms]),
		Teachers: parseTeachers(sections[SectionTeachers]),
		Subjects: parseSubjects(sections[SectionSubjects]),
	}

	doc.Classes, err = doc.parsePlan(sections[SectionPlan])
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseRooms(sec *element) []*model.Room {
	rooms := make([]*model.Room, 0, len(sec.children))
	for _, el := range sec.children {
		rooms = append(rooms, &model.Room{ID: el.attr("id"), Name: el.attr("name")})
	}
	return rooms
}

func parseTeachers(sec *element) []*model.Teacher {
	teachers := make([]*model.Teacher, 0, len(sec.children))
	for _, el := range sec.children {
		teachers = append(teachers, model.NewTeacher(
			el.attr("tid"), el.attr("firstname"), el.attr("lastname"), el.attr("middlename"),
		))
	}
	return teachers
}

func parseSubjects(sec *element) []*model.Subject {
	subjects := make([]*model.Subject, 0, len(sec.children))
	for _, el := range sec.children {
		subjects = append(subjects, &model.Subject{
			ID:   el.attr("sid"),
			Name: el.attr("name"),
			Abbr: el.attr("abbr"),
		})
	}
	return subjects
}

func (d *Document) parsePlan(sec *element) ([]*model.NSClass, error) {
	// Later duplicates win, as a linear scan keeping the last hit would.
	teachers := make(map[string]*model.Teacher, len(d.Teachers))
	for _, t := range d.Teachers {
		teachers[t.ID] = t
	}
	subjects := make(map[string]*model.Subject, len(d.Subjects))
	for _, s := range d.Subjects {
		subjects[s.ID] = s
	}

	classes := make([]*model.NSClass, 0, len(sec.children))
	for _, el := range sec.children {
		class, err := newClass(el)
		if err != nil {
			return nil, err
		}

		for _, lel := range el.children {
			lesson := &model.NSLesson{ID: lel.attr("id"), Name: lel.attr("name")}

			if t, ok := teachers[lel.attr("tid")]; ok {
				lesson.Teacher = t
			} else {
				d.Diagnostics.AddWarning(diagnostic.CodeUnknownTeacher,
					fmt.Sprintf("lesson %q references unknown teacher id %q", lesson.Name, lel.attr("tid")),
					class.Name, lesson.ID)
			}

			if s, ok := subjects[lel.attr("sid")]; ok {
				lesson.Subject = s
			} else {
				d.Diagnostics.AddWarning(diagnostic.CodeUnknownSubject,
					fmt.Sprintf("lesson %q references unknown subject id %q", lesson.Name, lel.attr("sid")),
					class.Name, lesson.ID)
			}

			if lesson.Subject != nil {
				lesson.Subject.AddTeacher(lesson.Teacher)
			}

			class.AddLesson(lesson)
		}

		classes = append(classes, class)
	}

	return classes, nil
}

func newClass(el *element) (*model.NSClass, error) {
	name := el.attr("name")

	boys, err := atoiOrZero(el.attr("boys"))
	if err != nil {
		return nil, docerr.NS("class", docerr.ErrBadClass, fmt.Sprintf("%q: boys: %v", name, err))
	}

	girls, err := atoiOrZero(el.attr("girls"))
	if err != nil {
		return nil, docerr.NS("class", docerr.ErrBadClass, fmt.Sprintf("%q: girls: %v", name, err))
	}

	class, err := model.NewNSClass(el.attr("id"), name, boys, girls)
	if err != nil {
		return nil, docerr.NS("class", docerr.ErrBadClass, err.Error())
	}

	return class, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
