package model

import "strings"

// Room is an NS room reference.
type Room struct {
	ID   string
	Name string
}

func (r *Room) String() string { return r.Name }

// Teacher is an NS teacher. Name is the short display form used by the grid
// export: surname followed by the two initials.
type Teacher struct {
	ID         string
	FirstName  string
	LastName   string
	MiddleName string
	Name       string
}

// NewTeacher builds a Teacher and derives its display name.
func NewTeacher(id, firstName, lastName, middleName string) *Teacher {
	return &Teacher{
		ID:         id,
		FirstName:  firstName,
		LastName:   lastName,
		MiddleName: middleName,
		Name:       ShortName(firstName, lastName, middleName),
	}
}

func (t *Teacher) String() string { return t.Name }

// ShortName renders "Lastname F. M.". A missing first or middle name drops its
// initial.
func ShortName(firstName, lastName, middleName string) string {
	parts := []string{lastName}
	for _, n := range []string{firstName, middleName} {
		if r := []rune(strings.TrimSpace(n)); len(r) > 0 {
			parts = append(parts, string(r[0])+".")
		}
	}
	return strings.Join(parts, " ")
}

// Subject is an NS subject together with the teachers seen teaching it.
type Subject struct {
	ID       string
	Name     string
	Abbr     string
	Teachers []*Teacher
}

func (s *Subject) String() string { return s.Name }

// AddTeacher records t once.
func (s *Subject) AddTeacher(t *Teacher) {
	if t == nil {
		return
	}
	for _, known := range s.Teachers {
		if known == t {
			return
		}
	}
	s.Teachers = append(s.Teachers, t)
}
