package correlate

import (
	"errors"
	"fmt"

	"timetable-merge/internal/match"
	"timetable-merge/internal/model"
)

var (
	ErrUnknownLabel  = errors.New("label is not offered by the grid class")
	ErrUnknownLesson = errors.New("lesson is not in the class plan")
)

// Binding is the label chosen for one NS lesson.
type Binding struct {
	Label  model.Label
	Source Source
}

// Correlation is the mapping of one class present in both documents.
type Correlation struct {
	NS   *model.NSClass
	Grid *model.GridClass

	bindings map[*model.NSLesson]Binding
	// stale holds lesson ids whose stored label could not be honoured.
	stale []string
}

// NewCorrelation returns an empty mapping for the class pair.
func NewCorrelation(ns *model.NSClass, grid *model.GridClass) *Correlation {
	if grid.Labels == nil {
		grid.DeriveLabels()
	}

	return &Correlation{
		NS:       ns,
		Grid:     grid,
		bindings: make(map[*model.NSLesson]Binding),
	}
}

// Name returns the NS class name.
func (c *Correlation) Name() string { return c.NS.Name }

// AutoMatch rebuilds the mapping from scratch. Lessons are visited in plan
// order; each takes the first unused label, in sorted order, that matches it
// exactly, or else its prior label when that label is still offered and
// unused. A bound label leaves the pool.
func (c *Correlation) AutoMatch(prior map[string]model.Label) {
	c.bindings = make(map[*model.NSLesson]Binding, len(c.NS.Plan))
	c.stale = nil

	pool := c.Grid.Labels.Sorted()
	used := model.NewLabelSet()

	for _, lesson := range c.NS.Plan {
		subject, teacher := lesson.SubjectName(), lesson.TeacherName()

		if l, ok := firstExact(pool, used, subject, teacher); ok {
			c.bindings[lesson] = Binding{Label: l, Source: SourceAuto}
			used.Add(l)

			continue
		}

		l, ok := prior[lesson.ID]
		if !ok || l == "" {
			continue
		}

		if !c.Grid.Labels.Has(l) || used.Has(l) {
			c.stale = append(c.stale, lesson.ID)
			continue
		}

		c.bindings[lesson] = Binding{Label: l, Source: SourcePersisted}
		used.Add(l)
	}
}

func firstExact(pool []model.Label, used model.LabelSet, subject, teacher string) (model.Label, bool) {
	for _, l := range pool {
		if used.Has(l) {
			continue
		}

		if match.ExactMatch(l, subject, teacher) {
			return l, true
		}
	}

	return "", false
}

// Binding returns the label bound to lesson.
func (c *Correlation) Binding(lesson *model.NSLesson) (Binding, bool) {
	b, ok := c.bindings[lesson]
	return b, ok
}

// Lesson returns the plan entry with the given id.
func (c *Correlation) Lesson(id string) (*model.NSLesson, bool) {
	return c.NS.LessonByID(id)
}

// Mapping returns a copy of the lesson -> label mapping.
func (c *Correlation) Mapping() map[*model.NSLesson]model.Label {
	out := make(map[*model.NSLesson]model.Label, len(c.bindings))
	for lesson, b := range c.bindings {
		out[lesson] = b.Label
	}

	return out
}

// Len returns the number of bound lessons.
func (c *Correlation) Len() int { return len(c.bindings) }

// Candidates returns the choices offered for lesson: its bound label first
// (if any), then the empty "no selection" entry, then every label no lesson
// is bound to, in display order.
func (c *Correlation) Candidates(lesson *model.NSLesson) []model.Label {
	remaining := match.RankCandidates(c.Unused()).Labels()

	out := make([]model.Label, 0, len(remaining)+2)
	if b, ok := c.bindings[lesson]; ok {
		out = append(out, b.Label)
	}

	out = append(out, "")

	return append(out, remaining...)
}

// Unused returns the labels no lesson is bound to, lexicographically.
func (c *Correlation) Unused() []model.Label {
	bound := c.boundLabels()

	var out []model.Label
	for _, l := range c.Grid.Labels.Sorted() {
		if _, ok := bound[l]; !ok {
			out = append(out, l)
		}
	}

	return out
}

func (c *Correlation) boundLabels() map[model.Label][]*model.NSLesson {
	bound := make(map[model.Label][]*model.NSLesson, len(c.bindings))
	for _, lesson := range c.NS.Plan {
		if b, ok := c.bindings[lesson]; ok {
			bound[b.Label] = append(bound[b.Label], lesson)
		}
	}

	return bound
}

// Decide records a reviewer's choice for lesson, replacing any earlier
// binding. The empty label clears the binding. Binding a label that another
// lesson already holds is allowed; Shared reports such labels.
func (c *Correlation) Decide(lesson *model.NSLesson, label model.Label) error {
	planned, ok := c.NS.LessonByID(lesson.ID)
	if !ok {
		return fmt.Errorf("%w: %s in class %s", ErrUnknownLesson, lesson.ID, c.Name())
	}

	if label == "" {
		delete(c.bindings, planned)
		return nil
	}

	if !c.Grid.Labels.Has(label) {
		return fmt.Errorf("%w: %q in class %s", ErrUnknownLabel, label, c.Name())
	}

	c.bindings[planned] = Binding{Label: label, Source: SourceManual}

	return nil
}

// Complete reports whether there are as many bindings as labels.
func (c *Correlation) Complete() bool {
	return len(c.bindings) == c.Grid.Labels.Len()
}

// Unresolved returns the plan entries without a binding, in plan order.
func (c *Correlation) Unresolved() []*model.NSLesson {
	var out []*model.NSLesson
	for _, lesson := range c.NS.Plan {
		if _, ok := c.bindings[lesson]; !ok {
			out = append(out, lesson)
		}
	}

	return out
}

// Shared returns the labels bound to more than one lesson.
func (c *Correlation) Shared() map[model.Label][]*model.NSLesson {
	out := make(map[model.Label][]*model.NSLesson)
	for l, lessons := range c.boundLabels() {
		if len(lessons) > 1 {
			out[l] = lessons
		}
	}

	return out
}

// Stale returns the ids of lessons whose prior label was dropped by the last
// automatic pass.
func (c *Correlation) Stale() []string { return c.stale }
