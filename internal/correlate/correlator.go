package correlate

import (
	"fmt"
	"strings"

	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/match"
	"timetable-merge/internal/model"
)

// maxSuggestions bounds the nearest labels offered for an unresolved lesson.
const maxSuggestions = 3

// Prior holds stored decisions: class name -> lesson id -> label.
type Prior map[string]map[string]model.Label

// Set records label for the lesson of class.
func (p Prior) Set(class, lessonID string, label model.Label) {
	key := classKey(class)
	if p[key] == nil {
		p[key] = make(map[string]model.Label)
	}
	p[key][lessonID] = label
}

// Class returns the stored decisions of class.
func (p Prior) Class(class string) map[string]model.Label {
	return p[classKey(class)]
}

// Correlator holds the correlations of all classes present in both documents.
type Correlator struct {
	pairs    []*Correlation
	byName   map[string]*Correlation
	nsOnly   []*model.NSClass
	gridOnly []*model.GridClass
}

// New pairs the classes of both documents by name, ignoring case. Pairs keep
// NS plan order.
func New(nsClasses []*model.NSClass, gridClasses []*model.GridClass) *Correlator {
	grids := make(map[string]*model.GridClass, len(gridClasses))
	for _, g := range gridClasses {
		grids[classKey(g.Name)] = g
	}

	c := &Correlator{byName: make(map[string]*Correlation, len(nsClasses))}
	for _, ns := range nsClasses {
		key := classKey(ns.Name)

		g, ok := grids[key]
		if !ok {
			c.nsOnly = append(c.nsOnly, ns)
			continue
		}

		pair := NewCorrelation(ns, g)
		c.pairs = append(c.pairs, pair)
		c.byName[key] = pair
	}

	for _, g := range gridClasses {
		if _, ok := c.byName[classKey(g.Name)]; !ok {
			c.gridOnly = append(c.gridOnly, g)
		}
	}

	return c
}

func classKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// AutoMatch runs the automatic pass on every class.
func (c *Correlator) AutoMatch(prior Prior) {
	for _, pair := range c.pairs {
		pair.AutoMatch(prior.Class(pair.Name()))
	}
}

// Classes returns the class pairs in NS plan order.
func (c *Correlator) Classes() []*Correlation { return c.pairs }

// Class returns the pair named name, ignoring case.
func (c *Correlator) Class(name string) (*Correlation, bool) {
	pair, ok := c.byName[classKey(name)]
	return pair, ok
}

// NSOnly returns the NS classes without a grid column.
func (c *Correlator) NSOnly() []*model.NSClass { return c.nsOnly }

// GridOnly returns the grid columns without an NS class.
func (c *Correlator) GridOnly() []*model.GridClass { return c.gridOnly }

// Decide records a reviewer's choice for the lesson with lessonID in class.
func (c *Correlator) Decide(class, lessonID string, label model.Label) error {
	pair, ok := c.Class(class)
	if !ok {
		return fmt.Errorf("class %q is not present in both documents", class)
	}

	lesson, ok := pair.Lesson(lessonID)
	if !ok {
		return fmt.Errorf("%w: %s in class %s", ErrUnknownLesson, lessonID, pair.Name())
	}

	return pair.Decide(lesson, label)
}

// Incomplete returns the names of grid classes with fewer bindings than
// labels. Grid columns without an NS class count as incomplete unless they
// have no labels at all.
func (c *Correlator) Incomplete() []string {
	var out []string
	for _, pair := range c.pairs {
		if !pair.Complete() {
			out = append(out, pair.Name())
		}
	}

	for _, g := range c.gridOnly {
		if g.Labels.Len() > 0 {
			out = append(out, g.Name)
		}
	}

	return out
}

// Complete reports whether no class is incomplete.
func (c *Correlator) Complete() bool {
	return len(c.Incomplete()) == 0
}

// Diagnostics reports the non-fatal deficiencies of the current state.
func (c *Correlator) Diagnostics() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, ns := range c.nsOnly {
		diags.AddWarning(diagnostic.CodeClassOnlyInNS,
			"class has no column in the grid document", ns.Name, "")
	}

	for _, g := range c.gridOnly {
		diags.AddWarning(diagnostic.CodeClassOnlyInGrid,
			"class is missing from the NS plan", g.Name, "")
	}

	for _, pair := range c.pairs {
		pair.diagnose(&diags)
	}

	return diags
}

func (c *Correlation) diagnose(diags *diagnostic.Diagnostics) {
	if !c.Complete() {
		diags.AddWarning(diagnostic.CodeIncompleteClass,
			fmt.Sprintf("%d of %d labels correlated", c.Len(), c.Grid.Labels.Len()), c.Name(), "")
	}

	unused := c.Unused()
	for _, lesson := range c.Unresolved() {
		near := match.Nearest(lesson.SubjectName(), lesson.TeacherName(), unused,
			maxSuggestions, match.DefaultSuggestionScore)

		suggestions := make([]string, len(near))
		for i, l := range near {
			suggestions[i] = string(l)
		}

		diags.AddWarning(diagnostic.CodeUnresolvedLesson,
			fmt.Sprintf("no label for %s (%s)", lesson.SubjectName(), lesson.TeacherName()),
			c.Name(), lesson.ID, suggestions...)
	}

	shared := c.Shared()
	for _, l := range sortedKeys(shared) {
		diags.AddWarning(diagnostic.CodeSharedLabel,
			fmt.Sprintf("label %q is bound to %d lessons", l, len(shared[l])), c.Name(), "")
	}

	for _, id := range c.stale {
		diags.AddInfo(diagnostic.CodeStaleDecision,
			"stored label is no longer offered or already taken", c.Name(), id)
	}
}

func sortedKeys(m map[model.Label][]*model.NSLesson) []model.Label {
	set := model.NewLabelSet()
	for l := range m {
		set.Add(l)
	}
	return set.Sorted()
}
