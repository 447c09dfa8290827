package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"timetable-merge/internal/assemble"
	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/grid"
	"timetable-merge/internal/mapping"
	"timetable-merge/internal/model"
	"timetable-merge/internal/nsdoc"
)

var (
	ErrIncomplete   = errors.New("correlations are incomplete")
	ErrUnknownClass = errors.New("class is not present in both documents")
)

// Session is one conversion run over a loaded pair of documents.
type Session struct {
	NS   *nsdoc.Document
	Grid *grid.Document

	mu         sync.RWMutex
	raw        []byte
	enc        encoding.Encoding
	correlator *correlate.Correlator
	log        zerolog.Logger
}

// NewSession wraps already parsed documents. raw is the NS document as read,
// in enc.
func NewSession(ns *nsdoc.Document, gd *grid.Document, raw []byte, enc encoding.Encoding, log zerolog.Logger) *Session {
	return &Session{
		NS:         ns,
		Grid:       gd,
		raw:        raw,
		enc:        enc,
		correlator: correlate.New(ns.Classes, gd.Classes),
		log:        log,
	}
}

// Correlate runs the automatic pass with df as prior and replays its manual
// entries. An invalid decisions file is rejected before anything changes.
func (s *Session) Correlate(df *mapping.DecisionsFile) (diagnostic.Diagnostics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if df == nil {
		df = &mapping.DecisionsFile{}
	}

	validation := mapping.Validate(df, s.correlator)
	if err := validation.Error(); err != nil {
		return *validation, fmt.Errorf("invalid decisions file: %w", err)
	}

	diags := mapping.Apply(df, s.correlator)
	diags.Merge(diagnostic.Diagnostics{Warnings: validation.Warnings})

	counts := map[correlate.Source]int{}
	for _, pair := range s.correlator.Classes() {
		for _, lesson := range pair.NS.Plan {
			if b, ok := pair.Binding(lesson); ok {
				counts[b.Source]++
			}
		}
	}

	s.log.Info().
		Int("classes", len(s.correlator.Classes())).
		Int("auto", counts[correlate.SourceAuto]).
		Int("persisted", counts[correlate.SourcePersisted]).
		Int("manual", counts[correlate.SourceManual]).
		Int("incomplete", len(s.correlator.Incomplete())).
		Msg("correlated")

	return diags, nil
}

// CheckResult is the outcome of a completeness check.
type CheckResult struct {
	Complete    bool
	Incomplete  []string
	Diagnostics diagnostic.Diagnostics
}

// Check reports incomplete classes and the deficiencies behind them.
func (s *Session) Check() CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	incomplete := s.correlator.Incomplete()

	diags := s.correlator.Diagnostics()
	diags.Merge(s.NS.Diagnostics)

	return CheckResult{
		Complete:    len(incomplete) == 0,
		Incomplete:  incomplete,
		Diagnostics: diags,
	}
}

// ClassSummary describes the correlation state of one class.
type ClassSummary struct {
	Name         string `json:"name"`
	Labels       int    `json:"labels"`
	Correlations int    `json:"correlations"`
	Complete     bool   `json:"complete"`
}

// Classes summarises every class present in both documents.
func (s *Session) Classes() []ClassSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ClassSummary, 0, len(s.correlator.Classes()))
	for _, pair := range s.correlator.Classes() {
		out = append(out, ClassSummary{
			Name:         pair.Name(),
			Labels:       pair.Grid.Labels.Len(),
			Correlations: pair.Len(),
			Complete:     pair.Complete(),
		})
	}

	return out
}

// LessonView is one NS lesson with its binding and the choices offered.
type LessonView struct {
	ID         string        `json:"id"`
	Subject    string        `json:"subject"`
	Teacher    string        `json:"teacher"`
	Label      model.Label   `json:"label"`
	Source     string        `json:"source,omitempty"`
	Candidates []model.Label `json:"candidates"`
}

// Lessons lists the plan of class with bindings and candidates.
func (s *Session) Lessons(class string) ([]LessonView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.correlator.Class(class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}

	out := make([]LessonView, 0, len(pair.NS.Plan))
	for _, lesson := range pair.NS.Plan {
		v := LessonView{
			ID:         lesson.ID,
			Subject:    lesson.SubjectName(),
			Teacher:    lesson.TeacherName(),
			Candidates: pair.Candidates(lesson),
		}

		if b, ok := pair.Binding(lesson); ok {
			v.Label = b.Label
			v.Source = b.Source.String()
		}

		out = append(out, v)
	}

	return out, nil
}

// Candidates returns the ordered choices for one lesson of class.
func (s *Session) Candidates(class, lessonID string) ([]model.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.correlator.Class(class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}

	lesson, ok := pair.Lesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %s in class %s", correlate.ErrUnknownLesson, lessonID, pair.Name())
	}

	return pair.Candidates(lesson), nil
}

// Decide records a manual decision.
func (s *Session) Decide(class, lessonID string, label model.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.correlator.Class(class); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}

	if err := s.correlator.Decide(class, lessonID, label); err != nil {
		return err
	}

	s.log.Debug().Str("class", class).Str("lesson", lessonID).Str("label", string(label)).Msg("decision recorded")

	return nil
}

// Decisions exports the current state as a decisions file.
func (s *Session) Decisions() *mapping.DecisionsFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mapping.Export(s.correlator)
}

// View calls fn with the correlator under the read lock. fn must not retain
// or mutate it.
func (s *Session) View(fn func(c *correlate.Correlator)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.correlator)
}

// Merge assembles the week block and splices it into the NS document. It
// refuses while classes are incomplete unless force is set.
func (s *Session) Merge(force bool) ([]byte, assemble.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if incomplete := s.correlator.Incomplete(); len(incomplete) > 0 {
		if !force {
			return nil, assemble.Stats{}, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(incomplete, ", "))
		}

		s.log.Warn().Strs("classes", incomplete).Msg("merging incomplete correlations")
	}

	out, stats, err := assemble.Merge(s.raw, s.correlator.Classes(), s.Grid.Slots, s.enc)
	if err != nil {
		return nil, stats, err
	}

	for _, d := range stats.Diagnostics().Warnings {
		s.log.Debug().Str("class", d.Class).Str("code", d.Code).Msg(d.Message)
	}

	s.log.Info().Int("placed", stats.Placed).Int("skipped", stats.Skipped).Msg("week assembled")

	return out, stats, nil
}
