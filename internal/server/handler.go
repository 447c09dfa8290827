package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/docerr"
	"timetable-merge/internal/mapping"
	"timetable-merge/internal/model"
	"timetable-merge/internal/pipeline"
	"timetable-merge/internal/response"
	"timetable-merge/internal/validator"
)

// CorrelationHandler serves the correlation state of one session.
type CorrelationHandler struct {
	session       *pipeline.Session
	decisionsPath string
	outputPath    string
	log           zerolog.Logger

	// persist serializes decide-and-write so the file matches the last decision.
	persist sync.Mutex
}

// NewCorrelationHandler creates a new CorrelationHandler.
func NewCorrelationHandler(session *pipeline.Session, decisionsPath, outputPath string, log zerolog.Logger) *CorrelationHandler {
	return &CorrelationHandler{
		session:       session,
		decisionsPath: decisionsPath,
		outputPath:    outputPath,
		log:           log,
	}
}

// ListClasses godoc
// GET /api/classes
func (h *CorrelationHandler) ListClasses(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"classes": h.session.Classes()})
}

// ListLessons godoc
// GET /api/classes/:class/lessons
func (h *CorrelationHandler) ListLessons(c *gin.Context) {
	class := c.Param("class")

	lessons, err := h.session.Lessons(class)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class, "lessons": lessons})
}

// DecideRequest is the payload of a manual decision. An empty label clears
// the binding.
type DecideRequest struct {
	Label *string `json:"label" binding:"required"`
}

// Decide godoc
// PUT /api/classes/:class/lessons/:lesson
func (h *CorrelationHandler) Decide(c *gin.Context) {
	var req DecideRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, lessonID := c.Param("class"), c.Param("lesson")

	h.persist.Lock()
	defer h.persist.Unlock()

	if err := h.session.Decide(class, lessonID, model.Label(*req.Label)); err != nil {
		h.fail(c, err)
		return
	}

	if h.decisionsPath != "" {
		if err := mapping.WriteFile(h.session.Decisions(), h.decisionsPath); err != nil {
			h.fail(c, fmt.Errorf("save decisions: %w", err))
			return
		}
	}

	candidates, err := h.session.Candidates(class, lessonID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"class":      class,
		"lesson":     lessonID,
		"label":      *req.Label,
		"candidates": candidates,
	})
}

// DiagnosticView is the JSON form of a diagnostic.
type DiagnosticView struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Class       string   `json:"class,omitempty"`
	Lesson      string   `json:"lesson,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func diagnosticViews(diags diagnostic.Diagnostics) []DiagnosticView {
	all := diags.All()

	out := make([]DiagnosticView, len(all))
	for i, d := range all {
		out[i] = DiagnosticView{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Class:       d.Class,
			Lesson:      d.Lesson,
			Suggestions: d.Suggestions,
		}
	}

	return out
}

// Check godoc
// GET /api/check
func (h *CorrelationHandler) Check(c *gin.Context) {
	res := h.session.Check()

	incomplete := res.Incomplete
	if incomplete == nil {
		incomplete = []string{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"complete":    res.Complete,
		"incomplete":  incomplete,
		"diagnostics": diagnosticViews(res.Diagnostics),
	})
}

type mergeQuery struct {
	Force bool `form:"force"`
}

// Merge godoc
// POST /api/merge?force=true
func (h *CorrelationHandler) Merge(c *gin.Context) {
	var q mergeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, validator.TranslateErrors(err))
		return
	}

	out, stats, err := h.session.Merge(q.Force)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := os.WriteFile(h.outputPath, out, 0o644); err != nil {
		h.fail(c, fmt.Errorf("write output: %w", err))
		return
	}

	h.log.Info().Str("output", h.outputPath).Int("placed", stats.Placed).Msg("merged document written")

	skipped := stats.SkippedByClass
	if skipped == nil {
		skipped = map[string]int{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"output":           h.outputPath,
		"placed":           stats.Placed,
		"skipped":          stats.Skipped,
		"skipped_by_class": skipped,
		"diagnostics":      diagnosticViews(stats.Diagnostics()),
	})
}

func (h *CorrelationHandler) fail(c *gin.Context, err error) {
	var aerr *docerr.AssembleError

	switch {
	case errors.Is(err, pipeline.ErrUnknownClass), errors.Is(err, correlate.ErrUnknownLesson):
		response.FailWithDetail(c, http.StatusNotFound, response.ErrNotFound, err.Error())
	case errors.Is(err, correlate.ErrUnknownLabel):
		response.FailWithDetail(c, http.StatusUnprocessableEntity, response.ErrUnknownLabel, err.Error())
	case errors.Is(err, pipeline.ErrIncomplete):
		response.FailWithDetail(c, http.StatusConflict, response.ErrIncomplete, err.Error())
	case errors.As(err, &aerr):
		response.FailWithDetail(c, http.StatusUnprocessableEntity, response.ErrAssembly, err.Error())
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
