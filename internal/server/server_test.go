package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"timetable-merge/internal/mapping"
	"timetable-merge/internal/pipeline"
	"timetable-merge/internal/response"
	"timetable-merge/internal/validator"
)

const sampleNS = `<?xml version="1.0" encoding="windows-1251"?>
<timetableExchange>
  <Rooms/>
  <Teachers>
    <teacher tid="t1" firstname="Иван" lastname="Петров" middlename="Сергеевич"/>
  </Teachers>
  <Subjects>
    <subject sid="s1" name="Математика" abbr="мат"/>
    <subject sid="s2" name="Информатика" abbr="инф"/>
  </Subjects>
  <Plan>
    <class id="c1" name="10а" boys="12" girls="14">
      <lesson id="1001" name="Математика" tid="t1" sid="s1"/>
    </class>
    <class id="c2" name="11б" boys="10" girls="10">
      <lesson id="2001" name="Информатика" tid="t1" sid="s2"/>
    </class>
  </Plan>
  <Week>
  </Week>
</timetableExchange>
`

const sampleGrid = `<html><body><table>
<tr><td>День</td><td>Время</td><td>10А</td><td>11Б</td></tr>
<tr><td rowspan="1">понедельник</td><td>1</td><td>Математика<br>Петров И. С.<br>12</td><td>Информатика<br>1:Петров И. С.<br>14</td></tr>
</table></body></html>
`

const splitLabel = "Информатика — 1:Петров И. С."

type envelope[T any] struct {
	Data     T                   `json:"data"`
	Error    *response.ErrorBody `json:"error"`
	Metadata response.Metadata   `json:"metadata"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

type fixture struct {
	router    *gin.Engine
	decisions string
	output    string
}

func setup(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	write := func(name, text string) string {
		data, err := charmap.Windows1251.NewEncoder().Bytes([]byte(text))
		require.NoError(t, err)

		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		return path
	}

	session, err := pipeline.Load(context.Background(), pipeline.Sources{
		NSPath:   write("plan.nsxml", sampleNS),
		GridPath: write("grid.html", sampleGrid),
		Encoding: charmap.Windows1251,
	}, zerolog.Nop())
	require.NoError(t, err)

	_, err = session.Correlate(nil)
	require.NoError(t, err)

	validator.Setup()

	f := fixture{
		decisions: filepath.Join(dir, "decisions.yaml"),
		output:    filepath.Join(dir, "plan.merged.nsxml"),
	}
	f.router = NewRouter(session, Options{
		GinMode:       gin.TestMode,
		DecisionsPath: f.decisions,
		OutputPath:    f.output,
	}, zerolog.Nop())

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func lessonsPath(class string) string {
	return "/api/classes/" + url.PathEscape(class) + "/lessons"
}

func TestHealth(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	env := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", env.Data["status"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), env.Metadata.RequestID)
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "review-42")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "review-42", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "review-42", decode[map[string]string](t, rec).Metadata.RequestID)
}

func TestListClasses(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodGet, "/api/classes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[struct {
		Classes []pipeline.ClassSummary `json:"classes"`
	}](t, rec)

	assert.Nil(t, env.Error)
	assert.Equal(t, []pipeline.ClassSummary{
		{Name: "10А", Labels: 1, Correlations: 1, Complete: true},
		{Name: "11Б", Labels: 1, Correlations: 0, Complete: false},
	}, env.Data.Classes)
}

func TestListLessons(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodGet, lessonsPath("11б"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[struct {
		Lessons []pipeline.LessonView `json:"lessons"`
	}](t, rec)

	require.Len(t, env.Data.Lessons, 1)
	assert.Equal(t, "2001", env.Data.Lessons[0].ID)
	assert.Empty(t, env.Data.Lessons[0].Label)
	assert.Len(t, env.Data.Lessons[0].Candidates, 2)

	rec = f.do(http.MethodGet, lessonsPath("9В"), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.ErrNotFound, decode[any](t, rec).Error.Code)
}

func TestDecide(t *testing.T) {
	f := setup(t)

	target := lessonsPath("11Б") + "/2001"

	rec := f.do(http.MethodPut, target, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrValidation, decode[any](t, rec).Error.Code)

	rec = f.do(http.MethodPut, target, `{"label": "Химия — Орлова Н. К."}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, response.ErrUnknownLabel, decode[any](t, rec).Error.Code)

	rec = f.do(http.MethodPut, lessonsPath("11Б")+"/404", `{"label": ""}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	_, err := os.Stat(f.decisions)
	require.ErrorIs(t, err, os.ErrNotExist)

	rec = f.do(http.MethodPut, target, `{"label": "`+splitLabel+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	df, err := mapping.LoadFile(f.decisions)
	require.NoError(t, err)

	cd, ok := df.Class("11Б")
	require.True(t, ok)
	require.Len(t, cd.Correlations, 1)
	assert.Equal(t, "2001", cd.Correlations[0].Lesson)
	assert.Equal(t, splitLabel, string(cd.Correlations[0].Label))
	assert.True(t, cd.Correlations[0].IsManual())

	env := decode[struct {
		Complete   bool     `json:"complete"`
		Incomplete []string `json:"incomplete"`
	}](t, f.do(http.MethodGet, "/api/check", ""))
	assert.True(t, env.Data.Complete)
	assert.Empty(t, env.Data.Incomplete)
}

func TestCheck(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodGet, "/api/check", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[struct {
		Complete    bool             `json:"complete"`
		Incomplete  []string         `json:"incomplete"`
		Diagnostics []DiagnosticView `json:"diagnostics"`
	}](t, rec)

	assert.False(t, env.Data.Complete)
	assert.Equal(t, []string{"11Б"}, env.Data.Incomplete)

	var unresolved *DiagnosticView
	for i, d := range env.Data.Diagnostics {
		if d.Code == "unresolved_lesson" {
			unresolved = &env.Data.Diagnostics[i]
		}
	}
	require.NotNil(t, unresolved)
	assert.Equal(t, "warning", unresolved.Severity)
	assert.Equal(t, "2001", unresolved.Lesson)
}

func TestMerge(t *testing.T) {
	f := setup(t)

	rec := f.do(http.MethodPost, "/api/merge", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, response.ErrIncomplete, decode[any](t, rec).Error.Code)

	_, err := os.Stat(f.output)
	require.ErrorIs(t, err, os.ErrNotExist)

	rec = f.do(http.MethodPost, "/api/merge?force=notabool", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/merge?force=true", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decode[struct {
		Output         string         `json:"output"`
		Placed         int            `json:"placed"`
		Skipped        int            `json:"skipped"`
		SkippedByClass map[string]int `json:"skipped_by_class"`
	}](t, rec)

	assert.Equal(t, f.output, env.Data.Output)
	assert.Equal(t, 1, env.Data.Placed)
	assert.Equal(t, 1, env.Data.Skipped)
	assert.Equal(t, map[string]int{"11Б": 1}, env.Data.SkippedByClass)

	data, err := os.ReadFile(f.output)
	require.NoError(t, err)

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "\t\t<csg id=\"1001\"/>\n")
	assert.NotContains(t, string(decoded), "2001\"/>")
}
