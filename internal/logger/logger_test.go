package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := Setup("debug", "json", &buf)
	log, id := WithRun(log)

	log.Info().Int("classes", 3).Msg("correlated")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))

	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "correlated", event["message"])
	assert.EqualValues(t, 3, event["classes"])
	assert.Equal(t, id, event["run_id"])

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer

	log := Setup("warn", "json", &buf)
	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	Setup("nonsense", "json", &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_Pretty(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer

	log := Setup("info", "pretty", &buf)
	log.Info().Str("class", "10А").Msg("incomplete")

	assert.Contains(t, buf.String(), "incomplete")
	assert.Contains(t, buf.String(), "class=")
	assert.False(t, json.Valid(buf.Bytes()))
}
