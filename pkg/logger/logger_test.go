package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "debug", Output: &buf})

	log.With().Str("n", "455839").Int("worker", 2).Logger().
		InfoEvent().Int("trial", 3).Str("factor", "599").Dur("elapsed", time.Millisecond).Msg("factor found")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "factor found", entry["message"])
	assert.Equal(t, "455839", entry["n"])
	assert.Equal(t, float64(2), entry["worker"])
	assert.Equal(t, float64(3), entry["trial"])
	assert.Equal(t, "599", entry["factor"])
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "info", Output: &buf})

	log.Debug("hidden")
	log.DebugEvent().Int("trial", 1).Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.InfoEvent().Str("k", "v").Msg("nothing")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "warn", parseLevel("warn").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
}
