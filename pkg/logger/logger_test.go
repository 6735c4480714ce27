package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Options{Output: buf, Level: level, Format: "json"}), buf
}

func TestLogger_WritesJSONWithFields(t *testing.T) {
	log, buf := newBufferLogger(LevelInfo)

	log.With(Component("store")).Info("program saved",
		ModuleCode("DLBCSICS01"),
		SemesterNo(2),
		Score(2.3),
		Err(errors.New("boom")),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "program saved", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "DLBCSICS01", entry["module_code"])
	assert.Equal(t, 2.0, entry["semester"])
	assert.Equal(t, 2.3, entry["score"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "timestamp")
}

func TestLogger_LevelFilter(t *testing.T) {
	log, buf := newBufferLogger(LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	log.Error("shown too")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelInfo, ParseLevel("fatal"))
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestFromContext(t *testing.T) {
	log, buf := newBufferLogger(LevelInfo)
	ctx := WithContext(context.Background(), log)

	FromContext(ctx).Info("via context")
	assert.Contains(t, buf.String(), "via context")

	assert.NotNil(t, FromContext(context.Background()))
}
