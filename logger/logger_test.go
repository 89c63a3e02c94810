package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake_WritesJSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logData, err := New().FromBuffer(&buf).WithLevel("debug").Make()
	require.NoError(t, err)

	logData.Logger.Debug().Str("component", "test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestMake_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	logData, err := New().FromBuffer(&buf).WithLevel("warn").Make()
	require.NoError(t, err)

	logData.Logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())
}

func TestMake_InvalidLevel(t *testing.T) {
	_, err := New().WithLevel("loud").Make()
	assert.Error(t, err)
}

func TestMake_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logData, err := New().FromPath(path).Make()
	require.NoError(t, err)

	logData.Logger.Info().Msg("to file")
	require.NoError(t, logData.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
