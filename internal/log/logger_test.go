package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	lines := []map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLogger_JSONWithNamespace(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, false)
	assert.True(t, logger.IsInitialized())

	logger.InfoNs(NsServer, "server started", KV{"listen_port": "5000"})

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "server started", lines[0]["msg"])
	assert.Equal(t, NsServer, lines[0]["ns"])
	assert.Equal(t, "5000", lines[0]["listen_port"])
}

func TestLogger_DebugLevel(t *testing.T) {
	t.Run("dropped when debug is off", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, false)
		logger.DebugNs(NsServer, "request")
		assert.Empty(t, buf.String())
	})

	t.Run("written when debug is on", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, true)
		logger.DebugNs(NsServer, "request", KV{"status": 200})

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "DEBUG", lines[0]["level"])
		assert.EqualValues(t, 200, lines[0]["status"])
	})
}

func TestLogger_ZeroValue(t *testing.T) {
	logger := Logger{}
	assert.False(t, logger.IsInitialized())
}
