package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout
	return <-outputChan
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"  info  ", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, ParseLevel(test.input), "input %q", test.input)
	}
}

func TestLoggerEmitsStructuredJSON(t *testing.T) {
	output := captureStdout(func() {
		log := NewLogger()
		log.WithField("document_id", "doc-1").Info("Document compiled")
	})

	assert.Contains(t, output, `"level":"info"`)
	assert.Contains(t, output, `"document_id":"doc-1"`)
	assert.Contains(t, output, `"message":"Document compiled"`)
	assert.Contains(t, output, `"time":`)
}

func TestLoggerWithLevelFilters(t *testing.T) {
	output := captureStdout(func() {
		log := NewLoggerWithLevel("warn")
		log.Debug("too quiet")
		log.Info("still too quiet")
		log.Warn("loud enough")
	})

	assert.NotContains(t, output, "too quiet")
	assert.Contains(t, output, "loud enough")
}

func TestWithFieldsAttachesAll(t *testing.T) {
	output := captureStdout(func() {
		log := NewLogger()
		log.WithFields(map[string]interface{}{
			"blocks":   3,
			"duration": "12ms",
		}).Info("done")
	})

	assert.Contains(t, output, `"blocks":3`)
	assert.Contains(t, output, `"duration":"12ms"`)
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	output := captureStdout(func() {
		log := NewLogger()
		child := log.WithField("request_id", "r1")
		child.Info("tagged")
		log.Info("plain")
	})

	lines := bytes.Split([]byte(output), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, string(lines[0]), "request_id")
	assert.NotContains(t, string(lines[1]), "request_id",
		"the parent logger must not pick up the child's fields")
}

func TestConsoleLoggerWritesToStderr(t *testing.T) {
	output := captureStdout(func() {
		log := NewConsoleLogger("info")
		log.Info("console message")
	})
	assert.Empty(t, output, "console output goes to stderr, not stdout")
}

func TestRecordingLoggerCapturesLevelsAndFields(t *testing.T) {
	recorder := NewRecordingLogger()

	recorder.Debug("d")
	recorder.Warn("w")
	recorder.WithFields(map[string]interface{}{
		"document_id": "doc-1",
		"blocks":      3,
	}).Error("failed")

	entries := recorder.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "debug", entries[0].Level)
	assert.Equal(t, "warn", entries[1].Level)
	assert.Equal(t, "error", entries[2].Level)
	assert.Equal(t, "failed", entries[2].Message)
	assert.Equal(t, "doc-1", entries[2].Fields["document_id"])
	assert.Equal(t, 3, entries[2].Fields["blocks"])
}

func TestRecordingLoggerChainsMergeFields(t *testing.T) {
	recorder := NewRecordingLogger()

	recorder.WithField("a", 1).WithField("b", 2).Info("both")
	recorder.Info("neither")

	entries := recorder.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Fields["a"])
	assert.Equal(t, 2, entries[0].Fields["b"])
	assert.Empty(t, entries[1].Fields)
}

func TestMockLoggerDiscardsQuietly(t *testing.T) {
	log := NewMockLogger()
	require.NotNil(t, log)
	log.Info("goes nowhere")
	log.WithField("k", "v").Error("also fine")
}
