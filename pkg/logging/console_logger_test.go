package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	logger.Info("hello world")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "hello world")
}

func TestConsoleLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	logger.Warn("warning message")

	output := buf.String()
	assert.Contains(t, output, "WARN")
	assert.Contains(t, output, "warning message")
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	logger.Error("error occurred")

	output := buf.String()
	assert.Contains(t, output, "ERROR")
	assert.Contains(t, output, "error occurred")
}

func TestConsoleLogger_Debug_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf, verbose: true}

	logger.Debug("debug info")
	assert.Contains(t, buf.String(), "debug info")
}

func TestConsoleLogger_Debug_NotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	logger.Debug("debug info")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	logger.Warn("skipping question",
		StringField("category", "CSA EXAM QUESTIONS"),
		IntField("question", 7),
	)

	output := buf.String()
	assert.Contains(t, output, "category=CSA EXAM QUESTIONS")
	assert.Contains(t, output, "question=7")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	child := logger.WithFields(StringField("category", "csa"))
	require.NotNil(t, child)

	child.Info("parsed")

	output := buf.String()
	assert.Contains(t, output, "category=csa")

	// Parent is unchanged.
	buf.Reset()
	logger.Info("parsed")
	assert.NotContains(t, buf.String(), "category=csa")
}

func TestConsoleLogger_WithFields_Appends(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleLogger{output: &buf}

	child := logger.
		WithFields(StringField("category", "csa")).
		WithFields(IntField("question", 3))

	child.Warn("no answer key")

	output := buf.String()
	assert.Contains(t, output, "category=csa")
	assert.Contains(t, output, "question=3")
}
