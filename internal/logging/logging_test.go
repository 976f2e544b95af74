package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestSubprocessWriter_ForwardsLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)
	w := NewSubprocessWriter(logger, "gh")

	n, err := w.Write([]byte("first line\n\nsecond line\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, 25, n)

	out := buf.String()
	assert.Contains(t, out, "first line")
	assert.Contains(t, out, "second line")
}

func TestSubprocessWriter_NilLogger(t *testing.T) {
	w := &SubprocessWriter{}
	n, err := w.Write([]byte("ignored\n"))
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
}
