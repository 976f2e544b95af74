package logging

import (
	"log/slog"
	"strings"
)

// SubprocessWriter is an io.Writer that forwards a subprocess stderr stream
// to slog, one warn-level record per non-empty line.
type SubprocessWriter struct {
	logger *slog.Logger
	tool   string
}

// NewSubprocessWriter constructs a SubprocessWriter for the named tool.
func NewSubprocessWriter(logger *slog.Logger, tool string) *SubprocessWriter {
	return &SubprocessWriter{logger: logger, tool: tool}
}

// Write logs each non-empty line of p at warn level.
func (w *SubprocessWriter) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(string(p), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			w.logger.Warn("subprocess stderr", "tool", w.tool, "line", line)
		}
	}
	return len(p), nil
}
