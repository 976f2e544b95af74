package githubapi

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// runner executes one external command invocation and returns its stdout.
// It exists so tests can substitute a fake gh.
type runner interface {
	run(ctx context.Context, environ []string, name string, args ...string) ([]byte, error)
}

// execRunner is the real runner backed by os/exec. The subprocess stderr is
// forwarded to the given writer as it is produced.
type execRunner struct {
	stderr io.Writer
}

func (r *execRunner) run(ctx context.Context, environ []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr
	cmd.Env = environ

	err := cmd.Run()
	return stdout.Bytes(), err
}
