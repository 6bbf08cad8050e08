package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fpsh/fpsh/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface by running
// external programs directly, without a shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the given command and returns its stdout, stderr, and any
// error. The context bounds the call; a timed-out or cancelled command is
// reported as an error so callers can abort the surrounding operation.
func (e *OSCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout, stderr, fmt.Errorf("executing %s: %w", name, ctxErr)
		}
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing %s: %w. Stderr: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
