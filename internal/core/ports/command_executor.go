package ports

import "context"

// CommandExecutor defines an interface for running external commands.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}
