package runner

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
)

// Runner executes external commands synchronously with inherited
// standard streams, so packaging tool output lands in the CI log
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// Option is a functional option for Runner configuration
type Option func(*Runner)

// WithOutput redirects the command's stdout and stderr, mainly for
// tests
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// New creates a command runner
func New(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command and waits for it. A non-zero exit comes back
// as a wrapped error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "command failed",
			goerr.V("command", name),
			goerr.V("args", args),
		)
	}

	return nil
}
