package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes an external command in a working directory, blocking until
// it exits. A nonzero exit status is returned as an error.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Executor implements Runner using os/exec.
type Executor struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves name on PATH and executes it in dir, streaming output to the
// configured writers. No timeout is imposed beyond ctx.
func (e *Executor) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is not available on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := e.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}

// LookTool reports whether an external tool is available on PATH.
func LookTool(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
