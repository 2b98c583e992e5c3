package gitrepo

import (
	"context"
	"fmt"

	"github.com/ngforge-dev/ngforge/internal/shell"
)

// Pusher runs the local git steps that publish a scaffolded project.
type Pusher struct {
	runner shell.Runner
}

// NewPusher creates a Pusher using the given runner.
func NewPusher(runner shell.Runner) *Pusher {
	return &Pusher{runner: runner}
}

// InitAndPush initializes a git repository in dir, commits everything, wires
// the remote, and pushes the current branch. Each step is fatal on failure;
// nothing is rolled back.
func (p *Pusher) InitAndPush(ctx context.Context, dir, remoteURL string) error {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", "initial scaffold"},
		{"remote", "add", "origin", remoteURL},
		{"push", "-u", "origin", "HEAD"},
	}
	for _, args := range steps {
		if err := p.runner.Run(ctx, dir, "git", args...); err != nil {
			return fmt.Errorf("git %s: %w", args[0], err)
		}
	}
	return nil
}
