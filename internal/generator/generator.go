// Package generator invokes the Angular CLI to scaffold a new application.
// The skeleton itself is entirely the Angular CLI's business; this package
// only builds the npx invocation and reports its outcome.
package generator

import (
	"context"
	"fmt"

	"github.com/ngforge-dev/ngforge/internal/shell"
)

// Options describe the project to scaffold.
type Options struct {
	Name           string // project name, e.g. "my-shop"
	AngularVersion string // target Angular version, e.g. "17.0.0"
	Style          string // stylesheet format: css, scss, sass, less
	Directory      string // target directory name relative to the working dir
}

// Generator shells out to the Angular CLI via npx.
type Generator struct {
	runner shell.Runner
}

// New creates a Generator using the given runner.
func New(runner shell.Runner) *Generator {
	return &Generator{runner: runner}
}

// Scaffold runs `ng new` pinned to the target Angular version inside workDir.
// Dependency installation and git init are suppressed: packages are installed
// afterwards by the installer with resolved versions, and the git history is
// created by the repo provisioning step.
func (g *Generator) Scaffold(ctx context.Context, workDir string, opts Options) error {
	args := []string{
		"--yes",
		"@angular/cli@" + opts.AngularVersion,
		"new", opts.Name,
		"--style", opts.Style,
		"--routing",
		"--skip-install",
		"--skip-git",
	}
	if opts.Directory != "" {
		args = append(args, "--directory", opts.Directory)
	}

	if err := g.runner.Run(ctx, workDir, "npx", args...); err != nil {
		return fmt.Errorf("scaffolding %s with Angular CLI %s: %w", opts.Name, opts.AngularVersion, err)
	}
	return nil
}
