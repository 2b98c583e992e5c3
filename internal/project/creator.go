// Package project sequences the steps that turn a project description into a
// scaffolded, installed, and optionally published Angular application. It
// owns no business logic of its own: every step is a collaborator injected
// through a small interface so the sequencing is testable without
// subprocesses or the network.
package project

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ngforge-dev/ngforge/internal/generator"
	"github.com/ngforge-dev/ngforge/internal/gitrepo"
	"github.com/ngforge-dev/ngforge/internal/resolver"
)

// Scaffolder produces the application skeleton.
type Scaffolder interface {
	Scaffold(ctx context.Context, workDir string, opts generator.Options) error
}

// Resolving determines installable package versions.
type Resolving interface {
	Resolve(target string, requests []resolver.Request) resolver.Result
}

// Installing runs the package manager.
type Installing interface {
	Install(ctx context.Context, dir string, packages []string, force bool) error
}

// RemoteCreator provisions a remote repository.
type RemoteCreator interface {
	CreateRemote(name, description string, private bool) (*gitrepo.Repository, error)
}

// Pusher publishes the initial commit.
type Pusher interface {
	InitAndPush(ctx context.Context, dir, remoteURL string) error
}

// Spec describes the project to create.
type Spec struct {
	Name           string
	AngularVersion string
	Style          string
	Directory      string // destination, relative to WorkDir; defaults to Name
	WorkDir        string

	Requests    []resolver.Request
	SkipInstall bool

	CreateRemote bool
	Private      bool
	Description  string
}

// Creator wires the collaborators for project creation.
type Creator struct {
	Generator Scaffolder
	Resolver  Resolving
	Installer Installing
	Remote    RemoteCreator
	Pusher    Pusher
	Out       io.Writer
}

// Create runs the full pipeline: scaffold, resolve, install, and optionally
// provision and push a remote repository. The first fatal step aborts the
// run; partially created state (project directory, remote repository) is
// intentionally left in place for inspection.
func (c *Creator) Create(ctx context.Context, spec Spec) error {
	dir := spec.Directory
	if dir == "" {
		dir = spec.Name
	}
	projectDir := filepath.Join(spec.WorkDir, dir)

	fmt.Fprintf(c.Out, "Scaffolding %s (Angular %s)...\n", spec.Name, spec.AngularVersion)
	err := c.Generator.Scaffold(ctx, spec.WorkDir, generator.Options{
		Name:           spec.Name,
		AngularVersion: spec.AngularVersion,
		Style:          spec.Style,
		Directory:      dir,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Out, "Resolving %d auxiliary packages...\n", len(spec.Requests))
	result := c.Resolver.Resolve(spec.AngularVersion, spec.Requests)
	for _, pkg := range result.Packages {
		fmt.Fprintf(c.Out, "  %s\n", pkg)
	}
	if result.ForceInstall {
		fmt.Fprintln(c.Out, "Peer dependency conflict detected; install will ignore peer mismatches.")
	}

	if spec.SkipInstall {
		fmt.Fprintln(c.Out, "Skipping install (--skip-install).")
	} else {
		fmt.Fprintln(c.Out, "Installing packages...")
		if err := c.Installer.Install(ctx, projectDir, result.Packages, result.ForceInstall); err != nil {
			return err
		}
	}

	if spec.CreateRemote {
		fmt.Fprintf(c.Out, "Creating remote repository %s...\n", spec.Name)
		repo, err := c.Remote.CreateRemote(spec.Name, spec.Description, spec.Private)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Pushing initial commit to %s...\n", repo.FullName)
		if err := c.Pusher.InitAndPush(ctx, projectDir, repo.CloneURL); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Repository ready at %s\n", repo.HTMLURL)
	}

	fmt.Fprintf(c.Out, "Done. Project created in %s\n", projectDir)
	return nil
}
