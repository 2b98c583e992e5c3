package project

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ngforge-dev/ngforge/internal/generator"
	"github.com/ngforge-dev/ngforge/internal/gitrepo"
	"github.com/ngforge-dev/ngforge/internal/resolver"
)

type fakeGenerator struct {
	called bool
	opts   generator.Options
	err    error
}

func (f *fakeGenerator) Scaffold(_ context.Context, _ string, opts generator.Options) error {
	f.called = true
	f.opts = opts
	return f.err
}

type fakeResolver struct {
	result resolver.Result
}

func (f *fakeResolver) Resolve(_ string, _ []resolver.Request) resolver.Result {
	return f.result
}

type fakeInstaller struct {
	called   bool
	dir      string
	packages []string
	force    bool
	err      error
}

func (f *fakeInstaller) Install(_ context.Context, dir string, packages []string, force bool) error {
	f.called = true
	f.dir = dir
	f.packages = packages
	f.force = force
	return f.err
}

type fakeRemote struct {
	called bool
	err    error
}

func (f *fakeRemote) CreateRemote(name, _ string, _ bool) (*gitrepo.Repository, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &gitrepo.Repository{
		Name:     name,
		FullName: "octocat/" + name,
		HTMLURL:  "https://github.com/octocat/" + name,
		CloneURL: "https://github.com/octocat/" + name + ".git",
	}, nil
}

type fakePusher struct {
	called    bool
	remoteURL string
	err       error
}

func (f *fakePusher) InitAndPush(_ context.Context, _ string, remoteURL string) error {
	f.called = true
	f.remoteURL = remoteURL
	return f.err
}

func newCreator(out *strings.Builder) (*Creator, *fakeGenerator, *fakeInstaller, *fakeRemote, *fakePusher) {
	gen := &fakeGenerator{}
	inst := &fakeInstaller{}
	remote := &fakeRemote{}
	pusher := &fakePusher{}
	c := &Creator{
		Generator: gen,
		Resolver: &fakeResolver{result: resolver.Result{
			Packages:     []string{"@angular/cli@17.0.0", "ngx-toastr@17.1.0"},
			ForceInstall: true,
		}},
		Installer: inst,
		Remote:    remote,
		Pusher:    pusher,
		Out:       out,
	}
	return c, gen, inst, remote, pusher
}

func baseSpec() Spec {
	return Spec{
		Name:           "my-shop",
		AngularVersion: "17.0.0",
		Style:          "scss",
		WorkDir:        "/work",
		Requests:       []resolver.Request{{Name: "ngx-toastr", Version: resolver.Latest}},
	}
}

func TestCreateFullPipeline(t *testing.T) {
	var out strings.Builder
	c, gen, inst, remote, pusher := newCreator(&out)

	spec := baseSpec()
	spec.CreateRemote = true
	spec.Private = true

	if err := c.Create(context.Background(), spec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !gen.called {
		t.Error("generator not invoked")
	}
	if gen.opts.AngularVersion != "17.0.0" || gen.opts.Style != "scss" {
		t.Errorf("generator opts = %+v", gen.opts)
	}
	if !inst.called {
		t.Error("installer not invoked")
	}
	if !inst.force {
		t.Error("resolver's force flag not threaded to installer")
	}
	if inst.dir != "/work/my-shop" {
		t.Errorf("install dir = %q, want /work/my-shop", inst.dir)
	}
	if !remote.called || !pusher.called {
		t.Error("remote provisioning steps not invoked")
	}
	if pusher.remoteURL != "https://github.com/octocat/my-shop.git" {
		t.Errorf("push remote = %q", pusher.remoteURL)
	}
	if !strings.Contains(out.String(), "conflict detected") {
		t.Errorf("output missing conflict notice: %q", out.String())
	}
}

func TestCreateSkipsRemoteByDefault(t *testing.T) {
	var out strings.Builder
	c, _, _, remote, pusher := newCreator(&out)

	if err := c.Create(context.Background(), baseSpec()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if remote.called || pusher.called {
		t.Error("remote steps invoked without CreateRemote")
	}
}

func TestCreateSkipInstall(t *testing.T) {
	var out strings.Builder
	c, _, inst, _, _ := newCreator(&out)

	spec := baseSpec()
	spec.SkipInstall = true

	if err := c.Create(context.Background(), spec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inst.called {
		t.Error("installer invoked despite SkipInstall")
	}
}

func TestCreateGeneratorFailureAborts(t *testing.T) {
	var out strings.Builder
	c, gen, inst, _, _ := newCreator(&out)
	gen.err = fmt.Errorf("npx exited with status 1")

	if err := c.Create(context.Background(), baseSpec()); err == nil {
		t.Fatal("expected generator failure to propagate")
	}
	if inst.called {
		t.Error("installer invoked after generator failure")
	}
}

func TestCreateInstallFailureAbortsBeforeRemote(t *testing.T) {
	var out strings.Builder
	c, _, inst, remote, _ := newCreator(&out)
	inst.err = fmt.Errorf("npm exited with status 1")

	spec := baseSpec()
	spec.CreateRemote = true

	if err := c.Create(context.Background(), spec); err == nil {
		t.Fatal("expected install failure to propagate")
	}
	if remote.called {
		t.Error("remote created after install failure")
	}
}

func TestCreateDefaultsDirectoryToName(t *testing.T) {
	var out strings.Builder
	c, gen, _, _, _ := newCreator(&out)

	if err := c.Create(context.Background(), baseSpec()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gen.opts.Directory != "my-shop" {
		t.Errorf("directory = %q, want project name", gen.opts.Directory)
	}
}
