package installer

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

// fakeRunner records invocations and returns a scripted error.
type fakeRunner struct {
	calls []call
	err   error
}

type call struct {
	dir  string
	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	return f.err
}

func TestInstallArgs(t *testing.T) {
	packages := []string{"@angular/cli@17.0.0", "ngx-toastr@17.1.0"}

	tests := []struct {
		name  string
		pm    string
		force bool
		want  []string
	}{
		{
			name: "npm plain",
			pm:   NPM,
			want: []string{"install", "@angular/cli@17.0.0", "ngx-toastr@17.1.0"},
		},
		{
			name:  "npm forced",
			pm:    NPM,
			force: true,
			want:  []string{"install", "@angular/cli@17.0.0", "ngx-toastr@17.1.0", "--legacy-peer-deps"},
		},
		{
			name: "yarn uses add",
			pm:   Yarn,
			want: []string{"add", "@angular/cli@17.0.0", "ngx-toastr@17.1.0"},
		},
		{
			name:  "yarn forced adds nothing",
			pm:    Yarn,
			force: true,
			want:  []string{"add", "@angular/cli@17.0.0", "ngx-toastr@17.1.0"},
		},
		{
			name:  "pnpm forced",
			pm:    PNPM,
			force: true,
			want:  []string{"install", "@angular/cli@17.0.0", "ngx-toastr@17.1.0", "--strict-peer-dependencies=false"},
		},
		{
			name: "unknown pm falls back to npm",
			pm:   "bower",
			want: []string{"install", "@angular/cli@17.0.0", "ngx-toastr@17.1.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			inst := New(runner, tt.pm)

			if err := inst.Install(context.Background(), "/tmp/app", packages, tt.force); err != nil {
				t.Fatalf("Install: %v", err)
			}
			if len(runner.calls) != 1 {
				t.Fatalf("got %d invocations, want 1", len(runner.calls))
			}
			if !reflect.DeepEqual(runner.calls[0].args, tt.want) {
				t.Errorf("args = %v, want %v", runner.calls[0].args, tt.want)
			}
		})
	}
}

func TestInstallEmptyListIsNoop(t *testing.T) {
	runner := &fakeRunner{}
	inst := New(runner, NPM)

	if err := inst.Install(context.Background(), "/tmp/app", nil, false); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected no invocation for empty package list, got %d", len(runner.calls))
	}
}

func TestInstallFailurePropagates(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("npm exited with status 1")}
	inst := New(runner, NPM)

	err := inst.Install(context.Background(), "/tmp/app", []string{"ngx-toastr@latest"}, false)
	if err == nil {
		t.Fatal("expected install failure to propagate")
	}
}
