// Package installer invokes the package manager to install resolved packages.
package installer

import (
	"context"
	"fmt"

	"github.com/ngforge-dev/ngforge/internal/shell"
)

// Supported package manager identifiers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Installer shells out to a JavaScript package manager.
type Installer struct {
	runner shell.Runner
	pm     string
}

// New creates an Installer for the given package manager. Unknown values
// fall back to npm so a typo in config degrades instead of breaking.
func New(runner shell.Runner, pm string) *Installer {
	switch pm {
	case NPM, Yarn, PNPM:
	default:
		pm = NPM
	}
	return &Installer{runner: runner, pm: pm}
}

// Install runs a blocking install of the given name@version specifiers in
// dir. When force is true the peer-dependency check is relaxed (npm's
// --legacy-peer-deps and equivalents). A nonzero exit is fatal and
// propagated; no retry is attempted.
func (i *Installer) Install(ctx context.Context, dir string, packages []string, force bool) error {
	if len(packages) == 0 {
		return nil
	}

	args := i.installArgs(packages, force)
	if err := i.runner.Run(ctx, dir, i.pm, args...); err != nil {
		return fmt.Errorf("installing packages with %s: %w", i.pm, err)
	}
	return nil
}

func (i *Installer) installArgs(packages []string, force bool) []string {
	var args []string
	switch i.pm {
	case Yarn:
		args = append([]string{"add"}, packages...)
	default:
		args = append([]string{"install"}, packages...)
	}

	if force {
		switch i.pm {
		case Yarn:
			// Yarn ignores peer mismatches by default; nothing to add.
		case PNPM:
			args = append(args, "--strict-peer-dependencies=false")
		default:
			args = append(args, "--legacy-peer-deps")
		}
	}
	return args
}
