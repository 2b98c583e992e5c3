package resolver

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ngforge-dev/ngforge/internal/npm"
)

// Registry is the subset of the npm client the resolver depends on.
type Registry interface {
	Packument(name string) (map[string]npm.VersionMetadata, error)
	VersionManifest(name, version string) (map[string]string, error)
}

// Resolver resolves auxiliary package versions against a registry.
type Resolver struct {
	registry Registry
	warnings io.Writer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWarningWriter redirects soft-failure warnings (default: stderr).
func WithWarningWriter(w io.Writer) Option {
	return func(r *Resolver) {
		r.warnings = w
	}
}

// New creates a Resolver backed by the given registry.
func New(registry Registry, opts ...Option) *Resolver {
	r := &Resolver{
		registry: registry,
		warnings: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// peerSpecs accumulates, per peer-dependency name, the distinct version specs
// observed across resolved packages. More than one spec for a name means two
// auxiliaries disagree and the install must be forced.
type peerSpecs map[string]map[string]struct{}

// add records a peer-dependency spec and returns the accumulator.
func (p peerSpecs) add(name, spec string) peerSpecs {
	if p[name] == nil {
		p[name] = make(map[string]struct{})
	}
	p[name][spec] = struct{}{}
	return p
}

// conflicted reports whether any peer dependency has more than one distinct spec.
func (p peerSpecs) conflicted() bool {
	for _, specs := range p {
		if len(specs) > 1 {
			return true
		}
	}
	return false
}

// Resolve determines an installable version for every request and whether the
// batch needs a forced install. No fetch failure aborts the pass: a package
// with no usable metadata falls back to Latest.
//
// The returned package list always starts with the generator package pinned
// to target, followed by the auxiliaries in request order.
func (r *Resolver) Resolve(target string, requests []Request) Result {
	packages := make([]string, 0, len(requests)+1)
	packages = append(packages, Resolved{Name: CLIPackage, Version: target}.Spec())

	peers := make(peerSpecs)
	for _, req := range requests {
		res := r.resolveOne(target, req)
		packages = append(packages, res.Spec())

		for name, spec := range r.peerDependencies(res) {
			peers = peers.add(name, spec)
		}
	}

	return Result{
		Packages:     packages,
		ForceInstall: peers.conflicted(),
	}
}

// resolveOne picks the version for a single request.
//
// Pinned requests keep their version verbatim and skip registry filtering;
// they still contribute peer dependencies to conflict detection. Requests
// tracking Latest are filtered to versions whose @angular/core peer equals
// target exactly, and the lexicographically smallest qualifier wins. The
// tie-break is a plain string sort, not semver: "10.0.0" sorts before
// "2.0.0". Changing this would silently change which versions ship, so the
// ordering is kept as-is and pinned down by tests.
func (r *Resolver) resolveOne(target string, req Request) Resolved {
	if req.Version != Latest {
		return Resolved{Name: req.Name, Version: req.Version}
	}

	versions, err := r.registry.Packument(req.Name)
	if err != nil {
		r.warnf("could not list versions for %s: %v (falling back to %s)", req.Name, err, Latest)
		return Resolved{Name: req.Name, Version: Latest}
	}

	var qualifying []string
	for version, meta := range versions {
		if meta.PeerDependencies[CorePackage] == target {
			qualifying = append(qualifying, version)
		}
	}
	if len(qualifying) == 0 {
		r.warnf("no published version of %s targets Angular %s (falling back to %s)", req.Name, target, Latest)
		return Resolved{Name: req.Name, Version: Latest}
	}

	sort.Strings(qualifying)
	return Resolved{Name: req.Name, Version: qualifying[0]}
}

// peerDependencies fetches the peer-dependency map for a resolved package.
// Fetch failures degrade to an empty map so conflict detection keeps going.
func (r *Resolver) peerDependencies(res Resolved) map[string]string {
	peers, err := r.registry.VersionManifest(res.Name, res.Version)
	if err != nil {
		r.warnf("could not read peer dependencies of %s: %v", res.Spec(), err)
		return map[string]string{}
	}
	return peers
}

func (r *Resolver) warnf(format string, args ...interface{}) {
	fmt.Fprintf(r.warnings, "warning: "+format+"\n", args...)
}
