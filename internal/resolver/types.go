package resolver

// Latest is the dist-tag used when no published version matches the target.
const Latest = "latest"

// CorePackage is the peer-dependency key used for compatibility filtering.
const CorePackage = "@angular/core"

// CLIPackage is the generator package pinned to the target version. It leads
// the resolved package list and is never resolved against the registry.
const CLIPackage = "@angular/cli"

// Request names one auxiliary package to resolve. Version is either a pinned
// version string or Latest.
type Request struct {
	Name    string
	Version string
}

// Resolved pairs a package name with the version chosen for it.
type Resolved struct {
	Name    string
	Version string
}

// Spec renders the name@version form consumed by the package manager.
func (r Resolved) Spec() string {
	return r.Name + "@" + r.Version
}

// Result is the outcome of one resolution pass.
type Result struct {
	// Packages holds name@version specifiers in install order: the generator
	// package first, then auxiliaries in request order.
	Packages []string
	// ForceInstall is true when two resolved packages disagree on a shared
	// peer dependency, requiring the package manager to ignore peer conflicts.
	ForceInstall bool
}

// DefaultRequests returns the standard auxiliary library set, all tracking latest.
func DefaultRequests() []Request {
	return []Request{
		{Name: "@angular/material", Version: Latest},
		{Name: "@angular/cdk", Version: Latest},
		{Name: "@ngrx/store", Version: Latest},
		{Name: "@angular-eslint/schematics", Version: Latest},
		{Name: "ngx-toastr", Version: Latest},
	}
}
