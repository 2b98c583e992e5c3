// Package gitrepo provisions a remote GitHub repository for a freshly
// scaffolded project and pushes the initial commit. Remote creation goes
// through the GitHub REST API; local git plumbing is delegated to the git
// binary via the shell runner. Failures are fatal to the run and leave any
// partially created repository in place.
package gitrepo
