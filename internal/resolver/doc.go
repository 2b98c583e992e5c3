// Package resolver picks installable versions for a fixed set of auxiliary
// Angular libraries. For each requested package it filters the registry's
// published versions to those whose peer dependency on @angular/core equals
// the target Angular version exactly, then aggregates the peer dependencies
// of every pick to decide whether the install must ignore peer conflicts.
//
// Registry failures never abort a resolution pass: a package whose metadata
// cannot be fetched falls back to the "latest" dist-tag and the install
// proceeds. Availability is favored over strict correctness here; a forced
// install may still fail later at the package-manager level.
package resolver
