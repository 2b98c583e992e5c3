// Package npm is a minimal read-only client for the npm registry HTTP API.
// It fetches package version listings and per-version manifests, exposing
// just the peerDependencies metadata the resolver needs. Each call is a
// single best-effort GET: no retries, no caching, no rate limiting.
package npm
