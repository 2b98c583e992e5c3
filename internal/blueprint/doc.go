// Package blueprint loads and validates ngforge.yaml project blueprints.
// A blueprint describes a project non-interactively: its name, target
// Angular version, style, auxiliary package overrides, and remote repository
// settings. Files are parsed as YAML and validated against an embedded JSON
// schema before use.
package blueprint
