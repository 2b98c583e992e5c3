package blueprint

import (
	"fmt"
	"os"

	"github.com/ngforge-dev/ngforge/internal/resolver"
	"go.yaml.in/yaml/v3"
)

// Blueprint is a declarative description of a project to scaffold.
type Blueprint struct {
	Name           string       `yaml:"name"`
	Angular        string       `yaml:"angular"`
	Style          string       `yaml:"style,omitempty"`
	PackageManager string       `yaml:"packageManager,omitempty"`
	Packages       PackageRules `yaml:"packages,omitempty"`
	Repo           RepoSettings `yaml:"repo,omitempty"`
}

// PackageRules adjusts the default auxiliary package set.
type PackageRules struct {
	// Add lists extra packages to resolve alongside the defaults.
	Add []PackageRef `yaml:"add,omitempty"`
	// Pin maps package names to exact versions, bypassing resolution.
	Pin map[string]string `yaml:"pin,omitempty"`
	// Skip lists default packages to leave out.
	Skip []string `yaml:"skip,omitempty"`
}

// PackageRef names one package and an optional version ("latest" if empty).
type PackageRef struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// RepoSettings controls remote repository provisioning.
type RepoSettings struct {
	Create      bool   `yaml:"create,omitempty"`
	Private     bool   `yaml:"private,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Parse decodes and validates blueprint YAML. Schema violations are returned
// as a single error listing every issue.
func Parse(data []byte) (*Blueprint, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid blueprint:\n%s", result.IssueLines())
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint YAML: %w", err)
	}
	return &bp, nil
}

// ParseFile reads path and parses it as a blueprint.
func ParseFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint %s: %w", path, err)
	}
	return Parse(data)
}

// Requests applies the blueprint's package rules to the default auxiliary set
// and returns the resolver requests in deterministic order: surviving
// defaults first, then additions in declaration order.
func (b *Blueprint) Requests() []resolver.Request {
	skipped := make(map[string]bool, len(b.Packages.Skip))
	for _, name := range b.Packages.Skip {
		skipped[name] = true
	}

	var requests []resolver.Request
	for _, req := range resolver.DefaultRequests() {
		if skipped[req.Name] {
			continue
		}
		requests = append(requests, b.applyPin(req))
	}
	for _, ref := range b.Packages.Add {
		version := ref.Version
		if version == "" {
			version = resolver.Latest
		}
		requests = append(requests, b.applyPin(resolver.Request{Name: ref.Name, Version: version}))
	}
	return requests
}

func (b *Blueprint) applyPin(req resolver.Request) resolver.Request {
	if pinned, ok := b.Packages.Pin[req.Name]; ok {
		req.Version = pinned
	}
	return req
}
