package npm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VersionMetadata holds the slice of a version manifest the resolver cares about.
type VersionMetadata struct {
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// Packument is the registry's full package document, reduced to its version map.
type Packument struct {
	Name     string                     `json:"name"`
	Versions map[string]VersionMetadata `json:"versions"`
}

// Client talks to an npm-compatible registry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different registry (useful for mirrors and tests).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the given registry base URL.
func New(base string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Packument fetches the full version listing for a package.
// The returned map is keyed by version string.
func (c *Client) Packument(name string) (map[string]VersionMetadata, error) {
	var doc Packument
	if err := c.getJSON(c.baseURL+"/"+escapeName(name), &doc); err != nil {
		return nil, fmt.Errorf("fetching packument for %s: %w", name, err)
	}
	return doc.Versions, nil
}

// VersionManifest fetches the manifest for a single published version and
// returns its declared peer dependencies. The map is empty, not nil, when
// the version declares none.
func (c *Client) VersionManifest(name, version string) (map[string]string, error) {
	var meta VersionMetadata
	if err := c.getJSON(c.baseURL+"/"+escapeName(name)+"/"+url.PathEscape(version), &meta); err != nil {
		return nil, fmt.Errorf("fetching %s@%s: %w", name, version, err)
	}
	if meta.PeerDependencies == nil {
		return map[string]string{}, nil
	}
	return meta.PeerDependencies, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ngforge")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("package not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing registry JSON: %w", err)
	}
	return nil
}

// escapeName encodes a package name for use in a registry URL path.
// Scoped names keep their leading "@" but escape the slash, per the
// registry convention ("@ngrx/store" → "@ngrx%2fstore").
func escapeName(name string) string {
	if strings.HasPrefix(name, "@") {
		return strings.Replace(name, "/", "%2f", 1)
	}
	return url.PathEscape(name)
}
