package gitrepo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const githubAPIBase = "https://api.github.com"

// Repository is the subset of the GitHub repo resource ngforge consumes.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"html_url"`
	CloneURL string `json:"clone_url"`
	SSHURL   string `json:"ssh_url"`
}

// createRequest is the POST body for repo creation.
type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

// GitHub creates repositories via the GitHub REST API.
type GitHub struct {
	token      string
	apiBase    string
	httpClient *http.Client
}

// Option configures a GitHub client.
type Option func(*GitHub)

// WithAPIBase points the client at a different API host (useful for testing
// and GitHub Enterprise).
func WithAPIBase(base string) Option {
	return func(g *GitHub) {
		g.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(g *GitHub) {
		g.httpClient = c
	}
}

// NewGitHub creates a client authenticating with the given token.
func NewGitHub(token string, opts ...Option) *GitHub {
	g := &GitHub{
		token:      token,
		apiBase:    githubAPIBase,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateRemote creates a repository under the authenticated user and returns
// its metadata. The repository is created empty (no auto-init) so the first
// push carries the scaffolded project.
func (g *GitHub) CreateRemote(name, description string, private bool) (*Repository, error) {
	if g.token == "" {
		return nil, fmt.Errorf("no GitHub token configured: set github.token or GITHUB_TOKEN")
	}

	payload, err := json.Marshal(createRequest{
		Name:        name,
		Description: description,
		Private:     private,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequest("POST", g.apiBase+"/user/repos", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ngforge")
	req.Header.Set("Authorization", "token "+g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		// fall through to decode
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("GitHub rejected the token (401): check github.token")
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit or insufficient scope (403)")
	case http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("repository %q already exists or the name is invalid (422)", name)
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var repo Repository
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, fmt.Errorf("parsing repository JSON: %w", err)
	}
	return &repo, nil
}
