//go:build integration

package integration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeRegistry builds an httptest server that speaks just enough of the npm
// registry protocol for resolution: packuments and per-version manifests.
type fakeRegistry struct {
	routes map[string]string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{routes: make(map[string]string)}
}

func (f *fakeRegistry) addRoute(path, body string) {
	f.routes[path] = body
}

func (f *fakeRegistry) start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := f.routes[r.URL.EscapedPath()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// recordingRunner satisfies shell.Runner, capturing every invocation instead
// of spawning subprocesses.
type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	call := append([]string{dir, name}, args...)
	r.calls = append(r.calls, call)
	return nil
}
