package npm

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.EscapedPath()]
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

func TestPackument(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/ngx-toastr": `{
			"name": "ngx-toastr",
			"versions": {
				"16.0.0": {"peerDependencies": {"@angular/core": "16.0.0"}},
				"17.0.0": {"peerDependencies": {"@angular/core": "17.0.0", "zone.js": "~0.14.0"}}
			}
		}`,
	})

	c := New(srv.URL)
	versions, err := c.Packument("ngx-toastr")
	if err != nil {
		t.Fatalf("Packument: %v", err)
	}

	if len(versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(versions))
	}
	if got := versions["17.0.0"].PeerDependencies["zone.js"]; got != "~0.14.0" {
		t.Errorf("zone.js peer = %q, want %q", got, "~0.14.0")
	}
}

func TestPackumentScopedNameEscaping(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/@ngrx%2fstore": `{"name": "@ngrx/store", "versions": {"17.0.1": {}}}`,
	})

	c := New(srv.URL)
	versions, err := c.Packument("@ngrx/store")
	if err != nil {
		t.Fatalf("Packument: %v", err)
	}
	if _, ok := versions["17.0.1"]; !ok {
		t.Errorf("expected version 17.0.1 in %v", versions)
	}
}

func TestVersionManifest(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		version string
		routes  map[string]string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "with peer deps",
			pkg:     "@angular/material",
			version: "17.0.0",
			routes: map[string]string{
				"/@angular%2fmaterial/17.0.0": `{"peerDependencies": {"@angular/core": "17.0.0"}}`,
			},
			want: map[string]string{"@angular/core": "17.0.0"},
		},
		{
			name:    "no peer deps yields empty map",
			pkg:     "left-pad",
			version: "1.3.0",
			routes: map[string]string{
				"/left-pad/1.3.0": `{}`,
			},
			want: map[string]string{},
		},
		{
			name:    "missing version",
			pkg:     "left-pad",
			version: "9.9.9",
			routes:  map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.routes)
			c := New(srv.URL)

			got, err := c.VersionManifest(tt.pkg, tt.version)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("VersionManifest: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("peer %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestPackumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Packument("anything"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestPackumentBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Packument("anything"); err == nil {
		t.Fatal("expected error on malformed body")
	}
}
