package cli

import (
	"strings"
	"testing"
)

func TestPrintToolChecks(t *testing.T) {
	tests := []struct {
		name        string
		available   map[string]bool
		wantMissing int
	}{
		{
			name:        "all present",
			available:   map[string]bool{"node": true, "npm": true, "npx": true, "git": true},
			wantMissing: 0,
		},
		{
			name:        "git missing",
			available:   map[string]bool{"node": true, "npm": true, "npx": true},
			wantMissing: 1,
		},
		{
			name:        "nothing present",
			available:   map[string]bool{},
			wantMissing: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			missing := printToolChecks(&out, func(tool string) bool {
				return tt.available[tool]
			})
			if missing != tt.wantMissing {
				t.Errorf("missing = %d, want %d", missing, tt.wantMissing)
			}
			if tt.wantMissing > 0 && !strings.Contains(out.String(), "[MISS]") {
				t.Errorf("output missing [MISS] marker: %q", out.String())
			}
		})
	}
}
