package nameoverrides

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverridesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write overrides file: %v", err)
	}
	return path
}

func TestNewYAMLProvider_EmptyPath(t *testing.T) {
	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("expected error for empty file path")
	}
}

func TestYAMLProvider_Overrides(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
		wantErr  bool
	}{
		{
			name: "valid entries",
			content: `- app: org.mozilla.firefox
  alias: web
- app: md.obsidian.Obsidian
  alias: notes
`,
			expected: map[string]string{
				"org.mozilla.firefox":  "web",
				"md.obsidian.Obsidian": "notes",
			},
		},
		{
			name:     "empty file",
			content:  "",
			expected: map[string]string{},
		},
		{
			name:     "only comments",
			content:  "# pinned alias names\n",
			expected: map[string]string{},
		},
		{
			name: "entries missing a field are dropped",
			content: `- app: org.mozilla.firefox
  alias: web
- app: org.gnome.Calculator
- alias: orphan
`,
			expected: map[string]string{
				"org.mozilla.firefox": "web",
			},
		},
		{
			name: "unknown fields are rejected",
			content: `- app: org.mozilla.firefox
  alias: web
  color: blue
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "::: not yaml :::",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewYAMLProvider(writeOverridesFile(t, tt.content))
			if err != nil {
				t.Fatalf("unexpected constructor error: %v", err)
			}

			overrides, err := provider.Overrides()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(overrides) != len(tt.expected) {
				t.Fatalf("expected %d overrides, got %d: %v", len(tt.expected), len(overrides), overrides)
			}
			for app, alias := range tt.expected {
				if overrides[app] != alias {
					t.Errorf("override for %s: expected %q, got %q", app, alias, overrides[app])
				}
			}
		})
	}
}

func TestYAMLProvider_OverridesMissingFile(t *testing.T) {
	provider, err := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}

	overrides, err := provider.Overrides()
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if len(overrides) != 0 {
		t.Errorf("expected empty map, got %v", overrides)
	}
}
