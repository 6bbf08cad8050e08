package reconciliation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fpsh/fpsh/internal/core/testutil"
)

func TestService_Snapshot(t *testing.T) {
	deps := testDeps{
		aliases: testutil.NewMockAliasRepository(
			"# passengers stay out of snapshots\n" +
				"alias firefox=\"flatpak run org.mozilla.firefox\"\n" +
				"alias notes=\"flatpak run md.obsidian.Obsidian\"\n"),
		skips: testutil.NewMockSkipRepository("org.gnome.Calculator"),
	}
	svc := newTestService(t, deps)

	path := filepath.Join(t.TempDir(), "snapshots", "fpsh.yaml")
	require.NoError(t, svc.Snapshot(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Aliases []struct {
			Alias string `yaml:"alias"`
			App   string `yaml:"app"`
		} `yaml:"aliases"`
		Skipped []string `yaml:"skipped"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	require.Len(t, doc.Aliases, 2)
	assert.Equal(t, "firefox", doc.Aliases[0].Alias)
	assert.Equal(t, "org.mozilla.firefox", doc.Aliases[0].App)
	assert.Equal(t, "notes", doc.Aliases[1].Alias)
	assert.Equal(t, []string{"org.gnome.Calculator"}, doc.Skipped)
	assert.NotContains(t, string(data), "passengers")

	// Snapshots never leave temp files behind.
	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestService_SnapshotEmptyPath(t *testing.T) {
	svc := newTestService(t, testDeps{})
	assert.Error(t, svc.Snapshot(""))
}
