package reconciliation

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// snapshotEntry is one alias binding in the exported snapshot.
type snapshotEntry struct {
	Alias string `yaml:"alias"`
	App   string `yaml:"app"`
}

// snapshotDoc is the exported snapshot document.
type snapshotDoc struct {
	Aliases []snapshotEntry `yaml:"aliases"`
	Skipped []string        `yaml:"skipped,omitempty"`
}

// Snapshot writes a YAML export of the current entries and skip set to path.
// Passenger lines are not part of the snapshot; they live only in the alias
// file itself.
func (s *service) Snapshot(path string) error {
	if path == "" {
		return fmt.Errorf("snapshot path cannot be empty")
	}

	entries, _, err := s.ListEntries()
	if err != nil {
		return err
	}
	skipped, err := s.ListSkipped()
	if err != nil {
		return err
	}

	doc := snapshotDoc{Skipped: skipped}
	for _, e := range entries {
		doc.Aliases = append(doc.Aliases, snapshotEntry{Alias: e.Name, App: e.AppID})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary snapshot file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", path, err)
	}
	return nil
}
